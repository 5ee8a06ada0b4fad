// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509params

import (
	"encoding/asn1"
	"slices"
	"time"

	x509purpose "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/purpose"
	x509trust "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/trust"
)

// VerifyParam holds the criteria a certificate chain is validated
// against: intended purpose, trust-anchor interpretation, maximum chain
// depth, verification time, required certificate policies, and the
// expected peer identity (host names, email address, IP address).
//
// A VerifyParam is a plain value container with no internal
// synchronization; concurrent mutation must be serialized by the
// caller. Parameter sets are typically built in layers (library
// default, application override, per-operation override) and combined
// with Inherit or Assign.
//
// Unset fields keep a sentinel value (0, -1, nil, or "") that the merge
// engine uses to decide whether a field has been configured.
type VerifyParam struct {
	checkTime int64
	inhFlags  InheritFlag
	flags     Flag
	purpose   int
	trust     int
	depth     int
	policies  []asn1.ObjectIdentifier
	hosts     []string
	hostflags HostFlag
	email     string
	ip        []byte
	poison    bool
}

// New returns an empty parameter set with the chain depth unset (-1,
// meaning unbounded by this field).
func New() *VerifyParam {
	return &VerifyParam{depth: -1}
}

// SetFlags ORs bits into the verify flags. Setting any bit in
// FlagPolicyMask also forces FlagPolicyCheck on, since policy-related
// flags imply that policy checking is enabled.
func (p *VerifyParam) SetFlags(flags Flag) {
	p.flags |= flags
	if flags&FlagPolicyMask != 0 {
		p.flags |= FlagPolicyCheck
	}
}

// ClearFlags clears bits from the verify flags.
func (p *VerifyParam) ClearFlags(flags Flag) {
	p.flags &^= flags
}

// Flags returns the current verify flags.
func (p *VerifyParam) Flags() Flag { return p.flags }

// SetInheritFlags replaces the inherit-mode flags governing the next
// Inherit call on this parameter set.
func (p *VerifyParam) SetInheritFlags(flags InheritFlag) {
	p.inhFlags = flags
}

// InheritFlags returns the current inherit-mode flags.
func (p *VerifyParam) InheritFlags() InheritFlag { return p.inhFlags }

// SetPurpose sets the intended certificate purpose. The identifier is
// validated against the purpose registry; unknown identifiers are
// rejected and leave the parameter set unchanged.
func (p *VerifyParam) SetPurpose(id int) error {
	return x509purpose.Set(&p.purpose, id)
}

// Purpose returns the configured purpose identifier, 0 when unset.
func (p *VerifyParam) Purpose() int { return p.purpose }

// SetTrust sets the trust-anchor interpretation. The identifier is
// validated against the trust registry; unknown identifiers are
// rejected and leave the parameter set unchanged.
func (p *VerifyParam) SetTrust(id int) error {
	return x509trust.Set(&p.trust, id)
}

// Trust returns the configured trust identifier, 0 when unset.
func (p *VerifyParam) Trust() int { return p.trust }

// SetDepth sets the maximum chain depth. The value is not validated; a
// negative depth means the chain length is unbounded by this field.
func (p *VerifyParam) SetDepth(depth int) {
	p.depth = depth
}

// Depth returns the configured maximum chain depth.
func (p *VerifyParam) Depth() int { return p.depth }

// SetTimePosix sets the verification time as POSIX seconds and turns
// on FlagUseCheckTime. Without that flag the verification time is
// implicitly "now" at verification.
func (p *VerifyParam) SetTimePosix(t int64) {
	p.checkTime = t
	p.flags |= FlagUseCheckTime
}

// SetTime sets the verification time and turns on FlagUseCheckTime.
func (p *VerifyParam) SetTime(t time.Time) {
	p.SetTimePosix(t.Unix())
}

// CheckTimePosix returns the configured verification time as POSIX
// seconds. The value is only meaningful while FlagUseCheckTime is set.
func (p *VerifyParam) CheckTimePosix() int64 { return p.checkTime }

// AddPolicy appends a required certificate policy, taking ownership of
// oid. Unlike SetPolicies it does not turn on FlagPolicyCheck; callers
// relying on that bit must set it explicitly.
func (p *VerifyParam) AddPolicy(oid asn1.ObjectIdentifier) {
	p.policies = append(p.policies, oid)
}

// SetPolicies replaces the required certificate policies with a deep
// copy of policies and turns on FlagPolicyCheck. A nil argument clears
// the configured policies without touching the flag.
func (p *VerifyParam) SetPolicies(policies []asn1.ObjectIdentifier) {
	if policies == nil {
		p.policies = nil
		return
	}
	dup := make([]asn1.ObjectIdentifier, len(policies))
	for i, oid := range policies {
		dup[i] = slices.Clone(oid)
	}
	p.policies = dup
	p.flags |= FlagPolicyCheck
}

// Policies returns the required certificate policies, nil when none are
// configured. The returned slice must not be modified.
func (p *VerifyParam) Policies() []asn1.ObjectIdentifier { return p.policies }

// Hosts returns the acceptable DNS names in insertion order, nil when
// no host constraint is configured. The returned slice must not be
// modified.
func (p *VerifyParam) Hosts() []string { return p.hosts }

// HostFlags returns the host-name matching flags.
func (p *VerifyParam) HostFlags() HostFlag { return p.hostflags }

// Email returns the expected email identity, "" when none is
// configured.
func (p *VerifyParam) Email() string { return p.email }

// IP returns the expected IP identity as raw network-order bytes (4 or
// 16), nil when none is configured. The returned slice must not be
// modified.
func (p *VerifyParam) IP() []byte { return p.ip }

// Poisoned reports whether an identity setter has rejected its input.
// A poisoned parameter set must not be trusted for identity matching,
// even though its other fields remain well formed. The marker is sticky
// until the whole set is replaced via Inherit or Assign.
func (p *VerifyParam) Poisoned() bool { return p.poison }
