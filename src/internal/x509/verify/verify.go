// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509verify

import (
	"crypto/x509"
	"errors"
	"net"
	"strings"
	"time"

	x509params "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/params"
	x509purpose "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/purpose"
)

var (
	// ErrPoisonedParams indicates that the parameter set had an identity
	// constraint rejected earlier and must not be trusted for matching.
	ErrPoisonedParams = errors.New("x509verify: parameter set is poisoned")

	// ErrDepthExceeded indicates that every candidate chain is longer
	// than the configured maximum depth.
	ErrDepthExceeded = errors.New("x509verify: certificate chain exceeds maximum depth")

	// ErrHostnameMismatch indicates that the certificate matches none of
	// the configured host names.
	ErrHostnameMismatch = errors.New("x509verify: certificate does not match any configured host")

	// ErrEmailMismatch indicates that the certificate does not carry the
	// configured email identity.
	ErrEmailMismatch = errors.New("x509verify: certificate does not match configured email")

	// ErrIPMismatch indicates that the certificate does not carry the
	// configured IP identity.
	ErrIPMismatch = errors.New("x509verify: certificate does not match configured IP address")

	// ErrPolicyMismatch indicates that the certificate asserts none of
	// the required certificate policies.
	ErrPolicyMismatch = errors.New("x509verify: certificate asserts none of the required policies")
)

// Verifier runs standard-library chain verification under the criteria
// of a [x509params.VerifyParam]: purpose, maximum depth, explicit check
// time, required policies, and the expected peer identity.
type Verifier struct {
	Params *x509params.VerifyParam
	Roots  *x509.CertPool // nil means the system roots

	intermediates *x509.CertPool
}

// New creates a Verifier for the given parameter set. A nil params
// falls back to the built-in default profile.
func New(params *x509params.VerifyParam) *Verifier {
	if params == nil {
		params = x509params.Lookup("default")
	}
	return &Verifier{Params: params}
}

// AddIntermediates registers untrusted intermediate certificates the
// chain may be built through.
func (v *Verifier) AddIntermediates(certs []*x509.Certificate) {
	if v.intermediates == nil {
		v.intermediates = x509.NewCertPool()
	}
	for _, cert := range certs {
		v.intermediates.AddCert(cert)
	}
}

// Verify builds and validates certificate chains for leaf, then applies
// the parameter set's criteria: depth on the returned chains, and host,
// email, IP, and policy constraints on the leaf. It returns the chains
// that satisfied every criterion.
//
// A poisoned parameter set is refused outright: an identity constraint
// was rejected earlier, and verifying against the surviving fields
// could silently accept a peer the caller meant to pin.
func (v *Verifier) Verify(leaf *x509.Certificate) ([][]*x509.Certificate, error) {
	p := v.Params
	if p.Poisoned() {
		return nil, ErrPoisonedParams
	}

	opts := x509.VerifyOptions{
		Roots:         v.Roots,
		Intermediates: v.intermediates,
		KeyUsages:     extKeyUsages(p.Purpose()),
	}
	if p.Flags()&x509params.FlagUseCheckTime != 0 && p.Flags()&x509params.FlagNoCheckTime == 0 {
		opts.CurrentTime = time.Unix(p.CheckTimePosix(), 0)
	}

	chains, err := leaf.Verify(opts)
	if err != nil {
		return nil, err
	}

	if depth := p.Depth(); depth >= 0 {
		var kept [][]*x509.Certificate
		for _, chain := range chains {
			// Depth counts the issuer links above the leaf.
			if len(chain)-1 <= depth {
				kept = append(kept, chain)
			}
		}
		if kept == nil {
			return nil, ErrDepthExceeded
		}
		chains = kept
	}

	if err := v.matchIdentity(leaf); err != nil {
		return nil, err
	}
	if err := v.matchPolicies(leaf); err != nil {
		return nil, err
	}

	return chains, nil
}

// matchIdentity applies the host, email, and IP constraints to leaf.
// Absent constraints match anything.
func (v *Verifier) matchIdentity(leaf *x509.Certificate) error {
	p := v.Params

	if hosts := p.Hosts(); hosts != nil {
		matched := false
		for _, host := range hosts {
			if v.matchHost(leaf, host) {
				matched = true
				break
			}
		}
		if !matched {
			return ErrHostnameMismatch
		}
	}

	if email := p.Email(); email != "" {
		matched := false
		for _, candidate := range leaf.EmailAddresses {
			if strings.EqualFold(candidate, email) {
				matched = true
				break
			}
		}
		if !matched {
			return ErrEmailMismatch
		}
	}

	if ip := p.IP(); ip != nil {
		want := net.IP(ip)
		matched := false
		for _, candidate := range leaf.IPAddresses {
			if candidate.Equal(want) {
				matched = true
				break
			}
		}
		if !matched {
			return ErrIPMismatch
		}
	}

	return nil
}

// matchHost matches a single configured host name against leaf,
// honoring the no-wildcards host flag by requiring an exact SAN entry.
func (v *Verifier) matchHost(leaf *x509.Certificate, host string) bool {
	if v.Params.HostFlags()&x509params.HostFlagNoWildcards != 0 {
		for _, san := range leaf.DNSNames {
			if strings.EqualFold(san, host) {
				return true
			}
		}
		return false
	}
	return leaf.VerifyHostname(host) == nil
}

// matchPolicies checks that leaf asserts at least one required policy.
// The check only runs while the policy-check flag is on, mirroring how
// the flag gates policy evaluation in the path validator.
func (v *Verifier) matchPolicies(leaf *x509.Certificate) error {
	p := v.Params
	if p.Flags()&x509params.FlagPolicyCheck == 0 {
		return nil
	}
	required := p.Policies()
	if required == nil {
		return nil
	}

	for _, want := range required {
		for _, got := range leaf.PolicyIdentifiers {
			if got.Equal(want) {
				return nil
			}
		}
	}
	return ErrPolicyMismatch
}

// extKeyUsages maps a registered purpose to the extended key usages
// the standard-library verifier should accept.
func extKeyUsages(purpose int) []x509.ExtKeyUsage {
	switch purpose {
	case x509purpose.SSLClient:
		return []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth}
	case x509purpose.SSLServer, x509purpose.NSSSLServer:
		return []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth}
	case x509purpose.SMIMESign, x509purpose.SMIMEEncrypt:
		return []x509.ExtKeyUsage{x509.ExtKeyUsageEmailProtection}
	case x509purpose.OCSPHelper:
		return []x509.ExtKeyUsage{x509.ExtKeyUsageOCSPSigning}
	case x509purpose.TimestampSign:
		return []x509.ExtKeyUsage{x509.ExtKeyUsageTimeStamping}
	default:
		// Unset, CRL signing, and "any" place no EKU requirement here.
		return []x509.ExtKeyUsage{x509.ExtKeyUsageAny}
	}
}
