// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509params

import (
	"bytes"
	"errors"
	"net/netip"
)

var (
	// ErrEmbeddedNUL indicates that a host name or email address
	// contains a NUL byte within its stated length.
	ErrEmbeddedNUL = errors.New("x509params: embedded NUL byte")

	// ErrInvalidIPLength indicates that an IP identity is not exactly 4
	// or 16 bytes long.
	ErrInvalidIPLength = errors.New("x509params: IP address must be 4 or 16 bytes")

	// ErrInvalidIPText indicates that a textual IP address is not a
	// recognizable IPv4 or IPv6 literal.
	ErrInvalidIPText = errors.New("x509params: unrecognized IP address literal")
)

const (
	setHostMode = iota
	addHostMode
)

// naturalLen mirrors strlen on a counted buffer: the number of bytes up
// to the first NUL, or the whole buffer when none is present.
func naturalLen(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// setHosts is the shared validated routine behind SetHost and AddHost.
// The two modes differ only in whether the existing host list is
// cleared first.
//
// A namelen of 0 with a non-nil name auto-detects the length, a
// compatibility accommodation for callers expecting counted-string
// semantics. namelen must not exceed len(name).
func (p *VerifyParam) setHosts(mode int, name []byte, namelen int) error {
	if name != nil && namelen == 0 {
		namelen = naturalLen(name)
	}

	// Refuse names with embedded NUL bytes.
	if name != nil && bytes.IndexByte(name[:namelen], 0) >= 0 {
		return ErrEmbeddedNUL
	}

	if mode == setHostMode {
		p.hosts = nil
	}
	// Setting or adding an empty name succeeds as a no-op. In SET mode
	// the list has already been cleared at this point, so an empty name
	// means "remove all configured hosts".
	if name == nil || namelen == 0 {
		return nil
	}

	p.hosts = append(p.hosts, string(name[:namelen]))
	return nil
}

// SetHost replaces the configured host names with name. A nil or empty
// name clears all configured hosts and succeeds. On validation failure
// the parameter set is poisoned and the host list is left cleared or
// unchanged per the shared routine's ordering.
func (p *VerifyParam) SetHost(name []byte, namelen int) error {
	if err := p.setHosts(setHostMode, name, namelen); err != nil {
		p.poison = true
		return err
	}
	return nil
}

// AddHost appends name to the configured host names, preserving
// insertion order and permitting duplicates. A nil or empty name is a
// successful no-op. On validation failure the parameter set is
// poisoned.
func (p *VerifyParam) AddHost(name []byte, namelen int) error {
	if err := p.setHosts(addHostMode, name, namelen); err != nil {
		p.poison = true
		return err
	}
	return nil
}

// SetHostFlags replaces the host-name matching flags.
func (p *VerifyParam) SetHostFlags(flags HostFlag) {
	p.hostflags = flags
}

// SetEmail sets the expected email identity. An emaillen of 0 with a
// non-nil email auto-detects the length. A nil email, or one that
// resolves to empty, disables previously configured email matching and
// still succeeds. On validation failure the parameter set is poisoned.
//
// The embedded-NUL scan indexes email over emaillen bytes before any
// nil handling, so emaillen must not exceed len(email) even when the
// value is being cleared.
func (p *VerifyParam) SetEmail(email []byte, emaillen int) error {
	if bytes.IndexByte(email[:emaillen], 0) >= 0 {
		p.poison = true
		return ErrEmbeddedNUL
	}
	if email == nil {
		p.email = ""
		return nil
	}
	if emaillen == 0 {
		emaillen = naturalLen(email)
	}
	p.email = string(email[:emaillen])
	return nil
}

// SetIP sets the expected IP identity from raw network-order bytes,
// which must be exactly 4 (IPv4) or 16 (IPv6) long. There is no
// disable-via-empty accommodation here: a nil or empty ip fails and
// poisons the parameter set, as does any other length.
func (p *VerifyParam) SetIP(ip []byte) error {
	if len(ip) != 4 && len(ip) != 16 {
		p.poison = true
		return ErrInvalidIPLength
	}
	p.ip = bytes.Clone(ip)
	return nil
}

// SetIPFromText parses text as an IPv4 or IPv6 literal and sets the
// expected IP identity from the result. A parse failure is reported
// without poisoning the parameter set, since the store is never
// touched.
func (p *VerifyParam) SetIPFromText(text string) error {
	addr, err := netip.ParseAddr(text)
	if err != nil || addr.Zone() != "" {
		return ErrInvalidIPText
	}
	if addr.Is4() {
		b := addr.As4()
		return p.SetIP(b[:])
	}
	b := addr.As16()
	return p.SetIP(b[:])
}
