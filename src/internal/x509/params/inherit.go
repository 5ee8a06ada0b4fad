// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509params

import "slices"

// Inherit merges src into p according to the combined inherit-mode
// flags of both sides. This is how layered configuration works: a
// library-wide default, an application override, and a per-operation
// override are combined field by field.
//
// Normally a source value is copied only into a destination field still
// at its unset sentinel. With InheritDefault the source acts as a
// fallback for every configured source field; with InheritOverwrite
// everything is copied unconditionally. InheritLocked suppresses all
// copying, and InheritOnce consumes the mode flags after this call
// regardless of the outcome. Verify flags are ORed together unless
// InheritResetFlags zeroes the destination's first.
//
// List-valued fields (policies, hosts) are deep-copied, so later
// mutation of src does not affect p. The host flags ride along with the
// host list. A nil src is a successful no-op.
//
// On failure p may be left partially updated: scalar fields already
// copied are not rolled back.
func (p *VerifyParam) Inherit(src *VerifyParam) error {
	if src == nil {
		return nil
	}
	inh := p.inhFlags | src.inhFlags

	// The once bit is consumed before anything else, even when the
	// locked bit terminates the merge below.
	if inh.Once() {
		p.inhFlags = 0
	}
	if inh.Locked() {
		return nil
	}

	toDefault := inh.WantsDefault()
	toOverwrite := inh.WantsOverwrite()

	// The generic per-field rule: copy when overwriting, or when the
	// source field is configured and either the source acts as a
	// default or the destination field is still unset.
	copyField := func(srcSet, destSet bool) bool {
		return toOverwrite || (srcSet && (toDefault || !destSet))
	}

	if copyField(src.purpose != 0, p.purpose != 0) {
		p.purpose = src.purpose
	}
	if copyField(src.trust != 0, p.trust != 0) {
		p.trust = src.trust
	}
	if copyField(src.depth != -1, p.depth != -1) {
		p.depth = src.depth
	}

	// The check time sits outside the generic rule: it is copied
	// whenever the destination has no explicit check time of its own.
	// The use-check-time bit is cleared here and restored by the flag
	// OR below when src carries it.
	if toOverwrite || p.flags&FlagUseCheckTime == 0 {
		p.checkTime = src.checkTime
		p.flags &^= FlagUseCheckTime
	}

	if inh.ResetsFlags() {
		p.flags = 0
	}
	p.flags |= src.flags

	if copyField(src.policies != nil, p.policies != nil) {
		p.SetPolicies(src.policies)
	}

	if copyField(src.hosts != nil, p.hosts != nil) {
		p.hosts = nil
		if src.hosts != nil {
			p.hosts = slices.Clone(src.hosts)
			p.hostflags = src.hostflags
		}
	}

	if copyField(src.email != "", p.email != "") {
		if err := p.SetEmail([]byte(src.email), len(src.email)); err != nil {
			return err
		}
	}

	if copyField(src.ip != nil, p.ip != nil) {
		// Stored IPs are always 4 or 16 bytes, so this can only fail
		// when an overwrite merge selects an unset source IP. The
		// failure (and the poison it leaves behind) is preserved.
		if err := p.SetIP(src.ip); err != nil {
			return err
		}
	}

	p.poison = src.poison

	return nil
}

// Assign copies src into p, treating src as authoritative unless p
// already has a configured value: it ORs InheritDefault into p's
// inherit flags for the duration of a single Inherit call and restores
// them afterwards, so the mode change does not persist.
func (p *VerifyParam) Assign(src *VerifyParam) error {
	saved := p.inhFlags
	p.inhFlags |= InheritDefault
	err := p.Inherit(src)
	p.inhFlags = saved
	return err
}
