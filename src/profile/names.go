// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package profile

import (
	"encoding/asn1"
	"errors"
	"fmt"
	"strconv"
	"strings"

	x509params "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/params"
)

var (
	// ErrUnknownFlag is returned when a verify-flag name has no known mapping.
	ErrUnknownFlag = errors.New("profile: unknown verify flag")
	// ErrUnknownHostFlag is returned when a host-flag name has no known mapping.
	ErrUnknownHostFlag = errors.New("profile: unknown host flag")
	// ErrInvalidOID is returned when a policy OID string is malformed.
	ErrInvalidOID = errors.New("profile: invalid policy OID")
)

// flagNames maps configuration names to verify flags.
var flagNames = map[string]x509params.Flag{
	"crl_check":            x509params.FlagCRLCheck,
	"crl_check_all":        x509params.FlagCRLCheckAll,
	"ignore_critical":      x509params.FlagIgnoreCritical,
	"x509_strict":          x509params.FlagX509Strict,
	"allow_proxy_certs":    x509params.FlagAllowProxyCerts,
	"policy_check":         x509params.FlagPolicyCheck,
	"explicit_policy":      x509params.FlagExplicitPolicy,
	"inhibit_any":          x509params.FlagInhibitAny,
	"inhibit_map":          x509params.FlagInhibitMap,
	"notify_policy":        x509params.FlagNotifyPolicy,
	"extended_crl_support": x509params.FlagExtendedCRLSupport,
	"use_deltas":           x509params.FlagUseDeltas,
	"check_ss_signature":   x509params.FlagCheckSSSignature,
	"trusted_first":        x509params.FlagTrustedFirst,
	"partial_chain":        x509params.FlagPartialChain,
	"no_alt_chains":        x509params.FlagNoAltChains,
	"no_check_time":        x509params.FlagNoCheckTime,
}

// hostFlagNames maps configuration names to host-matching flags.
var hostFlagNames = map[string]x509params.HostFlag{
	"always_check_subject":    x509params.HostFlagAlwaysCheckSubject,
	"no_wildcards":            x509params.HostFlagNoWildcards,
	"no_partial_wildcards":    x509params.HostFlagNoPartialWildcards,
	"multi_label_wildcards":   x509params.HostFlagMultiLabelWildcards,
	"single_label_subdomains": x509params.HostFlagSingleLabelSubdomains,
	"never_check_subject":     x509params.HostFlagNeverCheckSubject,
}

// ParseFlag resolves a verify-flag configuration name.
func ParseFlag(name string) (x509params.Flag, error) {
	f, ok := flagNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, name)
	}
	return f, nil
}

// ParseHostFlag resolves a host-flag configuration name.
func ParseHostFlag(name string) (x509params.HostFlag, error) {
	f, ok := hostFlagNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHostFlag, name)
	}
	return f, nil
}

// ParseOID parses a dotted-decimal object identifier such as
// "2.23.140.1.2.1".
func ParseOID(s string) (asn1.ObjectIdentifier, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOID, s)
	}
	oid := make(asn1.ObjectIdentifier, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOID, s)
		}
		oid[i] = n
	}
	return oid, nil
}
