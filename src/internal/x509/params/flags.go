// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509params

// Flag is a bitset of certificate-verification behavior flags.
// The bit values are wire-stable and match the OpenSSL X509_V_FLAG_*
// constants so that configuration carried over from C deployments keeps
// its meaning.
type Flag uint64

const (
	// FlagUseCheckTime makes verification use the explicitly configured
	// check time instead of the current time. Set implicitly by SetTime.
	FlagUseCheckTime Flag = 0x2
	// FlagCRLCheck enables CRL checking for the leaf certificate.
	FlagCRLCheck Flag = 0x4
	// FlagCRLCheckAll enables CRL checking for the whole chain.
	FlagCRLCheckAll Flag = 0x8
	// FlagIgnoreCritical ignores unhandled critical extensions.
	FlagIgnoreCritical Flag = 0x10
	// FlagX509Strict disables workarounds for broken certificates.
	FlagX509Strict Flag = 0x20
	// FlagAllowProxyCerts allows proxy certificates.
	FlagAllowProxyCerts Flag = 0x40
	// FlagPolicyCheck enables certificate policy checking.
	FlagPolicyCheck Flag = 0x80
	// FlagExplicitPolicy requires an explicit policy in the chain.
	FlagExplicitPolicy Flag = 0x100
	// FlagInhibitAny inhibits the anyPolicy OID.
	FlagInhibitAny Flag = 0x200
	// FlagInhibitMap inhibits policy mapping.
	FlagInhibitMap Flag = 0x400
	// FlagNotifyPolicy notifies the verification callback about policy
	// decisions.
	FlagNotifyPolicy Flag = 0x800
	// FlagExtendedCRLSupport enables extended CRL features.
	FlagExtendedCRLSupport Flag = 0x1000
	// FlagUseDeltas enables delta CRL support.
	FlagUseDeltas Flag = 0x2000
	// FlagCheckSSSignature checks the root CA's self signature.
	FlagCheckSSSignature Flag = 0x4000
	// FlagTrustedFirst prefers certificates from the trust store while
	// building the chain.
	FlagTrustedFirst Flag = 0x8000
	// FlagPartialChain accepts chains anchored at a non-root trusted
	// certificate.
	FlagPartialChain Flag = 0x80000
	// FlagNoAltChains suppresses alternative chain exploration.
	FlagNoAltChains Flag = 0x100000
	// FlagNoCheckTime disables validity-period checking entirely.
	FlagNoCheckTime Flag = 0x200000

	// FlagPolicyMask is the sub-range of flags related to certificate
	// policy checking. Setting any bit in this mask implies
	// FlagPolicyCheck.
	FlagPolicyMask = FlagPolicyCheck | FlagExplicitPolicy | FlagInhibitAny | FlagInhibitMap
)

// HostFlag is a bitset controlling how configured host names are
// matched against a certificate. The bit values match the OpenSSL
// X509_CHECK_FLAG_* constants.
type HostFlag uint32

const (
	// HostFlagAlwaysCheckSubject checks the subject CN even when the
	// certificate carries a subject alternative name extension.
	HostFlagAlwaysCheckSubject HostFlag = 0x1
	// HostFlagNoWildcards disables wildcard matching.
	HostFlagNoWildcards HostFlag = 0x2
	// HostFlagNoPartialWildcards disables partial-label wildcards such
	// as "www*.example.com".
	HostFlagNoPartialWildcards HostFlag = 0x4
	// HostFlagMultiLabelWildcards allows a wildcard to span multiple
	// labels.
	HostFlagMultiLabelWildcards HostFlag = 0x8
	// HostFlagSingleLabelSubdomains restricts wildcards to direct
	// subdomains.
	HostFlagSingleLabelSubdomains HostFlag = 0x10
	// HostFlagNeverCheckSubject never falls back to the subject CN.
	HostFlagNeverCheckSubject HostFlag = 0x20
)

// InheritFlag is a bitset controlling how the next Inherit call merges
// a source parameter set into a destination. The bit values match the
// OpenSSL X509_VP_FLAG_* constants.
type InheritFlag uint64

const (
	// InheritDefault treats the source as a fallback default: source
	// values are copied only into destination fields still at their
	// unset sentinel.
	InheritDefault InheritFlag = 0x1
	// InheritOverwrite copies every source field regardless of the
	// current value on either side.
	InheritOverwrite InheritFlag = 0x2
	// InheritResetFlags zeroes the destination's verify flags before
	// ORing in the source's, so the flags are copied rather than
	// accumulated.
	InheritResetFlags InheritFlag = 0x4
	// InheritLocked suppresses all field copying.
	InheritLocked InheritFlag = 0x8
	// InheritOnce clears the destination's inherit flags after the next
	// Inherit call, consuming the configured mode exactly once.
	InheritOnce InheritFlag = 0x10
)

// Locked reports whether field copying is suppressed.
func (f InheritFlag) Locked() bool { return f&InheritLocked != 0 }

// Once reports whether the inherit mode is consumed after one call.
func (f InheritFlag) Once() bool { return f&InheritOnce != 0 }

// WantsDefault reports whether the source acts as a fallback default.
func (f InheritFlag) WantsDefault() bool { return f&InheritDefault != 0 }

// WantsOverwrite reports whether every field is copied unconditionally.
// Overwrite takes priority over default when both are set.
func (f InheritFlag) WantsOverwrite() bool { return f&InheritOverwrite != 0 }

// ResetsFlags reports whether the destination's verify flags are zeroed
// before the source's are ORed in.
func (f InheritFlag) ResetsFlags() bool { return f&InheritResetFlags != 0 }
