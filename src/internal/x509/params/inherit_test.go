// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509params_test

import (
	"encoding/asn1"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509params "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/params"
	x509purpose "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/purpose"
	x509trust "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/trust"
)

// populatedParam builds a source parameter set with every field
// configured, for merge tests.
func populatedParam(t *testing.T) *x509params.VerifyParam {
	t.Helper()

	src := x509params.New()
	require.NoError(t, src.SetPurpose(x509purpose.SSLServer))
	require.NoError(t, src.SetTrust(x509trust.SSLServer))
	src.SetDepth(8)
	src.SetFlags(x509params.FlagX509Strict)
	src.SetTime(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	src.SetPolicies([]asn1.ObjectIdentifier{{2, 23, 140, 1, 2, 2}})
	require.NoError(t, src.AddHost([]byte("a.example"), 0))
	require.NoError(t, src.AddHost([]byte("b.example"), 0))
	src.SetHostFlags(x509params.HostFlagNoWildcards)
	require.NoError(t, src.SetEmail([]byte("ops@example.com"), 0))
	require.NoError(t, src.SetIP([]byte{192, 0, 2, 1}))
	return src
}

func TestInheritNilSourceIsNoOp(t *testing.T) {
	p := x509params.New()
	p.SetDepth(3)

	require.NoError(t, p.Inherit(nil))
	assert.Equal(t, 3, p.Depth())
}

func TestAssignIntoFreshDestination(t *testing.T) {
	src := populatedParam(t)

	dest := x509params.New()
	require.NoError(t, dest.Assign(src))

	assert.Equal(t, src.Purpose(), dest.Purpose())
	assert.Equal(t, src.Trust(), dest.Trust())
	assert.Equal(t, src.Depth(), dest.Depth())
	assert.Equal(t, src.Policies(), dest.Policies())
	assert.Equal(t, src.Hosts(), dest.Hosts())
	assert.Equal(t, src.HostFlags(), dest.HostFlags())
	assert.Equal(t, src.Email(), dest.Email())
	assert.Equal(t, src.IP(), dest.IP())
	assert.Equal(t, src.CheckTimePosix(), dest.CheckTimePosix())
	assert.Zero(t, dest.InheritFlags(), "Assign must not persist the temporary mode change")
}

func TestAssignRestoresInheritFlags(t *testing.T) {
	src := populatedParam(t)

	dest := x509params.New()
	dest.SetInheritFlags(x509params.InheritOnce)

	require.NoError(t, dest.Assign(src))

	// Inherit consumed the once bit internally, but Assign restores the
	// saved flags afterwards.
	assert.Equal(t, x509params.InheritOnce, dest.InheritFlags())
}

func TestInheritLocked(t *testing.T) {
	src := populatedParam(t)

	dest := x509params.New()
	dest.SetFlags(x509params.FlagCRLCheck)
	dest.SetDepth(2)
	dest.SetInheritFlags(x509params.InheritLocked)

	require.NoError(t, dest.Inherit(src))

	assert.Equal(t, 2, dest.Depth())
	assert.Equal(t, x509params.FlagCRLCheck, dest.Flags(), "locked merges do not even OR the flags")
	assert.Zero(t, dest.Purpose())
	assert.Nil(t, dest.Hosts())
	assert.Equal(t, x509params.InheritLocked, dest.InheritFlags())
}

func TestInheritLockedOnSource(t *testing.T) {
	// The effective mode is the OR of both sides, so a locked source
	// also suppresses copying.
	src := populatedParam(t)
	src.SetInheritFlags(x509params.InheritLocked)

	dest := x509params.New()
	require.NoError(t, dest.Inherit(src))

	assert.Zero(t, dest.Purpose())
	assert.Nil(t, dest.Hosts())
}

func TestInheritOnceConsumesModeEvenWhenLocked(t *testing.T) {
	src := populatedParam(t)

	dest := x509params.New()
	dest.SetDepth(2)
	dest.SetInheritFlags(x509params.InheritLocked | x509params.InheritOnce)

	require.NoError(t, dest.Inherit(src))

	assert.Zero(t, dest.InheritFlags(), "the once bit is consumed before the locked early return")
	assert.Equal(t, 2, dest.Depth(), "no field is copied on the locked path")

	// With the mode consumed, a second merge proceeds normally.
	require.NoError(t, dest.Inherit(src))
	assert.Equal(t, src.Purpose(), dest.Purpose())
	assert.Equal(t, 2, dest.Depth(), "configured destination fields still win in plain mode")
}

func TestInheritPlainModeCopiesOnlyUnsetFields(t *testing.T) {
	src := populatedParam(t)

	dest := x509params.New()
	require.NoError(t, dest.SetPurpose(x509purpose.SSLClient))
	dest.SetDepth(2)

	require.NoError(t, dest.Inherit(src))

	assert.Equal(t, x509purpose.SSLClient, dest.Purpose(), "configured purpose is kept")
	assert.Equal(t, 2, dest.Depth(), "configured depth is kept")
	assert.Equal(t, src.Trust(), dest.Trust(), "unset trust is filled from the source")
	assert.Equal(t, src.Hosts(), dest.Hosts(), "unset hosts are filled from the source")
}

func TestInheritDefaultMode(t *testing.T) {
	// With the default bit, every configured source field is copied
	// over the destination's, configured or not.
	src := populatedParam(t)

	dest := x509params.New()
	require.NoError(t, dest.SetPurpose(x509purpose.SSLClient))
	dest.SetDepth(2)
	dest.SetInheritFlags(x509params.InheritDefault)

	require.NoError(t, dest.Inherit(src))

	assert.Equal(t, src.Purpose(), dest.Purpose())
	assert.Equal(t, src.Depth(), dest.Depth())
}

func TestInheritOverwriteMode(t *testing.T) {
	// Overwrite copies even unset source fields, resetting the
	// destination's scalars back to their sentinels.
	src := x509params.New()
	require.NoError(t, src.SetEmail([]byte("ops@example.com"), 0))
	require.NoError(t, src.SetIP([]byte{192, 0, 2, 7}))

	dest := x509params.New()
	require.NoError(t, dest.SetPurpose(x509purpose.SSLClient))
	dest.SetDepth(2)
	require.NoError(t, dest.SetHost([]byte("kept.example"), 0))
	dest.SetInheritFlags(x509params.InheritOverwrite)

	require.NoError(t, dest.Inherit(src))

	assert.Zero(t, dest.Purpose(), "unset source purpose overwrites")
	assert.Equal(t, -1, dest.Depth(), "unset source depth overwrites")
	assert.Nil(t, dest.Hosts(), "absent source hosts overwrite")
	assert.Equal(t, "ops@example.com", dest.Email())
}

func TestInheritOverwriteWithAbsentSourceIPFails(t *testing.T) {
	// Pinned quirk: an overwrite merge routes the absent source IP
	// through the strict IP setter, which rejects empty input and
	// poisons the destination. Plain and default merges never select an
	// absent IP, so they cannot hit this.
	src := x509params.New()

	dest := x509params.New()
	dest.SetInheritFlags(x509params.InheritOverwrite)

	err := dest.Inherit(src)
	assert.ErrorIs(t, err, x509params.ErrInvalidIPLength)
	assert.True(t, dest.Poisoned())
}

func TestInheritFlagsAccumulate(t *testing.T) {
	src := x509params.New()
	src.SetFlags(x509params.FlagX509Strict)

	dest := x509params.New()
	dest.SetFlags(x509params.FlagCRLCheck)

	require.NoError(t, dest.Inherit(src))
	assert.Equal(t, x509params.FlagCRLCheck|x509params.FlagX509Strict, dest.Flags())
}

func TestInheritResetFlags(t *testing.T) {
	src := x509params.New()
	src.SetFlags(x509params.FlagX509Strict)

	dest := x509params.New()
	dest.SetFlags(x509params.FlagCRLCheck)
	dest.SetInheritFlags(x509params.InheritResetFlags)

	require.NoError(t, dest.Inherit(src))
	assert.Equal(t, x509params.FlagX509Strict, dest.Flags(), "flags are copied, not accumulated")
}

func TestInheritCheckTime(t *testing.T) {
	t.Run("destination without explicit time takes the source's", func(t *testing.T) {
		src := x509params.New()
		src.SetTimePosix(1700000000)

		dest := x509params.New()
		require.NoError(t, dest.Inherit(src))

		assert.Equal(t, int64(1700000000), dest.CheckTimePosix())
		assert.NotZero(t, dest.Flags()&x509params.FlagUseCheckTime,
			"the source's use-check-time bit arrives via the flag OR")
	})

	t.Run("destination with explicit time keeps it", func(t *testing.T) {
		src := x509params.New()
		src.SetTimePosix(1700000000)

		dest := x509params.New()
		dest.SetTimePosix(1600000000)
		require.NoError(t, dest.Inherit(src))

		assert.Equal(t, int64(1600000000), dest.CheckTimePosix())
	})

	t.Run("overwrite replaces an explicit time", func(t *testing.T) {
		src := x509params.New()
		src.SetTimePosix(1700000000)
		require.NoError(t, src.SetIP([]byte{192, 0, 2, 7}))

		dest := x509params.New()
		dest.SetTimePosix(1600000000)
		dest.SetInheritFlags(x509params.InheritOverwrite)
		require.NoError(t, dest.Inherit(src))

		assert.Equal(t, int64(1700000000), dest.CheckTimePosix())
	})

	t.Run("source without the bit clears a copied-over time flag", func(t *testing.T) {
		src := x509params.New()
		require.NoError(t, src.SetIP([]byte{192, 0, 2, 7}))

		dest := x509params.New()
		dest.SetTimePosix(1600000000)
		dest.SetInheritFlags(x509params.InheritOverwrite)
		require.NoError(t, dest.Inherit(src))

		assert.Zero(t, dest.CheckTimePosix())
		assert.Zero(t, dest.Flags()&x509params.FlagUseCheckTime)
	})
}

func TestInheritDeepCopiesLists(t *testing.T) {
	src := populatedParam(t)

	dest := x509params.New()
	require.NoError(t, dest.Inherit(src))

	require.NoError(t, src.AddHost([]byte("later.example"), 0))
	src.Policies()[0][0] = 9

	assert.Equal(t, []string{"a.example", "b.example"}, dest.Hosts(),
		"mutating the source host list must not change the destination")
	assert.Equal(t, asn1.ObjectIdentifier{2, 23, 140, 1, 2, 2}, dest.Policies()[0],
		"mutating the source policies must not change the destination")
}

func TestInheritHostFlagsRideWithHosts(t *testing.T) {
	src := populatedParam(t)

	t.Run("copied when the host list is copied", func(t *testing.T) {
		dest := x509params.New()
		require.NoError(t, dest.Inherit(src))
		assert.Equal(t, x509params.HostFlagNoWildcards, dest.HostFlags())
	})

	t.Run("kept when the host list is kept", func(t *testing.T) {
		dest := x509params.New()
		require.NoError(t, dest.SetHost([]byte("mine.example"), 0))
		dest.SetHostFlags(x509params.HostFlagNoPartialWildcards)

		require.NoError(t, dest.Inherit(src))
		assert.Equal(t, []string{"mine.example"}, dest.Hosts())
		assert.Equal(t, x509params.HostFlagNoPartialWildcards, dest.HostFlags())
	})
}

func TestInheritPolicyCopySetsPolicyCheckFlag(t *testing.T) {
	// The policies copy goes through the bulk setter, which turns the
	// policy-check flag on as a side effect.
	src := x509params.New()
	src.AddPolicy(asn1.ObjectIdentifier{1, 2, 3})
	src.ClearFlags(x509params.FlagPolicyCheck)

	dest := x509params.New()
	require.NoError(t, dest.Inherit(src))

	assert.NotZero(t, dest.Flags()&x509params.FlagPolicyCheck)
}

func TestInheritPropagatesPoison(t *testing.T) {
	t.Run("poisoned source poisons the destination", func(t *testing.T) {
		src := x509params.New()
		require.Error(t, src.SetIP([]byte{1}))

		dest := x509params.New()
		require.NoError(t, dest.Inherit(src))
		assert.True(t, dest.Poisoned())
	})

	t.Run("clean source clears a poisoned destination", func(t *testing.T) {
		dest := x509params.New()
		require.Error(t, dest.SetIP([]byte{1}))

		require.NoError(t, dest.Inherit(x509params.New()))
		assert.False(t, dest.Poisoned(), "poison is replaced wholesale on a completed merge")
	})
}
