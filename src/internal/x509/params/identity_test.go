// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509params "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/params"
)

func TestHostSetters(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, p *x509params.VerifyParam)
	}{
		{
			name: "SetHost replaces the previous host",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.SetHost([]byte("x"), 0))
				require.NoError(t, p.SetHost([]byte("y"), 0))
				assert.Equal(t, []string{"y"}, p.Hosts())
			},
		},
		{
			name: "AddHost appends in insertion order",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.AddHost([]byte("x"), 0))
				require.NoError(t, p.AddHost([]byte("y"), 0))
				assert.Equal(t, []string{"x", "y"}, p.Hosts())
			},
		},
		{
			name: "AddHost permits duplicates",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.AddHost([]byte("dup.example"), 0))
				require.NoError(t, p.AddHost([]byte("dup.example"), 0))
				assert.Equal(t, []string{"dup.example", "dup.example"}, p.Hosts())
			},
		},
		{
			name: "embedded NUL within the counted length fails and poisons",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.SetHost([]byte("good.example"), 0))

				err := p.SetHost([]byte("y\x00z"), 3)
				assert.ErrorIs(t, err, x509params.ErrEmbeddedNUL)
				assert.True(t, p.Poisoned())
				assert.Equal(t, []string{"good.example"}, p.Hosts(),
					"the NUL check runs before SET mode clears the list")
			},
		},
		{
			name: "zero namelen auto-detects a counted-string length",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.AddHost([]byte("host\x00trailing"), 0))
				assert.Equal(t, []string{"host"}, p.Hosts())
				assert.False(t, p.Poisoned())
			},
		},
		{
			name: "SetHost nil clears all configured hosts",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.AddHost([]byte("a.example"), 0))
				require.NoError(t, p.AddHost([]byte("b.example"), 0))
				require.NoError(t, p.SetHost(nil, 0))
				assert.Nil(t, p.Hosts())
			},
		},
		{
			name: "AddHost nil is a successful no-op",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.AddHost([]byte("a.example"), 0))
				require.NoError(t, p.AddHost(nil, 0))
				assert.Equal(t, []string{"a.example"}, p.Hosts())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, x509params.New())
		})
	}
}

func TestSetHostFlags(t *testing.T) {
	p := x509params.New()

	p.SetHostFlags(x509params.HostFlagNoWildcards | x509params.HostFlagNeverCheckSubject)
	assert.Equal(t, x509params.HostFlagNoWildcards|x509params.HostFlagNeverCheckSubject, p.HostFlags())

	// Unlike SetFlags this is a plain assignment, not an OR.
	p.SetHostFlags(x509params.HostFlagNoPartialWildcards)
	assert.Equal(t, x509params.HostFlagNoPartialWildcards, p.HostFlags())
}

func TestSetEmail(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, p *x509params.VerifyParam)
	}{
		{
			name: "stores the counted value",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.SetEmail([]byte("a@b"), 3))
				assert.Equal(t, "a@b", p.Email())
			},
		},
		{
			name: "nil clears a previously configured email and succeeds",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.SetEmail([]byte("a@b"), 3))
				require.NoError(t, p.SetEmail(nil, 0))
				assert.Empty(t, p.Email())
				assert.False(t, p.Poisoned())
			},
		},
		{
			name: "zero emaillen auto-detects a counted-string length",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				// The NUL scan covers the caller's zero length, so the
				// trailing bytes past the NUL are never inspected.
				require.NoError(t, p.SetEmail([]byte("a@b\x00junk"), 0))
				assert.Equal(t, "a@b", p.Email())
			},
		},
		{
			name: "empty value disables email matching",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				require.NoError(t, p.SetEmail([]byte("a@b"), 3))
				require.NoError(t, p.SetEmail([]byte{}, 0))
				assert.Empty(t, p.Email())
			},
		},
		{
			name: "embedded NUL within the counted length fails and poisons",
			testFunc: func(t *testing.T, p *x509params.VerifyParam) {
				err := p.SetEmail([]byte("a\x00b"), 3)
				assert.ErrorIs(t, err, x509params.ErrEmbeddedNUL)
				assert.True(t, p.Poisoned())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t, x509params.New())
		})
	}
}

func TestSetIP(t *testing.T) {
	fourBytes := []byte{1, 2, 3, 4}
	sixteenBytes := make([]byte, 16)
	sixteenBytes[15] = 1 // ::1

	t.Run("accepts 4 bytes", func(t *testing.T) {
		p := x509params.New()
		require.NoError(t, p.SetIP(fourBytes))
		assert.Equal(t, fourBytes, p.IP())
	})

	t.Run("accepts 16 bytes", func(t *testing.T) {
		p := x509params.New()
		require.NoError(t, p.SetIP(sixteenBytes))
		assert.Equal(t, sixteenBytes, p.IP())
	})

	t.Run("rejects every other length", func(t *testing.T) {
		for _, n := range []int{0, 1, 3, 5, 15, 17} {
			p := x509params.New()
			err := p.SetIP(make([]byte, n))
			assert.ErrorIs(t, err, x509params.ErrInvalidIPLength, "length %d", n)
			assert.True(t, p.Poisoned(), "length %d should poison", n)
		}
	})

	t.Run("rejects nil with no disable-via-empty accommodation", func(t *testing.T) {
		p := x509params.New()
		require.NoError(t, p.SetIP(fourBytes))

		err := p.SetIP(nil)
		assert.ErrorIs(t, err, x509params.ErrInvalidIPLength)
		assert.True(t, p.Poisoned())
		assert.Equal(t, fourBytes, p.IP(), "the stored address survives the failed call")
	})

	t.Run("stores a defensive copy", func(t *testing.T) {
		p := x509params.New()
		in := []byte{10, 0, 0, 1}
		require.NoError(t, p.SetIP(in))
		in[0] = 99
		assert.Equal(t, []byte{10, 0, 0, 1}, p.IP())
	})
}

func TestSetIPFromText(t *testing.T) {
	t.Run("IPv4 literal overwrites the stored bytes", func(t *testing.T) {
		p := x509params.New()
		require.NoError(t, p.SetIP([]byte{9, 9, 9, 9}))
		require.NoError(t, p.SetIPFromText("1.2.3.4"))
		assert.Equal(t, []byte{1, 2, 3, 4}, p.IP())
	})

	t.Run("IPv6 literal stores 16 bytes", func(t *testing.T) {
		p := x509params.New()
		require.NoError(t, p.SetIPFromText("2001:db8::1"))
		assert.Len(t, p.IP(), 16)
	})

	t.Run("parse failure does not poison", func(t *testing.T) {
		p := x509params.New()
		err := p.SetIPFromText("not-an-address")
		assert.ErrorIs(t, err, x509params.ErrInvalidIPText)
		assert.False(t, p.Poisoned(), "the parser fails before the store is touched")
	})

	t.Run("zoned literals are rejected", func(t *testing.T) {
		p := x509params.New()
		err := p.SetIPFromText("fe80::1%eth0")
		assert.ErrorIs(t, err, x509params.ErrInvalidIPText)
	})
}

func TestPoisonIsSticky(t *testing.T) {
	p := x509params.New()

	require.Error(t, p.SetIP([]byte{1, 2, 3}))
	require.True(t, p.Poisoned())

	// Later successful setters do not clear the marker.
	require.NoError(t, p.SetHost([]byte("ok.example"), 0))
	require.NoError(t, p.SetEmail([]byte("a@b"), 0))
	require.NoError(t, p.SetIP([]byte{1, 2, 3, 4}))
	assert.True(t, p.Poisoned())
}
