// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509trust_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	x509trust "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/trust"
)

func TestGetByID(t *testing.T) {
	tr := x509trust.GetByID(x509trust.Email)
	require.NotNil(t, tr)
	assert.Equal(t, "smime", tr.ShortName)

	assert.Nil(t, x509trust.GetByID(0))
	assert.Nil(t, x509trust.GetByID(99))
}

func TestGetByShortName(t *testing.T) {
	tr := x509trust.GetByShortName("ssl_client")
	require.NotNil(t, tr)
	assert.Equal(t, x509trust.SSLClient, tr.ID)

	assert.Nil(t, x509trust.GetByShortName("bogus"))
}

func TestSet(t *testing.T) {
	var dst int

	require.NoError(t, x509trust.Set(&dst, x509trust.TSA))
	assert.Equal(t, x509trust.TSA, dst)

	err := x509trust.Set(&dst, 0)
	assert.ErrorIs(t, err, x509trust.ErrUnknownTrust)
	assert.Equal(t, x509trust.TSA, dst, "a rejected identifier leaves dst untouched")
}
