// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509trust

import "errors"

// ErrUnknownTrust indicates that a trust identifier is not registered.
var ErrUnknownTrust = errors.New("x509trust: unknown trust identifier")

// Registered trust identifiers. The numeric values are stable and are
// what verification parameters carry in their trust field.
const (
	Compat      = 1
	SSLClient   = 2
	SSLServer   = 3
	Email       = 4
	ObjectSign  = 5
	OCSPSign    = 6
	OCSPRequest = 7
	TSA         = 8
)

// Trust describes a registered trust-anchor interpretation.
type Trust struct {
	ID        int
	Name      string
	ShortName string
}

var table = []Trust{
	{Compat, "compatible", "compat"},
	{SSLClient, "SSL Client", "ssl_client"},
	{SSLServer, "SSL Server", "ssl_server"},
	{Email, "S/MIME email", "smime"},
	{ObjectSign, "Object Signer", "objsign"},
	{OCSPSign, "OCSP responder", "ocsp_sign"},
	{OCSPRequest, "OCSP request", "ocsp_request"},
	{TSA, "TSA server", "tsa"},
}

// GetByID returns the registered trust setting with the given
// identifier, or nil if no such setting exists.
func GetByID(id int) *Trust {
	for i := range table {
		if table[i].ID == id {
			return &table[i]
		}
	}
	return nil
}

// GetByShortName returns the registered trust setting with the given
// short name, or nil if no such setting exists.
func GetByShortName(name string) *Trust {
	for i := range table {
		if table[i].ShortName == name {
			return &table[i]
		}
	}
	return nil
}

// Set validates id against the registry and stores it in dst.
// dst is left untouched when id is unknown.
func Set(dst *int, id int) error {
	if GetByID(id) == nil {
		return ErrUnknownTrust
	}
	*dst = id
	return nil
}
