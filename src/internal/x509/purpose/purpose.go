// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509purpose

import "errors"

// ErrUnknownPurpose indicates that a purpose identifier is not registered.
var ErrUnknownPurpose = errors.New("x509purpose: unknown purpose identifier")

// Registered purpose identifiers. The numeric values are stable and are
// what verification parameters carry in their purpose field.
const (
	SSLClient     = 1
	SSLServer     = 2
	NSSSLServer   = 3
	SMIMESign     = 4
	SMIMEEncrypt  = 5
	CRLSign       = 6
	Any           = 7
	OCSPHelper    = 8
	TimestampSign = 9
)

// Purpose describes a registered certificate purpose.
type Purpose struct {
	ID        int
	Name      string
	ShortName string
}

var table = []Purpose{
	{SSLClient, "SSL client", "sslclient"},
	{SSLServer, "SSL server", "sslserver"},
	{NSSSLServer, "Netscape SSL server", "nssslserver"},
	{SMIMESign, "S/MIME signing", "smimesign"},
	{SMIMEEncrypt, "S/MIME encryption", "smimeencrypt"},
	{CRLSign, "CRL signing", "crlsign"},
	{Any, "Any Purpose", "any"},
	{OCSPHelper, "OCSP helper", "ocsphelper"},
	{TimestampSign, "Time Stamp signing", "timestampsign"},
}

// GetByID returns the registered purpose with the given identifier,
// or nil if no such purpose exists.
func GetByID(id int) *Purpose {
	for i := range table {
		if table[i].ID == id {
			return &table[i]
		}
	}
	return nil
}

// GetByShortName returns the registered purpose with the given short
// name, or nil if no such purpose exists.
func GetByShortName(name string) *Purpose {
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
		return ErrUnknownPurpose
	}
	*dst = id
	return nil
}
