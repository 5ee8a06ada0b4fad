// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509purpose registers the certificate purposes a verification
// parameter set may require (TLS client/server, S/MIME, CRL signing, and
// friends). It validates purpose identifiers on behalf of the parameter
// setters so that only registered purposes can be configured.
package x509purpose
