// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// x509-verify-params is a command-line tool for building X.509
// verification parameter sets from named profiles and verifying
// certificates against them.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-verify-params/cmd/x509-verify-params@latest
//
// # Usage
//
//	x509-verify-params profiles [FLAGS]
//	x509-verify-params verify CERT_FILE [FLAGS]
//
// # Flags
//
//	-c, --config   Profile configuration file (JSON or YAML)
//	-p, --profile  Verification profile to start from (default: "default")
//	    --host     Expected DNS name (repeatable)
//	    --email    Expected email identity
//	    --ip       Expected IP identity
//	    --depth    Maximum chain depth
//	    --time     Verification time (RFC 3339, default: now)
//	    --policy   Required certificate policy OID (repeatable)
//	    --flag     Verify flag to turn on (repeatable)
//	    --strict   Shorthand for --flag x509_strict
//	-b, --bundle   Untrusted intermediate bundle file
//	-r, --roots    Trusted root certificates file (default: system roots)
//
// # Examples
//
// List the available profiles, built-in and configured:
//
//	x509-verify-params profiles -c profiles.yaml
//
// Verify a server certificate for a pinned host name:
//
//	x509-verify-params verify cert.pem -r roots.pem -p ssl_server \
//	  --host www.example.com
//
// Verify an S/MIME signing certificate at a pinned point in time:
//
//	x509-verify-params verify signer.pem -p smime_sign \
//	  --email signer@example.com --time 2026-01-02T15:04:05Z
package main
