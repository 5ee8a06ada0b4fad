// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509params

import (
	x509purpose "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/purpose"
	x509trust "github.com/H0llyW00dzZ/x509-verify-params/src/internal/x509/trust"
)

// Built-in immutable parameter presets for common use cases. They are
// never mutated after initialization and are therefore safe for
// unsynchronized concurrent reads.
var (
	defaultParam = VerifyParam{
		flags: FlagTrustedFirst,
		depth: 100,
	}
	smimeSignParam = VerifyParam{
		purpose: x509purpose.SMIMESign,
		trust:   x509trust.Email,
		depth:   -1,
	}
	sslClientParam = VerifyParam{
		purpose: x509purpose.SSLClient,
		trust:   x509trust.SSLClient,
		depth:   -1,
	}
	sslServerParam = VerifyParam{
		purpose: x509purpose.SSLServer,
		trust:   x509trust.SSLServer,
		depth:   -1,
	}
)

// ProfileNames lists the names Lookup recognizes, in display order.
func ProfileNames() []string {
	return []string{"default", "pkcs7", "smime_sign", "ssl_client", "ssl_server"}
}

// Lookup returns the built-in parameter preset with the given name, or
// nil when the name is unknown. The returned value is shared and
// immutable: callers must copy it into an owned parameter set via
// Inherit or Assign before mutating anything.
func Lookup(name string) *VerifyParam {
	switch name {
	case "default":
		return &defaultParam
	case "pkcs7", "smime_sign":
		// PKCS#7 and S/MIME signing use the same defaults.
		return &smimeSignParam
	case "ssl_client":
		return &sslClientParam
	case "ssl_server":
		return &sslServerParam
	}
	return nil
}
