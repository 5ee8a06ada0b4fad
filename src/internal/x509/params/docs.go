// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509params owns the verification-parameter object used to
// configure [X.509] certificate chain validation: which purpose and
// trust model apply, how deep the chain may go, what time to validate
// against, which certificate policies are required, and how the
// presented certificate's identity (host name, email, IP address) must
// match caller-supplied expectations.
//
// Parameter sets are built in layers and combined field by field with
// [VerifyParam.Inherit], governed by a separate bitset of inheritance
// mode flags. [Lookup] supplies immutable presets for common use cases
// (TLS client/server, S/MIME) that callers copy into owned sets.
//
// [X.509]: https://grokipedia.com/page/X.509
package x509params
