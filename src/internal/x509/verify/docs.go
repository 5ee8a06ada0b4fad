// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509verify applies a verification parameter set to
// standard-library certificate chain validation. It translates the
// configured purpose, check time, and trust material into
// [crypto/x509.VerifyOptions] and enforces the depth, identity, and
// policy criteria the standard library does not model directly.
package x509verify
