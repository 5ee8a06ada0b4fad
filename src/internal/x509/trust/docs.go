// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509trust registers the trust-anchor interpretations a
// verification parameter set may select. It validates trust identifiers
// on behalf of the parameter setters so that only registered settings
// can be configured.
package x509trust
