// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the X.509
// verification parameter toolkit. It implements a Cobra-based CLI with
// commands for listing verification profiles and verifying certificates
// against a profile, with overrides for host, email, IP, depth, policy,
// and check-time criteria. The package handles file I/O, context
// cancellation, and integrates with the logger package for output.
package cli
