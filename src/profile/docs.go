// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package profile loads named verification-parameter profiles from JSON
// or YAML configuration files and builds them into parameter sets,
// layered on top of the built-in presets. Documents are validated
// against a JSON schema before any field is interpreted.
package profile
