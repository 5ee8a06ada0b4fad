// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc provides pooled byte buffers for file and stream
// ingestion, keeping allocation overhead low when the CLI reads
// certificates and profile configuration from disk.
package gc
