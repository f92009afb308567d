// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package storage

// Config holds configuration for all storage providers.
type Config struct {
	// Storage provider selection: "local", "s3", or "" (defaults to local).
	Provider string

	// Local filesystem configuration.
	LocalReportsRoot string

	// S3 configuration. Works with AWS S3, MinIO, SeaweedFS S3 and other
	// S3-compatible services.
	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Endpoint        string // Optional: for MinIO, LocalStack, etc.
	S3ForcePathStyle  bool   // Required for SeaweedFS/MinIO.
}
