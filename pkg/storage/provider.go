// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package storage

import (
	"context"
	"fmt"

	pkg "github.com/clearlabel/transparency-portal/pkg"

	"github.com/LerianStudio/lib-commons/v2/commons/log"
)

// NewDocumentStore creates a document store based on the configured storage
// provider. Returns the generic DocumentStore interface that works with any
// storage backend.
func NewDocumentStore(ctx context.Context, config *Config, logger log.Logger) (DocumentStore, error) {
	// Default to the local filesystem if no provider specified.
	if config.Provider == "" || config.Provider == "local" {
		return NewLocalStore(config.LocalReportsRoot, logger)
	}

	if config.Provider == "s3" {
		return NewS3Store(ctx, config, pkg.NewCircuitBreakerManager(logger))
	}

	return nil, fmt.Errorf("unsupported storage provider: %s", config.Provider)
}
