// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package storage provides document storage backends for generated reports.
package storage

import (
	"context"
	"errors"
	"io"
)

//go:generate mockgen --destination=storage.mock.go --package=storage --copyright_file=../../COPYRIGHT . DocumentStore

var (
	// ErrDocumentNotFound indicates the document does not exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentExists indicates a document already occupies the target path.
	ErrDocumentExists = errors.New("document already exists")
	// ErrInvalidFilename indicates the filename contains path separators or
	// traversal sequences.
	ErrInvalidFilename = errors.New("invalid document filename")
)

// DocumentStore is the provider-agnostic port for report document storage.
// This interface can be implemented by any storage backend.
type DocumentStore interface {
	// Create allocates the document at filename and returns an exclusive
	// write sink plus the storage path the document will live at. Closing
	// the sink flushes it; a nil Close error means the bytes are durable as
	// far as the backend can guarantee.
	Create(ctx context.Context, filename string) (io.WriteCloser, string, error)

	// Open returns a reader over a stored document, or ErrDocumentNotFound.
	Open(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Remove deletes a stored document. Removing a document that is already
	// absent succeeds.
	Remove(ctx context.Context, storagePath string) error

	// Exists reports whether a document is present at storagePath.
	Exists(ctx context.Context, storagePath string) (bool, error)

	// HealthCheck reports whether the backend can currently serve
	// requests. It does not touch any stored document.
	HealthCheck(ctx context.Context) error
}
