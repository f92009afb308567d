// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/LerianStudio/lib-commons/v2/commons/log"
)

// Compile-time interface satisfaction check.
var _ DocumentStore = (*LocalStore)(nil)

// LocalStore keeps report documents on the local filesystem beneath a single
// configured root directory.
type LocalStore struct {
	root   string
	logger log.Logger
}

// NewLocalStore creates the reports root directory if needed and returns a
// store rooted at it.
func NewLocalStore(root string, logger log.Logger) (*LocalStore, error) {
	if root == "" {
		return nil, errors.New("reports root directory is required")
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating reports root %s: %w", root, err)
	}

	return &LocalStore{root: root, logger: logger}, nil
}

// syncWriteCloser fsyncs the file before closing so a nil Close error means
// the bytes reached the disk.
type syncWriteCloser struct {
	f *os.File
}

func (s *syncWriteCloser) Write(p []byte) (int, error) {
	return s.f.Write(p)
}

func (s *syncWriteCloser) Close() error {
	if err := s.f.Sync(); err != nil {
		_ = s.f.Close()

		return fmt.Errorf("syncing document: %w", err)
	}

	return s.f.Close()
}

// Create opens the document for exclusive write. An already existing file at
// the target path fails with ErrDocumentExists rather than being truncated.
func (l *LocalStore) Create(_ context.Context, filename string) (io.WriteCloser, string, error) {
	if err := validateFilename(filename); err != nil {
		return nil, "", err
	}

	storagePath := filepath.Join(l.root, filename)

	f, err := os.OpenFile(storagePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, "", ErrDocumentExists
		}

		l.logger.Errorf("Failed to create document %s: %v", storagePath, err)

		return nil, "", fmt.Errorf("creating document: %w", err)
	}

	return &syncWriteCloser{f: f}, storagePath, nil
}

// Open returns a reader over the stored document.
func (l *LocalStore) Open(_ context.Context, storagePath string) (io.ReadCloser, error) {
	if err := l.validateStoragePath(storagePath); err != nil {
		return nil, err
	}

	f, err := os.Open(storagePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrDocumentNotFound
		}

		return nil, fmt.Errorf("opening document: %w", err)
	}

	return f, nil
}

// Remove deletes the document. A document that is already absent is not an
// error; the index record, not the file, is authoritative.
func (l *LocalStore) Remove(_ context.Context, storagePath string) error {
	if err := l.validateStoragePath(storagePath); err != nil {
		return err
	}

	if err := os.Remove(storagePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		l.logger.Errorf("Failed to remove document %s: %v", storagePath, err)

		return fmt.Errorf("removing document: %w", err)
	}

	return nil
}

// Exists reports whether the document is present.
func (l *LocalStore) Exists(_ context.Context, storagePath string) (bool, error) {
	if err := l.validateStoragePath(storagePath); err != nil {
		return false, err
	}

	if _, err := os.Stat(storagePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("checking document: %w", err)
	}

	return true, nil
}

// HealthCheck verifies the reports root is still a reachable directory.
func (l *LocalStore) HealthCheck(_ context.Context) error {
	info, err := os.Stat(l.root)
	if err != nil {
		return fmt.Errorf("checking reports root: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("reports root %s is not a directory", l.root)
	}

	return nil
}

// validateFilename rejects names that could escape the reports root.
func validateFilename(filename string) error {
	if filename == "" ||
		strings.ContainsAny(filename, `/\`) ||
		strings.Contains(filename, "..") ||
		filename != filepath.Base(filename) {
		return ErrInvalidFilename
	}

	return nil
}

// validateStoragePath rejects paths that resolve outside the reports root.
func (l *LocalStore) validateStoragePath(storagePath string) error {
	absRoot, err := filepath.Abs(l.root)
	if err != nil {
		return fmt.Errorf("resolving reports root: %w", err)
	}

	absPath, err := filepath.Abs(storagePath)
	if err != nil {
		return ErrInvalidFilename
	}

	if absPath == absRoot || !strings.HasPrefix(absPath, absRoot+string(filepath.Separator)) {
		return ErrInvalidFilename
	}

	return nil
}
