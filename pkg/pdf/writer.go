// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pdf

import (
	"context"
	"fmt"
	"io"

	"github.com/clearlabel/transparency-portal/pkg/model"
	"github.com/clearlabel/transparency-portal/pkg/pongo"

	"github.com/LerianStudio/lib-commons/v2/commons/log"
)

// Writer streams a rendered section sequence onto a byte sink as a finished
// document.
//
//go:generate mockgen --destination=writer.mock.go --package=pdf --copyright_file=../../COPYRIGHT . Writer
type Writer interface {
	WriteDocument(ctx context.Context, sections []model.Section, sink io.WriteCloser, logger log.Logger) error
}

// DocumentWriter serializes an ordered section sequence into a page-formatted
// PDF and streams it onto a byte sink. The sink is owned exclusively by one
// WriteDocument call for its duration and is always closed before returning,
// so a nil error means the document is fully flushed and durable as far as
// the sink can guarantee.
type DocumentWriter struct {
	composer  *pongo.DocumentComposer
	generator Generator
}

// Compile-time interface satisfaction check.
var _ Writer = (*DocumentWriter)(nil)

// NewDocumentWriter creates a DocumentWriter on top of the given PDF
// generator.
func NewDocumentWriter(generator Generator) *DocumentWriter {
	return &DocumentWriter{
		composer:  pongo.NewDocumentComposer(),
		generator: generator,
	}
}

// WriteDocument renders the sections to PDF bytes and writes them to the
// sink. Any failure, including a short or unflushed write, is returned as an
// error; the caller decides what to do with the partially written sink
// target.
func (w *DocumentWriter) WriteDocument(ctx context.Context, sections []model.Section, sink io.WriteCloser, logger log.Logger) error {
	html, err := w.composer.Compose(ctx, sections, logger)
	if err != nil {
		_ = sink.Close()

		return fmt.Errorf("failed to compose document: %w", err)
	}

	pdfBuf, err := w.generator.Generate(ctx, html)
	if err != nil {
		_ = sink.Close()

		return fmt.Errorf("failed to generate document: %w", err)
	}

	n, err := sink.Write(pdfBuf)
	if err != nil {
		_ = sink.Close()

		return fmt.Errorf("failed to write document: %w", err)
	}

	if n != len(pdfBuf) {
		_ = sink.Close()

		return fmt.Errorf("short write: wrote %d of %d bytes", n, len(pdfBuf))
	}

	// Close flushes; a close error means the bytes may not be durable.
	if err := sink.Close(); err != nil {
		return fmt.Errorf("failed to flush document: %w", err)
	}

	return nil
}
