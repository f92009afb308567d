// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pdf

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/clearlabel/transparency-portal/pkg/model"

	"github.com/LerianStudio/lib-commons/v2/commons/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// fakeSink records writes and close calls, optionally failing either.
type fakeSink struct {
	buf      bytes.Buffer
	writeErr error
	closeErr error
	closed   bool
	short    bool
}

func (s *fakeSink) Write(p []byte) (int, error) {
	if s.writeErr != nil {
		return 0, s.writeErr
	}

	if s.short {
		n := len(p) / 2
		s.buf.Write(p[:n])

		return n, nil
	}

	return s.buf.Write(p)
}

func (s *fakeSink) Close() error {
	s.closed = true
	return s.closeErr
}

var writerSectionTitleRe = regexp.MustCompile(`<h2 class="section-title">([^<]*)</h2>`)

func TestWriteDocumentRoundTripPreservesTitleOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sections := []model.Section{
		{Title: "Product Transparency Portal", Kind: model.SectionHeader, Body: "Organic Honey"},
		{Title: "Description", Kind: model.SectionText, Body: "Raw honey."},
		{Title: "Ingredients", Kind: model.SectionText, Body: "Honey."},
		{Title: "Certifications", Kind: model.SectionList, Items: []string{"Organic"}},
		{Kind: model.SectionFooter, Body: "footer"},
	}

	var capturedHTML string

	mockGenerator := NewMockGenerator(ctrl)
	mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, html string) ([]byte, error) {
			capturedHTML = html
			return []byte("%PDF-1.4 fake body"), nil
		})

	sink := &fakeSink{}
	writer := NewDocumentWriter(mockGenerator)

	err := writer.WriteDocument(context.Background(), sections, sink, &log.NoneLogger{})
	require.NoError(t, err)

	matches := writerSectionTitleRe.FindAllStringSubmatch(capturedHTML, -1)

	titles := make([]string, 0, len(matches))
	for _, m := range matches {
		titles = append(titles, m[1])
	}

	assert.Equal(t, []string{"Description", "Ingredients", "Certifications"}, titles)
	assert.Equal(t, "%PDF-1.4 fake body", sink.buf.String())
	assert.True(t, sink.closed, "sink must be closed on success")
}

func TestWriteDocumentGeneratorFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := NewMockGenerator(ctrl)
	mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("chrome crashed"))

	sink := &fakeSink{}
	writer := NewDocumentWriter(mockGenerator)

	err := writer.WriteDocument(context.Background(), []model.Section{{Title: "X", Kind: model.SectionText, Body: "y"}}, sink, &log.NoneLogger{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate document")
	assert.True(t, sink.closed, "sink must be closed on failure")
	assert.Zero(t, sink.buf.Len(), "nothing may be written after a generation failure")
}

func TestWriteDocumentWriteFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := NewMockGenerator(ctrl)
	mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return([]byte("%PDF-1.4"), nil)

	sink := &fakeSink{writeErr: errors.New("disk full")}
	writer := NewDocumentWriter(mockGenerator)

	err := writer.WriteDocument(context.Background(), nil, sink, &log.NoneLogger{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write document")
	assert.True(t, sink.closed)
}

func TestWriteDocumentShortWrite(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := NewMockGenerator(ctrl)
	mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return([]byte("%PDF-1.4 body"), nil)

	sink := &fakeSink{short: true}
	writer := NewDocumentWriter(mockGenerator)

	err := writer.WriteDocument(context.Background(), nil, sink, &log.NoneLogger{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "short write")
	assert.True(t, sink.closed)
}

func TestWriteDocumentFlushFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGenerator := NewMockGenerator(ctrl)
	mockGenerator.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		Return([]byte("%PDF-1.4"), nil)

	sink := &fakeSink{closeErr: errors.New("fsync failed")}
	writer := NewDocumentWriter(mockGenerator)

	err := writer.WriteDocument(context.Background(), nil, sink, &log.NoneLogger{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to flush document", "an unflushed write is a failure, not partial success")
}
