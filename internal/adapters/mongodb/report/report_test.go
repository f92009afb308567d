// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package report

import (
	"testing"
	"time"

	"github.com/clearlabel/transparency-portal/pkg/constant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	t.Parallel()

	productID := uuid.New()
	creatorID := uuid.New()

	tests := []struct {
		name        string
		productID   uuid.UUID
		createdBy   uuid.UUID
		filename    string
		storagePath string
		reportType  string
		expectErr   bool
	}{
		{
			name:        "Success - valid report",
			productID:   productID,
			createdBy:   creatorID,
			filename:    "Organic_Honey_transparency_abc.pdf",
			storagePath: "/data/reports/Organic_Honey_transparency_abc.pdf",
			reportType:  constant.VariantTransparency,
		},
		{
			name:        "Error - nil product id",
			productID:   uuid.Nil,
			createdBy:   creatorID,
			filename:    "f.pdf",
			storagePath: "/data/reports/f.pdf",
			reportType:  constant.VariantTransparency,
			expectErr:   true,
		},
		{
			name:        "Error - nil creator id",
			productID:   productID,
			createdBy:   uuid.Nil,
			filename:    "f.pdf",
			storagePath: "/data/reports/f.pdf",
			reportType:  constant.VariantTransparency,
			expectErr:   true,
		},
		{
			name:        "Error - empty filename",
			productID:   productID,
			createdBy:   creatorID,
			filename:    "",
			storagePath: "/data/reports/f.pdf",
			reportType:  constant.VariantTransparency,
			expectErr:   true,
		},
		{
			name:       "Error - empty storage path",
			productID:  productID,
			createdBy:  creatorID,
			filename:   "f.pdf",
			reportType: constant.VariantTransparency,
			expectErr:  true,
		},
		{
			name:        "Error - empty report type",
			productID:   productID,
			createdBy:   creatorID,
			filename:    "f.pdf",
			storagePath: "/data/reports/f.pdf",
			expectErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record, err := NewReport(tt.productID, tt.createdBy, tt.filename, tt.storagePath, tt.reportType, nil)

			if tt.expectErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, constant.ErrMissingRequiredFields)
				assert.Nil(t, record)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, record.ID)
			assert.Equal(t, tt.productID, record.ProductID)
			assert.Equal(t, tt.createdBy, record.CreatedBy)
			assert.False(t, record.CreatedAt.IsZero())
		})
	}
}

func TestReportModelConversionRoundTrip(t *testing.T) {
	t.Parallel()

	record, err := NewReport(uuid.New(), uuid.New(), "f.pdf", "/data/reports/f.pdf", constant.VariantCustom, map[string]any{"sections": []any{}})
	require.NoError(t, err)

	var doc ReportMongoDBModel
	require.NoError(t, doc.FromEntity(record))

	doc.ProductName = "Organic Honey"
	doc.CreatorName = "Ada"

	entity := doc.ToEntity()

	assert.Equal(t, record.ID, entity.ID)
	assert.Equal(t, record.ProductID, entity.ProductID)
	assert.Equal(t, record.CreatedBy, entity.CreatedBy)
	assert.Equal(t, record.Filename, entity.Filename)
	assert.Equal(t, record.StoragePath, entity.StoragePath)
	assert.Equal(t, record.ReportType, entity.ReportType)
	assert.Equal(t, record.Metadata, entity.Metadata)
	assert.Equal(t, "Organic Honey", entity.ProductName)
	assert.Equal(t, "Ada", entity.CreatorName)

	summary := entity.ToSummary()
	assert.Equal(t, record.ID.String(), summary.ID)
	assert.Equal(t, "Organic Honey", summary.ProductName)
	assert.Equal(t, record.StoragePath, summary.StoragePath)
}

func TestFromEntityRejectsIncompleteRecords(t *testing.T) {
	t.Parallel()

	var doc ReportMongoDBModel

	err := doc.FromEntity(&Report{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		ReportType: constant.VariantTransparency,
		CreatedAt:  time.Now(),
	})

	assert.ErrorIs(t, err, constant.ErrMissingRequiredFields)
}
