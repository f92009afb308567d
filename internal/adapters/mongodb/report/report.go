// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package report

import (
	"fmt"
	"time"

	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/model"

	"github.com/google/uuid"
)

// Report represents the entity model for a generated report record.
type Report struct {
	ID          uuid.UUID      `json:"id" example:"00000000-0000-0000-0000-000000000000"`
	ProductID   uuid.UUID      `json:"productId" example:"00000000-0000-0000-0000-000000000000"`
	Filename    string         `json:"filename" example:"Organic_Honey_transparency_4f1c2d.pdf"`
	StoragePath string         `json:"-"`
	CreatedBy   uuid.UUID      `json:"createdBy" example:"00000000-0000-0000-0000-000000000000"`
	ReportType  string         `json:"reportType" example:"transparency"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`

	// ProductName and CreatorName are resolved by lookups on reads and are
	// never persisted on the report document itself.
	ProductName string `json:"productName,omitempty"`
	CreatorName string `json:"creatorName,omitempty"`
}

// NewReport creates a new Report entity with invariant validation.
// A record must always reference a product, a creator and a fully written
// document, so those fields are mandatory at construction time.
func NewReport(
	productID, createdBy uuid.UUID,
	filename, storagePath, reportType string,
	metadata map[string]any,
) (*Report, error) {
	if productID == uuid.Nil {
		return nil, fmt.Errorf("report productID must not be nil: %w", constant.ErrMissingRequiredFields)
	}

	if createdBy == uuid.Nil {
		return nil, fmt.Errorf("report createdBy must not be nil: %w", constant.ErrMissingRequiredFields)
	}

	if filename == "" {
		return nil, fmt.Errorf("report filename must not be empty: %w", constant.ErrMissingRequiredFields)
	}

	if storagePath == "" {
		return nil, fmt.Errorf("report storagePath must not be empty: %w", constant.ErrMissingRequiredFields)
	}

	if reportType == "" {
		return nil, fmt.Errorf("report reportType must not be empty: %w", constant.ErrMissingRequiredFields)
	}

	now := time.Now()

	return &Report{
		ID:          uuid.New(),
		ProductID:   productID,
		CreatedBy:   createdBy,
		Filename:    filename,
		StoragePath: storagePath,
		ReportType:  reportType,
		Metadata:    metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ReconstructReport creates a Report from persisted data without validation.
// Used only for database hydration where data integrity is already ensured.
func ReconstructReport(
	id, productID, createdBy uuid.UUID,
	filename, storagePath, reportType string,
	metadata map[string]any,
	createdAt, updatedAt time.Time,
	productName, creatorName string,
) *Report {
	return &Report{
		ID:          id,
		ProductID:   productID,
		CreatedBy:   createdBy,
		Filename:    filename,
		StoragePath: storagePath,
		ReportType:  reportType,
		Metadata:    metadata,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		ProductName: productName,
		CreatorName: creatorName,
	}
}

// ToSummary converts the entity into the read model returned by the API.
func (r *Report) ToSummary() *model.ReportSummary {
	return &model.ReportSummary{
		ID:          r.ID.String(),
		ProductID:   r.ProductID.String(),
		ProductName: r.ProductName,
		Filename:    r.Filename,
		StoragePath: r.StoragePath,
		CreatedBy:   r.CreatedBy.String(),
		CreatorName: r.CreatorName,
		ReportType:  r.ReportType,
		Metadata:    r.Metadata,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ReportMongoDBModel represents the MongoDB model for a report.
type ReportMongoDBModel struct {
	ID          uuid.UUID      `bson:"_id"`
	ProductID   uuid.UUID      `bson:"product_id"`
	Filename    string         `bson:"filename"`
	StoragePath string         `bson:"storage_path"`
	CreatedBy   uuid.UUID      `bson:"created_by"`
	ReportType  string         `bson:"report_type"`
	Metadata    map[string]any `bson:"metadata"`
	CreatedAt   time.Time      `bson:"created_at"`
	UpdatedAt   time.Time      `bson:"updated_at"`

	// Populated by the $lookup stages on read paths only.
	ProductName string `bson:"product_name,omitempty"`
	CreatorName string `bson:"creator_name,omitempty"`
}

// ToEntity converts ReportMongoDBModel to Report using ReconstructReport.
func (rm *ReportMongoDBModel) ToEntity() *Report {
	return ReconstructReport(
		rm.ID, rm.ProductID, rm.CreatedBy,
		rm.Filename, rm.StoragePath, rm.ReportType,
		rm.Metadata,
		rm.CreatedAt, rm.UpdatedAt,
		rm.ProductName, rm.CreatorName,
	)
}

// FromEntity converts Report to ReportMongoDBModel, enforcing the required
// persistence fields.
func (rm *ReportMongoDBModel) FromEntity(r *Report) error {
	if r.ProductID == uuid.Nil || r.CreatedBy == uuid.Nil || r.Filename == "" || r.StoragePath == "" {
		return constant.ErrMissingRequiredFields
	}

	dateNow := time.Now()
	rm.ID = r.ID
	rm.ProductID = r.ProductID
	rm.Filename = r.Filename
	rm.StoragePath = r.StoragePath
	rm.CreatedBy = r.CreatedBy
	rm.ReportType = r.ReportType
	rm.Metadata = r.Metadata
	rm.CreatedAt = dateNow
	rm.UpdatedAt = dateNow

	return nil
}
