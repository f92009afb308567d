// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package model

import (
	"strings"
	"time"
)

// CreateReportInput is the request payload accepted by the report generation
// endpoint.
//
// swagger:model CreateReportInput
type CreateReportInput struct {
	ReportType string         `json:"report_type" validate:"omitempty,oneof=product_details transparency certification custom" example:"transparency"`
	Metadata   map[string]any `json:"metadata" validate:"omitempty"`
}

// GeneratedReport is the response payload returned after a report has been
// written to storage and registered.
//
// swagger:model GeneratedReport
type GeneratedReport struct {
	ReportID   string `json:"reportId" example:"0194f168-bd27-7b4c-b9a9-5d2f3a1c8e11"`
	Filename   string `json:"filename" example:"Organic_Honey_transparency_4f1c2d.pdf"`
	ReportURL  string `json:"reportUrl" example:"/public/reports/Organic_Honey_transparency_4f1c2d.pdf"`
	ReportType string `json:"reportType" example:"transparency"`
}

// ReportSummary is the denormalized read model returned by all report list
// and lookup operations. ProductName and CreatorName are resolved by the
// store through lookups against the product and user collections.
//
// swagger:model ReportSummary
type ReportSummary struct {
	ID          string         `json:"id"`
	ProductID   string         `json:"productId"`
	ProductName string         `json:"productName,omitempty"`
	Filename    string         `json:"filename"`
	StoragePath string         `json:"-"`
	CreatedBy   string         `json:"createdBy"`
	CreatorName string         `json:"creatorName,omitempty"`
	ReportType  string         `json:"reportType"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CustomSection is one caller-supplied section of a custom report.
type CustomSection struct {
	Title   string
	Content string
}

// CustomSectionsFromMetadata extracts the recognized custom-report shape
// { "sections": [ { "title": ..., "content": ... }, ... ] } from free-form
// metadata. Entries missing either field are skipped. The boolean result is
// false only when the sections key is absent or not an array, in which case
// the caller falls back to the default rendering. A present array whose
// entries are all skipped is still well-formed: it yields an empty result
// with true, not the fallback.
func CustomSectionsFromMetadata(metadata map[string]any) ([]CustomSection, bool) {
	if metadata == nil {
		return nil, false
	}

	raw, ok := metadata["sections"].([]any)
	if !ok {
		return nil, false
	}

	sections := make([]CustomSection, 0, len(raw))

	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		title, _ := m["title"].(string)
		content, _ := m["content"].(string)

		if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
			continue
		}

		sections = append(sections, CustomSection{Title: title, Content: content})
	}

	return sections, true
}
