// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package http

import (
	"strconv"
	"strings"

	pkg "github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/constant"
)

// QueryHeader entity from query parameter from get apis
type QueryHeader struct {
	ReportType string
	Limit      int
	Page       int
	SortOrder  string
}

// Pagination entity from query parameter from get apis
type Pagination struct {
	Limit     int
	Page      int
	SortOrder string
}

func (qh *QueryHeader) ToOffsetPagination() Pagination {
	return Pagination{
		Limit:     qh.Limit,
		Page:      qh.Page,
		SortOrder: qh.SortOrder,
	}
}

// normalizeParams rewrites legacy camelCase query parameter keys to their
// snake_case equivalents so the parsing loop only needs to match one format.
// When both formats are present for the same parameter, snake_case takes precedence.
func normalizeParams(params map[string]string) map[string]string {
	aliases := map[string]string{
		"sortOrder":  "sort_order",
		"reportType": "report_type",
	}

	normalized := make(map[string]string, len(params))

	for k, v := range params {
		normalized[k] = v
	}

	for camel, snake := range aliases {
		if _, hasSnake := normalized[snake]; hasSnake {
			delete(normalized, camel)
			continue
		}

		if val, hasCamel := normalized[camel]; hasCamel {
			normalized[snake] = val
			delete(normalized, camel)
		}
	}

	return normalized
}

// parsePositiveInt parses a string as an integer and validates that the result
// is at least 1. It returns a validation error referencing paramName on failure.
func parsePositiveInt(value, paramName string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, pkg.ValidateBusinessError(constant.ErrInvalidQueryParameter, "", paramName)
	}

	if parsed < 1 {
		return 0, pkg.ValidateBusinessError(constant.ErrInvalidQueryParameter, "", paramName)
	}

	return parsed, nil
}

// ValidateParameters validate and return struct of default parameters.
// It accepts both snake_case (preferred) and camelCase (deprecated) query parameter names.
func ValidateParameters(params map[string]string) (*QueryHeader, error) {
	params = normalizeParams(params)

	var (
		reportType string
		limit      = constant.DefaultPaginationLimit
		page       = constant.DefaultPaginationPage
		sortOrder  = "desc"
	)

	for key, value := range params {
		switch key {
		case "report_type":
			if !pkg.IsValidReportVariant(value) {
				return nil, pkg.ValidateBusinessError(constant.ErrInvalidQueryParameter, "", key)
			}

			reportType = value
		case "limit":
			parsed, err := parsePositiveInt(value, key)
			if err != nil {
				return nil, err
			}

			if parsed > constant.MaxPaginationLimit {
				return nil, pkg.ValidateBusinessError(constant.ErrPaginationLimitExceeded, "", constant.MaxPaginationLimit)
			}

			limit = parsed
		case "page":
			parsed, err := parsePositiveInt(value, key)
			if err != nil {
				return nil, err
			}

			page = parsed
		case "sort_order":
			normalized := strings.ToLower(value)
			if normalized != "asc" && normalized != "desc" {
				return nil, pkg.ValidateBusinessError(constant.ErrInvalidSortOrder, "")
			}

			sortOrder = normalized
		}
	}

	return &QueryHeader{
		ReportType: reportType,
		Limit:      limit,
		Page:       page,
		SortOrder:  sortOrder,
	}, nil
}
