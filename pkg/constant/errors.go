// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package constant

import (
	"errors"
)

// List of errors that can be returned.
// Standardized error codes surfaced to API clients.
var (
	ErrMissingRequiredFields        = errors.New("PTP-0001")
	ErrInvalidPathParameter         = errors.New("PTP-0002")
	ErrInvalidQueryParameter        = errors.New("PTP-0003")
	ErrEntityNotFound               = errors.New("PTP-0004")
	ErrInvalidReportVariant         = errors.New("PTP-0005")
	ErrInvalidMetadataShape         = errors.New("PTP-0006")
	ErrReportWriteFailed            = errors.New("PTP-0007")
	ErrReportRegisterFailed         = errors.New("PTP-0008")
	ErrReportDeleteForbidden        = errors.New("PTP-0009")
	ErrUnexpectedFieldsInTheRequest = errors.New("PTP-0010")
	ErrMissingFieldsInRequest       = errors.New("PTP-0011")
	ErrBadRequest                   = errors.New("PTP-0012")
	ErrInternalServer               = errors.New("PTP-0013")
	ErrUnauthorizedAccess           = errors.New("PTP-0014")
	ErrPaginationLimitExceeded      = errors.New("PTP-0015")
	ErrInvalidSortOrder             = errors.New("PTP-0016")
	ErrStorageUnavailable           = errors.New("PTP-0017")
	ErrAdminOnlyResource            = errors.New("PTP-0018")
)
