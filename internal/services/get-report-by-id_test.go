// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/report"
	"github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/constant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

func testReport(id uuid.UUID) *report.Report {
	now := time.Now()

	return report.ReconstructReport(
		id, uuid.New(), uuid.New(),
		"Organic_Honey_transparency_abc.pdf", "/var/reports/Organic_Honey_transparency_abc.pdf",
		constant.VariantTransparency, nil,
		now, now,
		"Organic Honey", "Jane Smith",
	)
}

func TestGetReportByID(t *testing.T) {
	t.Parallel()

	reportID := uuid.New()
	repoErr := errors.New("connection reset")

	tests := []struct {
		name        string
		mockSetup   func(repo *report.MockRepository)
		expectErr   bool
		errContains string
	}{
		{
			name: "success resolves names",
			mockSetup: func(repo *report.MockRepository) {
				repo.EXPECT().
					FindByID(gomock.Any(), reportID).
					Return(testReport(reportID), nil)
			},
		},
		{
			name: "missing report maps to not found",
			mockSetup: func(repo *report.MockRepository) {
				repo.EXPECT().
					FindByID(gomock.Any(), reportID).
					Return(nil, mongo.ErrNoDocuments)
			},
			expectErr:   true,
			errContains: constant.ErrEntityNotFound.Error(),
		},
		{
			name: "repository error is propagated",
			mockSetup: func(repo *report.MockRepository) {
				repo.EXPECT().
					FindByID(gomock.Any(), reportID).
					Return(nil, repoErr)
			},
			expectErr:   true,
			errContains: "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc, m := newTestUseCase(t)

			tt.mockSetup(m.reportRepo)

			result, err := uc.GetReportByID(context.Background(), reportID)

			if tt.expectErr {
				require.Error(t, err)

				if tt.errContains == constant.ErrEntityNotFound.Error() {
					var notFoundErr pkg.EntityNotFoundError

					require.ErrorAs(t, err, &notFoundErr)
					assert.Equal(t, tt.errContains, notFoundErr.Code)
				} else {
					assert.Contains(t, err.Error(), tt.errContains)
				}

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, reportID, result.ID)
			assert.Equal(t, "Organic Honey", result.ProductName)
			assert.Equal(t, "Jane Smith", result.CreatorName)
		})
	}
}
