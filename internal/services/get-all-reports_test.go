// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/report"
	"github.com/clearlabel/transparency-portal/pkg/net/http"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetAllReports(t *testing.T) {
	t.Parallel()

	filters := http.QueryHeader{Limit: 10, Page: 1, SortOrder: "desc"}

	t.Run("success returns records", func(t *testing.T) {
		t.Parallel()

		uc, m := newTestUseCase(t)

		expected := []*report.Report{testReport(uuid.New()), testReport(uuid.New())}

		m.reportRepo.EXPECT().
			FindList(gomock.Any(), filters).
			Return(expected, nil)

		result, err := uc.GetAllReports(context.Background(), filters)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("empty store yields empty list", func(t *testing.T) {
		t.Parallel()

		uc, m := newTestUseCase(t)

		m.reportRepo.EXPECT().
			FindList(gomock.Any(), filters).
			Return([]*report.Report{}, nil)

		result, err := uc.GetAllReports(context.Background(), filters)

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		t.Parallel()

		uc, m := newTestUseCase(t)

		m.reportRepo.EXPECT().
			FindList(gomock.Any(), filters).
			Return(nil, errors.New("cursor timeout"))

		_, err := uc.GetAllReports(context.Background(), filters)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cursor timeout")
	})
}
