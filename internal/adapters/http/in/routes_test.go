// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package in

import (
	"errors"
	"testing"
	"time"

	"github.com/clearlabel/transparency-portal/pkg/pdf"
	"github.com/clearlabel/transparency-portal/pkg/storage"

	"github.com/LerianStudio/lib-commons/v2/commons/log"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCheckStorage(t *testing.T) {
	t.Parallel()

	t.Run("nil store is not ready", func(t *testing.T) {
		t.Parallel()

		result := checkStorage(nil)

		assert.Equal(t, "not_ready", result.Status)
	})

	t.Run("healthy backend is ready", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := storage.NewMockDocumentStore(ctrl)

		store.EXPECT().
			HealthCheck(gomock.Any()).
			Return(nil)

		result := checkStorage(store)

		assert.Equal(t, "ready", result.Status)
	})

	t.Run("unreachable backend is not ready", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		store := storage.NewMockDocumentStore(ctrl)

		store.EXPECT().
			HealthCheck(gomock.Any()).
			Return(errors.New("bucket unreachable"))

		result := checkStorage(store)

		assert.Equal(t, "not_ready", result.Status)
		assert.Equal(t, "storage connectivity check failed", result.Message)
	})
}

func TestCheckPDFPipeline(t *testing.T) {
	t.Parallel()

	t.Run("nil pool is not ready", func(t *testing.T) {
		t.Parallel()

		result := checkPDFPipeline(nil)

		assert.Equal(t, "not_ready", result.Status)
	})

	t.Run("running pool is ready", func(t *testing.T) {
		t.Parallel()

		pool := pdf.NewWorkerPool(1, time.Second, &log.NoneLogger{})
		defer pool.Close()

		result := checkPDFPipeline(pool)

		assert.Equal(t, "ready", result.Status)
	})

	t.Run("pool without workers is not ready", func(t *testing.T) {
		t.Parallel()

		pool := pdf.NewWorkerPool(0, time.Second, &log.NoneLogger{})
		defer pool.Close()

		result := checkPDFPipeline(pool)

		assert.Equal(t, "not_ready", result.Status)
		assert.Contains(t, result.Message, "worker pool unavailable")
	})
}
