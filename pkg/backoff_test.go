// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package pkg

import (
	"testing"
	"time"

	"github.com/clearlabel/transparency-portal/pkg/constant"

	"github.com/stretchr/testify/assert"
)

func TestFullJitter(t *testing.T) {
	t.Parallel()

	t.Run("zero base delay returns zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, time.Duration(0), FullJitter(0))
		assert.Equal(t, time.Duration(0), FullJitter(-time.Second))
	})

	t.Run("result is bounded by base delay", func(t *testing.T) {
		t.Parallel()

		base := 2 * time.Second
		for range 100 {
			d := FullJitter(base)
			assert.GreaterOrEqual(t, d, time.Duration(0))
			assert.LessOrEqual(t, d, base)
		}
	})

	t.Run("result is capped at max backoff", func(t *testing.T) {
		t.Parallel()

		for range 100 {
			d := FullJitter(time.Hour)
			assert.LessOrEqual(t, d, constant.ProducerMaxBackoff)
		}
	})
}

func TestNextBackoff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, time.Second, NextBackoff(500*time.Millisecond))
	assert.Equal(t, 2*time.Second, NextBackoff(time.Second))
	assert.Equal(t, constant.ProducerMaxBackoff, NextBackoff(constant.ProducerMaxBackoff))
	assert.Equal(t, constant.ProducerMaxBackoff, NextBackoff(time.Hour))
}
