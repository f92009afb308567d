// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rabbitmq

import (
	"context"

	"github.com/clearlabel/transparency-portal/pkg/model"
)

// ProducerRepository provides an interface for publishing report lifecycle
// events to rabbitmq.
//
//go:generate mockgen --destination=producer.mock.go --package=rabbitmq --copyright_file=../../COPYRIGHT . ProducerRepository
type ProducerRepository interface {
	PublishReportGenerated(ctx context.Context, exchange, key string, event model.ReportGeneratedEvent) error
}
