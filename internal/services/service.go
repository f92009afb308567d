// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package services

import (
	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/product"
	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/report"
	"github.com/clearlabel/transparency-portal/pkg/pdf"
	"github.com/clearlabel/transparency-portal/pkg/rabbitmq"
	"github.com/clearlabel/transparency-portal/pkg/storage"
)

// UseCase is a struct to implement the services methods
type UseCase struct {
	// ProductRepo provides read access to the product snapshots reports are rendered from.
	ProductRepo product.Repository

	// ReportRepo provides an abstraction on top of the report data source.
	ReportRepo report.Repository

	// DocumentStore is the backend holding the generated report files.
	DocumentStore storage.DocumentStore

	// Writer streams rendered sections onto a storage sink as a finished PDF.
	Writer pdf.Writer

	// RabbitMQRepo publishes report lifecycle events. Nil disables publishing.
	RabbitMQRepo rabbitmq.ProducerRepository
}
