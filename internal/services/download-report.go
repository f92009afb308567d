// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package services

import (
	"context"
	"errors"
	"io"

	"github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/storage"

	"github.com/LerianStudio/lib-commons/v2/commons"
	"github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
)

// DownloadReport resolves a report record and opens its stored document for
// reading. The caller owns the returned reader and must close it.
func (uc *UseCase) DownloadReport(ctx context.Context, id uuid.UUID) (io.ReadCloser, string, error) {
	logger, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.download_report")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.report_id", id.String()),
	)

	record, err := uc.ReportRepo.FindByID(ctx, id)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get report on repo by id", err)

		logger.Errorf("Error getting report on repo by id: %v", err)

		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", pkg.ValidateBusinessError(constant.ErrEntityNotFound, "", constant.MongoCollectionReport)
		}

		return nil, "", err
	}

	reader, err := uc.DocumentStore.Open(ctx, record.StoragePath)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to open report document", err)

		logger.Errorf("Error opening document %s: %v", record.Filename, err)

		if errors.Is(err, storage.ErrDocumentNotFound) {
			return nil, "", pkg.ValidateBusinessError(constant.ErrEntityNotFound, "", "report document")
		}

		return nil, "", err
	}

	return reader, record.Filename, nil
}
