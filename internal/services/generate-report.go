// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package services

import (
	"context"
	"errors"
	"time"

	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/report"
	"github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/model"
	"github.com/clearlabel/transparency-portal/pkg/render"

	"github.com/LerianStudio/lib-commons/v2/commons"
	"github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
)

// GenerateReport renders a report for the given product, streams it onto the
// document store and registers the resulting record. The pipeline either
// completes fully or leaves no trace: a write failure registers nothing, and
// a registration failure discards the written file.
func (uc *UseCase) GenerateReport(ctx context.Context, productID, createdBy uuid.UUID, input *model.CreateReportInput) (*model.GeneratedReport, error) {
	logger, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.generate_report")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.product_id", productID.String()),
		attribute.String("app.request.report_type", input.ReportType),
	)

	variant := input.ReportType
	if variant == "" {
		variant = constant.VariantProductDetails
	}

	if !pkg.IsValidReportVariant(variant) {
		err := pkg.ValidateBusinessError(constant.ErrInvalidReportVariant, "", variant)

		opentelemetry.HandleSpanBusinessErrorEvent(&span, "Invalid report variant", err)

		return nil, err
	}

	logger.Infof("Generating %s report for product %v.", variant, productID)

	snapshot, err := uc.ProductRepo.GetSnapshot(ctx, productID)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get product snapshot", err)

		logger.Errorf("Error getting product snapshot: %v", err)

		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, "", constant.MongoCollectionProduct)
		}

		return nil, err
	}

	sections := render.Render(*snapshot, variant, input.Metadata)

	filename := pkg.NewReportFilename(snapshot.Name, variant)

	sink, storagePath, err := uc.DocumentStore.Create(ctx, filename)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to create document on storage", err)

		logger.Errorf("Error creating document %s on storage: %v", filename, err)

		return nil, pkg.ValidateBusinessError(constant.ErrReportWriteFailed, "")
	}

	if err := uc.Writer.WriteDocument(ctx, sections, sink, logger); err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to write document", err)

		logger.Errorf("Error writing document %s: %v", filename, err)

		// Discard whatever was partially written. Removal of an absent file
		// succeeds, so this is safe regardless of how far the write got.
		if removeErr := uc.DocumentStore.Remove(ctx, storagePath); removeErr != nil {
			logger.Warnf("Failed to remove partially written document %s: %v", filename, removeErr)
		}

		return nil, pkg.ValidateBusinessError(constant.ErrReportWriteFailed, "")
	}

	entity, err := report.NewReport(productID, createdBy, filename, storagePath, variant, input.Metadata)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to build report record", err)

		if removeErr := uc.DocumentStore.Remove(ctx, storagePath); removeErr != nil {
			logger.Warnf("Failed to remove document %s after record build failure: %v", filename, removeErr)
		}

		return nil, err
	}

	created, err := uc.ReportRepo.Create(ctx, entity)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to register report", err)

		logger.Errorf("Error registering report %s: %v", filename, err)

		// The document is durable but unreachable without a record, so the
		// compensation is to delete it. A failed compensation is logged and
		// the registration failure is still what the caller sees.
		if removeErr := uc.DocumentStore.Remove(ctx, storagePath); removeErr != nil {
			logger.Warnf("Failed to remove document %s after registration failure: %v", filename, removeErr)
		}

		return nil, pkg.ValidateBusinessError(constant.ErrReportRegisterFailed, "")
	}

	uc.publishReportGenerated(ctx, created)

	logger.Infof("Report %v generated successfully as %s.", created.ID, filename)

	return &model.GeneratedReport{
		ReportID:   created.ID.String(),
		Filename:   created.Filename,
		ReportURL:  constant.PublicReportsPathPrefix + created.Filename,
		ReportType: created.ReportType,
	}, nil
}

// publishReportGenerated emits the report.generated event. Publishing is
// fire-and-forget: a broker failure never fails the generation.
func (uc *UseCase) publishReportGenerated(ctx context.Context, created *report.Report) {
	if uc.RabbitMQRepo == nil {
		return
	}

	logger, _, _, _ := commons.NewTrackingFromContext(ctx)

	event := model.ReportGeneratedEvent{
		ReportID:   created.ID,
		ProductID:  created.ProductID,
		Filename:   created.Filename,
		ReportType: created.ReportType,
		CreatedBy:  created.CreatedBy,
		OccurredAt: time.Now().UTC(),
	}

	if err := uc.RabbitMQRepo.PublishReportGenerated(ctx, constant.ExchangeReportEvents, constant.KeyReportGenerated, event); err != nil {
		logger.Warnf("Failed to publish report.generated event for report %v: %v", created.ID, err)
	}
}
