// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package services

import (
	"context"

	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/report"
	"github.com/clearlabel/transparency-portal/pkg/net/http"

	"github.com/LerianStudio/lib-commons/v2/commons"
	"github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// GetReportsByProduct lists the report records referencing the given product,
// newest first. An unknown product yields an empty list, not an error.
func (uc *UseCase) GetReportsByProduct(ctx context.Context, productID uuid.UUID, filters http.QueryHeader) ([]*report.Report, error) {
	logger, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.get_reports_by_product")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.product_id", productID.String()),
	)

	logger.Infof("Retrieving reports for product %v.", productID)

	reports, err := uc.ReportRepo.FindByProduct(ctx, productID, filters)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get reports on repo by product", err)

		logger.Errorf("Error getting reports on repo by product: %v", err)

		return nil, err
	}

	return reports, nil
}
