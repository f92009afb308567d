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
	"go.opentelemetry.io/otel/attribute"
)

// GetAllReports lists report records across all products and creators,
// newest first, honoring the pagination and variant filters.
func (uc *UseCase) GetAllReports(ctx context.Context, filters http.QueryHeader) ([]*report.Report, error) {
	logger, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.get_all_reports")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
	)

	logger.Infof("Retrieving all reports.")

	reports, err := uc.ReportRepo.FindList(ctx, filters)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get reports on repo", err)

		logger.Errorf("Error getting reports on repo: %v", err)

		return nil, err
	}

	return reports, nil
}
