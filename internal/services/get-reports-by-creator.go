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

// GetReportsByCreator lists the report records created by the given user,
// newest first. An unknown creator yields an empty list, not an error.
func (uc *UseCase) GetReportsByCreator(ctx context.Context, creatorID uuid.UUID, filters http.QueryHeader) ([]*report.Report, error) {
	logger, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.get_reports_by_creator")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.creator_id", creatorID.String()),
	)

	logger.Infof("Retrieving reports for creator %v.", creatorID)

	reports, err := uc.ReportRepo.FindByCreator(ctx, creatorID, filters)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get reports on repo by creator", err)

		logger.Errorf("Error getting reports on repo by creator: %v", err)

		return nil, err
	}

	return reports, nil
}
