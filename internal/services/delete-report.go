// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package services

import (
	"context"
	"errors"

	"github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/constant"

	"github.com/LerianStudio/lib-commons/v2/commons"
	"github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/attribute"
)

// DeleteReport removes a report record and its stored document. Only the
// report creator or an administrator may delete; a record whose creator
// cannot be matched is deletable by administrators only. The record is the
// source of truth: once it is gone the delete has succeeded, and a leftover
// file is logged for cleanup rather than failing the operation.
func (uc *UseCase) DeleteReport(ctx context.Context, id, actorID uuid.UUID, actorRole string) error {
	logger, tracer, reqId, _ := commons.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "service.delete_report")
	defer span.End()

	span.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.report_id", id.String()),
		attribute.String("app.request.actor_id", actorID.String()),
	)

	logger.Infof("Deleting report %v requested by %v.", id, actorID)

	record, err := uc.ReportRepo.FindByID(ctx, id)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get report on repo by id", err)

		logger.Errorf("Error getting report on repo by id: %v", err)

		if errors.Is(err, mongo.ErrNoDocuments) {
			return pkg.ValidateBusinessError(constant.ErrEntityNotFound, "", constant.MongoCollectionReport)
		}

		return err
	}

	isCreator := record.CreatedBy != uuid.Nil && record.CreatedBy == actorID
	if !isCreator && actorRole != constant.AdminRole {
		err := pkg.ValidateBusinessError(constant.ErrReportDeleteForbidden, "")

		opentelemetry.HandleSpanBusinessErrorEvent(&span, "Report deletion forbidden", err)

		logger.Warnf("Actor %v is not allowed to delete report %v.", actorID, id)

		return err
	}

	existed, err := uc.ReportRepo.Delete(ctx, id)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to delete report on repo", err)

		logger.Errorf("Error deleting report on repo: %v", err)

		return err
	}

	if !existed {
		return pkg.ValidateBusinessError(constant.ErrEntityNotFound, "", constant.MongoCollectionReport)
	}

	if removeErr := uc.DocumentStore.Remove(ctx, record.StoragePath); removeErr != nil {
		logger.Warnf("Report %v deleted but document %s could not be removed: %v", id, record.Filename, removeErr)
	}

	logger.Infof("Report %v deleted successfully.", id)

	return nil
}
