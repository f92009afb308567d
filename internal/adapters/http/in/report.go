// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package in

import (
	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/report"
	"github.com/clearlabel/transparency-portal/internal/services"
	"github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/model"
	"github.com/clearlabel/transparency-portal/pkg/net/http"

	"github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ReportHandler exposes the report pipeline over HTTP.
type ReportHandler struct {
	Service *services.UseCase
}

// toSummaries converts repository records into the API read model.
func toSummaries(records []*report.Report) []*model.ReportSummary {
	summaries := make([]*model.ReportSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, record.ToSummary())
	}

	return summaries
}

// GenerateReport is a method that generates a report for a product.
//
//	@Summary		Generate a Report
//	@Description	Render, store and register a report for the given product
//	@Tags			Reports
//	@Accept			json
//	@Produce		json
//	@Param			Authorization	header		string						true	"The authorization token in the 'Bearer access_token' format."
//	@Param			product_id		path		string						true	"Product ID"
//	@Param			reports			body		model.CreateReportInput		true	"Report Input"
//	@Success		201				{object}	model.GeneratedReport
//	@Router			/v1/products/{product_id}/reports [post]
func (rh *ReportHandler) GenerateReport(p any, c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.generate_report")
	defer span.End()

	c.SetUserContext(ctx)

	productID := c.Locals("product_id").(uuid.UUID)
	actorID := c.Locals(ActorIDLocal).(uuid.UUID)
	payload := p.(*model.CreateReportInput)

	logger.Infof("Request to generate a report with details: %#v", payload)

	generated, err := rh.Service.GenerateReport(ctx, productID, actorID, payload)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to generate report on service", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully generated report %v", generated.ReportID)

	return http.Created(c, generated)
}

// GetAllReports is a method that retrieves all report records. Admin only.
//
//	@Summary		Get all Reports
//	@Description	List report records across all products and creators, newest first
//	@Tags			Reports
//	@Produce		json
//	@Param			Authorization	header		string	true	"The authorization token in the 'Bearer access_token' format."
//	@Param			report_type		query		string	false	"Filter by report variant"
//	@Param			limit			query		int		false	"Page size"	default(10)
//	@Param			page			query		int		false	"Page number"	default(1)
//	@Success		200				{object}	[]model.ReportSummary
//	@Router			/v1/reports [get]
func (rh *ReportHandler) GetAllReports(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_all_reports")
	defer span.End()

	c.SetUserContext(ctx)

	filters, err := http.ValidateParameters(c.Queries())
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to validate query parameters", err)

		return http.WithError(c, err)
	}

	records, err := rh.Service.GetAllReports(ctx, *filters)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get reports on service", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully retrieved %d reports", len(records))

	return http.OK(c, toSummaries(records))
}

// GetReportsByProduct is a method that retrieves the report records of a product.
//
//	@Summary		Get Reports by Product
//	@Description	List report records referencing the given product, newest first
//	@Tags			Reports
//	@Produce		json
//	@Param			Authorization	header		string	true	"The authorization token in the 'Bearer access_token' format."
//	@Param			product_id		path		string	true	"Product ID"
//	@Success		200				{object}	[]model.ReportSummary
//	@Router			/v1/products/{product_id}/reports [get]
func (rh *ReportHandler) GetReportsByProduct(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_reports_by_product")
	defer span.End()

	c.SetUserContext(ctx)

	productID := c.Locals("product_id").(uuid.UUID)

	filters, err := http.ValidateParameters(c.Queries())
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to validate query parameters", err)

		return http.WithError(c, err)
	}

	records, err := rh.Service.GetReportsByProduct(ctx, productID, *filters)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get reports on service", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully retrieved %d reports for product %v", len(records), productID)

	return http.OK(c, toSummaries(records))
}

// GetUserReports is a method that retrieves the report records created by the
// authenticated actor.
//
//	@Summary		Get own Reports
//	@Description	List report records created by the authenticated user, newest first
//	@Tags			Reports
//	@Produce		json
//	@Param			Authorization	header		string	true	"The authorization token in the 'Bearer access_token' format."
//	@Success		200				{object}	[]model.ReportSummary
//	@Router			/v1/users/me/reports [get]
func (rh *ReportHandler) GetUserReports(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_user_reports")
	defer span.End()

	c.SetUserContext(ctx)

	actorID := c.Locals(ActorIDLocal).(uuid.UUID)

	filters, err := http.ValidateParameters(c.Queries())
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to validate query parameters", err)

		return http.WithError(c, err)
	}

	records, err := rh.Service.GetReportsByCreator(ctx, actorID, *filters)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get reports on service", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully retrieved %d reports for creator %v", len(records), actorID)

	return http.OK(c, toSummaries(records))
}

// GetReport is a method that retrieves a report record by its ID.
//
//	@Summary		Get a Report by ID
//	@Description	Get a report record with its product and creator names resolved
//	@Tags			Reports
//	@Produce		json
//	@Param			Authorization	header		string	true	"The authorization token in the 'Bearer access_token' format."
//	@Param			id				path		string	true	"Report ID"
//	@Success		200				{object}	model.ReportSummary
//	@Router			/v1/reports/{id} [get]
func (rh *ReportHandler) GetReport(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.get_report")
	defer span.End()

	c.SetUserContext(ctx)

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	record, err := rh.Service.GetReportByID(ctx, id)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to get report on service", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully retrieved report %v", id)

	return http.OK(c, record.ToSummary())
}

// GetDownloadReport is a method that streams the stored report document.
//
//	@Summary		Download a Report
//	@Description	Stream the stored PDF document of a report
//	@Tags			Reports
//	@Produce		application/pdf
//	@Param			Authorization	header	string	true	"The authorization token in the 'Bearer access_token' format."
//	@Param			id				path	string	true	"Report ID"
//	@Success		200
//	@Router			/v1/reports/{id}/download [get]
func (rh *ReportHandler) GetDownloadReport(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.download_report")
	defer span.End()

	c.SetUserContext(ctx)

	id := c.Locals(UUIDPathParameter).(uuid.UUID)

	reader, filename, err := rh.Service.DownloadReport(ctx, id)
	if err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to open report document on service", err)

		return http.WithError(c, err)
	}

	logger.Infof("Streaming report document %s", filename)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)

	return c.SendStream(reader)
}

// DeleteReport is a method that deletes a report record and its document.
//
//	@Summary		Delete a Report
//	@Description	Delete a report record and its stored document. Creator or admin only.
//	@Tags			Reports
//	@Param			Authorization	header	string	true	"The authorization token in the 'Bearer access_token' format."
//	@Param			id				path	string	true	"Report ID"
//	@Success		204
//	@Router			/v1/reports/{id} [delete]
func (rh *ReportHandler) DeleteReport(c *fiber.Ctx) error {
	ctx := c.UserContext()

	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "handler.delete_report")
	defer span.End()

	c.SetUserContext(ctx)

	id := c.Locals(UUIDPathParameter).(uuid.UUID)
	actorID := c.Locals(ActorIDLocal).(uuid.UUID)
	actorRole, _ := c.Locals(ActorRoleLocal).(string)

	if err := rh.Service.DeleteReport(ctx, id, actorID, actorRole); err != nil {
		opentelemetry.HandleSpanError(&span, "Failed to delete report on service", err)

		return http.WithError(c, err)
	}

	logger.Infof("Successfully deleted report %v", id)

	return http.NoContent(c)
}
