// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package in

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/product"
	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/report"
	"github.com/clearlabel/transparency-portal/internal/services"
	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/model"
	"github.com/clearlabel/transparency-portal/pkg/pdf"
	"github.com/clearlabel/transparency-portal/pkg/rabbitmq"
	"github.com/clearlabel/transparency-portal/pkg/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	productRepo *product.MockRepository
	reportRepo  *report.MockRepository
	store       *storage.MockDocumentStore
	writer      *pdf.MockWriter
	producer    *rabbitmq.MockProducerRepository
}

func newHandler(t *testing.T) (*ReportHandler, *handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := &handlerMocks{
		productRepo: product.NewMockRepository(ctrl),
		reportRepo:  report.NewMockRepository(ctrl),
		store:       storage.NewMockDocumentStore(ctrl),
		writer:      pdf.NewMockWriter(ctrl),
		producer:    rabbitmq.NewMockProducerRepository(ctrl),
	}

	handler := &ReportHandler{
		Service: &services.UseCase{
			ProductRepo:   m.productRepo,
			ReportRepo:    m.reportRepo,
			DocumentStore: m.store,
			Writer:        m.writer,
			RabbitMQRepo:  m.producer,
		},
	}

	return handler, m
}

type testWriteCloser struct{ io.Writer }

func (testWriteCloser) Close() error { return nil }

func storedReport(id, creatorID uuid.UUID) *report.Report {
	now := time.Now()

	return report.ReconstructReport(
		id, uuid.New(), creatorID,
		"Organic_Honey_transparency_abc.pdf", "/var/reports/Organic_Honey_transparency_abc.pdf",
		constant.VariantTransparency, nil,
		now, now,
		"Organic Honey", "Jane Smith",
	)
}

func Test_ReportHandler_GenerateReport(t *testing.T) {
	productID := uuid.New()
	actorID := uuid.New()

	tests := []struct {
		name           string
		payload        model.CreateReportInput
		mockSetup      func(m *handlerMocks)
		expectedStatus int
	}{
		{
			name:    "Success - Generate report",
			payload: model.CreateReportInput{ReportType: constant.VariantTransparency},
			mockSetup: func(m *handlerMocks) {
				m.productRepo.EXPECT().
					GetSnapshot(gomock.Any(), productID).
					Return(&model.ProductSnapshot{ID: productID.String(), Name: "Organic Honey"}, nil)

				m.store.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(testWriteCloser{&bytes.Buffer{}}, "/var/reports/x.pdf", nil)

				m.writer.EXPECT().
					WriteDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.reportRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record *report.Report) (*report.Report, error) {
						return record, nil
					})

				m.producer.EXPECT().
					PublishReportGenerated(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedStatus: fiber.StatusCreated,
		},
		{
			name:    "Error - Product not found",
			payload: model.CreateReportInput{},
			mockSetup: func(m *handlerMocks) {
				m.productRepo.EXPECT().
					GetSnapshot(gomock.Any(), productID).
					Return(nil, mongo.ErrNoDocuments)
			},
			expectedStatus: fiber.StatusNotFound,
		},
		{
			name:    "Error - Write failure",
			payload: model.CreateReportInput{},
			mockSetup: func(m *handlerMocks) {
				m.productRepo.EXPECT().
					GetSnapshot(gomock.Any(), productID).
					Return(&model.ProductSnapshot{ID: productID.String(), Name: "Organic Honey"}, nil)

				m.store.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(nil, "", storage.ErrDocumentExists)
			},
			expectedStatus: fiber.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newHandler(t)

			tt.mockSetup(m)

			app := fiber.New(fiber.Config{
				DisableStartupMessage: true,
			})

			app.Post("/v1/products/:product_id/reports", func(c *fiber.Ctx) error {
				c.SetUserContext(context.Background())
				c.Locals("product_id", productID)
				c.Locals(ActorIDLocal, actorID)

				return handler.GenerateReport(&tt.payload, c)
			})

			payloadBytes, _ := json.Marshal(tt.payload)
			req := httptest.NewRequest("POST", "/v1/products/"+productID.String()+"/reports", bytes.NewReader(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func Test_ReportHandler_GetReport(t *testing.T) {
	reportID := uuid.New()

	tests := []struct {
		name           string
		mockSetup      func(m *handlerMocks)
		expectedStatus int
	}{
		{
			name: "Success - Get report",
			mockSetup: func(m *handlerMocks) {
				m.reportRepo.EXPECT().
					FindByID(gomock.Any(), reportID).
					Return(storedReport(reportID, uuid.New()), nil)
			},
			expectedStatus: fiber.StatusOK,
		},
		{
			name: "Error - Report not found",
			mockSetup: func(m *handlerMocks) {
				m.reportRepo.EXPECT().
					FindByID(gomock.Any(), reportID).
					Return(nil, mongo.ErrNoDocuments)
			},
			expectedStatus: fiber.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newHandler(t)

			tt.mockSetup(m)

			app := fiber.New(fiber.Config{
				DisableStartupMessage: true,
			})

			app.Get("/v1/reports/:id", func(c *fiber.Ctx) error {
				c.SetUserContext(context.Background())
				c.Locals(UUIDPathParameter, reportID)

				return handler.GetReport(c)
			})

			req := httptest.NewRequest("GET", "/v1/reports/"+reportID.String(), nil)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == fiber.StatusOK {
				var summary model.ReportSummary

				body, readErr := io.ReadAll(resp.Body)
				require.NoError(t, readErr)
				require.NoError(t, json.Unmarshal(body, &summary))

				assert.Equal(t, reportID.String(), summary.ID)
				assert.Equal(t, "Organic Honey", summary.ProductName)
				assert.Equal(t, "Jane Smith", summary.CreatorName)
			}
		})
	}
}

func Test_ReportHandler_GetAllReports(t *testing.T) {
	handler, m := newHandler(t)

	m.reportRepo.EXPECT().
		FindList(gomock.Any(), gomock.Any()).
		Return([]*report.Report{storedReport(uuid.New(), uuid.New())}, nil)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/v1/reports", func(c *fiber.Ctx) error {
		c.SetUserContext(context.Background())

		return handler.GetAllReports(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/reports", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summaries []model.ReportSummary

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &summaries))
	assert.Len(t, summaries, 1)
}

func Test_ReportHandler_GetAllReports_InvalidLimit(t *testing.T) {
	handler, _ := newHandler(t)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/v1/reports", func(c *fiber.Ctx) error {
		c.SetUserContext(context.Background())

		return handler.GetAllReports(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/reports?limit=not-a-number", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func Test_ReportHandler_DeleteReport(t *testing.T) {
	reportID := uuid.New()
	creatorID := uuid.New()

	tests := []struct {
		name           string
		actorID        uuid.UUID
		actorRole      string
		mockSetup      func(m *handlerMocks)
		expectedStatus int
	}{
		{
			name:      "Success - Creator deletes own report",
			actorID:   creatorID,
			actorRole: "member",
			mockSetup: func(m *handlerMocks) {
				m.reportRepo.EXPECT().
					FindByID(gomock.Any(), reportID).
					Return(storedReport(reportID, creatorID), nil)

				m.reportRepo.EXPECT().
					Delete(gomock.Any(), reportID).
					Return(true, nil)

				m.store.EXPECT().
					Remove(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			expectedStatus: fiber.StatusNoContent,
		},
		{
			name:      "Error - Forbidden for unrelated member",
			actorID:   uuid.New(),
			actorRole: "member",
			mockSetup: func(m *handlerMocks) {
				m.reportRepo.EXPECT().
					FindByID(gomock.Any(), reportID).
					Return(storedReport(reportID, creatorID), nil)
			},
			expectedStatus: fiber.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, m := newHandler(t)

			tt.mockSetup(m)

			app := fiber.New(fiber.Config{DisableStartupMessage: true})

			app.Delete("/v1/reports/:id", func(c *fiber.Ctx) error {
				c.SetUserContext(context.Background())
				c.Locals(UUIDPathParameter, reportID)
				c.Locals(ActorIDLocal, tt.actorID)
				c.Locals(ActorRoleLocal, tt.actorRole)

				return handler.DeleteReport(c)
			})

			resp, err := app.Test(httptest.NewRequest("DELETE", "/v1/reports/"+reportID.String(), nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func Test_ReportHandler_GetDownloadReport(t *testing.T) {
	reportID := uuid.New()

	handler, m := newHandler(t)

	m.reportRepo.EXPECT().
		FindByID(gomock.Any(), reportID).
		Return(storedReport(reportID, uuid.New()), nil)

	m.store.EXPECT().
		Open(gomock.Any(), "/var/reports/Organic_Honey_transparency_abc.pdf").
		Return(io.NopCloser(strings.NewReader("%PDF-1.7 test-bytes")), nil)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Get("/v1/reports/:id/download", func(c *fiber.Ctx) error {
		c.SetUserContext(context.Background())
		c.Locals(UUIDPathParameter, reportID)

		return handler.GetDownloadReport(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/v1/reports/"+reportID.String()+"/download", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "Organic_Honey_transparency_abc.pdf")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 test-bytes", string(body))
}
