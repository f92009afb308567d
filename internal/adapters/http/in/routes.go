// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package in

import (
	"context"
	"fmt"
	"time"

	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/model"
	"github.com/clearlabel/transparency-portal/pkg/net/http"
	"github.com/clearlabel/transparency-portal/pkg/pdf"
	"github.com/clearlabel/transparency-portal/pkg/storage"

	"github.com/LerianStudio/lib-commons/v2/commons/log"
	mongoDB "github.com/LerianStudio/lib-commons/v2/commons/mongo"
	commonsHttp "github.com/LerianStudio/lib-commons/v2/commons/net/http"
	"github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	libRabbitmq "github.com/LerianStudio/lib-commons/v2/commons/rabbitmq"
	libRedis "github.com/LerianStudio/lib-commons/v2/commons/redis"
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	productIDPathParameter = "product_id"
	readinessCheckTimeout  = 2 * time.Second
)

// ReadinessDeps holds the dependency connections needed for the /ready endpoint.
type ReadinessDeps struct {
	MongoConnection    *mongoDB.MongoConnection
	RabbitMQConnection *libRabbitmq.RabbitMQConnection
	RedisConnection    *libRedis.RedisConnection
	DocumentStore      storage.DocumentStore
	WorkerPool         *pdf.WorkerPool
}

// RoutesConfig carries the cross-cutting settings the router needs.
type RoutesConfig struct {
	JWTSecret string
	RateLimit RateLimitConfig
}

// NewRoutes creates a new fiber router with the specified handlers and middleware.
func NewRoutes(lg log.Logger, tl *opentelemetry.Telemetry, cfg RoutesConfig, reportHandler *ReportHandler, deps *ReadinessDeps) *fiber.App {
	f := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return commonsHttp.HandleFiberError(ctx, err)
		},
	})
	tlMid := commonsHttp.NewTelemetryMiddleware(tl)

	f.Use(tlMid.WithTelemetry(tl))
	f.Use(otelfiber.Middleware(otelfiber.WithServerName(constant.ApplicationName)))
	f.Use(cors.New())
	f.Use(RecoverMiddleware())
	f.Use(SecurityHeaders())
	f.Use(RateLimiterMiddleware(cfg.RateLimit))
	f.Use(commonsHttp.WithHTTPLogging(commonsHttp.WithCustomLogger(lg)))

	auth := Authenticate(cfg.JWTSecret)

	// Report routes
	f.Post("/v1/products/:product_id/reports", auth, ParseUUIDPathParam(productIDPathParameter), http.WithBody(new(model.CreateReportInput), reportHandler.GenerateReport))
	f.Get("/v1/products/:product_id/reports", auth, ParseUUIDPathParam(productIDPathParameter), reportHandler.GetReportsByProduct)
	f.Get("/v1/users/me/reports", auth, reportHandler.GetUserReports)
	f.Get("/v1/reports/:id/download", auth, ParsePathParametersUUID, reportHandler.GetDownloadReport)
	f.Get("/v1/reports/:id", auth, ParsePathParametersUUID, reportHandler.GetReport)
	f.Delete("/v1/reports/:id", auth, ParsePathParametersUUID, reportHandler.DeleteReport)
	f.Get("/v1/reports", auth, RequireAdmin(), reportHandler.GetAllReports)

	// Health
	f.Get("/health", commonsHttp.Ping)

	// Readiness - checks all dependency connections
	f.Get("/ready", readinessHandler(deps))

	// Version
	f.Get("/version", commonsHttp.Version)

	f.Use(tlMid.EndTracingSpans)

	return f
}

// dependencyResult represents the health status of a single dependency in the readiness check.
type dependencyResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// readinessHandler returns a Fiber handler that checks all dependency connections.
// Each dependency is checked with a 2-second timeout. Returns 200 if all healthy, 503 otherwise.
func readinessHandler(deps *ReadinessDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		httpStatus := fiber.StatusOK
		results := make(map[string]*dependencyResult)

		results["mongodb"] = checkMongoDB(deps.MongoConnection)
		results["rabbitmq"] = checkRabbitMQ(deps.RabbitMQConnection)
		results["redis"] = checkRedis(deps.RedisConnection)
		results["storage"] = checkStorage(deps.DocumentStore)
		results["pdf_pipeline"] = checkPDFPipeline(deps.WorkerPool)

		for _, result := range results {
			if result.Status != "ready" {
				httpStatus = fiber.StatusServiceUnavailable

				break
			}
		}

		overallStatus := "ready"
		if httpStatus == fiber.StatusServiceUnavailable {
			overallStatus = "not_ready"
		}

		return commonsHttp.JSONResponse(c, httpStatus, fiber.Map{
			"status":       overallStatus,
			"dependencies": results,
		})
	}
}

// checkMongoDB pings the MongoDB connection with a timeout.
func checkMongoDB(conn *mongoDB.MongoConnection) *dependencyResult {
	if conn == nil {
		return &dependencyResult{Status: "not_ready", Message: "connection not configured"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), readinessCheckTimeout)
	defer cancel()

	db, err := conn.GetDB(ctx)
	if err != nil {
		return &dependencyResult{Status: "not_ready", Message: "failed to get connection"}
	}

	if err = db.Ping(ctx, nil); err != nil {
		return &dependencyResult{Status: "not_ready", Message: "ping failed"}
	}

	return &dependencyResult{Status: "ready"}
}

// checkRabbitMQ verifies the RabbitMQ connection is alive. The broker is an
// optional dependency, so an unconfigured connection reports ready.
func checkRabbitMQ(conn *libRabbitmq.RabbitMQConnection) *dependencyResult {
	if conn == nil {
		return &dependencyResult{Status: "ready", Message: "not configured"}
	}

	if !conn.Connected || conn.Connection == nil || conn.Connection.IsClosed() {
		return &dependencyResult{Status: "not_ready", Message: "connection is closed"}
	}

	if !conn.HealthCheck() {
		return &dependencyResult{Status: "not_ready", Message: "health check failed"}
	}

	return &dependencyResult{Status: "ready"}
}

// checkRedis pings the Redis connection with a timeout. Redis only backs the
// rate limiter, which degrades gracefully, so an unconfigured connection
// reports ready.
func checkRedis(conn *libRedis.RedisConnection) *dependencyResult {
	if conn == nil {
		return &dependencyResult{Status: "ready", Message: "not configured"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), readinessCheckTimeout)
	defer cancel()

	client, err := conn.GetClient(ctx)
	if err != nil {
		return &dependencyResult{Status: "not_ready", Message: "failed to get client"}
	}

	if _, err = client.Ping(ctx).Result(); err != nil {
		return &dependencyResult{Status: "not_ready", Message: "ping failed"}
	}

	return &dependencyResult{Status: "ready"}
}

// checkStorage verifies the document store backend is reachable.
func checkStorage(store storage.DocumentStore) *dependencyResult {
	if store == nil {
		return &dependencyResult{Status: "not_ready", Message: "document store not configured"}
	}

	ctx, cancel := context.WithTimeout(context.Background(), readinessCheckTimeout)
	defer cancel()

	if err := store.HealthCheck(ctx); err != nil {
		return &dependencyResult{Status: "not_ready", Message: "storage connectivity check failed"}
	}

	return &dependencyResult{Status: "ready"}
}

// checkPDFPipeline verifies the worker pool is accepting jobs. The pool is a
// hard dependency: reports cannot be generated without it.
func checkPDFPipeline(pool *pdf.WorkerPool) *dependencyResult {
	if pool == nil {
		return &dependencyResult{Status: "not_ready", Message: "worker pool not configured"}
	}

	if !pool.IsHealthy() {
		stats := pool.GetStats()

		return &dependencyResult{
			Status:  "not_ready",
			Message: fmt.Sprintf("worker pool unavailable (workers=%v, tasks_pending=%v)", stats["workers"], stats["tasks_pending"]),
		}
	}

	return &dependencyResult{Status: "ready"}
}
