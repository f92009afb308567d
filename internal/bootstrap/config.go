// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bootstrap

import (
	"fmt"
	"strconv"

	"github.com/clearlabel/transparency-portal/internal/adapters/http/in"
	"github.com/clearlabel/transparency-portal/internal/services"
	"github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/constant"

	libCommons "github.com/LerianStudio/lib-commons/v2/commons"
	"github.com/LerianStudio/lib-commons/v2/commons/log"
	"github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	"github.com/LerianStudio/lib-commons/v2/commons/zap"
	"github.com/joho/godotenv"
)

// Config is the top level configuration struct for the entire application.
type Config struct {
	EnvName                 string `env:"ENV_NAME"`
	ServerAddress           string `env:"SERVER_ADDRESS"`
	LogLevel                string `env:"LOG_LEVEL"`
	OtelServiceName         string `env:"OTEL_RESOURCE_SERVICE_NAME"`
	OtelLibraryName         string `env:"OTEL_LIBRARY_NAME"`
	OtelServiceVersion      string `env:"OTEL_RESOURCE_SERVICE_VERSION"`
	OtelDeploymentEnv       string `env:"OTEL_RESOURCE_DEPLOYMENT_ENVIRONMENT"`
	OtelColExporterEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	MongoURI                string `env:"MONGO_URI"`
	MongoDBHost             string `env:"MONGO_HOST"`
	MongoDBName             string `env:"MONGO_NAME"`
	MongoDBUser             string `env:"MONGO_USER"`
	MongoDBPassword         string `env:"MONGO_PASSWORD"`
	MongoDBPort             string `env:"MONGO_PORT"`
	MongoMaxPoolSize        string `env:"MONGO_MAX_POOL_SIZE"`
	RabbitURI               string `env:"RABBITMQ_URI"`
	RabbitMQHost            string `env:"RABBITMQ_HOST"`
	RabbitMQPortHost        string `env:"RABBITMQ_PORT_HOST"`
	RabbitMQPortAMQP        string `env:"RABBITMQ_PORT_AMQP"`
	RabbitMQUser            string `env:"RABBITMQ_DEFAULT_USER"`
	RabbitMQPass            string `env:"RABBITMQ_DEFAULT_PASS"`
	RabbitMQHealthCheckURL  string `env:"RABBITMQ_HEALTH_CHECK_URL"`
	RedisHost               string `env:"REDIS_HOST"`
	RedisPassword           string `env:"REDIS_PASSWORD"`
	RedisDB                 string `env:"REDIS_DB"`
	RedisProtocol           string `env:"REDIS_PROTOCOL"`
	StorageProvider         string `env:"STORAGE_PROVIDER"`
	LocalReportsRoot        string `env:"REPORTS_ROOT"`
	S3Region                string `env:"S3_REGION"`
	S3Bucket                string `env:"S3_BUCKET"`
	S3AccessKeyID           string `env:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey       string `env:"S3_SECRET_ACCESS_KEY"`
	S3Endpoint              string `env:"S3_ENDPOINT"`
	S3ForcePathStyle        bool   `env:"S3_FORCE_PATH_STYLE"`
	JWTSecret               string `env:"JWT_SECRET"`
	PDFWorkers              string `env:"PDF_WORKERS"`
	PDFTimeoutSeconds       string `env:"PDF_TIMEOUT_SECONDS"`
	RateLimitEnabled        bool   `env:"RATE_LIMIT_ENABLED"`
	RateLimitGlobalMax      string `env:"RATE_LIMIT_GLOBAL_MAX"`
	RateLimitDownloadMax    string `env:"RATE_LIMIT_DOWNLOAD_MAX"`
	RateLimitDispatchMax    string `env:"RATE_LIMIT_DISPATCH_MAX"`
	RateLimitWindowSeconds  string `env:"RATE_LIMIT_WINDOW_SECONDS"`
}

// Validate checks configuration values that would otherwise only fail deep
// inside a dependency, so startup errors point at the offending variable.
func (cfg *Config) Validate() error {
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}

	if cfg.ServerAddress != "" && pkg.ValidateServerAddress(cfg.ServerAddress) == "" {
		return fmt.Errorf("SERVER_ADDRESS must be in host:port form, got %q", cfg.ServerAddress)
	}

	if cfg.MongoMaxPoolSize != "" {
		size, err := strconv.ParseUint(cfg.MongoMaxPoolSize, 10, 64)
		if err != nil || size == 0 || size > constant.MongoMaxAllowedPoolSize {
			return fmt.Errorf("MONGO_MAX_POOL_SIZE must be an integer between 1 and %d, got %q",
				constant.MongoMaxAllowedPoolSize, cfg.MongoMaxPoolSize)
		}
	}

	switch cfg.StorageProvider {
	case "", "local":
	case "s3":
		if cfg.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET must be set when STORAGE_PROVIDER is s3")
		}
	default:
		return fmt.Errorf("STORAGE_PROVIDER must be local or s3, got %q", cfg.StorageProvider)
	}

	for name, value := range map[string]string{
		"PDF_WORKERS":             cfg.PDFWorkers,
		"PDF_TIMEOUT_SECONDS":     cfg.PDFTimeoutSeconds,
		"RATE_LIMIT_GLOBAL_MAX":   cfg.RateLimitGlobalMax,
		"RATE_LIMIT_DOWNLOAD_MAX": cfg.RateLimitDownloadMax,
		"RATE_LIMIT_DISPATCH_MAX": cfg.RateLimitDispatchMax,
		"RATE_LIMIT_WINDOW_SECONDS": cfg.RateLimitWindowSeconds,
	} {
		if value == "" {
			continue
		}

		if n, err := strconv.Atoi(value); err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive integer, got %q", name, value)
		}
	}

	return nil
}

// initConfigAndLogger loads configuration from environment variables,
// validates it, and initializes the structured logger.
func initConfigAndLogger() (*Config, log.Logger, error) {
	// Best effort: a missing .env file is the normal case in containers.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := libCommons.SetConfigFromEnvVars(cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to load config from env vars: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, zap.InitializeLogger(), nil
}

// InitServers wires every adapter together and returns the runnable service.
func InitServers() (*Service, error) {
	cfg, logger, err := initConfigAndLogger()
	if err != nil {
		return nil, err
	}

	// Init Open telemetry to control logs and flows
	telemetry := &opentelemetry.Telemetry{
		TelemetryConfig: opentelemetry.TelemetryConfig{
			LibraryName:               cfg.OtelLibraryName,
			ServiceName:               cfg.OtelServiceName,
			ServiceVersion:            cfg.OtelServiceVersion,
			DeploymentEnv:             cfg.OtelDeploymentEnv,
			CollectorExporterEndpoint: cfg.OtelColExporterEndpoint,
		},
	}

	mongoRes, err := initMongoDB(cfg, logger)
	if err != nil {
		return nil, err
	}

	documentStore, err := initStorage(cfg, logger)
	if err != nil {
		return nil, err
	}

	workerPool, documentWriter := initPDFPipeline(cfg, logger)

	rabbitRes := initRabbitMQ(cfg, logger)

	redisConnection := initRedis(cfg, logger)

	reportService := &services.UseCase{
		ProductRepo:   mongoRes.productRepo,
		ReportRepo:    mongoRes.reportRepo,
		DocumentStore: documentStore,
		Writer:        documentWriter,
	}
	if rabbitRes != nil {
		reportService.RabbitMQRepo = rabbitRes.producer
	}

	reportHandler := &in.ReportHandler{
		Service: reportService,
	}

	routesConfig := in.RoutesConfig{
		JWTSecret: cfg.JWTSecret,
		RateLimit: cfg.rateLimitConfig(redisConnection, logger),
	}

	readinessDeps := &in.ReadinessDeps{
		MongoConnection: mongoRes.connection,
		RedisConnection: redisConnection,
		DocumentStore:   documentStore,
		WorkerPool:      workerPool,
	}
	if rabbitRes != nil {
		readinessDeps.RabbitMQConnection = rabbitRes.connection
	}

	httpApp := in.NewRoutes(logger, telemetry, routesConfig, reportHandler, readinessDeps)
	serverAPI := NewServer(cfg, httpApp, logger, telemetry)

	svc := &Service{
		Server:          serverAPI,
		Logger:          logger,
		mongoConnection: mongoRes.connection,
		redisConnection: redisConnection,
		workerPool:      workerPool,
	}
	if rabbitRes != nil {
		svc.rabbitMQConnection = rabbitRes.connection
	}

	return svc, nil
}
