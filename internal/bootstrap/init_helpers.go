// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/clearlabel/transparency-portal/internal/adapters/http/in"
	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/product"
	"github.com/clearlabel/transparency-portal/internal/adapters/mongodb/report"
	"github.com/clearlabel/transparency-portal/internal/adapters/rabbitmq"
	"github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/pdf"
	"github.com/clearlabel/transparency-portal/pkg/storage"

	"github.com/LerianStudio/lib-commons/v2/commons/log"
	mongoDB "github.com/LerianStudio/lib-commons/v2/commons/mongo"
	libRabbitmq "github.com/LerianStudio/lib-commons/v2/commons/rabbitmq"
	libRedis "github.com/LerianStudio/lib-commons/v2/commons/redis"
)

// mongoResources holds MongoDB-related resources created during initialization.
type mongoResources struct {
	connection  *mongoDB.MongoConnection
	reportRepo  *report.ReportMongoDBRepository
	productRepo *product.ProductMongoDBRepository
}

// rabbitResources holds RabbitMQ-related resources created during initialization.
type rabbitResources struct {
	connection *libRabbitmq.RabbitMQConnection
	producer   *rabbitmq.ProducerRabbitMQRepository
}

// buildMongoSource assembles the MongoDB connection URI with the password
// escaped, so credentials containing reserved characters keep working.
func buildMongoSource(cfg *Config) string {
	escapedPass := url.QueryEscape(cfg.MongoDBPassword)

	return fmt.Sprintf("%s://%s:%s@%s:%s",
		cfg.MongoURI, cfg.MongoDBUser, escapedPass, cfg.MongoDBHost, cfg.MongoDBPort)
}

// initMongoDB establishes the MongoDB connection and creates the report and
// product repositories on top of it.
func initMongoDB(cfg *Config, logger log.Logger) (*mongoResources, error) {
	mongoSource := buildMongoSource(cfg)

	mongoMaxPoolSize, _ := strconv.ParseUint(cfg.MongoMaxPoolSize, 10, 64)
	if mongoMaxPoolSize == 0 {
		mongoMaxPoolSize = constant.MongoDefaultMaxPoolSize
	}

	logger.Infof("MongoDB connecting to %s", pkg.RedactConnectionString(mongoSource))

	mongoConnection := &mongoDB.MongoConnection{
		ConnectionStringSource: mongoSource,
		Database:               cfg.MongoDBName,
		Logger:                 logger,
		MaxPoolSize:            mongoMaxPoolSize,
	}

	reportMongoDBRepository, err := report.NewReportMongoDBRepository(mongoConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize report mongodb repository: %w", err)
	}

	productMongoDBRepository := product.NewProductMongoDBRepository(mongoConnection)

	return &mongoResources{
		connection:  mongoConnection,
		reportRepo:  reportMongoDBRepository,
		productRepo: productMongoDBRepository,
	}, nil
}

// initStorage creates the document store that holds generated report files,
// either on the local filesystem or on an S3-compatible service.
func initStorage(cfg *Config, logger log.Logger) (storage.DocumentStore, error) {
	storageConfig := &storage.Config{
		Provider:          cfg.StorageProvider,
		LocalReportsRoot:  cfg.LocalReportsRoot,
		S3Region:          cfg.S3Region,
		S3Bucket:          cfg.S3Bucket,
		S3AccessKeyID:     cfg.S3AccessKeyID,
		S3SecretAccessKey: cfg.S3SecretAccessKey,
		S3Endpoint:        cfg.S3Endpoint,
		S3ForcePathStyle:  cfg.S3ForcePathStyle,
	}

	ctx := pkg.ContextWithLogger(context.Background(), logger)

	documentStore, err := storage.NewDocumentStore(ctx, storageConfig, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create document store: %w", err)
	}

	return documentStore, nil
}

// initPDFPipeline creates the Chrome worker pool and the document writer that
// renders report sections into PDF files.
func initPDFPipeline(cfg *Config, logger log.Logger) (*pdf.WorkerPool, *pdf.DocumentWriter) {
	workers := intOrDefault(cfg.PDFWorkers, constant.PDFDefaultWorkers)
	timeoutSeconds := intOrDefault(cfg.PDFTimeoutSeconds, constant.PDFDefaultTimeoutSeconds)

	workerPool := pdf.NewWorkerPool(workers, time.Duration(timeoutSeconds)*time.Second, logger)

	logger.Infof("PDF pipeline initialized with %d workers and a %ds timeout", workers, timeoutSeconds)

	return workerPool, pdf.NewDocumentWriter(workerPool)
}

// initRabbitMQ establishes the RabbitMQ connection and creates the report
// event producer. The broker is optional: when RABBITMQ_HOST is unset the
// service runs without event publishing.
func initRabbitMQ(cfg *Config, logger log.Logger) *rabbitResources {
	if cfg.RabbitMQHost == "" {
		logger.Info("RabbitMQ not configured, report events disabled")

		return nil
	}

	rabbitSource := fmt.Sprintf("%s://%s:%s@%s:%s",
		cfg.RabbitURI, cfg.RabbitMQUser, cfg.RabbitMQPass, cfg.RabbitMQHost, cfg.RabbitMQPortAMQP)

	logger.Infof("RabbitMQ connecting to %s", pkg.RedactConnectionString(rabbitSource))

	rabbitMQConnection := &libRabbitmq.RabbitMQConnection{
		ConnectionStringSource: rabbitSource,
		HealthCheckURL:         cfg.RabbitMQHealthCheckURL,
		Host:                   cfg.RabbitMQHost,
		Port:                   cfg.RabbitMQPortHost,
		User:                   cfg.RabbitMQUser,
		Pass:                   cfg.RabbitMQPass,
		Logger:                 logger,
	}

	return &rabbitResources{
		connection: rabbitMQConnection,
		producer:   rabbitmq.NewProducerRabbitMQ(rabbitMQConnection),
	}
}

// initRedis establishes the Redis connection backing the distributed rate
// limiter. Redis is optional: without it each instance counts requests in
// memory on its own.
func initRedis(cfg *Config, logger log.Logger) *libRedis.RedisConnection {
	if cfg.RedisHost == "" {
		logger.Info("Redis not configured, rate limiting counters kept in memory")

		return nil
	}

	return &libRedis.RedisConnection{
		Address:  strings.Split(cfg.RedisHost, ","),
		Password: cfg.RedisPassword,
		DB:       intOrDefault(cfg.RedisDB, 0),
		Protocol: intOrDefault(cfg.RedisProtocol, 3),
		Logger:   logger,
	}
}

// rateLimitConfig translates the raw environment values into the router's
// rate limiter configuration, falling back to the package defaults.
func (cfg *Config) rateLimitConfig(redisConnection *libRedis.RedisConnection, logger log.Logger) in.RateLimitConfig {
	rateLimit := in.RateLimitConfig{
		Enabled:     cfg.RateLimitEnabled,
		GlobalMax:   intOrDefault(cfg.RateLimitGlobalMax, constant.RateLimitDefaultGlobalMax),
		DownloadMax: intOrDefault(cfg.RateLimitDownloadMax, constant.RateLimitDefaultDownloadMax),
		DispatchMax: intOrDefault(cfg.RateLimitDispatchMax, constant.RateLimitDefaultDispatchMax),
		Window:      constant.RateLimitDefaultWindow,
	}

	if cfg.RateLimitWindowSeconds != "" {
		if seconds, err := strconv.Atoi(cfg.RateLimitWindowSeconds); err == nil && seconds > 0 {
			rateLimit.Window = time.Duration(seconds) * time.Second
		}
	}

	if redisConnection != nil {
		rateLimit.Storage = in.NewRedisStorage(redisConnection, logger)
	}

	return rateLimit
}

// intOrDefault parses a positive integer from an environment value, falling
// back to def when the value is empty or malformed.
func intOrDefault(value string, def int) int {
	if value == "" {
		return def
	}

	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return def
	}

	return n
}
