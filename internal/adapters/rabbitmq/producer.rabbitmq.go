// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/clearlabel/transparency-portal/pkg"
	"github.com/clearlabel/transparency-portal/pkg/constant"
	"github.com/clearlabel/transparency-portal/pkg/model"
	pkgRabbitmq "github.com/clearlabel/transparency-portal/pkg/rabbitmq"

	libCommons "github.com/LerianStudio/lib-commons/v2/commons"
	libConstants "github.com/LerianStudio/lib-commons/v2/commons/constants"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v2/commons/opentelemetry"
	libRabbitmq "github.com/LerianStudio/lib-commons/v2/commons/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/attribute"
)

// sleepFunc is the function used for sleeping between retries.
// Overridable in tests for deterministic behavior.
var sleepFunc = time.Sleep

// ProducerRabbitMQRepository is a rabbitmq implementation of the event producer.
type ProducerRabbitMQRepository struct {
	conn *libRabbitmq.RabbitMQConnection
}

// Compile-time interface satisfaction check.
var _ pkgRabbitmq.ProducerRepository = (*ProducerRabbitMQRepository)(nil)

// NewProducerRabbitMQ returns a new instance of ProducerRabbitMQRepository using the given rabbitmq connection.
// Connection is established lazily on first use to avoid panic during initialization.
func NewProducerRabbitMQ(c *libRabbitmq.RabbitMQConnection) *ProducerRabbitMQRepository {
	prmq := &ProducerRabbitMQRepository{
		conn: c,
	}

	if _, err := c.GetNewConnect(); err != nil {
		c.Logger.Errorf("Failed to connect to RabbitMQ during initialization: %v", err)
		c.Logger.Warn("RabbitMQ connection will be retried on first event publish")
	} else {
		c.Logger.Info("RabbitMQ producer connected successfully")
	}

	return prmq
}

// PublishReportGenerated publishes a report.generated event. On each attempt
// it calls EnsureChannel() to restore the channel if the connection dropped,
// then publishes. Retries up to ProducerMaxRetries with exponential backoff
// and full jitter to prevent thundering herd after a broker restart.
func (prmq *ProducerRabbitMQRepository) PublishReportGenerated(ctx context.Context, exchange, key string, event model.ReportGeneratedEvent) error {
	logger, tracer, reqId, _ := libCommons.NewTrackingFromContext(ctx)

	ctx, spanProducer := tracer.Start(ctx, "repository.rabbitmq.publish_report_generated")
	defer spanProducer.End()

	spanProducer.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.exchange", exchange),
		attribute.String("app.request.key", key),
	)

	if err := libOpentelemetry.SetSpanAttributesFromStruct(&spanProducer, "app.request.rabbitmq.event", event); err != nil {
		libOpentelemetry.HandleSpanError(&spanProducer, "Failed to convert event to JSON string", err)
	}

	message, err := json.Marshal(event)
	if err != nil {
		libOpentelemetry.HandleSpanError(&spanProducer, "Failed to marshal event struct", err)

		logger.Errorf("Failed to marshal event struct: %v", err)

		return err
	}

	headers := amqp.Table{
		libConstants.HeaderID: reqId,
	}

	libOpentelemetry.InjectTraceHeadersIntoQueue(ctx, (*map[string]any)(&headers))

	backoff := constant.ProducerInitialBackoff

	var publishErr error

	for attempt := 0; attempt <= constant.ProducerMaxRetries; attempt++ {
		if chanErr := prmq.conn.EnsureChannel(); chanErr != nil {
			logger.Errorf("EnsureChannel failed (attempt %d/%d): %v", attempt+1, constant.ProducerMaxRetries+1, chanErr)

			spanProducer.SetAttributes(
				attribute.Int("app.request.rabbitmq.retry_attempt", attempt),
			)

			if attempt == constant.ProducerMaxRetries {
				libOpentelemetry.HandleSpanError(&spanProducer, "Failed to ensure RabbitMQ channel after all retries", chanErr)

				return chanErr
			}

			sleepDuration := pkg.FullJitter(backoff)

			logger.Infof("Retrying EnsureChannel in %v (attempt %d/%d)", sleepDuration, attempt+1, constant.ProducerMaxRetries+1)

			sleepFunc(sleepDuration)

			backoff = pkg.NextBackoff(backoff)

			continue
		}

		publishErr = prmq.conn.Channel.Publish(
			exchange,
			key,
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Headers:      headers,
				Body:         message,
			})

		if publishErr == nil {
			logger.Infof("Published %s event for report %s", key, event.ReportID)

			return nil
		}

		logger.Errorf("Publish failed (attempt %d/%d): %v", attempt+1, constant.ProducerMaxRetries+1, publishErr)

		spanProducer.SetAttributes(
			attribute.Int("app.request.rabbitmq.retry_attempt", attempt),
		)

		if attempt == constant.ProducerMaxRetries {
			libOpentelemetry.HandleSpanError(&spanProducer, "Failed to publish event after all retries", publishErr)

			return publishErr
		}

		sleepDuration := pkg.FullJitter(backoff)

		logger.Infof("Retrying publish in %v (attempt %d/%d)", sleepDuration, attempt+1, constant.ProducerMaxRetries+1)

		sleepFunc(sleepDuration)

		backoff = pkg.NextBackoff(backoff)
	}

	return publishErr
}
