// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package constant

import "time"

// RabbitMQ routing for report lifecycle events.
const (
	// ExchangeReportEvents is the topic exchange where report lifecycle
	// events are published.
	ExchangeReportEvents = "transparency.reports.events"

	// KeyReportGenerated is the routing key for a successfully generated
	// report. Consumers subscribe to it for notifications and audit trails.
	KeyReportGenerated = "report.generated"
)

// RabbitMQ producer retry configuration.
const (
	// ProducerMaxRetries is the maximum number of publish retry attempts before giving up.
	ProducerMaxRetries = 5

	// ProducerInitialBackoff is the initial delay before the first retry attempt.
	ProducerInitialBackoff = 500 * time.Millisecond

	// ProducerMaxBackoff is the upper bound for the producer retry backoff delay.
	ProducerMaxBackoff = 10 * time.Second

	// ProducerBackoffFactor is the multiplier applied to the backoff on each successive retry.
	ProducerBackoffFactor = 2.0
)
