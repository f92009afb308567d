// Copyright (c) 2026 Clearlabel. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportGeneratedEvent is the message published after a report has been
// rendered, stored and registered. It is fire-and-forget: delivery failures
// never affect the generation outcome.
type ReportGeneratedEvent struct {
	ReportID   uuid.UUID `json:"report_id"`
	ProductID  uuid.UUID `json:"product_id"`
	Filename   string    `json:"filename"`
	ReportType string    `json:"report_type"`
	CreatedBy  uuid.UUID `json:"created_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
