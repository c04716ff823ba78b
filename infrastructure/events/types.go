// Package events defines the content lifecycle events published on the
// content-events Redis stream. Downstream consumers (static rebuilds, search
// indexing, notifications) read the stream with a consumer group.
package events

import (
	"time"

	"github.com/google/uuid"
)

// StreamName is the Redis stream for content events.
const StreamName = "content-events"

// MaxStreamLength caps the stream with approximate trimming.
const MaxStreamLength = 10000

// EventType represents the type of content event.
type EventType string

const (
	// ContentCreated indicates a row was created through the admin API.
	ContentCreated EventType = "CONTENT_CREATED"
	// ContentUpdated indicates a row was modified.
	ContentUpdated EventType = "CONTENT_UPDATED"
	// ContentDeleted indicates a row was deleted.
	ContentDeleted EventType = "CONTENT_DELETED"
	// ContentImported indicates a bulk spreadsheet import finished.
	ContentImported EventType = "CONTENT_IMPORTED"
)

// ContentEvent is the envelope for all content events.
type ContentEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	EventType EventType `json:"event_type"`
	Entity    string    `json:"entity"`
	EntityID  uuid.UUID `json:"entity_id"`
	ParentID  uuid.UUID `json:"parent_id,omitzero"`
	Slug      string    `json:"slug,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// UpdatedPayload lists the columns written by an update.
type UpdatedPayload struct {
	ChangedFields []string `json:"changed_fields"`
	Published     *bool    `json:"published,omitempty"`
}

// ImportedPayload summarises a bulk import.
type ImportedPayload struct {
	Inserted int `json:"inserted"`
	Rejected int `json:"rejected"`
}
