package kafka

import (
	"encoding/json"
	"strings"
	"time"
)

// DefaultTopic receives every procurement event
const DefaultTopic = "procurement-events"

// Header keys set on every message
const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

// ProcurementEvent is the wire envelope for supplier and purchase order changes
type ProcurementEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	EntityID  uint            `json:"entity_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Entity returns the entity part of the event type, e.g. "supplier" for "supplier.created"
func (e ProcurementEvent) Entity() string {
	entity, _, _ := strings.Cut(e.EventType, ".")
	return entity
}
