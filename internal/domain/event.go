// internal/domain/event.go
package domain

import (
	"encoding/json"
	"strings"
)

type EventType string

const (
	EventOrderCreated   EventType = "order:created"
	EventOrderUpdated   EventType = "order:updated"
	EventOrderAccepted  EventType = "order:accepted"
	EventOrderRejected  EventType = "order:rejected"
	EventOrderDelivered EventType = "order:delivered"
	EventLocationUpdate EventType = "location:updated"
	EventPaymentUpdate  EventType = "payment:updated"
	EventUserUpdate     EventType = "user:updated"
)

// Event is a realtime notification pushed by the platform.
type Event struct {
	Type    EventType       `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
	UserID  string          `json:"user_id,omitempty"`
	OrderID string          `json:"order_id,omitempty"`
}

func (t EventType) IsOrderEvent() bool {
	return strings.HasPrefix(string(t), "order:")
}
