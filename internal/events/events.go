package events

import (
	"encoding/json"
	"time"

	"github.com/ariefcatur/go-store-api.git/internal/store"
	"github.com/google/uuid"
)

const (
	EventOrderCreated       = "OrderCreated"
	EventOrderStatusUpdated = "OrderStatusUpdated"
	EventOrderCancelled     = "OrderCancelled"
)

type Envelope struct {
	EventID       string          `json:"event_id"`   // uuid
	EventType     string          `json:"event_type"` // salah satu const di atas
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"` // RFC3339
	Producer      string          `json:"producer"`    // e.g., "store-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order id
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope builds a v1 envelope around a marshalled payload.
func NewEnvelope(eventType, producer, traceID, correlationID string, payload any) Envelope {
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       traceID,
		CorrelationID: correlationID,
		Payload:       MustMarshal(payload),
	}
}

// ---- Payload tipe per event ----

type OrderCreatedPayload struct {
	OrderID int               `json:"order_id"`
	UserID  int               `json:"user_id"`
	Items   []store.OrderItem `json:"items"`
	Total   float64           `json:"total"`
}

type OrderStatusUpdatedPayload struct {
	OrderID int          `json:"order_id"`
	Status  store.Status `json:"status"`
}

type OrderCancelledPayload struct {
	OrderID   int          `json:"order_id"`
	Status    store.Status `json:"status"` // status at cancellation time
	Restocked bool         `json:"restocked"`
}
