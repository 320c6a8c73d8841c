package events_test

import (
	"encoding/json"
	"testing"

	"github.com/ariefcatur/go-store-api.git/internal/events"
	"github.com/ariefcatur/go-store-api.git/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	env := events.NewEnvelope(events.EventOrderCreated, "store-api", "trace-1", "42",
		events.OrderCreatedPayload{
			OrderID: 42, UserID: 1,
			Items: []store.OrderItem{{ProductID: 7, Quantity: 2}},
			Total: 20.00,
		})

	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, events.EventOrderCreated, env.EventType)
	assert.Equal(t, 1, env.EventVersion)
	assert.Equal(t, "store-api", env.Producer)
	assert.Equal(t, "trace-1", env.TraceID)
	assert.Equal(t, "42", env.CorrelationID)
	assert.False(t, env.OccurredAt.IsZero())

	var p events.OrderCreatedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &p))
	assert.Equal(t, 42, p.OrderID)
	require.Len(t, p.Items, 1)
	assert.Equal(t, 7, p.Items[0].ProductID)
	assert.Equal(t, 20.00, p.Total)
}

func TestPartitionKey(t *testing.T) {
	assert.Equal(t, []byte("42"), events.PartitionKey(42))
}

func TestNilProducerIsNoOp(t *testing.T) {
	var p *events.Producer
	// must not panic
	p.Publish(events.TopicOrderCreated, events.PartitionKey(1),
		events.NewEnvelope(events.EventOrderCreated, "x", "", "1", nil))
	p.Close()
	p.WaitClosed()
}
