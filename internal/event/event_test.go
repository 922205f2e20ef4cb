package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBusPublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(TradeProposed, func(_ context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	e := NewTradeEvent(TradeProposed, "t1", "alice", "bob", "c001", "c002", "alice")
	require.NoError(t, bus.Publish(context.Background(), e))

	require.Len(t, received, 1)
	payload, ok := received[0].Payload.(TradeLifecyclePayloadV1)
	require.True(t, ok)
	assert.Equal(t, "t1", payload.TradeID)
	assert.Equal(t, "alice", payload.ActorID)
	assert.Equal(t, EventSchemaVersion, received[0].Version)
}

func TestMemoryBusNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	e := NewTradeEvent(TradeCompleted, "t1", "alice", "bob", "c001", "c002", "")
	assert.NoError(t, bus.Publish(context.Background(), e))
}

func TestMemoryBusHandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(TradeDeclined, func(_ context.Context, _ Event) error {
		calls++
		return errors.New("handler broke")
	})
	bus.Subscribe(TradeDeclined, func(_ context.Context, _ Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewTradeEvent(TradeDeclined, "t1", "a", "b", "c1", "c2", "b"))
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestResilientPublisherSwallowsFailures(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(TradeCancelled, func(_ context.Context, _ Event) error {
		return errors.New("always fails")
	})

	pub := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     1,
		RetryDelay:     0,
		DeadLetterPath: t.TempDir() + "/dead_letters.jsonl",
	})

	err := pub.Publish(context.Background(), NewTradeEvent(TradeCancelled, "t1", "a", "b", "c1", "c2", "a"))
	assert.NoError(t, err, "callers are decoupled from delivery failures")
}
