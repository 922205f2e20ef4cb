package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Trade lifecycle event types
const (
	TradeProposed  Type = "trade.proposed"
	TradeConfirmed Type = "trade.confirmed"
	TradeCompleted Type = "trade.completed"
	TradeDeclined  Type = "trade.declined"
	TradeCancelled Type = "trade.cancelled"
)

// TradeLifecyclePayloadV1 is the typed payload for trade lifecycle events
type TradeLifecyclePayloadV1 struct {
	TradeID                string `json:"trade_id"`
	InitiatorID            string `json:"initiator_id"`
	ResponderID            string `json:"responder_id"`
	CardOfferedByInitiator string `json:"card_offered_by_initiator"`
	CardOfferedByResponder string `json:"card_offered_by_responder"`
	ActorID                string `json:"actor_id,omitempty"`
	Timestamp              int64  `json:"timestamp"`
}

// NewTradeEvent creates a trade lifecycle event with a type-safe payload.
// actorID is the user whose action caused the transition; empty for
// transitions not attributable to a single user.
func NewTradeEvent(eventType Type, tradeID, initiatorID, responderID, cardByInitiator, cardByResponder, actorID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: TradeLifecyclePayloadV1{
			TradeID:                tradeID,
			InitiatorID:            initiatorID,
			ResponderID:            responderID,
			CardOfferedByInitiator: cardByInitiator,
			CardOfferedByResponder: cardByResponder,
			ActorID:                actorID,
			Timestamp:              time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run
// synchronously; a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
