package metrics

import (
	"context"
	"log/slog"

	"github.com/pockettrader/pockettrader/internal/event"
)

// EventMetricsCollector subscribes to trade lifecycle events and records
// metrics for them.
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all trade lifecycle events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.TradeProposed,
		event.TradeConfirmed,
		event.TradeCompleted,
		event.TradeDeclined,
		event.TradeCancelled,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	slog.Default().Debug(LogMsgEventMetricsRegistered)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(_ context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.TradeProposed:
		TradesProposed.Inc()
	case event.TradeCompleted:
		TradesCompleted.Inc()
	case event.TradeDeclined:
		TradesDeclined.Inc()
	case event.TradeCancelled:
		TradesCancelled.Inc()
	}
	return nil
}
