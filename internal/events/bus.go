package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-club-setup/internal/logging"
)

// Bus dispatches events synchronously to subscribed handlers and then to
// any registered sinks.
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
	sinks    []Sink
	logger   logging.Logger
}

type BusOption func(*Bus)

func WithLogger(logger logging.Logger) BusOption {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func WithSink(sink Sink) BusOption {
	return func(b *Bus) {
		if sink != nil {
			b.sinks = append(b.sinks, sink)
		}
	}
}

func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		handlers: map[EventType][]Handler{},
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers handler for typ. Handlers run in registration order.
func (b *Bus) Subscribe(typ EventType, handler Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[typ] = append(b.handlers[typ], handler)
}

// AddSink registers an observer for every emitted event.
func (b *Bus) AddSink(sink Sink) {
	if sink == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sinks = append(b.sinks, sink)
}

// Emit runs the handlers for event.Type and returns the first error. Sinks
// only see events whose handlers succeeded; their failures are logged.
func (b *Bus) Emit(ctx context.Context, event StepEvent) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	sinks := append([]Sink(nil), b.sinks...)
	b.mu.RUnlock()

	logger := logging.FromContext(ctx, b.logger).WithFields(logging.Fields{
		"event_id":   event.ID,
		"event_type": string(event.Type),
		"club_id":    event.ClubID.String(),
		"step":       string(event.Step),
	})

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			RecordEventEmitted(event.Type, "error")
			logger.Error("event handler failed: %v", err)
			return fmt.Errorf("handle %s: %w", event.Type, err)
		}
	}
	RecordEventEmitted(event.Type, "success")

	for _, sink := range sinks {
		if err := sink.Publish(ctx, event); err != nil {
			logger.Warn("event sink failed: %v", err)
		}
	}

	logger.Debug("event emitted to %d handlers", len(handlers))
	return nil
}
