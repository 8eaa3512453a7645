package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/finance/pkg/domain"
)

// ErrNilEvent is returned when Publish is called with a nil event.
var ErrNilEvent = errors.New("nil event")

// SimpleEventBus dispatches events synchronously to every handler currently
// subscribed to the event type. Events are not stored or replayed.
type SimpleEventBus struct {
	handlers map[string][]HandlerFunc
	mu       sync.RWMutex
}

// NewSimpleEventBus returns an empty bus.
func NewSimpleEventBus() *SimpleEventBus {
	return &SimpleEventBus{handlers: make(map[string][]HandlerFunc)}
}

// Publish calls each subscribed handler in subscription order. A panicking
// handler is recovered and reported as an error after the rest have run.
func (b *SimpleEventBus) Publish(ctx context.Context, event domain.Event) error {
	if event == nil {
		return ErrNilEvent
	}
	slog.Debug("EventBus.Publish", "event_type", event.Type(), "concrete_type", fmt.Sprintf("%T", event))

	b.mu.RLock()
	handlers := append([]HandlerFunc(nil), b.handlers[event.Type()]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if herr := dispatch(ctx, handler, event); herr != nil {
			errs = append(errs, herr)
		}
	}
	return errors.Join(errs...)
}

// Subscribe registers handler for eventType.
func (b *SimpleEventBus) Subscribe(eventType string, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

func dispatch(ctx context.Context, handler HandlerFunc, event domain.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler for %s panicked: %v", event.Type(), r)
		}
	}()
	handler(ctx, event)
	return nil
}
