// Package eventbus provides in-process publish/subscribe for domain events.
package eventbus

import (
	"context"

	"github.com/amirasaad/finance/pkg/domain"
)

// HandlerFunc reacts to a published event.
type HandlerFunc func(ctx context.Context, event domain.Event)

// EventBus defines the contract for publishing and subscribing to domain events.
type EventBus interface {
	Publish(ctx context.Context, event domain.Event) error
	Subscribe(eventType string, handler HandlerFunc)
}
