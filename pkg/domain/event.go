package domain

import "time"

// Event is a domain event published on the event bus.
type Event interface {
	Type() string
	OccurredAt() time.Time
}
