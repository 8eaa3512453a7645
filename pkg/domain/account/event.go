package account

import "time"

// EventTypeUpdated is the event type published after an account is updated.
const EventTypeUpdated = "account.updated"

// UpdatedEvent is published after an updated account has been persisted.
type UpdatedEvent struct {
	Account   *Account
	Timestamp time.Time
}

// NewUpdatedEvent builds an UpdatedEvent stamped with the current time.
func NewUpdatedEvent(a *Account) UpdatedEvent {
	return UpdatedEvent{Account: a, Timestamp: time.Now()}
}

// Type returns EventTypeUpdated.
func (e UpdatedEvent) Type() string { return EventTypeUpdated }

// OccurredAt returns when the update happened.
func (e UpdatedEvent) OccurredAt() time.Time { return e.Timestamp }
