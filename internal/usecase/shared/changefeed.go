package shared

import (
	"time"

	"github.com/google/uuid"
)

// ChangeChannel is the Postgres NOTIFY channel carrying ChangeEvents.
const ChangeChannel = "ride_changes"

type Collection string

const (
	CollectionBookings Collection = "bookings"
	CollectionSlots    Collection = "slots"
)

const (
	EventBookingRequested = "booking_requested"
	EventBookingDecided   = "booking_decided"
	EventSlotCreated      = "slot_created"
	EventSlotDeleted      = "slot_deleted"
)

type ChangeEvent struct {
	Collection Collection  `json:"collection"`
	Kind       string      `json:"kind"`
	ID         uuid.UUID   `json:"id"`
	Status     string      `json:"status,omitempty"`
	UserIDs    []uuid.UUID `json:"user_ids"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func (e ChangeEvent) Concerns(userID uuid.UUID) bool {
	for _, id := range e.UserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ChangeFilter selects events. Zero-valued fields match anything.
type ChangeFilter struct {
	Collection Collection
	Status     string
	UserID     uuid.UUID
}

func (f ChangeFilter) Matches(e ChangeEvent) bool {
	if f.Collection != "" && f.Collection != e.Collection {
		return false
	}
	if f.Status != "" && f.Status != e.Status {
		return false
	}
	if f.UserID != uuid.Nil && !e.Concerns(f.UserID) {
		return false
	}
	return true
}

// Unsubscribe stops delivery. Safe to call more than once.
type Unsubscribe func()

// ChangeFeed delivers committed changes to subscribers. Callbacks run on
// the feed's goroutine and must not block.
type ChangeFeed interface {
	Subscribe(filter ChangeFilter, fn func(ChangeEvent)) Unsubscribe
}
