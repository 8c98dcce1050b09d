//go:build unit

package changefeed

import (
	"testing"
	"time"

	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingEvent(status string, users ...uuid.UUID) shared.ChangeEvent {
	return shared.ChangeEvent{
		Collection: shared.CollectionBookings,
		Kind:       shared.EventBookingDecided,
		ID:         uuid.New(),
		Status:     status,
		UserIDs:    users,
		OccurredAt: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestBroker_DeliversMatchingEventsOnly(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	b := NewBroker()

	var got []shared.ChangeEvent
	unsubscribe := b.Subscribe(shared.ChangeFilter{
		Collection: shared.CollectionBookings,
		Status:     "accepted",
		UserID:     owner,
	}, func(ev shared.ChangeEvent) {
		got = append(got, ev)
	})
	defer unsubscribe()

	match := bookingEvent("accepted", owner, other)
	b.Dispatch(match)
	b.Dispatch(bookingEvent("declined", owner, other))
	b.Dispatch(bookingEvent("accepted", other))
	b.Dispatch(shared.ChangeEvent{Collection: shared.CollectionSlots, UserIDs: []uuid.UUID{owner}})

	require.Len(t, got, 1)
	assert.Equal(t, match.ID, got[0].ID)
}

func TestBroker_UnsubscribeStopsDeliveryAndIsIdempotent(t *testing.T) {
	b := NewBroker()
	calls := 0
	unsubscribe := b.Subscribe(shared.ChangeFilter{}, func(shared.ChangeEvent) { calls++ })
	keep := b.Subscribe(shared.ChangeFilter{}, func(shared.ChangeEvent) {})
	defer keep()

	b.Dispatch(bookingEvent("pending"))
	unsubscribe()
	unsubscribe()
	b.Dispatch(bookingEvent("pending"))

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, b.Len())
}

func TestDecode(t *testing.T) {
	_, err := decode(`{"kind":"booking_decided"}`)
	assert.Error(t, err)

	_, err = decode(`not json`)
	assert.Error(t, err)

	ev, err := decode(`{"collection":"bookings","kind":"booking_decided","status":"accepted","user_ids":[]}`)
	require.NoError(t, err)
	assert.Equal(t, shared.CollectionBookings, ev.Collection)
	assert.Equal(t, "accepted", ev.Status)
}
