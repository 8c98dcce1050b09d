//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	"ride-together/internal/domain/notification"
	"ride-together/internal/domain/trail"
	"ride-together/internal/domain/user"
	"ride-together/internal/infra"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/usecase/queries"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var jst = time.FixedZone("JST", 9*60*60)

// Saturday 2026-10-17 in Tokyo.
var testNow = time.Date(2026, 10, 17, 15, 0, 0, 0, jst)

func assertIs(t *testing.T, err, target error) {
	t.Helper()
	assert.Truef(t, errs.Is(err, target), "expected %v, got %v", target, err)
}

func notFound() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

type fakeSlots struct {
	slots []*availability.Slot
	err   error
}

func (f *fakeSlots) FindByID(_ context.Context, id uuid.UUID) (*availability.Slot, error) {
	for _, s := range f.slots {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, notFound()
}

func (f *fakeSlots) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*availability.Slot, error) {
	var out []*availability.Slot
	for _, s := range f.slots {
		if s.IsOwnedBy(ownerID) {
			out = append(out, s)
		}
	}
	return out, f.err
}

func (f *fakeSlots) FindIDsByOwner(_ context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, s := range f.slots {
		if s.IsOwnedBy(ownerID) {
			out = append(out, s.ID())
		}
	}
	return out, f.err
}

// FindPublicFrom returns every public slot; date filtering is left to the
// caller so the in-process guard is exercised.
func (f *fakeSlots) FindPublicFrom(_ context.Context, _ availability.RideDate) ([]*availability.Slot, error) {
	var out []*availability.Slot
	for _, s := range f.slots {
		if s.Visibility() == availability.VisibilityPublic {
			out = append(out, s)
		}
	}
	return out, f.err
}

type fakeBookings struct {
	requests     []*booking.Request
	pendingCalls int
	err          error
}

func (f *fakeBookings) FindByID(_ context.Context, id uuid.UUID) (*booking.Request, error) {
	for _, r := range f.requests {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, notFound()
}

func (f *fakeBookings) FindPendingForSlots(_ context.Context, slotIDs []uuid.UUID) ([]*booking.Request, error) {
	f.pendingCalls++
	want := make(map[uuid.UUID]bool, len(slotIDs))
	for _, id := range slotIDs {
		want[id] = true
	}
	var out []*booking.Request
	for _, r := range f.requests {
		if want[r.AvailabilityID()] && r.Status() == booking.StatusPending {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeBookings) FindAcceptedAsOwner(_ context.Context, ownerID uuid.UUID, _ availability.RideDate) ([]*booking.Request, error) {
	return f.accepted(func(r *booking.Request) bool { return r.OwnerID() == ownerID })
}

func (f *fakeBookings) FindAcceptedAsRequester(_ context.Context, requesterID uuid.UUID, _ availability.RideDate) ([]*booking.Request, error) {
	return f.accepted(func(r *booking.Request) bool { return r.RequesterID() == requesterID })
}

func (f *fakeBookings) accepted(match func(*booking.Request) bool) ([]*booking.Request, error) {
	var out []*booking.Request
	for _, r := range f.requests {
		if r.Status() == booking.StatusAccepted && match(r) {
			out = append(out, r)
		}
	}
	return out, f.err
}

type fakeFriends struct {
	ids     map[uuid.UUID][]uuid.UUID
	friends  []*queries.FriendView
	requests map[uuid.UUID][]*queries.FriendRequestView
	calls    int
}

func (f *fakeFriends) FindFriendIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	f.calls++
	return f.ids[userID], nil
}

func (f *fakeFriends) FindFriends(_ context.Context, _ uuid.UUID) ([]*queries.FriendView, error) {
	return f.friends, nil
}

func (f *fakeFriends) FindIncomingRequests(_ context.Context, userID uuid.UUID) ([]*queries.FriendRequestView, error) {
	return f.requests[userID], nil
}

type fakeDirectory struct {
	names map[uuid.UUID]string
	err   error
	asked [][]uuid.UUID
}

func (f *fakeDirectory) DisplayNames(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	f.asked = append(f.asked, ids)
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[uuid.UUID]string)
	for _, id := range ids {
		if name, ok := f.names[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

type fakeUsers struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeUsers) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, notFound()
}

func (f *fakeUsers) FindByEmail(_ context.Context, _ string) (*user.User, error) {
	return nil, notFound()
}

func (f *fakeUsers) FindByIDs(_ context.Context, _ []uuid.UUID) ([]*user.User, error) {
	return nil, nil
}

type fakeNotifications struct {
	items     []*notification.Notification
	gotLimit  int32
	gotUnread bool
}

func (f *fakeNotifications) FindByUser(_ context.Context, _ uuid.UUID, unreadOnly bool, limit int32) ([]*notification.Notification, error) {
	f.gotUnread = unreadOnly
	f.gotLimit = limit
	return f.items, nil
}

type fakeCatalog []*trail.Trail

func (f fakeCatalog) Trails() []*trail.Trail { return f }

type fakeCalendar struct {
	rides []*queries.ConfirmedRideView
}

func (f *fakeCalendar) Render(rides []*queries.ConfirmedRideView, _ time.Time) ([]byte, error) {
	f.rides = rides
	return []byte("BEGIN:VCALENDAR"), nil
}

type fakeFeed struct {
	filter shared.ChangeFilter
}

func (f *fakeFeed) Subscribe(filter shared.ChangeFilter, _ func(shared.ChangeEvent)) shared.Unsubscribe {
	f.filter = filter
	return func() {}
}
