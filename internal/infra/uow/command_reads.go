package uow

import (
	"context"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	"ride-together/internal/infra/readstore"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads serves the write side's lookups on the same connection as
// the surrounding transaction, when there is one.
type commandReads struct {
	slots    *readstore.SlotReadStore
	bookings *readstore.BookingReadStore
	users    *readstore.UserReadStore
	friends  *readstore.FriendReadStore
}

func newCommandReads(q *sqlc.Queries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{
		slots:    readstore.NewSlotReadStore(q, dbtx),
		bookings: readstore.NewBookingReadStore(q, dbtx),
		users:    readstore.NewUserReadStore(q, dbtx),
		friends:  readstore.NewFriendReadStore(q, dbtx),
	}
}

func (r *commandReads) SlotByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error) {
	return r.slots.FindByID(ctx, id)
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Request, error) {
	return r.bookings.FindByID(ctx, id)
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, err := r.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		DisplayName:  u.DisplayName().Value(),
		PasswordHash: u.PasswordHash(),
	}, nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	u, err := r.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &shared.UserSnapshot{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		DisplayName:  u.DisplayName().Value(),
		PasswordHash: u.PasswordHash(),
	}, nil
}

func (r *commandReads) FriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.friends.FindFriendIDs(ctx, userID)
}
