package readstore

import (
	"context"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	"ride-together/internal/infra"
	"ride-together/internal/infra/repository/converter"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingRequestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BookingRequests, error)
	ListPendingRequestsForSlots(ctx context.Context, db sqlc.DBTX, slotIds []uuid.UUID) ([]sqlc.BookingRequests, error)
	ListAcceptedRequestsAsOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAcceptedRequestsAsOwnerParams) ([]sqlc.BookingRequests, error)
	ListAcceptedRequestsAsRequester(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAcceptedRequestsAsRequesterParams) ([]sqlc.BookingRequests, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*booking.Request, error) {
	row, err := s.queries.GetBookingRequestByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking request by ID", err)
	}
	req, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, corruptRow("booking request", err)
	}
	return req, nil
}

func (s *BookingReadStore) FindPendingForSlots(ctx context.Context, slotIDs []uuid.UUID) ([]*booking.Request, error) {
	rows, err := s.queries.ListPendingRequestsForSlots(ctx, s.db, slotIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pending booking requests", err)
	}
	return s.toRequests(rows)
}

func (s *BookingReadStore) FindAcceptedAsOwner(ctx context.Context, ownerID uuid.UUID, from availability.RideDate) ([]*booking.Request, error) {
	rows, err := s.queries.ListAcceptedRequestsAsOwner(ctx, s.db, sqlc.ListAcceptedRequestsAsOwnerParams{
		OwnerID:  ownerID,
		RideDate: pgconv.DateToPgtype(from.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accepted requests as owner", err)
	}
	return s.toRequests(rows)
}

func (s *BookingReadStore) FindAcceptedAsRequester(ctx context.Context, requesterID uuid.UUID, from availability.RideDate) ([]*booking.Request, error) {
	rows, err := s.queries.ListAcceptedRequestsAsRequester(ctx, s.db, sqlc.ListAcceptedRequestsAsRequesterParams{
		RequesterID: requesterID,
		RideDate:    pgconv.DateToPgtype(from.Time()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list accepted requests as requester", err)
	}
	return s.toRequests(rows)
}

func (s *BookingReadStore) toRequests(rows []sqlc.BookingRequests) ([]*booking.Request, error) {
	reqs, err := converter.BookingsFromRows(rows)
	if err != nil {
		return nil, corruptRow("booking request", err)
	}
	return reqs, nil
}
