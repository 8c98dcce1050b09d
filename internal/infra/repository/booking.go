package repository

import (
	"context"

	"ride-together/internal/domain/booking"
	"ride-together/internal/infra"
	"ride-together/internal/infra/repository/converter"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	InsertBookingRequestIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingRequestIfAbsentParams) (uuid.UUID, error)
	DecideBookingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.DecideBookingRequestParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

// CreateIfAbsent relies on ON CONFLICT DO NOTHING: a conflicting row
// yields no RETURNING row, which is reported as created == false.
func (r *BookingRepository) CreateIfAbsent(ctx context.Context, tx sqlc.DBTX, req *booking.Request) (uuid.UUID, bool, error) {
	id, err := r.queries.InsertBookingRequestIfAbsent(ctx, tx, converter.BookingToInsertParams(req))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, false, nil
		}
		return uuid.Nil, false, infra.WrapRepoErr("failed to insert booking request", err)
	}
	return id, true, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, req *booking.Request) error {
	n, err := r.queries.DecideBookingRequest(ctx, tx, converter.BookingToDecideParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking request status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking request is no longer pending", nil, infra.KindConditionFailed)
	}
	return nil
}
