package repository

import (
	"context"

	"ride-together/internal/domain/availability"
	"ride-together/internal/infra"
	"ride-together/internal/infra/repository/converter"
	sqlc "ride-together/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type SlotWriteQueries interface {
	CreateSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSlotParams) error
	DeleteSlot(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
}

func NewSlotRepository(queries SlotWriteQueries) *SlotRepository {
	return &SlotRepository{queries: queries}
}

func (r *SlotRepository) Create(ctx context.Context, tx sqlc.DBTX, slot *availability.Slot) error {
	if err := r.queries.CreateSlot(ctx, tx, converter.SlotToCreateParams(slot)); err != nil {
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteSlot(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete slot", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}
