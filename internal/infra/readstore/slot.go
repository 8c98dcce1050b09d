package readstore

import (
	"context"

	"ride-together/internal/domain/availability"
	"ride-together/internal/infra"
	"ride-together/internal/infra/repository/converter"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SlotViewQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error)
	ListSlotsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Slots, error)
	ListSlotIDsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]uuid.UUID, error)
	ListPublicSlotsFrom(ctx context.Context, db sqlc.DBTX, rideDate pgtype.Date) ([]sqlc.Slots, error)
}

type SlotReadStore struct {
	queries SlotViewQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotViewQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*availability.Slot, error) {
	row, err := s.queries.GetSlotByID(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find slot by ID", err)
	}
	slot, err := converter.SlotFromRow(row)
	if err != nil {
		return nil, corruptRow("slot", err)
	}
	return slot, nil
}

func (s *SlotReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*availability.Slot, error) {
	rows, err := s.queries.ListSlotsByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots by owner", err)
	}
	slots, err := converter.SlotsFromRows(rows)
	if err != nil {
		return nil, corruptRow("slot", err)
	}
	return slots, nil
}

func (s *SlotReadStore) FindIDsByOwner(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.queries.ListSlotIDsByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slot ids by owner", err)
	}
	return ids, nil
}

// FindPublicFrom returns public slots dated on or after from, ordered by
// date, start time and id.
func (s *SlotReadStore) FindPublicFrom(ctx context.Context, from availability.RideDate) ([]*availability.Slot, error) {
	rows, err := s.queries.ListPublicSlotsFrom(ctx, s.db, pgconv.DateToPgtype(from.Time()))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list public slots", err)
	}
	slots, err := converter.SlotsFromRows(rows)
	if err != nil {
		return nil, corruptRow("slot", err)
	}
	return slots, nil
}

func corruptRow(entity string, err error) error {
	return errs.Mark(infra.WrapRepoErr("corrupt "+entity+" row", err, infra.KindDBFailure), converter.ErrCorruptRow)
}
