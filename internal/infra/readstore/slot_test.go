//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"ride-together/internal/domain/availability"
	"ride-together/internal/infra"
	"ride-together/internal/infra/repository/converter"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/pkg/pgconv"
	"ride-together/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSlotViewQueries struct {
	mock.Mock
}

func (m *MockSlotViewQueries) GetSlotByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Slots, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Slots), args.Error(1)
}

func (m *MockSlotViewQueries) ListSlotsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Slots, error) {
	args := m.Called(ctx, db, ownerID)
	return args.Get(0).([]sqlc.Slots), args.Error(1)
}

func (m *MockSlotViewQueries) ListSlotIDsByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, db, ownerID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockSlotViewQueries) ListPublicSlotsFrom(ctx context.Context, db sqlc.DBTX, rideDate pgtype.Date) ([]sqlc.Slots, error) {
	args := m.Called(ctx, db, rideDate)
	return args.Get(0).([]sqlc.Slots), args.Error(1)
}

func slotRow(b *builder.SlotBuilder) sqlc.Slots {
	p := converter.SlotToCreateParams(b.BuildDomain())
	return sqlc.Slots{
		ID:         p.ID,
		OwnerID:    p.OwnerID,
		RideDate:   p.RideDate,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		TrailType:  p.TrailType,
		Visibility: p.Visibility,
		CreatedAt:  p.CreatedAt,
	}
}

func TestSlotReadStore_FindByID(t *testing.T) {
	row := slotRow(builder.NewSlotBuilder().WithTimes("06:30", "08:45").WithTrailType("gravel"))

	corrupt := row
	corrupt.StartTime = pgtype.Time{}

	tests := []struct {
		name      string
		mockRow   sqlc.Slots
		mockError error
		wantKind  infra.RepositoryErrorKind
		wantErr   bool
		wantStore bool
		wantCorr  bool
	}{
		{name: "success", mockRow: row},
		{name: "not found", mockError: sql.ErrNoRows, wantErr: true, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantErr: true, wantKind: infra.KindDBFailure, wantStore: true},
		{name: "corrupt row", mockRow: corrupt, wantErr: true, wantKind: infra.KindDBFailure, wantStore: true, wantCorr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockSlotViewQueries)
			store := NewSlotReadStore(mockQueries, nil)
			mockQueries.On("GetSlotByID", mock.Anything, mock.Anything, row.ID).Return(tt.mockRow, tt.mockError)

			slot, err := store.FindByID(context.Background(), row.ID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, slot)
				assert.True(t, infra.IsKind(err, tt.wantKind), err.Error())
				assert.Equal(t, tt.wantStore, errs.Is(err, errs.ErrStoreUnavailable))
				assert.Equal(t, tt.wantCorr, errs.Is(err, converter.ErrCorruptRow))
			} else {
				require.NoError(t, err)
				assert.Equal(t, row.ID, slot.ID())
				assert.Equal(t, "2026-10-20", slot.Date().String())
				assert.Equal(t, "06:30", slot.TimeRange().Start().String())
				assert.Equal(t, "08:45", slot.TimeRange().End().String())
				assert.Equal(t, availability.VisibilityPublic, slot.Visibility())
				assert.Equal(t, availability.TrailType("gravel"), slot.TrailType())
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestSlotReadStore_FindPublicFrom(t *testing.T) {
	from, err := availability.ParseRideDate("2026-10-17")
	require.NoError(t, err)
	rows := []sqlc.Slots{
		slotRow(builder.NewSlotBuilder().WithDate("2026-10-17")),
		slotRow(builder.NewSlotBuilder().WithDate("2026-10-18")),
	}

	mockQueries := new(MockSlotViewQueries)
	mockQueries.On("ListPublicSlotsFrom", mock.Anything, mock.Anything, pgconv.DateToPgtype(from.Time())).Return(rows, nil)

	slots, err := NewSlotReadStore(mockQueries, nil).FindPublicFrom(context.Background(), from)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "2026-10-18", slots[1].Date().String())
	mockQueries.AssertExpectations(t)
}

func TestSlotReadStore_FindIDsByOwner(t *testing.T) {
	owner := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockSlotViewQueries)
		mockQueries.On("ListSlotIDsByOwner", mock.Anything, mock.Anything, owner).Return(ids, nil)

		got, err := NewSlotReadStore(mockQueries, nil).FindIDsByOwner(context.Background(), owner)
		require.NoError(t, err)
		assert.Equal(t, ids, got)
	})

	t.Run("database error is a store failure", func(t *testing.T) {
		mockQueries := new(MockSlotViewQueries)
		mockQueries.On("ListSlotIDsByOwner", mock.Anything, mock.Anything, owner).Return([]uuid.UUID(nil), assert.AnError)

		_, err := NewSlotReadStore(mockQueries, nil).FindIDsByOwner(context.Background(), owner)
		assert.True(t, errs.Is(err, errs.ErrStoreUnavailable))
	})
}
