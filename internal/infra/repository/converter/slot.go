package converter

import (
	"ride-together/internal/domain/availability"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/pkg/pgconv"
)

var ErrCorruptRow = errs.New("stored row violates domain constraints")

func SlotToCreateParams(s *availability.Slot) sqlc.CreateSlotParams {
	return sqlc.CreateSlotParams{
		ID:         s.ID(),
		OwnerID:    s.OwnerID(),
		RideDate:   pgconv.DateToPgtype(s.Date().Time()),
		StartTime:  pgconv.MinutesToPgtype(s.TimeRange().Start().Minutes()),
		EndTime:    pgconv.MinutesToPgtype(s.TimeRange().End().Minutes()),
		TrailType:  s.TrailType().String(),
		Visibility: s.Visibility().String(),
		CreatedAt:  pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func SlotFromRow(row sqlc.Slots) (*availability.Slot, error) {
	tr, err := timeRangeFromRow(row.StartTime.Valid, pgconv.MinutesFromPgtype(row.StartTime), pgconv.MinutesFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	return availability.ReconstructSlot(
		row.ID,
		row.OwnerID,
		availability.DateOf(pgconv.DateFromPgtype(row.RideDate)),
		tr,
		availability.TrailType(row.TrailType),
		availability.Visibility(row.Visibility),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func SlotsFromRows(rows []sqlc.Slots) ([]*availability.Slot, error) {
	out := make([]*availability.Slot, 0, len(rows))
	for _, row := range rows {
		s, err := SlotFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func timeRangeFromRow(valid bool, startMin, endMin int) (availability.TimeRange, error) {
	if !valid {
		return availability.TimeRange{}, ErrCorruptRow
	}
	start, err := availability.TimeOfDayFromMinutes(startMin)
	if err != nil {
		return availability.TimeRange{}, errs.Mark(err, ErrCorruptRow)
	}
	end, err := availability.TimeOfDayFromMinutes(endMin)
	if err != nil {
		return availability.TimeRange{}, errs.Mark(err, ErrCorruptRow)
	}
	tr, err := availability.NewTimeRange(start, end)
	if err != nil {
		return availability.TimeRange{}, errs.Mark(err, ErrCorruptRow)
	}
	return tr, nil
}
