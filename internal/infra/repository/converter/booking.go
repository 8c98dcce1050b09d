package converter

import (
	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/pkg/pgconv"
)

func BookingToInsertParams(r *booking.Request) sqlc.InsertBookingRequestIfAbsentParams {
	contact := r.Contact()
	return sqlc.InsertBookingRequestIfAbsentParams{
		ID:             r.ID(),
		AvailabilityID: r.AvailabilityID(),
		OwnerID:        r.OwnerID(),
		RequesterID:    r.RequesterID(),
		RequesterName:  r.RequesterName(),
		Status:         r.Status().String(),
		Message:        r.Message(),
		RideDate:       pgconv.DateToPgtype(r.Date().Time()),
		StartTime:      pgconv.MinutesToPgtype(r.TimeRange().Start().Minutes()),
		EndTime:        pgconv.MinutesToPgtype(r.TimeRange().End().Minutes()),
		TrailType:      r.TrailType().String(),
		ContactEmail:   pgconv.StringPtrToPgtype(&contact.Email),
		ContactPhone:   pgconv.StringPtrToPgtype(&contact.Phone),
		CreatedAt:      pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:      pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func BookingToDecideParams(r *booking.Request) sqlc.DecideBookingRequestParams {
	return sqlc.DecideBookingRequestParams{
		ID:        r.ID(),
		Status:    r.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.BookingRequests) (*booking.Request, error) {
	tr, err := timeRangeFromRow(row.StartTime.Valid, pgconv.MinutesFromPgtype(row.StartTime), pgconv.MinutesFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrCorruptRow)
	}
	return booking.ReconstructRequest(booking.State{
		ID:             row.ID,
		AvailabilityID: row.AvailabilityID,
		OwnerID:        row.OwnerID,
		RequesterID:    row.RequesterID,
		RequesterName:  row.RequesterName,
		Status:         status,
		Message:        row.Message,
		Date:           availability.DateOf(pgconv.DateFromPgtype(row.RideDate)),
		TimeRange:      tr,
		TrailType:      availability.TrailType(row.TrailType),
		Contact: booking.Contact{
			Email: pgconv.StringFromPgtype(row.ContactEmail),
			Phone: pgconv.StringFromPgtype(row.ContactPhone),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func BookingsFromRows(rows []sqlc.BookingRequests) ([]*booking.Request, error) {
	out := make([]*booking.Request, 0, len(rows))
	for _, row := range rows {
		r, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
