package queries

import (
	"context"
	"sort"
	"time"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = shared.ErrBookingNotFound

type BookingQueries interface {
	// ListPendingForOwner returns pending requests on any of the owner's slots.
	ListPendingForOwner(ctx context.Context, ownerID uuid.UUID) ([]*PendingRequestView, error)
	// ListConfirmedRides returns accepted requests the user takes part in,
	// dated today or later.
	ListConfirmedRides(ctx context.Context, userID uuid.UUID, now time.Time) ([]*ConfirmedRideView, error)
	GetBooking(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error)
	ConfirmedRidesCalendar(ctx context.Context, userID uuid.UUID, now time.Time) ([]byte, error)
	// Watch subscribes to committed booking changes concerning userID.
	Watch(userID uuid.UUID, status string, fn func(shared.ChangeEvent)) shared.Unsubscribe
}

type bookingQueriesImpl struct {
	slots     SlotReadStore
	bookings  BookingReadStore
	directory UserDirectory
	calendar  RideCalendar
	feed      ChangeFeed
}

func NewBookingQueries(slots SlotReadStore, bookings BookingReadStore, directory UserDirectory, calendar RideCalendar, feed ChangeFeed) BookingQueries {
	return &bookingQueriesImpl{
		slots:     slots,
		bookings:  bookings,
		directory: directory,
		calendar:  calendar,
		feed:      feed,
	}
}

func (q *bookingQueriesImpl) ListPendingForOwner(ctx context.Context, ownerID uuid.UUID) ([]*PendingRequestView, error) {
	slotIDs, err := q.slots.FindIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(slotIDs) == 0 {
		return []*PendingRequestView{}, nil
	}

	reqs, err := q.bookings.FindPendingForSlots(ctx, slotIDs)
	if err != nil {
		return nil, err
	}

	requesterIDs := make([]uuid.UUID, len(reqs))
	for i, r := range reqs {
		requesterIDs[i] = r.RequesterID()
	}
	names := lookupNames(ctx, q.directory, requesterIDs)

	result := make([]*PendingRequestView, len(reqs))
	for i, r := range reqs {
		result[i] = &PendingRequestView{
			ID:             r.ID(),
			AvailabilityID: r.AvailabilityID(),
			RequesterID:    r.RequesterID(),
			RequesterName:  nameOr(names, r.RequesterID(), r.RequesterName()),
			Message:        r.Message(),
			Date:           r.Date().String(),
			StartTime:      r.TimeRange().Start().String(),
			EndTime:        r.TimeRange().End().String(),
			TrailType:      r.TrailType().String(),
			TrailLabel:     r.TrailType().Label(),
			ContactEmail:   r.Contact().Email,
			ContactPhone:   r.Contact().Phone,
			CreatedAt:      r.CreatedAt(),
		}
	}
	return result, nil
}

func (q *bookingQueriesImpl) ListConfirmedRides(ctx context.Context, userID uuid.UUID, now time.Time) ([]*ConfirmedRideView, error) {
	today := availability.DateOf(now)

	asOwner, err := q.bookings.FindAcceptedAsOwner(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	asRequester, err := q.bookings.FindAcceptedAsRequester(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	all := make([]*booking.Request, 0, len(asOwner)+len(asRequester))
	all = append(all, asOwner...)
	all = append(all, asRequester...)

	rides := make([]*booking.Request, 0, len(all))
	partnerIDs := make([]uuid.UUID, 0, len(all))
	for _, r := range all {
		if !r.Date().IsUpcoming(now) {
			continue
		}
		if _, ok := r.RoleOf(userID); !ok {
			continue
		}
		rides = append(rides, r)
		partnerIDs = append(partnerIDs, r.PartnerOf(userID))
	}
	names := lookupNames(ctx, q.directory, partnerIDs)

	result := make([]*ConfirmedRideView, len(rides))
	for i, r := range rides {
		role, _ := r.RoleOf(userID)
		partnerID := r.PartnerOf(userID)
		result[i] = &ConfirmedRideView{
			ID:             r.ID(),
			AvailabilityID: r.AvailabilityID(),
			Role:           string(role),
			PartnerID:      partnerID,
			PartnerName:    nameOr(names, partnerID, FallbackPartnerName),
			Date:           r.Date().String(),
			StartTime:      r.TimeRange().Start().String(),
			EndTime:        r.TimeRange().End().String(),
			TrailType:      r.TrailType().String(),
			TrailLabel:     r.TrailType().Label(),
			ContactEmail:   r.Contact().Email,
			ContactPhone:   r.Contact().Phone,
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return lessRide(result[i].Date, result[i].StartTime, result[i].ID, result[j].Date, result[j].StartTime, result[j].ID)
	})
	return result, nil
}

// GetBooking is visible to the two parties only; anyone else gets
// ErrBookingNotFound.
func (q *bookingQueriesImpl) GetBooking(ctx context.Context, actorID, id uuid.UUID) (*BookingView, error) {
	r, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateNotFound(err, ErrBookingNotFound)
	}
	if !r.Involves(actorID) {
		return nil, ErrBookingNotFound
	}
	return &BookingView{
		ID:             r.ID(),
		AvailabilityID: r.AvailabilityID(),
		OwnerID:        r.OwnerID(),
		RequesterID:    r.RequesterID(),
		RequesterName:  r.RequesterName(),
		Status:         r.Status().String(),
		Message:        r.Message(),
		Date:           r.Date().String(),
		StartTime:      r.TimeRange().Start().String(),
		EndTime:        r.TimeRange().End().String(),
		TrailType:      r.TrailType().String(),
		ContactEmail:   r.Contact().Email,
		ContactPhone:   r.Contact().Phone,
		CreatedAt:      r.CreatedAt(),
		UpdatedAt:      r.UpdatedAt(),
	}, nil
}

func (q *bookingQueriesImpl) ConfirmedRidesCalendar(ctx context.Context, userID uuid.UUID, now time.Time) ([]byte, error) {
	rides, err := q.ListConfirmedRides(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return q.calendar.Render(rides, now)
}

func (q *bookingQueriesImpl) Watch(userID uuid.UUID, status string, fn func(shared.ChangeEvent)) shared.Unsubscribe {
	return q.feed.Subscribe(shared.ChangeFilter{
		Collection: shared.CollectionBookings,
		Status:     status,
		UserID:     userID,
	}, fn)
}
