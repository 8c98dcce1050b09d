//go:build unit || e2e

package builder

import (
	"time"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	AvailabilityID uuid.UUID
	OwnerID        uuid.UUID
	RequesterID    uuid.UUID
	RequesterName  string
	Status         booking.Status
	Message        string
	Date           string
	StartTime      string
	EndTime        string
	TrailType      string
	Contact        booking.Contact
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             uuid.New(),
		AvailabilityID: uuid.New(),
		OwnerID:        uuid.New(),
		RequesterID:    uuid.New(),
		RequesterName:  "Requester",
		Status:         booking.StatusPending,
		Message:        booking.DefaultMessage,
		Date:           "2026-10-20",
		StartTime:      "09:00",
		EndTime:        "11:00",
		TrailType:      "road",
		CreatedAt:      time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// ForSlot copies the slot fields the request snapshots.
func (b *BookingBuilder) ForSlot(s *availability.Slot) *BookingBuilder {
	b.AvailabilityID = s.ID()
	b.OwnerID = s.OwnerID()
	b.Date = s.Date().String()
	b.StartTime = s.TimeRange().Start().String()
	b.EndTime = s.TimeRange().End().String()
	b.TrailType = s.TrailType().String()
	return b
}

func (b *BookingBuilder) WithRequester(id uuid.UUID, name string) *BookingBuilder {
	b.RequesterID = id
	b.RequesterName = name
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithDate(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithContact(c booking.Contact) *BookingBuilder {
	b.Contact = c
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Request {
	date, err := availability.ParseRideDate(b.Date)
	if err != nil {
		panic(err)
	}
	tr, err := availability.ParseTimeRange(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructRequest(booking.State{
		ID:             b.ID,
		AvailabilityID: b.AvailabilityID,
		OwnerID:        b.OwnerID,
		RequesterID:    b.RequesterID,
		RequesterName:  b.RequesterName,
		Status:         b.Status,
		Message:        b.Message,
		Date:           date,
		TimeRange:      tr,
		TrailType:      availability.TrailType(b.TrailType),
		Contact:        b.Contact,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	})
}
