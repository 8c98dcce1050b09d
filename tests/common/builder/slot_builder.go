//go:build unit || e2e

package builder

import (
	"time"

	"ride-together/internal/domain/availability"
	reqdto "ride-together/internal/handler/dto/request"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Date       string
	StartTime  string
	EndTime    string
	TrailType  string
	Visibility string
	CreatedAt  time.Time
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:         uuid.New(),
		OwnerID:    uuid.New(),
		Date:       "2026-10-20",
		StartTime:  "09:00",
		EndTime:    "11:00",
		TrailType:  "road",
		Visibility: "public",
		CreatedAt:  time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) WithOwner(id uuid.UUID) *SlotBuilder {
	b.OwnerID = id
	return b
}

func (b *SlotBuilder) WithDate(date string) *SlotBuilder {
	b.Date = date
	return b
}

func (b *SlotBuilder) WithTimes(start, end string) *SlotBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *SlotBuilder) WithVisibility(v string) *SlotBuilder {
	b.Visibility = v
	return b
}

func (b *SlotBuilder) WithTrailType(t string) *SlotBuilder {
	b.TrailType = t
	return b
}

// BuildDomain reconstructs the slot without the upcoming-date check so
// tests can place slots in the past.
func (b *SlotBuilder) BuildDomain() *availability.Slot {
	date, err := availability.ParseRideDate(b.Date)
	if err != nil {
		panic(err)
	}
	tr, err := availability.ParseTimeRange(b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return availability.ReconstructSlot(b.ID, b.OwnerID, date, tr,
		availability.TrailType(b.TrailType), availability.Visibility(b.Visibility), b.CreatedAt)
}

func (b *SlotBuilder) BuildDTO() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TrailType:  b.TrailType,
		Visibility: b.Visibility,
	}
}
