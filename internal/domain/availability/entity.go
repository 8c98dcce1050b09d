package availability

import (
	"time"

	"ride-together/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrDateInPast = errs.New("ride date is in the past")

// Slot is an availability window posted by its owner. Immutable once created.
type Slot struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	date       RideDate
	timeRange  TimeRange
	trailType  TrailType
	visibility Visibility
	createdAt  time.Time
}

func NewSlot(ownerID uuid.UUID, date RideDate, timeRange TimeRange, trailType TrailType, visibility Visibility, now time.Time) (*Slot, error) {
	if date.IsZero() {
		return nil, ErrInvalidDate
	}
	if !date.IsUpcoming(now) {
		return nil, ErrDateInPast
	}
	if !timeRange.Start().Before(timeRange.End()) {
		return nil, ErrInvalidTimeRange
	}
	if _, err := ParseTrailType(string(trailType)); err != nil {
		return nil, err
	}
	if visibility == "" {
		visibility = DefaultVisibility
	}
	if _, err := ParseVisibility(string(visibility)); err != nil {
		return nil, err
	}

	return &Slot{
		id:         uuid.New(),
		ownerID:    ownerID,
		date:       date,
		timeRange:  timeRange,
		trailType:  trailType,
		visibility: visibility,
		createdAt:  now,
	}, nil
}

func ReconstructSlot(id, ownerID uuid.UUID, date RideDate, timeRange TimeRange, trailType TrailType, visibility Visibility, createdAt time.Time) *Slot {
	return &Slot{
		id:         id,
		ownerID:    ownerID,
		date:       date,
		timeRange:  timeRange,
		trailType:  trailType,
		visibility: visibility,
		createdAt:  createdAt,
	}
}

func (s *Slot) ID() uuid.UUID          { return s.id }
func (s *Slot) OwnerID() uuid.UUID     { return s.ownerID }
func (s *Slot) Date() RideDate         { return s.date }
func (s *Slot) TimeRange() TimeRange   { return s.timeRange }
func (s *Slot) TrailType() TrailType   { return s.trailType }
func (s *Slot) Visibility() Visibility { return s.visibility }
func (s *Slot) CreatedAt() time.Time   { return s.createdAt }

func (s *Slot) IsOwnedBy(userID uuid.UUID) bool { return s.ownerID == userID }

func (s *Slot) IsPast(now time.Time) bool { return !s.date.IsUpcoming(now) }
