package queries

import (
	"context"
	"sort"
	"time"

	"ride-together/internal/domain/availability"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrSlotNotFound = shared.ErrSlotNotFound

type AvailabilityQueries interface {
	// ListPublicRides is the discovery view: other riders' public slots
	// from today on, sorted by date, start time and id.
	ListPublicRides(ctx context.Context, viewerID uuid.UUID, now time.Time) ([]*PublicRideView, error)
	ListMySlots(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*SlotView, error)
	GetSlot(ctx context.Context, viewerID, id uuid.UUID, now time.Time) (*SlotView, error)
}

type availabilityQueriesImpl struct {
	slots     SlotReadStore
	friends   FriendReadStore
	directory UserDirectory
}

func NewAvailabilityQueries(slots SlotReadStore, friends FriendReadStore, directory UserDirectory) AvailabilityQueries {
	return &availabilityQueriesImpl{
		slots:     slots,
		friends:   friends,
		directory: directory,
	}
}

func (q *availabilityQueriesImpl) ListPublicRides(ctx context.Context, viewerID uuid.UUID, now time.Time) ([]*PublicRideView, error) {
	slots, err := q.slots.FindPublicFrom(ctx, availability.DateOf(now))
	if err != nil {
		return nil, err
	}

	visible := make([]*availability.Slot, 0, len(slots))
	ownerIDs := make([]uuid.UUID, 0, len(slots))
	for _, s := range slots {
		if !availability.IsDiscoverableBy(s, viewerID, now) {
			continue
		}
		visible = append(visible, s)
		ownerIDs = append(ownerIDs, s.OwnerID())
	}
	if len(visible) == 0 {
		return []*PublicRideView{}, nil
	}

	names := lookupNames(ctx, q.directory, ownerIDs)

	result := make([]*PublicRideView, len(visible))
	for i, s := range visible {
		result[i] = &PublicRideView{
			ID:         s.ID(),
			OwnerID:    s.OwnerID(),
			OwnerName:  nameOr(names, s.OwnerID(), FallbackOwnerName),
			Date:       s.Date().String(),
			StartTime:  s.TimeRange().Start().String(),
			EndTime:    s.TimeRange().End().String(),
			TrailType:  s.TrailType().String(),
			TrailLabel: s.TrailType().Label(),
			Visibility: s.Visibility().String(),
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return lessRide(result[i].Date, result[i].StartTime, result[i].ID, result[j].Date, result[j].StartTime, result[j].ID)
	})
	return result, nil
}

func (q *availabilityQueriesImpl) ListMySlots(ctx context.Context, ownerID uuid.UUID, now time.Time) ([]*SlotView, error) {
	slots, err := q.slots.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]*SlotView, len(slots))
	for i, s := range slots {
		result[i] = toSlotView(s, now)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return lessRide(result[i].Date, result[i].StartTime, result[i].ID, result[j].Date, result[j].StartTime, result[j].ID)
	})
	return result, nil
}

// GetSlot hides slots the viewer may not see behind ErrSlotNotFound.
func (q *availabilityQueriesImpl) GetSlot(ctx context.Context, viewerID, id uuid.UUID, now time.Time) (*SlotView, error) {
	slot, err := q.slots.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateNotFound(err, ErrSlotNotFound)
	}

	friends := availability.NoFriends
	if slot.Visibility() == availability.VisibilityFriends && !slot.IsOwnedBy(viewerID) {
		ids, err := q.friends.FindFriendIDs(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		friends = availability.NewFriendSet(viewerID, ids...)
	}
	if !availability.IsVisibleTo(slot, viewerID, friends) {
		return nil, ErrSlotNotFound
	}

	view := toSlotView(slot, now)
	names := lookupNames(ctx, q.directory, []uuid.UUID{slot.OwnerID()})
	view.OwnerName = nameOr(names, slot.OwnerID(), FallbackOwnerName)
	return view, nil
}

func toSlotView(s *availability.Slot, now time.Time) *SlotView {
	badge := availability.BadgeFor(s)
	return &SlotView{
		ID:         s.ID(),
		OwnerID:    s.OwnerID(),
		Date:       s.Date().String(),
		StartTime:  s.TimeRange().Start().String(),
		EndTime:    s.TimeRange().End().String(),
		TrailType:  s.TrailType().String(),
		TrailLabel: s.TrailType().Label(),
		Visibility: s.Visibility().String(),
		Badge:      badge.Label,
		IsPast:     s.IsPast(now),
		CreatedAt:  s.CreatedAt(),
	}
}
