package commands

import (
	"context"

	"ride-together/internal/domain/availability"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlot  = errs.New("invalid availability slot")
	ErrSlotNotOwned = errs.New("slot not owned by user")
)

type CreateSlotInput struct {
	Date       string
	StartTime  string
	EndTime    string
	TrailType  string
	Visibility string
}

type SlotCommands interface {
	CreateSlot(ctx context.Context, rc shared.RequestContext, in CreateSlotInput) (uuid.UUID, error)
	DeleteSlot(ctx context.Context, rc shared.RequestContext, id uuid.UUID) error
}

type slotCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSlotCommands(uow shared.UnitOfWork) SlotCommands {
	return &slotCommandsImpl{uow: uow}
}

func (uc *slotCommandsImpl) CreateSlot(ctx context.Context, rc shared.RequestContext, in CreateSlotInput) (uuid.UUID, error) {
	slot, err := buildSlot(rc, in)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidSlot)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().Create(ctx, tx.DB(), slot); err != nil {
			return err
		}
		return tx.Events().Publish(ctx, tx.DB(), shared.ChangeEvent{
			Collection: shared.CollectionSlots,
			Kind:       shared.EventSlotCreated,
			ID:         slot.ID(),
			UserIDs:    []uuid.UUID{slot.OwnerID()},
			OccurredAt: rc.Now,
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	return slot.ID(), nil
}

func buildSlot(rc shared.RequestContext, in CreateSlotInput) (*availability.Slot, error) {
	date, err := availability.ParseRideDate(in.Date)
	if err != nil {
		return nil, err
	}
	timeRange, err := availability.ParseTimeRange(in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	trailType, err := availability.ParseTrailType(in.TrailType)
	if err != nil {
		return nil, err
	}
	visibility, err := availability.ParseVisibility(in.Visibility)
	if err != nil {
		return nil, err
	}
	return availability.NewSlot(rc.CurrentUserID, date, timeRange, trailType, visibility, rc.Now)
}

// DeleteSlot keeps requests that reference the slot; they carry their own
// copy of the slot fields.
func (uc *slotCommandsImpl) DeleteSlot(ctx context.Context, rc shared.RequestContext, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := tx.Reads().SlotByID(ctx, id)
		if err != nil {
			return shared.TranslateNotFound(err, ErrSlotNotFound)
		}
		if !slot.IsOwnedBy(rc.CurrentUserID) {
			return ErrSlotNotOwned
		}
		if err := tx.Slots().Delete(ctx, tx.DB(), id); err != nil {
			return shared.TranslateNotFound(err, ErrSlotNotFound)
		}
		return tx.Events().Publish(ctx, tx.DB(), shared.ChangeEvent{
			Collection: shared.CollectionSlots,
			Kind:       shared.EventSlotDeleted,
			ID:         id,
			UserIDs:    []uuid.UUID{slot.OwnerID()},
			OccurredAt: rc.Now,
		})
	})
}
