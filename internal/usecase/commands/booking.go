package commands

import (
	"context"

	"ride-together/internal/domain/availability"
	"ride-together/internal/domain/booking"
	"ride-together/internal/domain/notification"
	"ride-together/internal/domain/user"
	"ride-together/internal/infra"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotNotFound          = shared.ErrSlotNotFound
	ErrBookingNotFound       = shared.ErrBookingNotFound
	ErrDuplicateRequest      = errs.New("request to join already exists")
	ErrSelfBookingDisallowed = booking.ErrSelfBookingDisallowed
	ErrUnauthorizedDecision  = booking.ErrUnauthorizedDecision
	ErrBookingNotPending     = booking.ErrNotPending
	ErrInvalidDecision       = booking.ErrInvalidDecision
	ErrInvalidDraft          = booking.ErrInvalidDraft
)

type BookingCommands interface {
	// RequestToJoin files a pending request on someone else's slot and
	// returns its id.
	RequestToJoin(ctx context.Context, rc shared.RequestContext, availabilityID uuid.UUID, draft booking.Draft) (uuid.UUID, error)
	// Decide accepts or declines a pending request. Only the slot owner
	// may decide, and exactly one notification is written for the requester.
	Decide(ctx context.Context, rc shared.RequestContext, requestID uuid.UUID, decision string) error
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{uow: uow}
}

func (uc *bookingCommandsImpl) RequestToJoin(ctx context.Context, rc shared.RequestContext, availabilityID uuid.UUID, draft booking.Draft) (uuid.UUID, error) {
	var createdID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()

		slot, err := reads.SlotByID(ctx, availabilityID)
		if err != nil {
			return shared.TranslateNotFound(err, ErrSlotNotFound)
		}
		visible, err := isVisible(ctx, reads, slot, rc.CurrentUserID)
		if err != nil {
			return err
		}
		if !visible {
			return ErrSlotNotFound
		}

		name, email, err := requesterIdentity(ctx, reads, rc.CurrentUserID)
		if err != nil {
			return err
		}

		// Self-requests can never be stored, so rejecting them before the
		// insert-if-absent cannot mask a duplicate.
		req, err := booking.NewRequest(slot, rc.CurrentUserID, name, draft, draft.ResolveContact(email), rc.Now)
		if err != nil {
			return err
		}

		id, created, err := tx.Bookings().CreateIfAbsent(ctx, tx.DB(), req)
		if err != nil {
			return err
		}
		if !created {
			return ErrDuplicateRequest
		}
		createdID = id

		return tx.Events().Publish(ctx, tx.DB(), shared.ChangeEvent{
			Collection: shared.CollectionBookings,
			Kind:       shared.EventBookingRequested,
			ID:         id,
			Status:     req.Status().String(),
			UserIDs:    []uuid.UUID{req.OwnerID(), req.RequesterID()},
			OccurredAt: rc.Now,
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *bookingCommandsImpl) Decide(ctx context.Context, rc shared.RequestContext, requestID uuid.UUID, decision string) error {
	status, err := booking.ParseDecision(decision)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Reads().BookingByID(ctx, requestID)
		if err != nil {
			return shared.TranslateNotFound(err, ErrBookingNotFound)
		}

		if err := req.Decide(status, rc.CurrentUserID, rc.Now); err != nil {
			return err
		}

		// Conditional on status = 'pending': a concurrent decider that
		// committed first leaves nothing to update.
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), req); err != nil {
			if infra.IsKind(err, infra.KindConditionFailed) {
				return ErrBookingNotPending
			}
			return err
		}

		n, err := notification.NewDecisionNotification(req, rc.Now)
		if err != nil {
			return err
		}
		if err := tx.Notifications().Create(ctx, tx.DB(), n); err != nil {
			return err
		}

		payload, err := notification.NewEmailPayload(n).Marshal()
		if err != nil {
			return errs.Wrap(err, "failed to encode email payload")
		}
		if err := tx.Notifications().CreateJob(ctx, tx.DB(), notification.JobKindEmail, notification.TopicBookingDecided, payload, rc.Now); err != nil {
			return err
		}

		return tx.Events().Publish(ctx, tx.DB(), shared.ChangeEvent{
			Collection: shared.CollectionBookings,
			Kind:       shared.EventBookingDecided,
			ID:         req.ID(),
			Status:     req.Status().String(),
			UserIDs:    []uuid.UUID{req.OwnerID(), req.RequesterID()},
			OccurredAt: rc.Now,
		})
	})
}

// isVisible loads the viewer's friends only when the answer depends on them.
func isVisible(ctx context.Context, reads shared.CommandReads, slot *availability.Slot, viewerID uuid.UUID) (bool, error) {
	if slot.IsOwnedBy(viewerID) || slot.Visibility() == availability.VisibilityPublic {
		return availability.IsVisibleTo(slot, viewerID, availability.NoFriends), nil
	}
	ids, err := reads.FriendIDs(ctx, viewerID)
	if err != nil {
		return false, err
	}
	return availability.IsVisibleTo(slot, viewerID, availability.NewFriendSet(viewerID, ids...)), nil
}

// requesterIdentity resolves the name stored on the request. A missing
// user record falls back to the anonymous name.
func requesterIdentity(ctx context.Context, reads shared.CommandReads, userID uuid.UUID) (string, string, error) {
	snap, err := reads.UserByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return booking.AnonymousRequester, "", nil
		}
		return "", "", err
	}
	return user.ResolveDisplayName(snap.DisplayName, snap.Email, booking.AnonymousRequester), snap.Email, nil
}
