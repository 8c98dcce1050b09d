package commands

import (
	"context"
	"slices"

	"ride-together/internal/domain/user"
	"ride-together/internal/infra"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = shared.ErrUserNotFound
	ErrSelfFriendship     = user.ErrSelfFriendship
	ErrFriendshipNotFound = errs.New("friendship not found")
)

// AddFriendResult says what an AddFriend call changed.
type AddFriendResult int

const (
	// FriendRequestPending: the other user has to add the caller back.
	FriendRequestPending AddFriendResult = iota
	// FriendshipCreated: the other user had already asked, the edge is stored.
	FriendshipCreated
	FriendshipExists
)

type FriendCommands interface {
	// AddFriend sends a friend request, or confirms the friendship when the
	// other user already sent one. Repeating a call changes nothing.
	AddFriend(ctx context.Context, rc shared.RequestContext, friendID uuid.UUID) (AddFriendResult, error)
	// RemoveFriend drops the friendship or a pending request in either direction.
	RemoveFriend(ctx context.Context, rc shared.RequestContext, friendID uuid.UUID) error
}

type friendCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewFriendCommands(uow shared.UnitOfWork) FriendCommands {
	return &friendCommandsImpl{uow: uow}
}

func (uc *friendCommandsImpl) AddFriend(ctx context.Context, rc shared.RequestContext, friendID uuid.UUID) (AddFriendResult, error) {
	req, err := user.NewFriendRequest(rc.CurrentUserID, friendID, rc.Now)
	if err != nil {
		return FriendRequestPending, err
	}

	var result AddFriendResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, friendID); err != nil {
			return shared.TranslateNotFound(err, ErrUserNotFound)
		}
		ids, err := tx.Reads().FriendIDs(ctx, rc.CurrentUserID)
		if err != nil {
			return err
		}
		if slices.Contains(ids, friendID) {
			result = FriendshipExists
			return nil
		}

		answered, err := tx.Friendships().RemoveRequest(ctx, tx.DB(), friendID, rc.CurrentUserID)
		if err != nil {
			return err
		}
		if answered {
			f, err := user.NewFriendship(rc.CurrentUserID, friendID, rc.Now)
			if err != nil {
				return err
			}
			if _, err := tx.Friendships().Add(ctx, tx.DB(), f); err != nil {
				return markMissingUser(err)
			}
			result = FriendshipCreated
			return nil
		}

		if _, err := tx.Friendships().AddRequest(ctx, tx.DB(), req); err != nil {
			return markMissingUser(err)
		}
		result = FriendRequestPending
		return nil
	})
	if err != nil {
		return FriendRequestPending, err
	}
	return result, nil
}

func (uc *friendCommandsImpl) RemoveFriend(ctx context.Context, rc shared.RequestContext, friendID uuid.UUID) error {
	me := rc.CurrentUserID
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		removed, err := tx.Friendships().Remove(ctx, tx.DB(), me, friendID)
		if err != nil {
			return err
		}
		for _, pair := range [][2]uuid.UUID{{me, friendID}, {friendID, me}} {
			dropped, err := tx.Friendships().RemoveRequest(ctx, tx.DB(), pair[0], pair[1])
			if err != nil {
				return err
			}
			removed = removed || dropped
		}
		if !removed {
			return ErrFriendshipNotFound
		}
		return nil
	})
}

func markMissingUser(err error) error {
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return errs.Mark(err, ErrUserNotFound)
	}
	return err
}
