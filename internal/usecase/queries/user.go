package queries

import (
	"context"

	"ride-together/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUserNotFound = shared.ErrUserNotFound

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*FriendView, error)
	// ListFriendRequests returns requests waiting for userID to add the sender back.
	ListFriendRequests(ctx context.Context, userID uuid.UUID) ([]*FriendRequestView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
	friends   FriendReadStore
}

func NewUserQueries(readStore UserReadStore, friends FriendReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
		friends:   friends,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.TranslateNotFound(err, ErrUserNotFound)
	}

	return &UserView{
		ID:          u.ID(),
		Email:       u.Email().Value(),
		DisplayName: u.Name(FallbackPartnerName),
		LastLogin:   u.LastLogin(),
		CreatedAt:   u.CreatedAt(),
	}, nil
}

func (q *userQueriesImpl) ListFriends(ctx context.Context, userID uuid.UUID) ([]*FriendView, error) {
	return q.friends.FindFriends(ctx, userID)
}

func (q *userQueriesImpl) ListFriendRequests(ctx context.Context, userID uuid.UUID) ([]*FriendRequestView, error) {
	return q.friends.FindIncomingRequests(ctx, userID)
}
