package readstore

import (
	"context"

	"ride-together/internal/domain/user"
	"ride-together/internal/infra"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/pgconv"
	"ride-together/internal/usecase/queries"

	"github.com/google/uuid"
)

type FriendViewQueries interface {
	ListFriendIDs(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]uuid.UUID, error)
	ListFriends(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListFriendsRow, error)
	ListIncomingFriendRequests(ctx context.Context, db sqlc.DBTX, toUserID uuid.UUID) ([]sqlc.ListIncomingFriendRequestsRow, error)
}

type FriendReadStore struct {
	queries FriendViewQueries
	db      sqlc.DBTX
}

func NewFriendReadStore(queries FriendViewQueries, db sqlc.DBTX) *FriendReadStore {
	return &FriendReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *FriendReadStore) FindFriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.queries.ListFriendIDs(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list friend ids", err)
	}
	return ids, nil
}

func (s *FriendReadStore) FindFriends(ctx context.Context, userID uuid.UUID) ([]*queries.FriendView, error) {
	rows, err := s.queries.ListFriends(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list friends", err)
	}

	result := make([]*queries.FriendView, len(rows))
	for i, row := range rows {
		result[i] = &queries.FriendView{
			UserID:       row.ID,
			DisplayName:  user.ResolveDisplayName(pgconv.StringFromPgtype(row.DisplayName), row.Email, queries.FallbackPartnerName),
			FriendsSince: pgconv.TimeFromPgtype(row.FriendsSince),
		}
	}
	return result, nil
}

func (s *FriendReadStore) FindIncomingRequests(ctx context.Context, userID uuid.UUID) ([]*queries.FriendRequestView, error) {
	rows, err := s.queries.ListIncomingFriendRequests(ctx, s.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list friend requests", err)
	}

	result := make([]*queries.FriendRequestView, len(rows))
	for i, row := range rows {
		result[i] = &queries.FriendRequestView{
			UserID:      row.ID,
			DisplayName: user.ResolveDisplayName(pgconv.StringFromPgtype(row.DisplayName), row.Email, queries.FallbackPartnerName),
			RequestedAt: pgconv.TimeFromPgtype(row.RequestedAt),
		}
	}
	return result, nil
}
