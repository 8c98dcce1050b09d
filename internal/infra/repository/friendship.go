package repository

import (
	"context"

	"ride-together/internal/domain/user"
	"ride-together/internal/infra"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FriendshipWriteQueries interface {
	CreateFriendship(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFriendshipParams) (int64, error)
	DeleteFriendship(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFriendshipParams) (int64, error)
	CreateFriendRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFriendRequestParams) (int64, error)
	DeleteFriendRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFriendRequestParams) (int64, error)
}

type FriendshipRepository struct {
	queries FriendshipWriteQueries
}

func NewFriendshipRepository(queries FriendshipWriteQueries) *FriendshipRepository {
	return &FriendshipRepository{queries: queries}
}

func (r *FriendshipRepository) Add(ctx context.Context, tx sqlc.DBTX, f user.Friendship) (bool, error) {
	n, err := r.queries.CreateFriendship(ctx, tx, sqlc.CreateFriendshipParams{
		UserLow:   f.Low(),
		UserHigh:  f.High(),
		CreatedAt: pgconv.TimeToPgtype(f.CreatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to create friendship", err)
	}
	return n > 0, nil
}

func (r *FriendshipRepository) Remove(ctx context.Context, tx sqlc.DBTX, a, b uuid.UUID) (bool, error) {
	low, high := user.OrderPair(a, b)
	n, err := r.queries.DeleteFriendship(ctx, tx, sqlc.DeleteFriendshipParams{UserLow: low, UserHigh: high})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete friendship", err)
	}
	return n > 0, nil
}

func (r *FriendshipRepository) AddRequest(ctx context.Context, tx sqlc.DBTX, req user.FriendRequest) (bool, error) {
	n, err := r.queries.CreateFriendRequest(ctx, tx, sqlc.CreateFriendRequestParams{
		FromUserID: req.From(),
		ToUserID:   req.To(),
		CreatedAt:  pgconv.TimeToPgtype(req.CreatedAt()),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to create friend request", err)
	}
	return n > 0, nil
}

func (r *FriendshipRepository) RemoveRequest(ctx context.Context, tx sqlc.DBTX, from, to uuid.UUID) (bool, error) {
	n, err := r.queries.DeleteFriendRequest(ctx, tx, sqlc.DeleteFriendRequestParams{FromUserID: from, ToUserID: to})
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete friend request", err)
	}
	return n > 0, nil
}
