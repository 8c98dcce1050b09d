//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"ride-together/internal/domain/user"
	"ride-together/internal/infra"
	sqlc "ride-together/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFriendshipWriteQueries struct {
	mockDB
}

func (m *MockFriendshipWriteQueries) CreateFriendship(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFriendshipParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFriendshipWriteQueries) DeleteFriendship(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFriendshipParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFriendshipWriteQueries) CreateFriendRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateFriendRequestParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFriendshipWriteQueries) DeleteFriendRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteFriendRequestParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestFriendshipRepository_Add(t *testing.T) {
	tests := []struct {
		name        string
		rows        int64
		mockError   error
		wantCreated bool
		wantErr     bool
	}{
		{name: "新しい友達", rows: 1, wantCreated: true},
		{name: "既に友達", rows: 0, wantCreated: false},
		{name: "database error", mockError: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := uuid.New(), uuid.New()
			f, err := user.NewFriendship(a, b, time.Now())
			require.NoError(t, err)
			low, high := user.OrderPair(a, b)

			mockQueries := new(MockFriendshipWriteQueries)
			mockQueries.On("CreateFriendship", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateFriendshipParams) bool {
				return p.UserLow == low && p.UserHigh == high
			})).Return(tt.rows, tt.mockError)

			repo := NewFriendshipRepository(mockQueries)
			created, err := repo.Add(context.Background(), mockQueries, f)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantCreated, created)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFriendshipRepository_Remove_OrdersPair(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	low, high := user.OrderPair(a, b)

	mockQueries := new(MockFriendshipWriteQueries)
	mockQueries.On("DeleteFriendship", mock.Anything, mock.Anything, sqlc.DeleteFriendshipParams{UserLow: low, UserHigh: high}).
		Return(int64(1), nil).Twice()

	repo := NewFriendshipRepository(mockQueries)

	removed, err := repo.Remove(context.Background(), mockQueries, a, b)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(context.Background(), mockQueries, b, a)
	require.NoError(t, err)
	assert.True(t, removed)

	mockQueries.AssertExpectations(t)
}

func TestFriendshipRepository_Requests_KeepDirection(t *testing.T) {
	from, to := uuid.New(), uuid.New()
	req, err := user.NewFriendRequest(from, to, time.Now())
	require.NoError(t, err)

	mockQueries := new(MockFriendshipWriteQueries)
	mockQueries.On("CreateFriendRequest", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateFriendRequestParams) bool {
		return p.FromUserID == from && p.ToUserID == to && p.CreatedAt.Valid
	})).Return(int64(1), nil).Once()
	mockQueries.On("DeleteFriendRequest", mock.Anything, mock.Anything, sqlc.DeleteFriendRequestParams{FromUserID: to, ToUserID: from}).
		Return(int64(0), nil).Once()
	mockQueries.On("DeleteFriendRequest", mock.Anything, mock.Anything, sqlc.DeleteFriendRequestParams{FromUserID: from, ToUserID: to}).
		Return(int64(0), assert.AnError).Once()

	repo := NewFriendshipRepository(mockQueries)

	created, err := repo.AddRequest(context.Background(), mockQueries, req)
	require.NoError(t, err)
	assert.True(t, created)

	removed, err := repo.RemoveRequest(context.Background(), mockQueries, to, from)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.RemoveRequest(context.Background(), mockQueries, from, to)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))

	mockQueries.AssertExpectations(t)
}
