//go:build unit

package scheduler

import (
	"context"
	"errors"
	"testing"

	"ride-together/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) DispatchPending(ctx context.Context, batch int) (commands.DispatchResult, error) {
	args := m.Called(ctx, batch)
	return args.Get(0).(commands.DispatchResult), args.Error(1)
}

func TestNewDispatchScheduler_InvalidSpec(t *testing.T) {
	_, err := NewDispatchScheduler(new(mockDispatcher), "every now and then", 10)
	assert.Error(t, err)
}

func TestDispatchScheduler_RunOnce(t *testing.T) {
	t.Run("passes the batch size", func(t *testing.T) {
		d := new(mockDispatcher)
		d.On("DispatchPending", mock.Anything, 25).Return(commands.DispatchResult{Sent: 2}, nil).Once()

		s, err := NewDispatchScheduler(d, "@every 1m", 25)
		require.NoError(t, err)
		s.RunOnce()

		d.AssertExpectations(t)
	})

	t.Run("errors are logged, not raised", func(t *testing.T) {
		d := new(mockDispatcher)
		d.On("DispatchPending", mock.Anything, 5).Return(commands.DispatchResult{}, errors.New("db down")).Once()

		s, err := NewDispatchScheduler(d, "@every 1m", 5)
		require.NoError(t, err)
		assert.NotPanics(t, s.RunOnce)

		d.AssertExpectations(t)
	})
}

func TestDispatchScheduler_StartStop(t *testing.T) {
	s, err := NewDispatchScheduler(new(mockDispatcher), "@every 1h", 5)
	require.NoError(t, err)

	s.Start()
	assert.NoError(t, s.Stop(context.Background()))
}
