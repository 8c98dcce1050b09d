//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ride-together/internal/domain/booking"
	"ride-together/internal/domain/notification"
	"ride-together/internal/pkg/clock"
	"ride-together/internal/usecase/commands"
	"ride-together/internal/usecase/shared"
	"ride-together/tests/common/builder"
	commandsmock "ride-together/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// queueDecisionMail enqueues the e-mail a decision produces for requesterID.
func queueDecisionMail(t *testing.T, store *memStore, requesterID uuid.UUID, attempts int32) *memJob {
	t.Helper()
	req := builder.NewBookingBuilder().WithRequester(requesterID, "kenji").BuildDomain()
	require.NoError(t, req.Decide(booking.StatusAccepted, req.OwnerID(), testNow))
	n, err := notification.NewDecisionNotification(req, testNow)
	require.NoError(t, err)
	payload, err := notification.NewEmailPayload(n).Marshal()
	require.NoError(t, err)

	job := &memJob{
		NotificationJob: shared.NotificationJob{
			ID:       uuid.New(),
			Kind:     notification.JobKindEmail,
			Topic:    notification.TopicBookingDecided,
			Payload:  payload,
			Attempts: attempts,
			RunAt:    testNow,
		},
		status: shared.JobStatusQueued,
	}
	store.jobs = append(store.jobs, job)
	return job
}

func TestDispatchPending(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*memStore, *commandsmock.MockMailer, commands.NotificationDispatcher, uuid.UUID) {
		ctrl := gomock.NewController(t)
		mailer := commandsmock.NewMockMailer(ctrl)
		store := newMemStore()
		requester := store.addUser("kenji@example.com", "Kenji", "")
		d := commands.NewNotificationDispatcher(store, mailer, clock.NewMockClock(testNow))
		return store, mailer, d, requester
	}

	t.Run("delivers due jobs", func(t *testing.T) {
		store, mailer, d, requester := setup(t)
		queueDecisionMail(t, store, requester, 0)
		mailer.EXPECT().Send(gomock.Any(), "kenji@example.com", "Your ride request was accepted", gomock.Any()).
			Return(nil).Times(1)

		result, err := d.DispatchPending(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, commands.DispatchResult{Sent: 1}, result)
		assert.Equal(t, shared.JobStatusSent, store.jobs[0].status)
	})

	t.Run("sends with no transaction open", func(t *testing.T) {
		store, mailer, d, requester := setup(t)
		queueDecisionMail(t, store, requester, 0)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, string, string, string) error {
				assert.False(t, store.inTx, "mail must not be sent inside a transaction")
				return nil
			}).Times(1)

		_, err := d.DispatchPending(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, 2, store.withinCalls)
	})

	t.Run("a lost status write is not resent while the lease holds", func(t *testing.T) {
		store, mailer, d, requester := setup(t)
		queueDecisionMail(t, store, requester, 0)
		store.failMarkSent = errors.New("connection reset")
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := d.DispatchPending(ctx, 10)
		require.Error(t, err)
		assert.Equal(t, shared.JobStatusQueued, store.jobs[0].status)
		assert.True(t, store.jobs[0].RunAt.After(testNow))

		result, err := d.DispatchPending(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, commands.DispatchResult{}, result)
	})

	t.Run("skips jobs that are not due", func(t *testing.T) {
		store, _, d, requester := setup(t)
		job := queueDecisionMail(t, store, requester, 0)
		job.RunAt = testNow.Add(time.Minute)

		result, err := d.DispatchPending(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, commands.DispatchResult{}, result)
	})

	t.Run("failed delivery backs off", func(t *testing.T) {
		store, mailer, d, requester := setup(t)
		queueDecisionMail(t, store, requester, 1)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("smtp: 421 try later")).Times(1)

		result, err := d.DispatchPending(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, commands.DispatchResult{Retried: 1}, result)

		job := store.jobs[0]
		assert.Equal(t, shared.JobStatusQueued, job.status)
		assert.Equal(t, testNow.Add(2*time.Minute), job.RunAt)
		assert.Contains(t, job.lastError, "421")
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		store, mailer, d, requester := setup(t)
		queueDecisionMail(t, store, requester, commands.MaxDeliveryAttempts-1)
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("mailbox unavailable")).Times(1)

		result, err := d.DispatchPending(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, commands.DispatchResult{Failed: 1}, result)
		assert.Equal(t, shared.JobStatusFailed, store.jobs[0].status)
	})

	t.Run("unknown job kinds are retried without sending", func(t *testing.T) {
		store, _, d, requester := setup(t)
		job := queueDecisionMail(t, store, requester, 0)
		job.Kind = "sms"

		result, err := d.DispatchPending(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, commands.DispatchResult{Retried: 1}, result)
	})

	t.Run("respects the batch size", func(t *testing.T) {
		store, mailer, d, requester := setup(t)
		for range 3 {
			queueDecisionMail(t, store, requester, 0)
		}
		mailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		result, err := d.DispatchPending(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Sent)
	})

	t.Run("zero batch is a no-op", func(t *testing.T) {
		store, _, d, _ := setup(t)

		result, err := d.DispatchPending(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, commands.DispatchResult{}, result)
		assert.Zero(t, store.withinCalls)
	})
}
