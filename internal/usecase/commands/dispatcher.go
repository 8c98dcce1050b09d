package commands

import (
	"context"
	"log/slog"
	"time"

	"ride-together/internal/domain/notification"
	"ride-together/internal/pkg/clock"
	"ride-together/internal/pkg/errs"
	"ride-together/internal/usecase/shared"
)

const (
	MaxDeliveryAttempts = 5
	retryBaseDelay      = time.Minute
	claimLease          = 5 * time.Minute
)

var errUnknownJobKind = errs.New("unknown notification job kind")

type DispatchResult struct {
	Sent    int
	Retried int
	Failed  int
}

// NotificationDispatcher drains the notification outbox.
type NotificationDispatcher interface {
	DispatchPending(ctx context.Context, batch int) (DispatchResult, error)
}

type notificationDispatcherImpl struct {
	uow    shared.UnitOfWork
	mailer Mailer
	clock  clock.Clock
}

func NewNotificationDispatcher(uow shared.UnitOfWork, mailer Mailer, clk clock.Clock) NotificationDispatcher {
	return &notificationDispatcherImpl{
		uow:    uow,
		mailer: mailer,
		clock:  clk,
	}
}

// DispatchPending claims up to batch due jobs in one short transaction,
// sends them with no transaction open, then records each outcome in its own
// transaction. A job whose outcome is never recorded is claimed again once
// its lease runs out, so delivery is at least once.
func (d *notificationDispatcherImpl) DispatchPending(ctx context.Context, batch int) (DispatchResult, error) {
	if batch <= 0 {
		return DispatchResult{}, nil
	}

	now := d.clock.Now()
	var jobs []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// #nosec G115 -- batch comes from configuration
		claimed, err := tx.Notifications().ClaimDueJobs(ctx, tx.DB(), now, now.Add(claimLease), int32(batch))
		if err != nil {
			return err
		}
		jobs = claimed
		return nil
	})
	if err != nil {
		return DispatchResult{}, err
	}

	var result DispatchResult
	for _, job := range jobs {
		deliverErr := d.deliver(ctx, d.uow.CommandReads(), job)
		if err := d.record(ctx, job, deliverErr, now, &result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (d *notificationDispatcherImpl) record(ctx context.Context, job shared.NotificationJob, deliverErr error, now time.Time, result *DispatchResult) error {
	if deliverErr == nil {
		err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Notifications().MarkJobSent(ctx, tx.DB(), job.ID)
		})
		if err != nil {
			return err
		}
		result.Sent++
		return nil
	}

	status, runAt := nextAttempt(job, now)
	slog.Warn("notification delivery failed",
		"job_id", job.ID,
		"attempt", job.Attempts+1,
		"status", string(status),
		"error", deliverErr.Error())
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().RescheduleJob(ctx, tx.DB(), job.ID, status, deliverErr.Error(), runAt)
	})
	if err != nil {
		return err
	}
	if status == shared.JobStatusFailed {
		result.Failed++
	} else {
		result.Retried++
	}
	return nil
}

func (d *notificationDispatcherImpl) deliver(ctx context.Context, reads shared.CommandReads, job shared.NotificationJob) error {
	if job.Kind != notification.JobKindEmail {
		return errs.Wrapf(errUnknownJobKind, "kind %q", job.Kind)
	}
	payload, err := notification.UnmarshalEmailPayload(job.Payload)
	if err != nil {
		return errs.Wrap(err, "decode email payload")
	}
	recipient, err := reads.UserByID(ctx, payload.RecipientID)
	if err != nil {
		return errs.Wrap(err, "resolve recipient")
	}
	return d.mailer.Send(ctx, recipient.Email, payload.Subject, payload.Body)
}

// nextAttempt backs off exponentially and gives up after MaxDeliveryAttempts.
func nextAttempt(job shared.NotificationJob, now time.Time) (shared.JobStatus, time.Time) {
	attempt := int(job.Attempts) + 1
	if attempt >= MaxDeliveryAttempts {
		return shared.JobStatusFailed, now
	}
	return shared.JobStatusQueued, now.Add(time.Duration(1<<(attempt-1)) * retryBaseDelay)
}
