package changefeed

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"ride-together/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	minReconnectDelay = 500 * time.Millisecond
	maxReconnectDelay = 30 * time.Second
)

// Listener holds one pooled connection in LISTEN mode and forwards every
// notification on the change channel to the broker.
type Listener struct {
	pool    *pgxpool.Pool
	broker  *Broker
	channel string

	cancel context.CancelFunc
	done   chan struct{}
}

func NewListener(pool *pgxpool.Pool, broker *Broker) *Listener {
	return &Listener{
		pool:    pool,
		broker:  broker,
		channel: shared.ChangeChannel,
	}
}

func (l *Listener) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)
	l.done = make(chan struct{})
	go l.run(ctx)
}

func (l *Listener) Stop(ctx context.Context) error {
	if l.cancel == nil {
		return nil
	}
	l.cancel()
	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Listener) run(ctx context.Context) {
	defer close(l.done)

	delay := minReconnectDelay
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			return
		}
		slog.Warn("change feed listener disconnected, reconnecting",
			"wait_ms", delay.Milliseconds(),
			"error", errString(err))

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay *= 2
		if delay > maxReconnectDelay {
			delay = maxReconnectDelay
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{l.channel}.Sanitize()); err != nil {
		return err
	}
	slog.Info("change feed listening", "channel", l.channel)

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		ev, err := decode(n.Payload)
		if err != nil {
			slog.Warn("dropping malformed change event", "error", err.Error())
			continue
		}
		l.broker.Dispatch(ev)
	}
}

func decode(payload string) (shared.ChangeEvent, error) {
	var ev shared.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		return shared.ChangeEvent{}, err
	}
	if ev.Collection == "" {
		return shared.ChangeEvent{}, errors.New("change event without collection")
	}
	return ev, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
