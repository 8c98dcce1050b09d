package repository

import (
	"context"
	"encoding/json"

	"ride-together/internal/infra"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/usecase/shared"
)

type EventWriteQueries interface {
	NotifyChange(ctx context.Context, db sqlc.DBTX, arg sqlc.NotifyChangeParams) error
}

// EventPublisher sends change events through pg_notify. Postgres holds
// the notification until the surrounding transaction commits.
type EventPublisher struct {
	queries EventWriteQueries
	channel string
}

func NewEventPublisher(queries EventWriteQueries) *EventPublisher {
	return &EventPublisher{queries: queries, channel: shared.ChangeChannel}
}

func (p *EventPublisher) Publish(ctx context.Context, tx sqlc.DBTX, ev shared.ChangeEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return infra.WrapRepoErr("failed to encode change event", err)
	}
	err = p.queries.NotifyChange(ctx, tx, sqlc.NotifyChangeParams{Channel: p.channel, Payload: string(payload)})
	if err != nil {
		return infra.WrapRepoErr("failed to publish change event", err)
	}
	return nil
}
