package readstore

import (
	"context"

	"ride-together/internal/domain/notification"
	"ride-together/internal/infra"
	sqlc "ride-together/internal/infra/sqlc/generated"
	"ride-together/internal/pkg/pgconv"
	"ride-together/internal/pkg/ptr"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListNotificationsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsByUserParams) ([]sqlc.Notifications, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByUser returns the newest notifications first.
func (s *NotificationReadStore) FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int32) ([]*notification.Notification, error) {
	rows, err := s.queries.ListNotificationsByUser(ctx, s.db, sqlc.ListNotificationsByUserParams{
		UserID:     userID,
		UnreadOnly: unreadOnly,
		MaxRows:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}

	result := make([]*notification.Notification, len(rows))
	for i, row := range rows {
		result[i] = notification.ReconstructNotification(
			row.ID,
			row.UserID,
			notification.Type(row.Type),
			row.Message,
			ptr.Deref(pgconv.UUIDPtrFromPgtype(row.FromUserID)),
			ptr.Deref(pgconv.UUIDPtrFromPgtype(row.BookingID)),
			row.Read,
			pgconv.TimeFromPgtype(row.CreatedAt),
		)
	}
	return result, nil
}
