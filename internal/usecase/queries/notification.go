package queries

import (
	"context"

	"ride-together/internal/pkg/ptr"

	"github.com/google/uuid"
)

const (
	DefaultNotificationLimit = 50
	MaxNotificationLimit     = 200
)

type NotificationQueries interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	if limit > MaxNotificationLimit {
		limit = MaxNotificationLimit
	}

	// #nosec G115 -- limit is clamped above
	items, err := q.store.FindByUser(ctx, userID, unreadOnly, int32(limit))
	if err != nil {
		return nil, err
	}

	result := make([]*NotificationView, len(items))
	for i, n := range items {
		result[i] = &NotificationView{
			ID:         n.ID(),
			Type:       string(n.Type()),
			Message:    n.Message(),
			FromUserID: ptr.NilIfZero(n.FromUserID()),
			BookingID:  ptr.NilIfZero(n.BookingID()),
			Read:       n.Read(),
			CreatedAt:  n.CreatedAt(),
		}
	}
	return result, nil
}
