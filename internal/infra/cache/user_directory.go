package cache

import (
	"context"
	"log/slog"
	"time"

	"ride-together/internal/domain/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const displayNameNamespace = "users:displayname"

type UserSource interface {
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*user.User, error)
}

// UserDirectory resolves display names through Redis, falling back to the
// user store on a miss. A nil client disables caching.
type UserDirectory struct {
	client redis.UniversalClient
	source UserSource
	ttl    time.Duration
}

func NewUserDirectory(client redis.UniversalClient, source UserSource, ttl time.Duration) *UserDirectory {
	return &UserDirectory{
		client: client,
		source: source,
		ttl:    ttl,
	}
}

func (d *UserDirectory) DisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	missing := d.fromCache(ctx, ids, names)
	if len(missing) == 0 {
		return names, nil
	}

	users, err := d.source.FindByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	fresh := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		if name := u.Name(""); name != "" {
			fresh[u.ID()] = name
			names[u.ID()] = name
		}
	}
	d.store(ctx, fresh)
	return names, nil
}

// fromCache fills names with cached entries and returns the ids it could
// not serve. Cache errors are treated as misses.
func (d *UserDirectory) fromCache(ctx context.Context, ids []uuid.UUID, names map[uuid.UUID]string) []uuid.UUID {
	if d.client == nil {
		return ids
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}
	values, err := d.client.MGet(ctx, keys...).Result()
	if err != nil {
		slog.Warn("display name cache read failed", "count", len(ids), "error", err.Error())
		return ids
	}

	var missing []uuid.UUID
	for i, v := range values {
		s, ok := v.(string)
		if !ok || s == "" {
			missing = append(missing, ids[i])
			continue
		}
		names[ids[i]] = s
	}
	return missing
}

func (d *UserDirectory) store(ctx context.Context, fresh map[uuid.UUID]string) {
	if d.client == nil || len(fresh) == 0 {
		return
	}
	_, err := d.client.Pipelined(ctx, func(p redis.Pipeliner) error {
		for id, name := range fresh {
			p.Set(ctx, key(id), name, d.ttl)
		}
		return nil
	})
	if err != nil {
		slog.Warn("display name cache write failed", "count", len(fresh), "error", err.Error())
	}
}

func key(id uuid.UUID) string {
	return displayNameNamespace + ":" + id.String()
}
