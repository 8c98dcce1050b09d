//go:build unit

package cache

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"ride-together/internal/domain/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryRedis answers MGET and pipelined SET from a map, so the client never
// opens a connection.
type memoryRedis struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]any
	readErr error
	mgets   int
	sets    int
}

func newMemoryRedis(t *testing.T) (*memoryRedis, redis.UniversalClient) {
	t.Helper()
	m := &memoryRedis{values: map[string]string{}, ttls: map[string]any{}}
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	client.AddHook(m)
	t.Cleanup(func() { _ = client.Close() })
	return m, client
}

func (m *memoryRedis) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("memoryRedis: no network")
	}
}

func (m *memoryRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		return m.apply(cmd)
	}
}

func (m *memoryRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		for _, cmd := range cmds {
			if err := m.apply(cmd); err != nil {
				return err
			}
		}
		return nil
	}
}

func (m *memoryRedis) apply(cmd redis.Cmder) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	args := cmd.Args()
	switch c := cmd.(type) {
	case *redis.SliceCmd:
		m.mgets++
		if m.readErr != nil {
			c.SetErr(m.readErr)
			return m.readErr
		}
		vals := make([]any, 0, len(args)-1)
		for _, k := range args[1:] {
			if v, ok := m.values[k.(string)]; ok {
				vals = append(vals, v)
			} else {
				vals = append(vals, nil)
			}
		}
		c.SetVal(vals)
	case *redis.StatusCmd:
		m.sets++
		k := args[1].(string)
		m.values[k] = args[2].(string)
		if len(args) == 5 {
			m.ttls[k] = args[4]
		}
		c.SetVal("OK")
	default:
		return errors.New("memoryRedis: unsupported command " + cmd.Name())
	}
	return nil
}

func (m *memoryRedis) put(id uuid.UUID, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key(id)] = name
}

func TestUserDirectory_WithRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("miss loads from the source and fills the cache", func(t *testing.T) {
		rdb, client := newMemoryRedis(t)
		alice := newUser(t, "alice@example.com", "Alice")
		bob := newUser(t, "bob@example.com", "")
		ids := []uuid.UUID{alice.ID(), bob.ID()}

		src := new(mockSource)
		src.On("FindByIDs", mock.Anything, ids).Return([]*user.User{alice, bob}, nil).Once()

		names, err := NewUserDirectory(client, src, time.Minute).DisplayNames(ctx, ids)

		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]string{alice.ID(): "Alice", bob.ID(): "bob"}, names)
		assert.Equal(t, "Alice", rdb.values[key(alice.ID())])
		assert.Equal(t, "bob", rdb.values[key(bob.ID())])
		assert.EqualValues(t, 60, rdb.ttls[key(alice.ID())])
		src.AssertExpectations(t)
	})

	t.Run("hit skips the source", func(t *testing.T) {
		rdb, client := newMemoryRedis(t)
		id := uuid.New()
		rdb.put(id, "Cached")
		src := new(mockSource)

		names, err := NewUserDirectory(client, src, time.Minute).DisplayNames(ctx, []uuid.UUID{id})

		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]string{id: "Cached"}, names)
		assert.Zero(t, rdb.sets)
		src.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	})

	t.Run("partial hit only asks for the missing ids", func(t *testing.T) {
		rdb, client := newMemoryRedis(t)
		cached := uuid.New()
		rdb.put(cached, "Cached")
		fresh := newUser(t, "carol@example.com", "Carol")
		unknown := uuid.New()

		src := new(mockSource)
		src.On("FindByIDs", mock.Anything, []uuid.UUID{fresh.ID(), unknown}).Return([]*user.User{fresh}, nil).Once()

		names, err := NewUserDirectory(client, src, time.Minute).
			DisplayNames(ctx, []uuid.UUID{cached, fresh.ID(), unknown})

		require.NoError(t, err)
		assert.Equal(t, map[uuid.UUID]string{cached: "Cached", fresh.ID(): "Carol"}, names)
		assert.Equal(t, 1, rdb.sets)
		assert.NotContains(t, rdb.values, key(unknown))
		src.AssertExpectations(t)
	})

	t.Run("second call is served from the cache", func(t *testing.T) {
		rdb, client := newMemoryRedis(t)
		alice := newUser(t, "alice@example.com", "Alice")
		src := new(mockSource)
		src.On("FindByIDs", mock.Anything, []uuid.UUID{alice.ID()}).Return([]*user.User{alice}, nil).Once()
		dir := NewUserDirectory(client, src, time.Minute)

		_, err := dir.DisplayNames(ctx, []uuid.UUID{alice.ID()})
		require.NoError(t, err)
		names, err := dir.DisplayNames(ctx, []uuid.UUID{alice.ID()})
		require.NoError(t, err)

		assert.Equal(t, "Alice", names[alice.ID()])
		assert.Equal(t, 2, rdb.mgets)
		src.AssertNumberOfCalls(t, "FindByIDs", 1)
	})

	t.Run("read failure falls back to the source", func(t *testing.T) {
		rdb, client := newMemoryRedis(t)
		rdb.readErr = errors.New("LOADING")
		alice := newUser(t, "alice@example.com", "Alice")
		src := new(mockSource)
		src.On("FindByIDs", mock.Anything, []uuid.UUID{alice.ID()}).Return([]*user.User{alice}, nil).Once()

		names, err := NewUserDirectory(client, src, time.Minute).DisplayNames(ctx, []uuid.UUID{alice.ID()})

		require.NoError(t, err)
		assert.Equal(t, "Alice", names[alice.ID()])
		src.AssertExpectations(t)
	})
}
