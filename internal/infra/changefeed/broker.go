package changefeed

import (
	"sync"

	"ride-together/internal/usecase/shared"
)

type subscriber struct {
	filter shared.ChangeFilter
	fn     func(shared.ChangeEvent)
}

// Broker fans change events out to in-process subscribers.
type Broker struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]subscriber
}

func NewBroker() *Broker {
	return &Broker{subs: make(map[uint64]subscriber)}
}

func (b *Broker) Subscribe(filter shared.ChangeFilter, fn func(shared.ChangeEvent)) shared.Unsubscribe {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = subscriber{filter: filter, fn: fn}
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Dispatch delivers ev to every matching subscriber on the caller's goroutine.
func (b *Broker) Dispatch(ev shared.ChangeEvent) {
	b.mu.RLock()
	targets := make([]func(shared.ChangeEvent), 0, len(b.subs))
	for _, s := range b.subs {
		if s.filter.Matches(ev) {
			targets = append(targets, s.fn)
		}
	}
	b.mu.RUnlock()

	for _, fn := range targets {
		fn(ev)
	}
}

func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
