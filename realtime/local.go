package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type localSub struct {
	ch     chan Event
	topics []string
}

// LocalBroker delivers events inside one process.
type LocalBroker struct {
	mu     sync.RWMutex
	topics map[string]map[*localSub]struct{}
	closed bool
}

// NewLocalBroker returns an empty in-process broker.
func NewLocalBroker() *LocalBroker {
	return &LocalBroker{topics: make(map[string]map[*localSub]struct{})}
}

// Publish implements Broker.
func (b *LocalBroker) Publish(_ context.Context, ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}
	for sub := range b.topics[ev.Topic] {
		offer(sub.ch, ev)
	}
	return nil
}

// Subscribe implements Broker.
func (b *LocalBroker) Subscribe(_ context.Context, topics ...string) (*Subscription, error) {
	sub := &localSub{ch: make(chan Event, subscriptionBuffer), topics: topics}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	for _, t := range topics {
		set, ok := b.topics[t]
		if !ok {
			set = make(map[*localSub]struct{})
			b.topics[t] = set
		}
		set[sub] = struct{}{}
	}
	b.mu.Unlock()

	return &Subscription{
		ID: uuid.NewString(),
		C:  sub.ch,
		cancel: func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.remove(sub)
		},
	}, nil
}

// remove must be called with b.mu held.
func (b *LocalBroker) remove(sub *localSub) {
	for _, t := range sub.topics {
		set, ok := b.topics[t]
		if !ok {
			continue
		}
		if _, ok := set[sub]; !ok {
			continue
		}
		delete(set, sub)
		if len(set) == 0 {
			delete(b.topics, t)
		}
	}
	if sub.ch != nil {
		close(sub.ch)
		sub.ch = nil
	}
}

// Close implements Broker. Open subscriptions are closed.
func (b *LocalBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	seen := make(map[*localSub]struct{})
	for _, set := range b.topics {
		for sub := range set {
			seen[sub] = struct{}{}
		}
	}
	for sub := range seen {
		b.remove(sub)
	}
	return nil
}

// Subscribers returns the number of live subscriptions on topic.
func (b *LocalBroker) Subscribers(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[topic])
}
