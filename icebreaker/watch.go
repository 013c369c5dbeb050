package icebreaker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"icebreaker/backend/realtime"

	"go.uber.org/zap"
)

// Snapshot is one delivery of an observed value. A snapshot with a non-nil
// Err is the last one: the watch stops after it.
type Snapshot[T any] struct {
	Value T
	Err   error
}

// Watch streams snapshots of a document or query: once for the current
// state, then once per change notification, in order. Rapid changes may be
// coalesced into one snapshot.
type Watch[T any] struct {
	C <-chan Snapshot[T]

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Cancel stops the watch and waits for its goroutine to exit. Safe to call
// more than once.
func (w *Watch[T]) Cancel() {
	if w == nil {
		return
	}
	w.once.Do(func() {
		w.cancel()
		<-w.done
	})
}

// Done is closed once the watch stopped delivering.
func (w *Watch[T]) Done() <-chan struct{} {
	return w.done
}

var errSubscriptionClosed = errors.New("subscription closed")

func startWatch[T any](ctx context.Context, broker realtime.Broker, topics []string, load func(context.Context) (T, error)) (*Watch[T], error) {
	sub, err := broker.Subscribe(ctx, topics...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan Snapshot[T])
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(out)
		defer sub.Cancel()

		deliver := func(s Snapshot[T]) bool {
			select {
			case out <- s:
				return s.Err == nil
			case <-ctx.Done():
				return false
			}
		}
		emit := func() bool {
			v, err := load(ctx)
			if ctx.Err() != nil {
				return false
			}
			return deliver(Snapshot[T]{Value: v, Err: err})
		}

		if !emit() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-sub.C:
				if !ok {
					var zero T
					deliver(Snapshot[T]{Value: zero, Err: fmt.Errorf("%w: %v", ErrTransient, errSubscriptionClosed)})
					return
				}
				if !emit() {
					return
				}
			}
		}
	}()

	return &Watch[T]{C: out, cancel: cancel, done: done}, nil
}

// notify publishes a change on every topic. The write already happened, so
// failures are only logged.
func notify(ctx context.Context, broker realtime.Broker, log *zap.Logger, kind, docID string, topics ...string) {
	now := time.Now().UTC()
	for _, t := range topics {
		if err := broker.Publish(ctx, realtime.Event{Topic: t, Kind: kind, DocID: docID, At: now}); err != nil {
			log.Warn("publish change", zap.String("topic", t), zap.Error(err))
		}
	}
}
