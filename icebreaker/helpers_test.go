package icebreaker_test

import (
	"sync"
	"testing"
	"time"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"
	"icebreaker/backend/realtime"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newBroker(t *testing.T) *realtime.LocalBroker {
	t.Helper()
	b := realtime.NewLocalBroker()
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func next[T any](t *testing.T, w *icebreaker.Watch[T]) icebreaker.Snapshot[T] {
	t.Helper()
	select {
	case s, ok := <-w.C:
		require.True(t, ok, "watch closed")
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")
	}
	return icebreaker.Snapshot[T]{}
}

func testSession(status models.SessionStatus) *models.Session {
	return &models.Session{
		ID:        primitive.NewObjectID(),
		ChannelID: primitive.NewObjectID(),
		OwnerID:   primitive.NewObjectID(),
		Status:    status,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func testIdentity(name string) models.Identity {
	return models.Identity{UserID: primitive.NewObjectID(), DisplayName: name, Email: name + "@example.com"}
}

// countingCanceler records Cancel calls.
type countingCanceler struct {
	mu sync.Mutex
	n  int
}

func (c *countingCanceler) Cancel() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *countingCanceler) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
