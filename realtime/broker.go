// Package realtime is the push primitive behind every observe operation:
// writers publish a change notification on a topic after each store write,
// observers re-read the store when notified.
package realtime

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrClosed is returned by a broker after Close.
var ErrClosed = errors.New("realtime: broker closed")

// Event kinds.
const (
	KindCreated = "created"
	KindUpdated = "updated"
)

// Event tells subscribers that the documents behind Topic changed. It does not
// carry the document; subscribers re-read it.
type Event struct {
	Topic string    `json:"topic"`
	Kind  string    `json:"kind"`
	DocID string    `json:"docId,omitempty"`
	At    time.Time `json:"at"`
}

// Broker fans change notifications out to subscribers.
type Broker interface {
	Publish(ctx context.Context, ev Event) error
	// Subscribe returns once the subscription is live: every Publish that
	// starts after Subscribe returns is observed.
	Subscribe(ctx context.Context, topics ...string) (*Subscription, error)
	Close() error
}

// subscriptionBuffer is 1: a pending event already forces a
// re-read, so further events can be coalesced into it.
const subscriptionBuffer = 1

// Subscription is a live interest in one or more topics. Callers must Cancel
// it exactly once when done; extra calls are no-ops.
type Subscription struct {
	ID     string
	C      <-chan Event
	cancel func()
	once   sync.Once
}

// Cancel stops delivery and closes C.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

// offer delivers ev without blocking, dropping it when an event is already
// pending.
func offer(ch chan Event, ev Event) {
	select {
	case ch <- ev:
	default:
	}
}

// SessionTopic is notified when one session document changes.
func SessionTopic(channelID, sessionID primitive.ObjectID) string {
	return "channels/" + channelID.Hex() + "/sessions/" + sessionID.Hex()
}

// ChannelSessionsTopic is notified when any session of a channel is created
// or changes.
func ChannelSessionsTopic(channelID primitive.ObjectID) string {
	return "channels/" + channelID.Hex() + "/sessions"
}

// MessagesTopic is notified when a message is appended to a session.
func MessagesTopic(channelID, sessionID primitive.ObjectID) string {
	return SessionTopic(channelID, sessionID) + "/messages"
}

// MembersTopic is notified when the member set of a channel changes.
func MembersTopic(channelID primitive.ObjectID) string {
	return "channels/" + channelID.Hex() + "/members"
}
