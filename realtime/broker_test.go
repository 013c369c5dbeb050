package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func receive(t *testing.T, sub *Subscription) Event {
	t.Helper()
	select {
	case ev, ok := <-sub.C:
		require.True(t, ok, "subscription closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func assertQuiet(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case ev, ok := <-sub.C:
		if ok {
			t.Fatalf("unexpected event %+v", ev)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func brokers(t *testing.T) map[string]Broker {
	s := miniredis.RunT(t)
	rb, err := NewRedisBroker("redis://"+s.Addr(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rb.Close() })

	lb := NewLocalBroker()
	t.Cleanup(func() { _ = lb.Close() })

	return map[string]Broker{"local": lb, "redis": rb}
}

func TestBrokerDeliversToTopicSubscribers(t *testing.T) {
	for name, b := range brokers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			ch, sess := primitive.NewObjectID(), primitive.NewObjectID()

			sub, err := b.Subscribe(ctx, SessionTopic(ch, sess))
			require.NoError(t, err)
			defer sub.Cancel()

			other, err := b.Subscribe(ctx, MembersTopic(ch))
			require.NoError(t, err)
			defer other.Cancel()

			require.NoError(t, b.Publish(ctx, Event{Topic: SessionTopic(ch, sess), Kind: KindUpdated, DocID: sess.Hex()}))

			ev := receive(t, sub)
			assert.Equal(t, SessionTopic(ch, sess), ev.Topic)
			assert.Equal(t, KindUpdated, ev.Kind)
			assert.False(t, ev.At.IsZero())
			assertQuiet(t, other)
		})
	}
}

func TestBrokerCancelClosesChannel(t *testing.T) {
	for name, b := range brokers(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			topic := MembersTopic(primitive.NewObjectID())

			sub, err := b.Subscribe(ctx, topic)
			require.NoError(t, err)
			sub.Cancel()
			sub.Cancel()

			select {
			case _, ok := <-sub.C:
				assert.False(t, ok)
			case <-time.After(2 * time.Second):
				t.Fatal("channel not closed after Cancel")
			}
			assert.NoError(t, b.Publish(ctx, Event{Topic: topic}))
		})
	}
}

func TestLocalBrokerCoalescesPendingEvents(t *testing.T) {
	b := NewLocalBroker()
	defer b.Close()
	ctx := context.Background()
	topic := ChannelSessionsTopic(primitive.NewObjectID())

	sub, err := b.Subscribe(ctx, topic)
	require.NoError(t, err)
	defer sub.Cancel()

	for i := 0; i < 5; i++ {
		require.NoError(t, b.Publish(ctx, Event{Topic: topic, Kind: KindCreated}))
	}
	receive(t, sub)
	assertQuiet(t, sub)
}

func TestLocalBrokerSubscriberBookkeeping(t *testing.T) {
	b := NewLocalBroker()
	ctx := context.Background()
	ch := primitive.NewObjectID()

	a, err := b.Subscribe(ctx, MembersTopic(ch), ChannelSessionsTopic(ch))
	require.NoError(t, err)
	c, err := b.Subscribe(ctx, MembersTopic(ch))
	require.NoError(t, err)
	assert.Equal(t, 2, b.Subscribers(MembersTopic(ch)))
	assert.Equal(t, 1, b.Subscribers(ChannelSessionsTopic(ch)))

	a.Cancel()
	assert.Equal(t, 1, b.Subscribers(MembersTopic(ch)))
	assert.Equal(t, 0, b.Subscribers(ChannelSessionsTopic(ch)))

	require.NoError(t, b.Close())
	_, ok := <-c.C
	assert.False(t, ok, "Close must close open subscriptions")
	c.Cancel()

	_, err = b.Subscribe(ctx, MembersTopic(ch))
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, b.Publish(ctx, Event{Topic: MembersTopic(ch)}), ErrClosed)
}
