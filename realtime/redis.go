package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPrefix = "icebreaker:"

// RedisBroker relays events through Redis pub/sub so every API instance sees
// writes made by the others.
type RedisBroker struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedisBroker connects to redisURL and verifies the connection.
func NewRedisBroker(redisURL string, logger *zap.Logger) (*RedisBroker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return NewRedisBrokerWithClient(client, logger), nil
}

// NewRedisBrokerWithClient wraps an existing client.
func NewRedisBrokerWithClient(client *redis.Client, logger *zap.Logger) *RedisBroker {
	return &RedisBroker{client: client, log: logger}
}

// Publish implements Broker.
func (b *RedisBroker) Publish(ctx context.Context, ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := b.client.Publish(ctx, redisPrefix+ev.Topic, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", ev.Topic, err)
	}
	return nil
}

// Subscribe implements Broker.
func (b *RedisBroker) Subscribe(ctx context.Context, topics ...string) (*Subscription, error) {
	channels := make([]string, len(topics))
	for i, t := range topics {
		channels[i] = redisPrefix + t
	}
	ps := b.client.Subscribe(ctx, channels...)
	// Wait for the subscribe confirmations so no publish after return is lost.
	for range channels {
		if _, err := ps.Receive(ctx); err != nil {
			_ = ps.Close()
			return nil, fmt.Errorf("subscribe: %w", err)
		}
	}

	out := make(chan Event, subscriptionBuffer)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(out)
		for msg := range ps.Channel() {
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				b.log.Warn("dropping malformed event", zap.String("channel", msg.Channel), zap.Error(err))
				continue
			}
			offer(out, ev)
		}
	}()

	return &Subscription{
		ID: uuid.NewString(),
		C:  out,
		cancel: func() {
			if err := ps.Close(); err != nil {
				b.log.Debug("close pubsub", zap.Error(err))
			}
			<-done
		},
	}, nil
}

// Close implements Broker.
func (b *RedisBroker) Close() error {
	return b.client.Close()
}

// Ping checks that Redis is reachable.
func (b *RedisBroker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
