// Package database is the MongoDB document store behind the icebreaker
// engine. Every adapter validates documents on read so callers only see
// well-formed models.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"icebreaker/backend/icebreaker"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Collection names.
const (
	UsersCollection         = "users"
	ChannelsCollection      = "channels"
	SessionsCollection      = "sessions"
	MembersCollection       = "members"
	MessagesCollection      = "messages"
	ParticipationCollection = "participation"
	ActivitiesCollection    = "activities"
)

const (
	connectTimeout = 10 * time.Second
	opTimeout      = 5 * time.Second
)

// Store holds the MongoDB connection and implements the engine's store ports.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

// Connect opens and verifies a MongoDB connection and makes sure indexes exist.
func Connect(ctx context.Context, uri, name string, logger *zap.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	// Ping the primary to verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	s := &Store{client: client, db: client.Database(name), log: logger.Named("mongodb")}
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	s.log.Info("connected to mongodb", zap.String("db", name))
	return s, nil
}

// EnsureIndexes creates the indexes every adapter relies on. The unique
// indexes are what make member and participation upserts one-per-key.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		ChannelsCollection: {
			{Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		SessionsCollection: {
			{Keys: bson.D{{Key: "channelId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		MembersCollection: {
			{Keys: bson.D{{Key: "channelId", Value: 1}, {Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		MessagesCollection: {
			{Keys: bson.D{{Key: "channelId", Value: 1}, {Key: "sessionId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		ParticipationCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "sessionId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "joinedAt", Value: -1}}},
		},
		ActivitiesCollection: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
	}
	for name, idx := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes for %s: %w", name, err)
		}
	}
	return nil
}

// Collection returns a collection of the store's database.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Ping checks if MongoDB is reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return wrap("ping", s.client.Ping(ctx, readpref.Primary()))
}

// Disconnect closes the MongoDB connection.
func (s *Store) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongodb: %w", err)
	}
	s.log.Info("disconnected from mongodb")
	return nil
}

func nowMillis() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// wrap maps driver errors onto the engine's error kinds.
func wrap(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, icebreaker.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, icebreaker.ErrConflict)
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w: %v", op, icebreaker.ErrTransient, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

var (
	_ icebreaker.ChannelStore       = (*Store)(nil)
	_ icebreaker.SessionStore       = (*Store)(nil)
	_ icebreaker.MemberStore        = (*Store)(nil)
	_ icebreaker.UserStore          = (*Store)(nil)
	_ icebreaker.MessageStore       = (*Store)(nil)
	_ icebreaker.ParticipationStore = (*Store)(nil)
	_ icebreaker.ActivityCatalog    = (*Store)(nil)
)
