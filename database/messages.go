package database

import (
	"context"
	"slices"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertMessage appends a chat message and sets its ID.
func (s *Store) InsertMessage(ctx context.Context, msg *models.Message) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	_, err := s.Collection(MessagesCollection).InsertOne(ctx, msg)
	return wrap("insert message", err)
}

// ListMessages returns the limit most recent messages of a session, oldest
// first. Ties on createdAt keep insertion order.
func (s *Store) ListMessages(ctx context.Context, channelID, sessionID primitive.ObjectID, limit int) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"channelId": channelID, "sessionId": sessionID}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := s.Collection(MessagesCollection).Find(ctx, filter, opts)
	if err != nil {
		return nil, wrap("list messages", err)
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, wrap("decode messages", err)
	}
	slices.Reverse(messages)
	return messages, nil
}
