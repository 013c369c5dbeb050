package database

import (
	"context"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertChannel stores a new channel and sets its ID.
func (s *Store) InsertChannel(ctx context.Context, ch *models.Channel) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if ch.ID.IsZero() {
		ch.ID = primitive.NewObjectID()
	}
	_, err := s.Collection(ChannelsCollection).InsertOne(ctx, ch)
	return wrap("insert channel", err)
}

func (s *Store) FindChannel(ctx context.Context, channelID primitive.ObjectID) (*models.Channel, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var ch models.Channel
	if err := s.Collection(ChannelsCollection).FindOne(ctx, bson.M{"_id": channelID}).Decode(&ch); err != nil {
		return nil, wrap("find channel", err)
	}
	return &ch, nil
}

func (s *Store) RenameChannel(ctx context.Context, channelID primitive.ObjectID, name string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.Collection(ChannelsCollection).UpdateByID(ctx, channelID, bson.M{"$set": bson.M{"name": name}})
	if err != nil {
		return wrap("rename channel", err)
	}
	if res.MatchedCount == 0 {
		return wrap("rename channel", mongo.ErrNoDocuments)
	}
	return nil
}

// ListChannelsByOwner returns the owner's channels, newest first.
func (s *Store) ListChannelsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Channel, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.Collection(ChannelsCollection).Find(ctx, bson.M{"ownerId": ownerID}, opts)
	if err != nil {
		return nil, wrap("list channels", err)
	}
	defer cursor.Close(ctx)

	channels := []models.Channel{}
	if err := cursor.All(ctx, &channels); err != nil {
		return nil, wrap("decode channels", err)
	}
	return channels, nil
}
