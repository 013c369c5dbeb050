package database

import (
	"context"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertParticipation creates the (user, session) record unless it exists.
// The upsert plus the unique index makes this one record per pair even under
// concurrent calls.
func (s *Store) InsertParticipation(ctx context.Context, rec *models.ParticipationRecord) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := bson.M{"userId": rec.UserID, "sessionId": rec.SessionID}
	update := bson.M{"$setOnInsert": bson.M{
		"channelId": rec.ChannelID,
		"joinedAt":  rec.JoinedAt,
	}}
	res, err := s.Collection(ParticipationCollection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// Lost an upsert race; the other call created it.
		return false, nil
	}
	if err != nil {
		return false, wrap("record participation", err)
	}
	return res.UpsertedCount == 1, nil
}

// ListParticipation returns a user's records, newest first.
func (s *Store) ListParticipation(ctx context.Context, userID primitive.ObjectID) ([]models.ParticipationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "joinedAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := s.Collection(ParticipationCollection).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, wrap("list participation", err)
	}
	defer cursor.Close(ctx)

	records := []models.ParticipationRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, wrap("decode participation", err)
	}
	return records, nil
}
