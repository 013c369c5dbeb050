package database

import (
	"context"
	"fmt"
	"time"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func sessionKey(channelID, sessionID primitive.ObjectID) bson.M {
	return bson.M{"_id": sessionID, "channelId": channelID}
}

// InsertSession stores a new session and sets its ID.
func (s *Store) InsertSession(ctx context.Context, sess *models.Session) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if sess.ID.IsZero() {
		sess.ID = primitive.NewObjectID()
	}
	if _, err := s.Collection(SessionsCollection).InsertOne(ctx, sess); err != nil {
		return wrap("insert session", err)
	}
	return nil
}

// FindSession loads one session of a channel.
func (s *Store) FindSession(ctx context.Context, channelID, sessionID primitive.ObjectID) (*models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var sess models.Session
	err := s.Collection(SessionsCollection).FindOne(ctx, sessionKey(channelID, sessionID)).Decode(&sess)
	if err != nil {
		return nil, wrap("find session", err)
	}
	if err := sess.Validate(); err != nil {
		return nil, fmt.Errorf("find session: %w: %w", icebreaker.ErrInvalidDocument, err)
	}
	return &sess, nil
}

// FindRecentSessions returns up to limit sessions, newest first. Malformed
// documents are skipped.
func (s *Store) FindRecentSessions(ctx context.Context, channelID primitive.ObjectID, limit int) ([]models.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := s.Collection(SessionsCollection).Find(ctx, bson.M{"channelId": channelID}, opts)
	if err != nil {
		return nil, wrap("find sessions", err)
	}
	defer cursor.Close(ctx)

	var raw []models.Session
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, wrap("decode sessions", err)
	}
	sessions := raw[:0]
	for _, sess := range raw {
		if err := sess.Validate(); err != nil {
			s.log.Warn("skipping malformed session", zap.String("sessionId", sess.ID.Hex()), zap.Error(err))
			continue
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// EndSession moves a session to end. It leaves an ended session untouched so
// endedAt keeps its first value.
func (s *Store) EndSession(ctx context.Context, channelID, sessionID primitive.ObjectID, endedAt time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := sessionKey(channelID, sessionID)
	filter["status"] = bson.M{"$ne": models.StatusEnded}
	update := bson.M{"$set": bson.M{"status": models.StatusEnded, "endedAt": endedAt}}

	res, err := s.Collection(SessionsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return wrap("end session", err)
	}
	if res.MatchedCount == 0 {
		return s.sessionExists(ctx, channelID, sessionID)
	}
	return nil
}

// ClaimTags sets tags on a session that has none yet.
func (s *Store) ClaimTags(ctx context.Context, channelID, sessionID primitive.ObjectID, tags []string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := sessionKey(channelID, sessionID)
	filter["$or"] = bson.A{
		bson.M{"tags": nil},
		bson.M{"tags": bson.M{"$size": 0}},
	}
	return s.claim(ctx, channelID, sessionID, filter, bson.M{"$set": bson.M{"tags": tags}})
}

// ClaimActivity stores the prompt on a session that has none yet.
func (s *Store) ClaimActivity(ctx context.Context, channelID, sessionID primitive.ObjectID, a models.ActivityAssignment) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	filter := sessionKey(channelID, sessionID)
	filter["activityTitle"] = bson.M{"$in": bson.A{nil, ""}}
	filter["activityPrompt"] = bson.M{"$in": bson.A{nil, ""}}

	set := bson.M{
		"activityCategory": a.Category,
		"activityTitle":    a.Title,
		"activityPrompt":   a.Prompt,
	}
	if !a.ActivityID.IsZero() {
		set["activityId"] = a.ActivityID
	}
	return s.claim(ctx, channelID, sessionID, filter, bson.M{"$set": set})
}

func (s *Store) claim(ctx context.Context, channelID, sessionID primitive.ObjectID, filter, update bson.M) (bool, error) {
	res, err := s.Collection(SessionsCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, wrap("claim session field", err)
	}
	if res.MatchedCount == 1 {
		return true, nil
	}
	return false, s.sessionExists(ctx, channelID, sessionID)
}

func (s *Store) sessionExists(ctx context.Context, channelID, sessionID primitive.ObjectID) error {
	n, err := s.Collection(SessionsCollection).CountDocuments(ctx, sessionKey(channelID, sessionID), options.Count().SetLimit(1))
	if err != nil {
		return wrap("count sessions", err)
	}
	if n == 0 {
		return wrap("find session", mongo.ErrNoDocuments)
	}
	return nil
}
