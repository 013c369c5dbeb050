package database

import (
	"context"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func memberKey(channelID, userID primitive.ObjectID) bson.M {
	return bson.M{"channelId": channelID, "userId": userID}
}

// UpsertMember creates the member or refreshes its profile fields. joinedAt
// and interests of an existing member are kept.
func (s *Store) UpsertMember(ctx context.Context, m *models.Member) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"displayName": m.DisplayName,
			"bio":         m.Bio,
			"updatedAt":   m.UpdatedAt,
		},
		"$setOnInsert": bson.M{"joinedAt": m.JoinedAt},
	}
	_, err := s.Collection(MembersCollection).UpdateOne(ctx, memberKey(m.ChannelID, m.UserID), update, options.Update().SetUpsert(true))
	return wrap("upsert member", err)
}

// SetMemberInterests replaces the member's interests, creating the member if needed.
func (s *Store) SetMemberInterests(ctx context.Context, channelID, userID primitive.ObjectID, interests []string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	now := nowMillis()
	update := bson.M{
		"$set":         bson.M{"interests": interests, "updatedAt": now},
		"$setOnInsert": bson.M{"joinedAt": now},
	}
	_, err := s.Collection(MembersCollection).UpdateOne(ctx, memberKey(channelID, userID), update, options.Update().SetUpsert(true))
	return wrap("set member interests", err)
}

func (s *Store) FindMember(ctx context.Context, channelID, userID primitive.ObjectID) (*models.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var m models.Member
	if err := s.Collection(MembersCollection).FindOne(ctx, memberKey(channelID, userID)).Decode(&m); err != nil {
		return nil, wrap("find member", err)
	}
	return &m, nil
}

// ListMembers returns the channel roster in join order.
func (s *Store) ListMembers(ctx context.Context, channelID primitive.ObjectID) ([]models.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "joinedAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := s.Collection(MembersCollection).Find(ctx, bson.M{"channelId": channelID}, opts)
	if err != nil {
		return nil, wrap("list members", err)
	}
	defer cursor.Close(ctx)

	members := []models.Member{}
	if err := cursor.All(ctx, &members); err != nil {
		return nil, wrap("decode members", err)
	}
	return members, nil
}
