package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParticipationRecord marks, once, that a user joined a session.
type ParticipationRecord struct {
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	ChannelID primitive.ObjectID `bson:"channelId" json:"channelId"`
	SessionID primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	JoinedAt  time.Time          `bson:"joinedAt" json:"joinedAt"`
}
