package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member is a user's record inside one channel, keyed by (ChannelID, UserID).
type Member struct {
	ChannelID   primitive.ObjectID `bson:"channelId" json:"channelId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	Bio         string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Interests   []string           `bson:"interests,omitempty" json:"interests,omitempty"`
	JoinedAt    time.Time          `bson:"joinedAt" json:"joinedAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
