package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is one immutable chat line inside a session.
type Message struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ChannelID         primitive.ObjectID `bson:"channelId" json:"channelId"`
	SessionID         primitive.ObjectID `bson:"sessionId" json:"sessionId"`
	Text              string             `bson:"text" json:"text"`
	AuthorID          primitive.ObjectID `bson:"authorId" json:"authorId"`
	AuthorDisplayName string             `bson:"authorDisplayName" json:"authorDisplayName"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
}
