package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Channel is a named group owned by its creator. Only Name is mutable.
type Channel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	OwnerID   primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// IsOwner reports whether userID owns the channel.
func (c *Channel) IsOwner(userID primitive.ObjectID) bool {
	return !userID.IsZero() && c.OwnerID == userID
}

// DisplayName returns the channel name or a placeholder for blank names.
func (c *Channel) DisplayName() string {
	if c.Name == "" {
		return "Untitled Channel"
	}
	return c.Name
}
