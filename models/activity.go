package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Activity categories known to the prompt catalog.
const (
	CategoryGaming    = "gaming"
	CategoryTech      = "tech"
	CategoryTraveling = "traveling"
)

// Activity is one ice-breaker prompt in the read-only catalog.
type Activity struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Category string             `bson:"category" json:"category"`
	Title    string             `bson:"title" json:"title"`
	Prompt   string             `bson:"prompt" json:"prompt"`
}

// ActivityAssignment is the prompt chosen for a session, stored on the
// session document.
type ActivityAssignment struct {
	ActivityID primitive.ObjectID `json:"activityId,omitempty"`
	Category   string             `json:"category"`
	Title      string             `json:"title"`
	Prompt     string             `json:"prompt"`
}
