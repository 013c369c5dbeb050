package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionStatus is the lifecycle state of a session.
type SessionStatus string

const (
	StatusPending SessionStatus = "pending"
	StatusActive  SessionStatus = "active"
	StatusEnded   SessionStatus = "end"
)

// Valid reports whether s is one of the known statuses.
func (s SessionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusActive, StatusEnded:
		return true
	}
	return false
}

// CanTransition reports whether a session may move from s to next.
// Statuses only move forward; re-applying the current status is allowed.
func (s SessionStatus) CanTransition(next SessionStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusActive || next == StatusEnded
	case StatusActive:
		return next == StatusEnded
	}
	return false
}

var errBadSession = errors.New("malformed session document")

// Session is one time-boxed ice-breaker inside a channel.
type Session struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ChannelID primitive.ObjectID `bson:"channelId" json:"channelId"`
	OwnerID   primitive.ObjectID `bson:"ownerId" json:"ownerId"`
	Status    SessionStatus      `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	EndedAt   *time.Time         `bson:"endedAt" json:"endedAt"`
	Tags      []string           `bson:"tags,omitempty" json:"tags,omitempty"`

	// Set at most once, first writer wins.
	ActivityID       primitive.ObjectID `bson:"activityId,omitempty" json:"activityId,omitempty"`
	ActivityCategory string             `bson:"activityCategory,omitempty" json:"activityCategory,omitempty"`
	ActivityTitle    string             `bson:"activityTitle,omitempty" json:"activityTitle,omitempty"`
	ActivityPrompt   string             `bson:"activityPrompt,omitempty" json:"activityPrompt,omitempty"`
}

// Validate normalizes a freshly decoded session and rejects shapes the rest
// of the code cannot handle. A missing status reads as active.
func (s *Session) Validate() error {
	if s.ID.IsZero() || s.ChannelID.IsZero() {
		return fmt.Errorf("%w: missing id", errBadSession)
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
	if !s.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", errBadSession, s.Status)
	}
	if s.Status != StatusEnded && s.EndedAt != nil {
		s.EndedAt = nil
	}
	return nil
}

// HasActivity reports whether a prompt was already stored on the session.
func (s *Session) HasActivity() bool {
	return s.ActivityTitle != "" || s.ActivityPrompt != ""
}

// Activity returns the stored prompt assignment.
func (s *Session) Activity() ActivityAssignment {
	return ActivityAssignment{
		ActivityID: s.ActivityID,
		Category:   s.ActivityCategory,
		Title:      s.ActivityTitle,
		Prompt:     s.ActivityPrompt,
	}
}

// FirstTag returns tags[0] or "".
func (s *Session) FirstTag() string {
	if len(s.Tags) == 0 {
		return ""
	}
	return s.Tags[0]
}
