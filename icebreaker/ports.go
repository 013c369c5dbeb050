package icebreaker

//go:generate mockgen -destination=mocks/mock_ports.go -package=mocks icebreaker/backend/icebreaker ChannelStore,SessionStore,MemberStore,UserStore,MessageStore,ParticipationStore,ActivityCatalog,InterestCache,Effects

import (
	"context"
	"time"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChannelStore persists channels.
type ChannelStore interface {
	InsertChannel(ctx context.Context, ch *models.Channel) error
	FindChannel(ctx context.Context, channelID primitive.ObjectID) (*models.Channel, error)
	RenameChannel(ctx context.Context, channelID primitive.ObjectID, name string) error
	ListChannelsByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]models.Channel, error)
}

// SessionStore persists sessions. Every write is a single-document merge.
type SessionStore interface {
	InsertSession(ctx context.Context, sess *models.Session) error
	FindSession(ctx context.Context, channelID, sessionID primitive.ObjectID) (*models.Session, error)
	// FindRecentSessions returns up to limit sessions of a channel, newest first.
	FindRecentSessions(ctx context.Context, channelID primitive.ObjectID, limit int) ([]models.Session, error)
	// EndSession merges status=end and endedAt unless the session already ended.
	EndSession(ctx context.Context, channelID, sessionID primitive.ObjectID, endedAt time.Time) error
	// ClaimTags sets tags only if the session has none. It reports whether this call set them.
	ClaimTags(ctx context.Context, channelID, sessionID primitive.ObjectID, tags []string) (bool, error)
	// ClaimActivity sets the activity fields only if none are set. It reports whether this call set them.
	ClaimActivity(ctx context.Context, channelID, sessionID primitive.ObjectID, activity models.ActivityAssignment) (bool, error)
}

// MemberStore persists channel members keyed by (channel, user).
type MemberStore interface {
	UpsertMember(ctx context.Context, member *models.Member) error
	SetMemberInterests(ctx context.Context, channelID, userID primitive.ObjectID, interests []string) error
	FindMember(ctx context.Context, channelID, userID primitive.ObjectID) (*models.Member, error)
	ListMembers(ctx context.Context, channelID primitive.ObjectID) ([]models.Member, error)
}

// UserStore persists global user profiles.
type UserStore interface {
	InsertUser(ctx context.Context, user *models.User) error
	FindUser(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	SetUserInterests(ctx context.Context, userID primitive.ObjectID, interests []string) error
	SetLastSession(ctx context.Context, userID primitive.ObjectID, last models.LastSession) error
}

// MessageStore persists the append-only message log of a session.
type MessageStore interface {
	InsertMessage(ctx context.Context, msg *models.Message) error
	// ListMessages returns the limit most recent messages in ascending createdAt order.
	ListMessages(ctx context.Context, channelID, sessionID primitive.ObjectID, limit int) ([]models.Message, error)
}

// ParticipationStore persists participation records keyed by (user, session).
type ParticipationStore interface {
	// InsertParticipation writes rec unless a record for (user, session)
	// exists. It reports whether this call created it.
	InsertParticipation(ctx context.Context, rec *models.ParticipationRecord) (bool, error)
	// ListParticipation returns a user's records, newest joinedAt first.
	ListParticipation(ctx context.Context, userID primitive.ObjectID) ([]models.ParticipationRecord, error)
}

// ActivityCatalog is the read-only prompt catalog.
type ActivityCatalog interface {
	FindActivities(ctx context.Context, category string, limit int) ([]models.Activity, error)
}

// InterestCache mirrors a user's last selected interests. It is advisory only.
type InterestCache interface {
	SaveInterests(ctx context.Context, userID primitive.ObjectID, interests []string) error
	LoadInterests(ctx context.Context, userID primitive.ObjectID) ([]string, error)
}
