package icebreaker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"icebreaker/backend/models"
	"icebreaker/backend/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

// DefaultMaxInterests caps the interest tags a member may declare.
const DefaultMaxInterests = 4

// Membership tracks who belongs to a channel and what they are into.
type Membership struct {
	members MemberStore
	users   UserStore
	cache   InterestCache
	broker  realtime.Broker
	log     *zap.Logger
	maxTags int
	now     func() time.Time
}

// NewMembership wires the registry. cache may be nil.
func NewMembership(members MemberStore, users UserStore, cache InterestCache, broker realtime.Broker, logger *zap.Logger, maxTags int) *Membership {
	if maxTags <= 0 {
		maxTags = DefaultMaxInterests
	}
	return &Membership{
		members: members,
		users:   users,
		cache:   cache,
		broker:  broker,
		log:     logger.Named("membership"),
		maxTags: maxTags,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Join upserts the caller's member record. Calling it again only refreshes
// the display name and bio.
func (m *Membership) Join(ctx context.Context, channelID primitive.ObjectID, who models.Identity, bio string) (*models.Member, error) {
	if !who.Present() {
		return nil, ErrPermissionDenied
	}
	now := m.now().Truncate(time.Millisecond)
	member := &models.Member{
		ChannelID:   channelID,
		UserID:      who.UserID,
		DisplayName: who.Name(),
		Bio:         strings.TrimSpace(bio),
		JoinedAt:    now,
		UpdatedAt:   now,
	}
	if err := m.members.UpsertMember(ctx, member); err != nil {
		return nil, fmt.Errorf("join channel: %w", err)
	}
	m.changed(ctx, channelID, who.UserID)
	return member, nil
}

// SetInterests stores the member's interests and mirrors them onto the user
// profile. The two writes are independent: when the second fails the first
// stays applied.
func (m *Membership) SetInterests(ctx context.Context, channelID, userID primitive.ObjectID, tags []string) ([]string, error) {
	if userID.IsZero() {
		return nil, ErrPermissionDenied
	}
	interests := NormalizeTags(tags)
	if len(interests) > m.maxTags {
		return nil, fmt.Errorf("%w: at most %d interests allowed, got %d", ErrInvalidArgument, m.maxTags, len(interests))
	}

	if err := m.members.SetMemberInterests(ctx, channelID, userID, interests); err != nil {
		return nil, fmt.Errorf("save member interests: %w", err)
	}
	m.changed(ctx, channelID, userID)

	if err := m.users.SetUserInterests(ctx, userID, interests); err != nil {
		return nil, fmt.Errorf("save profile interests: %w", err)
	}

	if m.cache != nil {
		if err := m.cache.SaveInterests(ctx, userID, interests); err != nil {
			m.log.Warn("mirror interests to cache", zap.String("userId", userID.Hex()), zap.Error(err))
		}
	}
	return interests, nil
}

// Interests returns the member's declared interests for a channel. When the
// store is unreachable the cached set is used instead.
func (m *Membership) Interests(ctx context.Context, channelID, userID primitive.ObjectID) ([]string, error) {
	member, err := m.members.FindMember(ctx, channelID, userID)
	switch {
	case err == nil:
		return member.Interests, nil
	case errors.Is(err, ErrNotFound):
		return nil, nil
	case m.cache == nil:
		return nil, err
	}

	cached, cerr := m.cache.LoadInterests(ctx, userID)
	if cerr != nil {
		m.log.Debug("interest cache miss", zap.String("userId", userID.Hex()), zap.Error(cerr))
		return nil, err
	}
	m.log.Info("using cached interests", zap.String("userId", userID.Hex()), zap.Error(err))
	return cached, nil
}

func (m *Membership) List(ctx context.Context, channelID primitive.ObjectID) ([]models.Member, error) {
	return m.members.ListMembers(ctx, channelID)
}

// Observe watches the full member set of a channel.
func (m *Membership) Observe(ctx context.Context, channelID primitive.ObjectID) (*Watch[[]models.Member], error) {
	return startWatch(ctx, m.broker, []string{realtime.MembersTopic(channelID)},
		func(ctx context.Context) ([]models.Member, error) {
			return m.members.ListMembers(ctx, channelID)
		})
}

func (m *Membership) changed(ctx context.Context, channelID, userID primitive.ObjectID) {
	notify(ctx, m.broker, m.log, realtime.KindUpdated, userID.Hex(), realtime.MembersTopic(channelID))
}

// foldCase returns the case-folded form of s. Casers are stateful, so one
// is made per call.
func foldCase(s string) string {
	return cases.Fold().String(s)
}

// NormalizeTags trims tags, drops blanks and removes case-insensitive
// duplicates, keeping the first spelling and the original order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := foldCase(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
