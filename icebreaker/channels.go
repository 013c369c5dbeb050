package icebreaker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Channels manages channel documents.
type Channels struct {
	store    ChannelStore
	sessions *Sessions
	log      *zap.Logger
	now      func() time.Time
}

func NewChannels(store ChannelStore, sessions *Sessions, logger *zap.Logger) *Channels {
	return &Channels{
		store:    store,
		sessions: sessions,
		log:      logger.Named("channels"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Create makes a channel owned by owner.
func (c *Channels) Create(ctx context.Context, owner models.Identity, name string) (*models.Channel, error) {
	if !owner.Present() {
		return nil, ErrPermissionDenied
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: channel name is required", ErrInvalidArgument)
	}

	ch := &models.Channel{
		Name:      name,
		OwnerID:   owner.UserID,
		CreatedAt: c.now().Truncate(time.Millisecond),
	}
	if err := c.store.InsertChannel(ctx, ch); err != nil {
		return nil, fmt.Errorf("create channel: %w", err)
	}
	c.log.Info("channel created", zap.String("channelId", ch.ID.Hex()), zap.String("ownerId", owner.UserID.Hex()))
	return ch, nil
}

func (c *Channels) Get(ctx context.Context, channelID primitive.ObjectID) (*models.Channel, error) {
	return c.store.FindChannel(ctx, channelID)
}

// Rename changes the channel name. Only the owner may rename.
func (c *Channels) Rename(ctx context.Context, channelID primitive.ObjectID, caller models.Identity, name string) (*models.Channel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: channel name is required", ErrInvalidArgument)
	}
	ch, err := c.store.FindChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if !ch.IsOwner(caller.UserID) {
		return nil, ErrPermissionDenied
	}
	if err := c.store.RenameChannel(ctx, channelID, name); err != nil {
		return nil, fmt.Errorf("rename channel: %w", err)
	}
	ch.Name = name
	return ch, nil
}

// Hosted lists the owner's channels that are idle or running a session.
// Channels whose latest session ended are left out.
func (c *Channels) Hosted(ctx context.Context, ownerID primitive.ObjectID) ([]models.Channel, error) {
	owned, err := c.store.ListChannelsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	hosted := make([]models.Channel, 0, len(owned))
	for _, ch := range owned {
		latest, err := c.sessions.Latest(ctx, ch.ID)
		if err != nil {
			return nil, err
		}
		if latest != nil && latest.Status == models.StatusEnded {
			continue
		}
		hosted = append(hosted, ch)
	}
	return hosted, nil
}
