package icebreaker

import (
	"context"
	"fmt"
	"time"

	"icebreaker/backend/models"
	"icebreaker/backend/realtime"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// activeLookback is how many recent sessions ActiveSession inspects.
const activeLookback = 5

// Sessions creates, ends and observes sessions.
type Sessions struct {
	store  SessionStore
	broker realtime.Broker
	log    *zap.Logger
	now    func() time.Time
}

func NewSessions(store SessionStore, broker realtime.Broker, logger *zap.Logger) *Sessions {
	return &Sessions{
		store:  store,
		broker: broker,
		log:    logger.Named("sessions"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a new session for ch. Sessions start directly as active.
// The caller must own the channel and the latest session must have ended.
// The check and the insert are not atomic; two concurrent starts can both
// succeed, and both sessions can later be ended.
func (s *Sessions) Create(ctx context.Context, ch *models.Channel, caller models.Identity) (*models.Session, error) {
	if !ch.IsOwner(caller.UserID) {
		return nil, ErrPermissionDenied
	}

	latest, err := s.Latest(ctx, ch.ID)
	if err != nil {
		return nil, err
	}
	if latest != nil && latest.Status != models.StatusEnded {
		return nil, ErrSessionLive
	}

	createdAt := s.now().Truncate(time.Millisecond)
	if latest != nil && !createdAt.After(latest.CreatedAt) {
		createdAt = latest.CreatedAt.Add(time.Millisecond)
	}

	sess := &models.Session{
		ChannelID: ch.ID,
		OwnerID:   caller.UserID,
		Status:    models.StatusActive,
		CreatedAt: createdAt,
	}
	if err := s.store.InsertSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("session started",
		zap.String("channelId", ch.ID.Hex()),
		zap.String("sessionId", sess.ID.Hex()))
	s.changed(ctx, realtime.KindCreated, sess.ChannelID, sess.ID)
	return sess, nil
}

// End marks a session ended. Ending an ended session changes nothing.
func (s *Sessions) End(ctx context.Context, ch *models.Channel, sessionID primitive.ObjectID, caller models.Identity) error {
	if !ch.IsOwner(caller.UserID) {
		return ErrPermissionDenied
	}
	if err := s.store.EndSession(ctx, ch.ID, sessionID, s.now().Truncate(time.Millisecond)); err != nil {
		return fmt.Errorf("end session: %w", err)
	}

	s.log.Info("session ended",
		zap.String("channelId", ch.ID.Hex()),
		zap.String("sessionId", sessionID.Hex()))
	s.changed(ctx, realtime.KindUpdated, ch.ID, sessionID)
	return nil
}

func (s *Sessions) Get(ctx context.Context, channelID, sessionID primitive.ObjectID) (*models.Session, error) {
	return s.store.FindSession(ctx, channelID, sessionID)
}

// Latest returns the most recently created session of a channel, or nil
// when the channel never had one.
func (s *Sessions) Latest(ctx context.Context, channelID primitive.ObjectID) (*models.Session, error) {
	recent, err := s.store.FindRecentSessions(ctx, channelID, 1)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, nil
	}
	return &recent[0], nil
}

// Active returns the newest active session among the most recent ones, or
// nil when none is active.
func (s *Sessions) Active(ctx context.Context, channelID primitive.ObjectID) (*models.Session, error) {
	recent, err := s.store.FindRecentSessions(ctx, channelID, activeLookback)
	if err != nil {
		return nil, err
	}
	for i := range recent {
		if recent[i].Status == models.StatusActive {
			return &recent[i], nil
		}
	}
	return nil, nil
}

// ObserveLatest watches the latest session of a channel. A nil value means
// the channel has no session yet.
func (s *Sessions) ObserveLatest(ctx context.Context, channelID primitive.ObjectID) (*Watch[*models.Session], error) {
	return startWatch(ctx, s.broker, []string{realtime.ChannelSessionsTopic(channelID)},
		func(ctx context.Context) (*models.Session, error) {
			return s.Latest(ctx, channelID)
		})
}

// Observe watches one session. A missing session ends the watch with
// ErrNotFound.
func (s *Sessions) Observe(ctx context.Context, channelID, sessionID primitive.ObjectID) (*Watch[*models.Session], error) {
	return startWatch(ctx, s.broker, []string{realtime.SessionTopic(channelID, sessionID)},
		func(ctx context.Context) (*models.Session, error) {
			return s.store.FindSession(ctx, channelID, sessionID)
		})
}

// Touch notifies observers of a session that another component changed it.
func (s *Sessions) Touch(ctx context.Context, channelID, sessionID primitive.ObjectID) {
	s.changed(ctx, realtime.KindUpdated, channelID, sessionID)
}

func (s *Sessions) changed(ctx context.Context, kind string, channelID, sessionID primitive.ObjectID) {
	notify(ctx, s.broker, s.log, kind, sessionID.Hex(),
		realtime.SessionTopic(channelID, sessionID),
		realtime.ChannelSessionsTopic(channelID))
}
