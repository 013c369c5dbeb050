package icebreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// summaryTagLimit caps the tags shown per recent session.
	summaryTagLimit = 3
	// resolveParallelism bounds concurrent lookups when resolving records.
	resolveParallelism = 8
)

// SessionSummary is a participation record resolved for display.
type SessionSummary struct {
	ChannelID   primitive.ObjectID   `json:"channelId"`
	SessionID   primitive.ObjectID   `json:"sessionId"`
	ChannelName string               `json:"channelName"`
	Status      models.SessionStatus `json:"status"`
	Tags        []string             `json:"tags"`
	JoinedAt    time.Time            `json:"joinedAt"`
	Link        string               `json:"link"`
}

// Stats are the dashboard counters of a user.
type Stats struct {
	ChannelsHosted int `json:"channelsHosted"`
	SessionsJoined int `json:"sessionsJoined"`
}

// Ledger records which sessions a user joined.
type Ledger struct {
	records  ParticipationStore
	sessions SessionStore
	channels ChannelStore
	users    UserStore
	log      *zap.Logger
	now      func() time.Time
}

func NewLedger(records ParticipationStore, sessions SessionStore, channels ChannelStore, users UserStore, logger *zap.Logger) *Ledger {
	return &Ledger{
		records:  records,
		sessions: sessions,
		channels: channels,
		users:    users,
		log:      logger.Named("ledger"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Record marks that userID joined the session. It reports whether a new
// record was written; an existing record is left untouched.
func (l *Ledger) Record(ctx context.Context, userID, channelID, sessionID primitive.ObjectID) (bool, error) {
	if userID.IsZero() {
		return false, nil
	}
	created, err := l.records.InsertParticipation(ctx, &models.ParticipationRecord{
		UserID:    userID,
		ChannelID: channelID,
		SessionID: sessionID,
		JoinedAt:  l.now().Truncate(time.Millisecond),
	})
	if err != nil {
		return false, err
	}
	if created {
		l.log.Debug("participation recorded", zap.String("userId", userID.Hex()), zap.String("sessionId", sessionID.Hex()))
	}
	return created, nil
}

// RememberLastSession bookmarks the session on the user profile.
func (l *Ledger) RememberLastSession(ctx context.Context, userID, channelID, sessionID primitive.ObjectID) error {
	if userID.IsZero() {
		return nil
	}
	return l.users.SetLastSession(ctx, userID, models.LastSession{
		ChannelID: channelID,
		SessionID: sessionID,
		UpdatedAt: l.now().Truncate(time.Millisecond),
	})
}

// List returns the user's records, newest first.
func (l *Ledger) List(ctx context.Context, userID primitive.ObjectID) ([]models.ParticipationRecord, error) {
	return l.records.ListParticipation(ctx, userID)
}

// Recent resolves the user's records against their sessions and channels.
// Records that no longer resolve, and sessions in channels the user owns,
// are skipped.
func (l *Ledger) Recent(ctx context.Context, userID primitive.ObjectID) ([]SessionSummary, error) {
	records, err := l.records.ListParticipation(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved := make([]*SessionSummary, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(resolveParallelism)
	for i, rec := range records {
		g.Go(func() error {
			summary, err := l.resolve(gctx, userID, rec)
			if err != nil {
				return err
			}
			resolved[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]SessionSummary, 0, len(records))
	for _, s := range resolved {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (l *Ledger) resolve(ctx context.Context, userID primitive.ObjectID, rec models.ParticipationRecord) (*SessionSummary, error) {
	if rec.ChannelID.IsZero() || rec.SessionID.IsZero() {
		return nil, nil
	}
	ch, err := l.channels.FindChannel(ctx, rec.ChannelID)
	if skippable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if ch.IsOwner(userID) {
		return nil, nil
	}
	sess, err := l.sessions.FindSession(ctx, rec.ChannelID, rec.SessionID)
	if skippable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	tags := sess.Tags
	if len(tags) > summaryTagLimit {
		tags = tags[:summaryTagLimit]
	}
	link := SessionPath(rec.ChannelID, rec.SessionID, false)
	if sess.Status == models.StatusEnded {
		link = SummaryPath(rec.ChannelID, rec.SessionID)
	}
	return &SessionSummary{
		ChannelID:   rec.ChannelID,
		SessionID:   rec.SessionID,
		ChannelName: ch.DisplayName(),
		Status:      sess.Status,
		Tags:        append([]string{}, tags...),
		JoinedAt:    rec.JoinedAt,
		Link:        link,
	}, nil
}

func skippable(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidDocument)
}

// Stats counts the channels a user hosts and the sessions they joined in
// channels they do not own.
func (l *Ledger) Stats(ctx context.Context, userID primitive.ObjectID) (Stats, error) {
	var (
		records []models.ParticipationRecord
		owned   []models.Channel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		records, err = l.records.ListParticipation(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		owned, err = l.channels.ListChannelsByOwner(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	var (
		mu     sync.Mutex
		owners = make(map[primitive.ObjectID]primitive.ObjectID)
	)
	lookups, lctx := errgroup.WithContext(ctx)
	lookups.SetLimit(resolveParallelism)
	seen := make(map[primitive.ObjectID]struct{})
	for _, rec := range records {
		if _, ok := seen[rec.ChannelID]; ok || rec.ChannelID.IsZero() {
			continue
		}
		seen[rec.ChannelID] = struct{}{}
		channelID := rec.ChannelID
		lookups.Go(func() error {
			ch, err := l.channels.FindChannel(lctx, channelID)
			if err != nil {
				if ctxErr := lctx.Err(); ctxErr != nil {
					return ctxErr
				}
				// Unknown owners still count.
				l.log.Debug("stats channel lookup", zap.String("channelId", channelID.Hex()), zap.Error(err))
				return nil
			}
			mu.Lock()
			owners[channelID] = ch.OwnerID
			mu.Unlock()
			return nil
		})
	}
	if err := lookups.Wait(); err != nil {
		return Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return Stats{}, err
	}

	joined := 0
	for _, rec := range records {
		if owner, ok := owners[rec.ChannelID]; ok && owner == userID {
			continue
		}
		joined++
	}
	return Stats{ChannelsHosted: len(owned), SessionsJoined: joined}, nil
}
