package icebreaker

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"icebreaker/backend/models"
	"icebreaker/backend/realtime"

	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultMessageWindow is how many recent messages a subscription carries.
const DefaultMessageWindow = 200

// Messages is the chat log of a session.
type Messages struct {
	store    MessageStore
	sessions SessionStore
	broker   realtime.Broker
	policy   *bluemonday.Policy
	log      *zap.Logger
	window   int
	now      func() time.Time
}

func NewMessages(store MessageStore, sessions SessionStore, broker realtime.Broker, logger *zap.Logger, window int) *Messages {
	if window <= 0 {
		window = DefaultMessageWindow
	}
	return &Messages{
		store:    store,
		sessions: sessions,
		broker:   broker,
		policy:   bluemonday.StrictPolicy(),
		log:      logger.Named("messages"),
		window:   window,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CleanText strips markup and surrounding whitespace from a chat line.
func (m *Messages) CleanText(text string) string {
	return strings.TrimSpace(html.UnescapeString(m.policy.Sanitize(text)))
}

// Send appends a message. It returns (nil, nil) without writing when the
// text is blank, the author is unknown or the session is not active.
func (m *Messages) Send(ctx context.Context, channelID, sessionID primitive.ObjectID, author models.Identity, text string) (*models.Message, error) {
	text = m.CleanText(text)
	if text == "" || !author.Present() {
		return nil, nil
	}

	sess, err := m.sessions.FindSession(ctx, channelID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	if sess.Status != models.StatusActive {
		m.log.Debug("dropped message for inactive session",
			zap.String("sessionId", sessionID.Hex()),
			zap.String("status", string(sess.Status)))
		return nil, nil
	}

	msg := &models.Message{
		ChannelID:         channelID,
		SessionID:         sessionID,
		Text:              text,
		AuthorID:          author.UserID,
		AuthorDisplayName: author.Name(),
		CreatedAt:         m.now().Truncate(time.Millisecond),
	}
	if err := m.store.InsertMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	notify(ctx, m.broker, m.log, realtime.KindCreated, msg.ID.Hex(), realtime.MessagesTopic(channelID, sessionID))
	return msg, nil
}

// History reads up to limit of the most recent messages once, oldest first.
func (m *Messages) History(ctx context.Context, channelID, sessionID primitive.ObjectID, limit int) ([]models.Message, error) {
	msgs, err := m.store.ListMessages(ctx, channelID, sessionID, m.clamp(limit))
	if err != nil {
		return nil, err
	}
	return orderedVisible(msgs), nil
}

// Observe streams the full window of recent messages on every append.
func (m *Messages) Observe(ctx context.Context, channelID, sessionID primitive.ObjectID, limit int) (*Watch[[]models.Message], error) {
	limit = m.clamp(limit)
	return startWatch(ctx, m.broker, []string{realtime.MessagesTopic(channelID, sessionID)},
		func(ctx context.Context) ([]models.Message, error) {
			msgs, err := m.store.ListMessages(ctx, channelID, sessionID, limit)
			if err != nil {
				return nil, err
			}
			return orderedVisible(msgs), nil
		})
}

func (m *Messages) clamp(limit int) int {
	if limit <= 0 || limit > m.window {
		return m.window
	}
	return limit
}

// orderedVisible drops blank messages and sorts by createdAt, keeping the
// store order for equal timestamps.
func orderedVisible(msgs []models.Message) []models.Message {
	out := make([]models.Message, 0, len(msgs))
	for _, msg := range msgs {
		if strings.TrimSpace(msg.Text) == "" {
			continue
		}
		out = append(out, msg)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
