package icebreaker

import (
	"context"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Display receives client-visible updates for one session view. Calls for
// one view are made in order and must not block for long.
type Display interface {
	ShowView(View)
	ShowMessages([]models.Message)
	ShowPrompt(Prompt)
	Navigate(target string)
}

// Engine bundles the components a session view needs.
type Engine struct {
	Channels   *Channels
	Sessions   *Sessions
	Membership *Membership
	Prompts    *PromptSelector
	Messages   *Messages
	Ledger     *Ledger
}

// SessionEffects is the production Effects of one connected session view.
type SessionEffects struct {
	engine    *Engine
	channelID primitive.ObjectID
	sessionID primitive.ObjectID
	display   Display
	log       *zap.Logger
}

func NewSessionEffects(engine *Engine, channelID, sessionID primitive.ObjectID, display Display, logger *zap.Logger) *SessionEffects {
	return &SessionEffects{
		engine:    engine,
		channelID: channelID,
		sessionID: sessionID,
		display:   display,
		log:       logger.Named("effects"),
	}
}

// OpenMessages subscribes to the message window and forwards each snapshot
// to the display. A failed reload ends the forwarding and is passed to onFail.
func (e *SessionEffects) OpenMessages(ctx context.Context, onFail func(error)) (Canceler, error) {
	w, err := e.engine.Messages.Observe(ctx, e.channelID, e.sessionID, 0)
	if err != nil {
		return nil, err
	}
	go func() {
		for snap := range w.C {
			if snap.Err != nil {
				e.log.Warn("message subscription failed", zap.Error(snap.Err))
				onFail(snap.Err)
				return
			}
			e.display.ShowMessages(snap.Value)
		}
	}()
	return w, nil
}

func (e *SessionEffects) SelectPrompt(ctx context.Context, who models.Identity) {
	e.display.ShowPrompt(e.engine.Prompts.Select(ctx, e.channelID, e.sessionID, who.UserID))
}

func (e *SessionEffects) RecordParticipation(ctx context.Context, who models.Identity) error {
	_, err := e.engine.Ledger.Record(ctx, who.UserID, e.channelID, e.sessionID)
	return err
}

func (e *SessionEffects) RememberLastSession(ctx context.Context, who models.Identity) error {
	return e.engine.Ledger.RememberLastSession(ctx, who.UserID, e.channelID, e.sessionID)
}

func (e *SessionEffects) Redirect(_ context.Context, target string) {
	e.display.Navigate(target)
}

func (e *SessionEffects) Present(_ context.Context, view View) {
	e.display.ShowView(view)
}
