package icebreaker

import (
	"context"
	"errors"

	"icebreaker/backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Mode is what a session view currently shows.
type Mode string

const (
	ModeWaiting       Mode = "waiting"
	ModeLive          Mode = "live"
	ModeEndedRedirect Mode = "ended-redirect"
	ModeEndedHistory  Mode = "ended-history"
)

// ModeFor maps a session status and the history flag onto a mode.
func ModeFor(status models.SessionStatus, history bool) Mode {
	switch status {
	case models.StatusPending:
		return ModeWaiting
	case models.StatusEnded:
		if history {
			return ModeEndedHistory
		}
		return ModeEndedRedirect
	default:
		return ModeLive
	}
}

const (
	noticeWaiting = "The session has not started yet."
	noticeEnded   = "This ice-breaker session has ended. Thanks for joining!"
	noticeHistory = "This session has ended. You are viewing its history."

	degradedNotFound    = "This session is no longer available."
	degradedDenied      = "You do not have access to this session."
	degradedUnavailable = "Live updates are unavailable right now. Reconnect to try again."
	degradedMessages    = "Messages are unavailable right now."
)

// View is the client-visible state of a session view.
type View struct {
	Mode            Mode                 `json:"mode"`
	Status          models.SessionStatus `json:"status,omitempty"`
	ComposerEnabled bool                 `json:"composerEnabled"`
	Notice          string               `json:"notice,omitempty"`
	Degraded        string               `json:"degraded,omitempty"`
	Session         *models.Session      `json:"session,omitempty"`
}

// Canceler stops a running subscription.
type Canceler interface {
	Cancel()
}

// Effects are the side effects the orchestrator drives. Implementations
// report failures of best-effort writes through the returned error; the
// orchestrator logs them and carries on. OpenMessages calls onFail at most
// once, from any goroutine, when the opened feed stops on an error.
type Effects interface {
	OpenMessages(ctx context.Context, onFail func(error)) (Canceler, error)
	SelectPrompt(ctx context.Context, who models.Identity)
	RecordParticipation(ctx context.Context, who models.Identity) error
	RememberLastSession(ctx context.Context, who models.Identity) error
	Redirect(ctx context.Context, target string)
	Present(ctx context.Context, view View)
}

// Event is one input of the orchestrator: an observed session, an
// observation failure or an identity change.
type Event struct {
	Session  *models.Session
	Identity *models.Identity
	Err      error
}

func SessionEvent(sess *models.Session) Event { return Event{Session: sess} }

func IdentityEvent(who models.Identity) Event { return Event{Identity: &who} }

func ErrorEvent(err error) Event { return Event{Err: err} }

// lifecycle is the per-view state. One-shot flags live for as long as the
// orchestrator does, except that participation and the last-session bookmark
// are owed again to each new user.
type lifecycle struct {
	mode     Mode
	session  *models.Session
	identity models.Identity
	messages Canceler
	msgErr   bool

	activityLoaded        bool
	participationRecorded bool
	lastSessionSaved      bool
	redirected            bool

	halted   bool
	degraded string

	feed uint64
}

// feedFailure is a terminal error of the message feed opened as generation gen.
type feedFailure struct {
	gen uint64
	err error
}

// pendingFailures bounds feed failures queued between two events.
const pendingFailures = 4

// Orchestrator maps observed session states onto modes and runs each mode's
// entry effects once. Handle must not be called concurrently; Run serializes
// events from a channel.
type Orchestrator struct {
	channelID primitive.ObjectID
	sessionID primitive.ObjectID
	history   bool
	effects   Effects
	log       *zap.Logger
	state     lifecycle
	failures  chan feedFailure
}

func NewOrchestrator(channelID, sessionID primitive.ObjectID, history bool, who models.Identity, effects Effects, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		channelID: channelID,
		sessionID: sessionID,
		history:   history,
		effects:   effects,
		log: logger.Named("orchestrator").With(
			zap.String("channelId", channelID.Hex()),
			zap.String("sessionId", sessionID.Hex())),
		state:    lifecycle{identity: who},
		failures: make(chan feedFailure, pendingFailures),
	}
}

// Run handles events and message feed failures until ctx is done or events
// is closed, then stops the message subscription.
func (o *Orchestrator) Run(ctx context.Context, events <-chan Event) {
	defer o.Close()
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-o.failures:
			if !o.state.halted {
				o.feedFailed(ctx, f)
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			o.Handle(ctx, ev)
		}
	}
}

// Handle applies one event. Feed failures queued since the last call are
// applied first.
func (o *Orchestrator) Handle(ctx context.Context, ev Event) {
	if o.state.halted {
		o.log.Debug("ignoring event after failure")
		return
	}
	o.drainFailures(ctx)
	switch {
	case ev.Err != nil:
		o.fail(ctx, ev.Err)
	case ev.Identity != nil:
		o.identify(ctx, *ev.Identity)
	case ev.Session != nil:
		o.observe(ctx, ev.Session)
	default:
		o.fail(ctx, ErrNotFound)
	}
}

// Close stops the message subscription. It does not reset one-shot flags.
func (o *Orchestrator) Close() {
	o.stopMessages()
}

func (o *Orchestrator) Mode() Mode { return o.state.mode }

func (o *Orchestrator) Halted() bool { return o.state.halted }

// View returns the current client-visible state.
func (o *Orchestrator) View() View {
	s := &o.state
	v := View{
		Mode:            s.mode,
		ComposerEnabled: s.mode == ModeLive && s.identity.Present() && !s.halted,
		Degraded:        s.degraded,
		Session:         s.session,
	}
	if s.session != nil {
		v.Status = s.session.Status
	}
	switch s.mode {
	case ModeWaiting:
		v.Notice = noticeWaiting
	case ModeEndedRedirect:
		v.Notice = noticeEnded
	case ModeEndedHistory:
		v.Notice = noticeHistory
	}
	if v.Degraded == "" && s.msgErr {
		v.Degraded = degradedMessages
	}
	return v
}

func (o *Orchestrator) observe(ctx context.Context, sess *models.Session) {
	s := &o.state
	mode := ModeFor(sess.Status, o.history)
	if s.mode != mode {
		o.log.Debug("mode change", zap.String("from", string(s.mode)), zap.String("to", string(mode)))
	}
	s.session = sess
	s.mode = mode

	switch mode {
	case ModeWaiting:
		o.stopMessages()
	case ModeLive:
		o.startMessages(ctx)
		o.liveEffects(ctx)
	case ModeEndedRedirect:
		o.stopMessages()
	case ModeEndedHistory:
		o.startMessages(ctx)
		o.loadPrompt(ctx)
	}

	o.effects.Present(ctx, o.View())

	if mode == ModeEndedRedirect && !s.redirected {
		s.redirected = true
		o.effects.Redirect(ctx, SummaryPath(o.channelID, o.sessionID))
	}
}

func (o *Orchestrator) identify(ctx context.Context, who models.Identity) {
	s := &o.state
	if who.UserID != s.identity.UserID {
		s.participationRecorded = false
		s.lastSessionSaved = false
	}
	s.identity = who
	switch s.mode {
	case ModeLive:
		o.liveEffects(ctx)
	case ModeEndedHistory:
		o.loadPrompt(ctx)
	}
	if s.mode != "" {
		o.effects.Present(ctx, o.View())
	}
}

// liveEffects runs the identity-dependent effects of the live mode. They
// wait until an identity is known.
func (o *Orchestrator) liveEffects(ctx context.Context) {
	s := &o.state
	if !s.identity.Present() {
		return
	}
	o.loadPrompt(ctx)

	if !s.participationRecorded {
		s.participationRecorded = true
		if err := o.effects.RecordParticipation(ctx, s.identity); err != nil {
			o.log.Warn("record participation", zap.Error(err))
		}
	}

	if !s.lastSessionSaved {
		if err := o.effects.RememberLastSession(ctx, s.identity); err != nil {
			o.log.Warn("remember last session", zap.Error(err))
		} else {
			s.lastSessionSaved = true
		}
	}
}

func (o *Orchestrator) loadPrompt(ctx context.Context) {
	s := &o.state
	if s.activityLoaded || !s.identity.Present() {
		return
	}
	s.activityLoaded = true
	o.effects.SelectPrompt(ctx, s.identity)
}

func (o *Orchestrator) startMessages(ctx context.Context) {
	s := &o.state
	if s.messages != nil {
		return
	}
	s.feed++
	gen := s.feed
	c, err := o.effects.OpenMessages(ctx, func(err error) {
		select {
		case o.failures <- feedFailure{gen: gen, err: err}:
		default:
			o.log.Warn("dropping message feed failure", zap.Error(err))
		}
	})
	if err != nil {
		o.log.Warn("open messages", zap.Error(err))
		s.msgErr = true
		return
	}
	s.msgErr = false
	s.messages = c
}

func (o *Orchestrator) stopMessages() {
	if o.state.messages != nil {
		o.state.messages.Cancel()
		o.state.messages = nil
	}
}

func (o *Orchestrator) drainFailures(ctx context.Context) {
	for {
		select {
		case f := <-o.failures:
			o.feedFailed(ctx, f)
		default:
			return
		}
	}
}

// feedFailed drops a failed feed so the next live or history entry reopens
// it. Failures of feeds already replaced or stopped are ignored.
func (o *Orchestrator) feedFailed(ctx context.Context, f feedFailure) {
	s := &o.state
	if f.gen != s.feed || s.messages == nil {
		return
	}
	o.log.Warn("message feed failed", zap.Error(f.err))
	o.stopMessages()
	s.msgErr = true
	o.effects.Present(ctx, o.View())
}

func (o *Orchestrator) fail(ctx context.Context, err error) {
	s := &o.state
	o.log.Warn("session observation failed", zap.Error(err))
	o.stopMessages()
	s.halted = true
	s.degraded = degradedText(err)
	o.effects.Present(ctx, o.View())
}

func degradedText(err error) string {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidDocument):
		return degradedNotFound
	case errors.Is(err, ErrPermissionDenied):
		return degradedDenied
	default:
		return degradedUnavailable
	}
}
