package icebreaker_test

import (
	"context"
	"errors"
	"testing"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/icebreaker/mocks"
	"icebreaker/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type orchestratorFixture struct {
	effects  *mocks.MockEffects
	messages *countingCanceler
	views    []icebreaker.View
}

func newOrchestratorFixture(t *testing.T) *orchestratorFixture {
	ctrl := gomock.NewController(t)
	f := &orchestratorFixture{
		effects:  mocks.NewMockEffects(ctrl),
		messages: &countingCanceler{},
	}
	f.effects.EXPECT().Present(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, v icebreaker.View) { f.views = append(f.views, v) }).
		AnyTimes()
	return f
}

func (f *orchestratorFixture) lastView(t *testing.T) icebreaker.View {
	t.Helper()
	require.NotEmpty(t, f.views)
	return f.views[len(f.views)-1]
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		status  models.SessionStatus
		history bool
		want    icebreaker.Mode
	}{
		{models.StatusPending, false, icebreaker.ModeWaiting},
		{models.StatusPending, true, icebreaker.ModeWaiting},
		{models.StatusActive, false, icebreaker.ModeLive},
		{models.StatusActive, true, icebreaker.ModeLive},
		{models.StatusEnded, false, icebreaker.ModeEndedRedirect},
		{models.StatusEnded, true, icebreaker.ModeEndedHistory},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, icebreaker.ModeFor(tt.status, tt.history), "%s history=%v", tt.status, tt.history)
	}
}

func TestOrchestratorLiveEffectsRunOnce(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusActive)
	who := testIdentity("ada")

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil).Times(1)
	f.effects.EXPECT().SelectPrompt(gomock.Any(), who).Times(1)
	f.effects.EXPECT().RecordParticipation(gomock.Any(), who).Return(nil).Times(1)
	f.effects.EXPECT().RememberLastSession(gomock.Any(), who).Return(nil).Times(1)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, who, f.effects, zap.NewNop())
	for range 4 {
		o.Handle(ctx, icebreaker.SessionEvent(sess))
	}

	assert.Equal(t, icebreaker.ModeLive, o.Mode())
	assert.Len(t, f.views, 4)
	v := f.lastView(t)
	assert.True(t, v.ComposerEnabled)
	assert.Equal(t, models.StatusActive, v.Status)
	assert.Empty(t, v.Notice)
	assert.Zero(t, f.messages.count())
}

func TestOrchestratorDefersIdentityEffects(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusActive)
	who := testIdentity("grace")

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, models.Identity{}, f.effects, zap.NewNop())

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil).Times(1)
	o.Handle(ctx, icebreaker.SessionEvent(sess))
	o.Handle(ctx, icebreaker.SessionEvent(sess))
	assert.False(t, f.lastView(t).ComposerEnabled, "composer stays off without identity")

	f.effects.EXPECT().SelectPrompt(gomock.Any(), who).Times(1)
	f.effects.EXPECT().RecordParticipation(gomock.Any(), who).Return(nil).Times(1)
	f.effects.EXPECT().RememberLastSession(gomock.Any(), who).Return(nil).Times(1)
	o.Handle(ctx, icebreaker.IdentityEvent(who))
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	assert.True(t, f.lastView(t).ComposerEnabled)
}

func TestOrchestratorIdentityAfterEndRunsNoLiveEffects(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusActive)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, models.Identity{}, f.effects, zap.NewNop())

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil)
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	ended := *sess
	ended.Status = models.StatusEnded
	f.effects.EXPECT().Redirect(gomock.Any(), icebreaker.SummaryPath(sess.ChannelID, sess.ID))
	o.Handle(ctx, icebreaker.SessionEvent(&ended))

	// No SelectPrompt, RecordParticipation or RememberLastSession expected.
	o.Handle(ctx, icebreaker.IdentityEvent(testIdentity("late")))
	assert.Equal(t, icebreaker.ModeEndedRedirect, o.Mode())
}

func TestOrchestratorRetriesLastSessionBookmark(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusActive)
	who := testIdentity("linus")

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil)
	f.effects.EXPECT().SelectPrompt(gomock.Any(), who)
	f.effects.EXPECT().RecordParticipation(gomock.Any(), who).Return(errors.New("boom"))
	gomock.InOrder(
		f.effects.EXPECT().RememberLastSession(gomock.Any(), who).Return(icebreaker.ErrTransient),
		f.effects.EXPECT().RememberLastSession(gomock.Any(), who).Return(nil),
	)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, who, f.effects, zap.NewNop())
	for range 3 {
		o.Handle(ctx, icebreaker.SessionEvent(sess))
	}
}

func TestOrchestratorEndedRedirectsOnce(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusActive)
	who := testIdentity("ken")

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil)
	f.effects.EXPECT().SelectPrompt(gomock.Any(), who)
	f.effects.EXPECT().RecordParticipation(gomock.Any(), who).Return(nil)
	f.effects.EXPECT().RememberLastSession(gomock.Any(), who).Return(nil)
	f.effects.EXPECT().Redirect(gomock.Any(), icebreaker.SummaryPath(sess.ChannelID, sess.ID)).Times(1)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, who, f.effects, zap.NewNop())
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	ended := *sess
	ended.Status = models.StatusEnded
	o.Handle(ctx, icebreaker.SessionEvent(&ended))
	o.Handle(ctx, icebreaker.SessionEvent(&ended))

	assert.Equal(t, 1, f.messages.count(), "message subscription stopped once")
	v := f.lastView(t)
	assert.Equal(t, icebreaker.ModeEndedRedirect, v.Mode)
	assert.False(t, v.ComposerEnabled)
	assert.NotEmpty(t, v.Notice)
}

func TestOrchestratorHistoryModeStaysReadOnly(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusEnded)
	who := testIdentity("barbara")

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil).Times(1)
	f.effects.EXPECT().SelectPrompt(gomock.Any(), who).Times(1)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, true, who, f.effects, zap.NewNop())
	o.Handle(ctx, icebreaker.SessionEvent(sess))
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	v := f.lastView(t)
	assert.Equal(t, icebreaker.ModeEndedHistory, v.Mode)
	assert.False(t, v.ComposerEnabled)
	assert.Zero(t, f.messages.count())
}

func TestOrchestratorWaitingRunsNoEffects(t *testing.T) {
	f := newOrchestratorFixture(t)
	sess := testSession(models.StatusPending)
	who := testIdentity("edsger")

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, who, f.effects, zap.NewNop())
	o.Handle(context.Background(), icebreaker.SessionEvent(sess))

	v := f.lastView(t)
	assert.Equal(t, icebreaker.ModeWaiting, v.Mode)
	assert.False(t, v.ComposerEnabled)
	assert.NotEmpty(t, v.Notice)
}

func TestOrchestratorPendingToActiveOpensMessages(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusPending)
	who := testIdentity("alan")

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, who, f.effects, zap.NewNop())
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil)
	f.effects.EXPECT().SelectPrompt(gomock.Any(), who)
	f.effects.EXPECT().RecordParticipation(gomock.Any(), who).Return(nil)
	f.effects.EXPECT().RememberLastSession(gomock.Any(), who).Return(nil)

	live := *sess
	live.Status = models.StatusActive
	o.Handle(ctx, icebreaker.SessionEvent(&live))
	assert.Equal(t, icebreaker.ModeLive, o.Mode())
}

func TestOrchestratorHaltsOnObservationError(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusActive)
	who := testIdentity("margaret")

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil)
	f.effects.EXPECT().SelectPrompt(gomock.Any(), who)
	f.effects.EXPECT().RecordParticipation(gomock.Any(), who).Return(nil)
	f.effects.EXPECT().RememberLastSession(gomock.Any(), who).Return(nil)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, who, f.effects, zap.NewNop())
	o.Handle(ctx, icebreaker.SessionEvent(sess))
	o.Handle(ctx, icebreaker.ErrorEvent(icebreaker.ErrTransient))

	assert.True(t, o.Halted())
	assert.Equal(t, 1, f.messages.count())
	v := f.lastView(t)
	assert.NotEmpty(t, v.Degraded)
	assert.False(t, v.ComposerEnabled)

	// Halted: later events produce no effects and no views.
	seen := len(f.views)
	ended := *sess
	ended.Status = models.StatusEnded
	o.Handle(ctx, icebreaker.SessionEvent(&ended))
	assert.Len(t, f.views, seen)

	// A fresh orchestrator starts cold.
	fresh := newOrchestratorFixture(t)
	fresh.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(fresh.messages, nil)
	fresh.effects.EXPECT().SelectPrompt(gomock.Any(), who)
	fresh.effects.EXPECT().RecordParticipation(gomock.Any(), who).Return(nil)
	fresh.effects.EXPECT().RememberLastSession(gomock.Any(), who).Return(nil)
	again := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, who, fresh.effects, zap.NewNop())
	again.Handle(ctx, icebreaker.SessionEvent(sess))
	assert.True(t, fresh.lastView(t).ComposerEnabled)
}

func TestOrchestratorMissingSessionDegrades(t *testing.T) {
	f := newOrchestratorFixture(t)
	sess := testSession(models.StatusActive)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, testIdentity("x"), f.effects, zap.NewNop())
	o.Handle(context.Background(), icebreaker.ErrorEvent(icebreaker.ErrNotFound))

	assert.True(t, o.Halted())
	assert.Equal(t, "This session is no longer available.", f.lastView(t).Degraded)
}

func TestOrchestratorRunStopsMessagesOnExit(t *testing.T) {
	f := newOrchestratorFixture(t)
	sess := testSession(models.StatusActive)

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, models.Identity{}, f.effects, zap.NewNop())
	events := make(chan icebreaker.Event, 2)
	events <- icebreaker.SessionEvent(sess)
	events <- icebreaker.SessionEvent(sess)
	close(events)

	o.Run(context.Background(), events)
	assert.Equal(t, 1, f.messages.count())
}

func TestOrchestratorReopensFailedMessageFeed(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusActive)

	var onFail func(error)
	reopened := &countingCanceler{}
	gomock.InOrder(
		f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fail func(error)) (icebreaker.Canceler, error) {
				onFail = fail
				return f.messages, nil
			}),
		f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(reopened, nil),
	)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, models.Identity{}, f.effects, zap.NewNop())
	o.Handle(ctx, icebreaker.SessionEvent(sess))
	require.NotNil(t, onFail)

	onFail(icebreaker.ErrTransient)
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	require.Len(t, f.views, 3)
	assert.Equal(t, "Messages are unavailable right now.", f.views[1].Degraded)
	assert.Equal(t, icebreaker.ModeLive, f.views[1].Mode)
	assert.Empty(t, f.views[2].Degraded, "reopened feed clears the degraded state")
	assert.Equal(t, 1, f.messages.count(), "failed feed released")
	assert.False(t, o.Halted())

	o.Close()
	assert.Equal(t, 1, reopened.count())
}

func TestOrchestratorIgnoresFailureOfReplacedFeed(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusActive)

	var stale func(error)
	current := &countingCanceler{}
	gomock.InOrder(
		f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fail func(error)) (icebreaker.Canceler, error) {
				stale = fail
				return f.messages, nil
			}),
		f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(current, nil),
	)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, models.Identity{}, f.effects, zap.NewNop())
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	pending := *sess
	pending.Status = models.StatusPending
	o.Handle(ctx, icebreaker.SessionEvent(&pending))
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	stale(icebreaker.ErrTransient)
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	assert.Zero(t, current.count(), "current feed kept")
	assert.Empty(t, f.lastView(t).Degraded)
	for _, v := range f.views {
		assert.Empty(t, v.Degraded)
	}
}

func TestOrchestratorIdentitySwitchRecordsNewUser(t *testing.T) {
	f := newOrchestratorFixture(t)
	ctx := context.Background()
	sess := testSession(models.StatusActive)
	ada := testIdentity("ada")
	bob := testIdentity("bob")

	f.effects.EXPECT().OpenMessages(gomock.Any(), gomock.Any()).Return(f.messages, nil).Times(1)
	f.effects.EXPECT().SelectPrompt(gomock.Any(), ada).Times(1)
	f.effects.EXPECT().RecordParticipation(gomock.Any(), ada).Return(nil).Times(1)
	f.effects.EXPECT().RememberLastSession(gomock.Any(), ada).Return(nil).Times(1)
	f.effects.EXPECT().RecordParticipation(gomock.Any(), bob).Return(nil).Times(1)
	f.effects.EXPECT().RememberLastSession(gomock.Any(), bob).Return(nil).Times(1)

	o := icebreaker.NewOrchestrator(sess.ChannelID, sess.ID, false, ada, f.effects, zap.NewNop())
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	o.Handle(ctx, icebreaker.IdentityEvent(bob))
	o.Handle(ctx, icebreaker.SessionEvent(sess))

	// Same user again: nothing owed.
	renamed := bob
	renamed.DisplayName = "Bob"
	o.Handle(ctx, icebreaker.IdentityEvent(renamed))

	assert.True(t, f.lastView(t).ComposerEnabled)
}
