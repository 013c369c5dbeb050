package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"icebreaker/backend/icebreaker"
	"icebreaker/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func insertTestSession(t *testing.T, store *Store, channelID primitive.ObjectID, status models.SessionStatus, createdAt time.Time) *models.Session {
	t.Helper()
	sess := &models.Session{
		ChannelID: channelID,
		OwnerID:   primitive.NewObjectID(),
		Status:    status,
		CreatedAt: createdAt.UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, store.InsertSession(context.Background(), sess))
	require.False(t, sess.ID.IsZero())
	return sess
}

func TestEndSessionIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	channelID := primitive.NewObjectID()
	sess := insertTestSession(t, store, channelID, models.StatusActive, time.Now())

	first := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, store.EndSession(ctx, channelID, sess.ID, first))
	once, err := store.FindSession(ctx, channelID, sess.ID)
	require.NoError(t, err)

	require.NoError(t, store.EndSession(ctx, channelID, sess.ID, first.Add(time.Minute)))
	twice, err := store.FindSession(ctx, channelID, sess.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusEnded, twice.Status)
	require.NotNil(t, twice.EndedAt)
	assert.True(t, first.Equal(*twice.EndedAt))
	assert.Equal(t, once, twice)

	err = store.EndSession(ctx, channelID, primitive.NewObjectID(), first)
	assert.ErrorIs(t, err, icebreaker.ErrNotFound)
}

func TestTwoActiveSessionsCanBothEnd(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	channelID := primitive.NewObjectID()
	base := time.Now()

	first := insertTestSession(t, store, channelID, models.StatusActive, base)
	second := insertTestSession(t, store, channelID, models.StatusActive, base.Add(time.Millisecond))
	require.NotEqual(t, first.ID, second.ID)

	endedAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, store.EndSession(ctx, channelID, first.ID, endedAt))
	require.NoError(t, store.EndSession(ctx, channelID, second.ID, endedAt))

	got, err := store.FindRecentSessions(ctx, channelID, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, sess := range got {
		assert.Equal(t, models.StatusEnded, sess.Status)
		require.NotNil(t, sess.EndedAt)
		assert.True(t, endedAt.Equal(*sess.EndedAt))
	}
}

func TestFindRecentSessionsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	channelID := primitive.NewObjectID()
	base := time.Now()

	old := insertTestSession(t, store, channelID, models.StatusEnded, base.Add(-time.Hour))
	newest := insertTestSession(t, store, channelID, models.StatusActive, base)
	insertTestSession(t, store, primitive.NewObjectID(), models.StatusActive, base.Add(time.Hour))

	// A malformed document is skipped on read.
	_, err := store.Collection(SessionsCollection).InsertOne(ctx, bson.M{
		"channelId": channelID, "status": "paused", "createdAt": base.Add(-time.Minute),
	})
	require.NoError(t, err)

	got, err := store.FindRecentSessions(ctx, channelID, 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newest.ID, got[0].ID)
	assert.Equal(t, old.ID, got[1].ID)

	got, err = store.FindRecentSessions(ctx, channelID, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, newest.ID, got[0].ID)
}

func TestFindSessionValidatesDocument(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	channelID := primitive.NewObjectID()

	// Missing status reads as active.
	res, err := store.Collection(SessionsCollection).InsertOne(ctx, bson.M{"channelId": channelID, "createdAt": time.Now()})
	require.NoError(t, err)
	sess, err := store.FindSession(ctx, channelID, res.InsertedID.(primitive.ObjectID))
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, sess.Status)

	res, err = store.Collection(SessionsCollection).InsertOne(ctx, bson.M{"channelId": channelID, "status": "paused"})
	require.NoError(t, err)
	_, err = store.FindSession(ctx, channelID, res.InsertedID.(primitive.ObjectID))
	assert.ErrorIs(t, err, icebreaker.ErrInvalidDocument)

	_, err = store.FindSession(ctx, primitive.NewObjectID(), res.InsertedID.(primitive.ObjectID))
	assert.ErrorIs(t, err, icebreaker.ErrNotFound)
}

func TestClaimsAreFirstWriterWins(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	channelID := primitive.NewObjectID()
	sess := insertTestSession(t, store, channelID, models.StatusActive, time.Now())

	won, err := store.ClaimTags(ctx, channelID, sess.ID, []string{"Gaming"})
	require.NoError(t, err)
	assert.True(t, won)
	won, err = store.ClaimTags(ctx, channelID, sess.ID, []string{"Travel"})
	require.NoError(t, err)
	assert.False(t, won)

	first := models.ActivityAssignment{ActivityID: primitive.NewObjectID(), Category: models.CategoryGaming, Title: "A", Prompt: "a?"}
	second := models.ActivityAssignment{ActivityID: primitive.NewObjectID(), Category: models.CategoryTech, Title: "B", Prompt: "b?"}

	var wg sync.WaitGroup
	wins := make([]bool, 2)
	for i, a := range []models.ActivityAssignment{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, err := store.ClaimActivity(ctx, channelID, sess.ID, a)
			assert.NoError(t, err)
			wins[i] = w
		}()
	}
	wg.Wait()
	assert.NotEqual(t, wins[0], wins[1], "exactly one claim wins")

	got, err := store.FindSession(ctx, channelID, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gaming"}, got.Tags)
	winner := first
	if wins[1] {
		winner = second
	}
	assert.Equal(t, winner, got.Activity())

	_, err = store.ClaimTags(ctx, channelID, primitive.NewObjectID(), []string{"x"})
	assert.ErrorIs(t, err, icebreaker.ErrNotFound)
}

func TestParticipationIsOnePerPair(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID, channelID, sessionID := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.InsertParticipation(ctx, &models.ParticipationRecord{
				UserID: userID, ChannelID: channelID, SessionID: sessionID, JoinedAt: time.Now().UTC(),
			})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, created)

	n, err := store.Collection(ParticipationCollection).CountDocuments(ctx, bson.M{"userId": userID, "sessionId": sessionID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestListParticipationNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i := range 3 {
		_, err := store.InsertParticipation(ctx, &models.ParticipationRecord{
			UserID: userID, ChannelID: primitive.NewObjectID(), SessionID: primitive.NewObjectID(),
			JoinedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	got, err := store.ListParticipation(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].JoinedAt.After(got[1].JoinedAt))
	assert.True(t, got[1].JoinedAt.After(got[2].JoinedAt))
	assert.Equal(t, userID, got[0].UserID)
}

func TestListMessagesReturnsRecentWindowAscending(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	channelID, sessionID := primitive.NewObjectID(), primitive.NewObjectID()
	base := time.Now().UTC().Truncate(time.Millisecond)

	for i, text := range []string{"one", "two", "three", "four"} {
		require.NoError(t, store.InsertMessage(ctx, &models.Message{
			ChannelID: channelID, SessionID: sessionID, Text: text,
			AuthorID: primitive.NewObjectID(), CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, store.InsertMessage(ctx, &models.Message{
		ChannelID: channelID, SessionID: primitive.NewObjectID(), Text: "elsewhere", CreatedAt: base,
	}))

	got, err := store.ListMessages(ctx, channelID, sessionID, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "two", got[0].Text)
	assert.Equal(t, "three", got[1].Text)
	assert.Equal(t, "four", got[2].Text)
}

func TestMembersUpsertKeepsJoinedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	channelID, userID := primitive.NewObjectID(), primitive.NewObjectID()
	joined := time.Now().UTC().Add(-time.Hour).Truncate(time.Millisecond)

	require.NoError(t, store.UpsertMember(ctx, &models.Member{
		ChannelID: channelID, UserID: userID, DisplayName: "Ada", JoinedAt: joined, UpdatedAt: joined,
	}))
	require.NoError(t, store.SetMemberInterests(ctx, channelID, userID, []string{"Gaming"}))
	require.NoError(t, store.UpsertMember(ctx, &models.Member{
		ChannelID: channelID, UserID: userID, DisplayName: "Ada L.", JoinedAt: time.Now().UTC(), UpdatedAt: time.Now().UTC(),
	}))

	m, err := store.FindMember(ctx, channelID, userID)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", m.DisplayName)
	assert.Equal(t, []string{"Gaming"}, m.Interests)
	assert.True(t, joined.Equal(m.JoinedAt))

	roster, err := store.ListMembers(ctx, channelID)
	require.NoError(t, err)
	assert.Len(t, roster, 1)

	_, err = store.FindMember(ctx, channelID, primitive.NewObjectID())
	assert.ErrorIs(t, err, icebreaker.ErrNotFound)
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := &models.User{Email: " Ada@Example.com ", DisplayName: "Ada", Password: "hash"}
	require.NoError(t, store.InsertUser(ctx, user))
	err := store.InsertUser(ctx, &models.User{Email: "ada@example.com"})
	assert.ErrorIs(t, err, icebreaker.ErrConflict)

	found, err := store.FindUserByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, store.SetUserInterests(ctx, user.ID, []string{"Tech"}))
	last := models.LastSession{ChannelID: primitive.NewObjectID(), SessionID: primitive.NewObjectID(), UpdatedAt: time.Now().UTC().Truncate(time.Millisecond)}
	require.NoError(t, store.SetLastSession(ctx, user.ID, last))

	found, err = store.FindUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tech"}, found.Interests)
	require.NotNil(t, found.LastSession)
	assert.Equal(t, last.SessionID, found.LastSession.SessionID)

	err = store.SetLastSession(ctx, primitive.NewObjectID(), last)
	assert.ErrorIs(t, err, icebreaker.ErrNotFound)
}

func TestChannels(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	ownerID := primitive.NewObjectID()

	ch := &models.Channel{Name: "Board games", OwnerID: ownerID, CreatedAt: time.Now().UTC()}
	require.NoError(t, store.InsertChannel(ctx, ch))
	require.NoError(t, store.RenameChannel(ctx, ch.ID, "Tabletop"))

	got, err := store.FindChannel(ctx, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tabletop", got.Name)

	owned, err := store.ListChannelsByOwner(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	assert.ErrorIs(t, store.RenameChannel(ctx, primitive.NewObjectID(), "x"), icebreaker.ErrNotFound)
}

func TestSeedActivitiesOnce(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.SeedActivities(ctx, DefaultActivities)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultActivities), n)

	n, err = store.SeedActivities(ctx, DefaultActivities)
	require.NoError(t, err)
	assert.Zero(t, n)

	gaming, err := store.FindActivities(ctx, models.CategoryGaming, 2)
	require.NoError(t, err)
	require.Len(t, gaming, 2)
	assert.True(t, gaming[0].ID.Hex() < gaming[1].ID.Hex())
	for _, a := range gaming {
		assert.Equal(t, models.CategoryGaming, a.Category)
	}
}
