package cache

import (
	"context"
	"testing"
	"time"

	"icebreaker/backend/icebreaker"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupTestCache(t *testing.T) (*InterestCache, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	c, err := NewInterestCache("redis://" + s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, s
}

func TestNewInterestCache(t *testing.T) {
	c, _ := setupTestCache(t)
	assert.NoError(t, c.Ping(context.Background()))

	_, err := NewInterestCache("not a url")
	assert.Error(t, err)
}

func TestSaveAndLoadInterests(t *testing.T) {
	c, s := setupTestCache(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	require.NoError(t, c.SaveInterests(ctx, userID, []string{"Gaming", "Travel"}))

	got, err := c.LoadInterests(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gaming", "Travel"}, got)

	assert.True(t, s.Exists("selectedInterests:"+userID.Hex()))
	assert.Equal(t, DefaultTTL, s.TTL("selectedInterests:"+userID.Hex()))

	require.NoError(t, c.SaveInterests(ctx, userID, nil))
	got, err = c.LoadInterests(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadInterestsMiss(t *testing.T) {
	c, _ := setupTestCache(t)
	_, err := c.LoadInterests(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, icebreaker.ErrNotFound)
}

func TestLoadInterestsExpired(t *testing.T) {
	c, s := setupTestCache(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	require.NoError(t, c.SaveInterests(ctx, userID, []string{"Tech"}))
	s.FastForward(DefaultTTL + time.Second)

	_, err := c.LoadInterests(ctx, userID)
	assert.ErrorIs(t, err, icebreaker.ErrNotFound)
}

func TestLoadInterestsUnavailable(t *testing.T) {
	c, s := setupTestCache(t)
	s.Close()

	_, err := c.LoadInterests(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.NotErrorIs(t, err, icebreaker.ErrNotFound)
}
