package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	Client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = Client.Close()
		Client = nil
	})
}

func TestHelpersAreNilSafe(t *testing.T) {
	Client = nil
	ctx := context.Background()

	var dest string
	found, err := GetJSON(ctx, "k", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "k", "v", time.Minute))
	assert.NoError(t, Invalidate(ctx, "k"))
}

func TestSetGetInvalidateRoundTrip(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	type profile struct {
		Linkedin string `json:"linkedin"`
	}

	require.NoError(t, SetJSON(ctx, "cache:settings", profile{Linkedin: "handle"}, time.Minute))

	var got profile
	found, err := GetJSON(ctx, "cache:settings", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "handle", got.Linkedin)

	require.NoError(t, Invalidate(ctx, "cache:settings"))
	found, err = GetJSON(ctx, "cache:settings", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
