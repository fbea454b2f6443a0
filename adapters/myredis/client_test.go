package myredis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisUniversalClient(t *testing.T) {
	t.Run("valid URL returns client", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client, err := NewRedisUniversalClient("redis://" + mr.Addr())
		require.NoError(t, err)
		require.NotNil(t, client)
		defer client.Close()

		require.NoError(t, client.Ping(context.Background()).Err())
	})

	t.Run("invalid URL returns error", func(t *testing.T) {
		client, err := NewRedisUniversalClient("://invalid")
		require.Error(t, err)
		assert.Nil(t, client)
	})

	t.Run("with options returns client", func(t *testing.T) {
		var seen *redis.Options
		client, err := NewRedisUniversalClient("redis://localhost:6379/2",
			func(o *redis.Options) {
				o.DialTimeout = time.Second
				seen = o
			},
			WithPoolSize(7),
		)
		require.NoError(t, err)
		require.NotNil(t, client)
		defer client.Close()

		assert.Equal(t, time.Second, seen.DialTimeout)
		assert.Equal(t, 7, seen.PoolSize)
		assert.Equal(t, 2, seen.DB)
	})
}
