package main

import (
	"context"
	"fmt"
	"time"

	"myregistry/adapters/memstore"
	"myregistry/adapters/myredis"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// newStore builds the configured registry store. The returned close func releases backend connections.
func newStore(ctx context.Context, config *RegistryConfig, clock interfaces.TimeProvider, logger log.Logger) (interfaces.Store, func() error, error) {
	switch config.StoreBackend {
	case backendRedis:
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			return nil, nil, fmt.Errorf("create redis client: %w", err)
		}
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("connect to redis: %w", err)
		}
		level.Info(logger).Log("msg", "Connected to Redis", "prefix", config.Redis.Prefix)
		return myredis.NewStore(redisClient, clock, config.Redis.Prefix), redisClient.Close, nil
	default:
		level.Warn(logger).Log("msg", "registry store is memory-resident; registrations are lost on restart")
		return memstore.NewStore(clock), func() error { return nil }, nil
	}
}
