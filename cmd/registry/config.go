package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env variable names.
const (
	envEnvFile           = "ENV_FILE"
	envHTTPPort          = "SERVICE_PORT_HTTP"
	envGRPCPort          = "SERVICE_PORT_GRPC"
	envStoreBackend      = "STORE_BACKEND"
	envRedisAddr         = "REDIS_ADDR"
	envRedisPrefix       = "REDIS_PREFIX"
	envHeartbeatInterval = "HEARTBEAT_INTERVAL_MS"
	envLivenessTimeout   = "LIVENESS_TIMEOUT_MS"
	envSweepInterval     = "SWEEP_INTERVAL_MS"
)

// Store backends.
const (
	backendMemory = "memory"
	backendRedis  = "redis"
)

// RedisConfig is used only with STORE_BACKEND=redis.
type RedisConfig struct {
	Addr   string
	Prefix string
}

// RegistryConfig holds the registry process configuration.
type RegistryConfig struct {
	HTTPPort int
	// GRPCPort is 0 when the gRPC health endpoint is disabled.
	GRPCPort          int
	StoreBackend      string
	Redis             RedisConfig
	HeartbeatInterval time.Duration
	LivenessTimeout   time.Duration
	SweepInterval     time.Duration
}

// LoadConfig loads configuration from environment variables, after loading ENV_FILE when it is set.
// Variables already present in the environment win over the file.
// SERVICE_PORT_HTTP is required; REDIS_ADDR is required with STORE_BACKEND=redis.
// LIVENESS_TIMEOUT_MS defaults to 3x HEARTBEAT_INTERVAL_MS and must exceed it.
func LoadConfig() (*RegistryConfig, error) {
	if envFile := strings.TrimSpace(os.Getenv(envEnvFile)); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s %s: %w", envEnvFile, envFile, err)
		}
	}

	httpPortStr := os.Getenv(envHTTPPort)
	if httpPortStr == "" {
		return nil, fmt.Errorf("%s is required", envHTTPPort)
	}
	httpPort, err := parsePort(envHTTPPort, httpPortStr)
	if err != nil {
		return nil, err
	}

	var grpcPort int
	if s := os.Getenv(envGRPCPort); s != "" {
		if grpcPort, err = parsePort(envGRPCPort, s); err != nil {
			return nil, err
		}
	}

	backend := strings.ToLower(strings.TrimSpace(os.Getenv(envStoreBackend)))
	if backend == "" {
		backend = backendMemory
	}
	var redisCfg RedisConfig
	switch backend {
	case backendMemory:
	case backendRedis:
		redisCfg.Addr = os.Getenv(envRedisAddr)
		if redisCfg.Addr == "" {
			return nil, fmt.Errorf("%s is required when %s=%s", envRedisAddr, envStoreBackend, backendRedis)
		}
		redisCfg.Prefix = os.Getenv(envRedisPrefix)
		if redisCfg.Prefix == "" {
			redisCfg.Prefix = "service"
		}
	default:
		return nil, fmt.Errorf("%s must be %s or %s, got %q", envStoreBackend, backendMemory, backendRedis, backend)
	}

	interval, err := durationMs(envHeartbeatInterval, 30*time.Second)
	if err != nil {
		return nil, err
	}
	timeout, err := durationMs(envLivenessTimeout, 3*interval)
	if err != nil {
		return nil, err
	}
	if timeout <= interval {
		return nil, fmt.Errorf("%s (%s) must be greater than %s (%s)", envLivenessTimeout, timeout, envHeartbeatInterval, interval)
	}
	sweep, err := durationMs(envSweepInterval, interval)
	if err != nil {
		return nil, err
	}

	return &RegistryConfig{
		HTTPPort:          httpPort,
		GRPCPort:          grpcPort,
		StoreBackend:      backend,
		Redis:             redisCfg,
		HeartbeatInterval: interval,
		LivenessTimeout:   timeout,
		SweepInterval:     sweep,
	}, nil
}

func parsePort(name, s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be 0-65535, got %d", name, port)
	}
	return port, nil
}

// durationMs reads a positive millisecond count from env name, or returns def when unset.
func durationMs(name string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	ms, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if ms <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
