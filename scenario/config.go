package scenario

import "time"

// Config holds settings for running a scenario against a live registry.
type Config struct {
	RegistryURL string
	// LivenessTimeout and SweepInterval must match the registry under test; liveness_eviction waits for both.
	LivenessTimeout time.Duration
	SweepInterval   time.Duration
	// HeartbeatInterval is used by scenarios that run a HeartbeatSender.
	HeartbeatInterval time.Duration
	// PollInterval is how often scenarios re-read GET /services while waiting.
	PollInterval time.Duration
}

// EvictionDeadline is the longest a silent service may stay listed.
func (c *Config) EvictionDeadline() time.Duration {
	return c.LivenessTimeout + c.SweepInterval
}
