package interfaces

import "time"

// TimeProvider supplies the current time for liveness decisions and heartbeat timestamps.
// Injected so tests can drive a fake clock instead of time.Now().
//
// Used by the registry stores to stamp LastSeen and evaluate staleness, and by
// service.HeartbeatSender to stamp outgoing heartbeats.
// Constructed in cmd/* as service.NewUTCTimeProvider().
type TimeProvider interface {
	// Now returns current time (UTC in prod; a controllable clock in tests).
	Now() time.Time
}
