package helpers

import (
	"sync"
	"time"
)

// TestNow returns a fixed time (2026-02-11 12:00:00 UTC) for deterministic tests (liveness timeouts, heartbeat timestamps).
//
// Called from tests when a fixed "current" time is needed.
func TestNow() time.Time {
	return time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
}

// TestClock is a manually advanced clock for tests. Its Now method can be passed wherever a
// func() time.Time is expected (service.NewTimeProvider, store constructors).
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewTestClock creates a TestClock starting at TestNow.
func NewTestClock() *TestClock {
	return &TestClock{now: TestNow()}
}

// Now returns the current fake time.
func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *TestClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
