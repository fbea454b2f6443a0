package service

import (
	"time"

	"myregistry/helpers"
	"myregistry/interfaces"
)

// nowFunc adapts a plain func to interfaces.TimeProvider.
type nowFunc func() time.Time

func (f nowFunc) Now() time.Time { return f() }

// NewTimeProvider wraps now. Tests pass helpers.TestClock.Now. Panics on nil now.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return nowFunc(helpers.NilPanic(now, "service.time_provider.go: now is required"))
}

// NewUTCTimeProvider is the wall clock in UTC, shared by the registry and the agent.
func NewUTCTimeProvider() interfaces.TimeProvider {
	return nowFunc(func() time.Time { return time.Now().UTC() })
}
