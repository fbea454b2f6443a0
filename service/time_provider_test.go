package service

import (
	"testing"
	"time"

	"myregistry/helpers"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeProvider(t *testing.T) {
	assert.PanicsWithValue(t, "service.time_provider.go: now is required", func() {
		NewTimeProvider(nil)
	})

	clock := helpers.NewTestClock()
	tp := NewTimeProvider(clock.Now)
	assert.Equal(t, helpers.TestNow(), tp.Now())
	clock.Advance(30 * time.Second)
	assert.Equal(t, helpers.TestNow().Add(30*time.Second), tp.Now())
}

func TestNewUTCTimeProvider(t *testing.T) {
	before := time.Now()
	now := NewUTCTimeProvider().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, before, now, time.Second)
}
