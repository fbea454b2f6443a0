package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// DefaultHeartbeatInterval is how often clients send heartbeats.
	DefaultHeartbeatInterval = 30 * time.Second
	// DefaultLivenessTimeout tolerates two missed heartbeats.
	DefaultLivenessTimeout = 3 * DefaultHeartbeatInterval
	// DefaultSweepInterval matches the heartbeat period.
	DefaultSweepInterval = DefaultHeartbeatInterval
)

var (
	// ErrAlreadyStarted is returned by Start on a running background task.
	ErrAlreadyStarted = errors.New("already started")
	// ErrNotStarted is returned by Stop on a task that is not running.
	ErrNotStarted = errors.New("not started")
)

// LivenessMonitor periodically evicts services whose last heartbeat is older than the timeout.
// Evicted services are not notified; their next heartbeat is answered with ReregisterRequired.
type LivenessMonitor struct {
	store         interfaces.Store
	clock         interfaces.TimeProvider
	logger        log.Logger
	timeout       time.Duration
	sweepInterval time.Duration

	running atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewLivenessMonitor creates a monitor. Zero durations fall back to DefaultLivenessTimeout and DefaultSweepInterval.
// Panics on nil store, clock or logger.
func NewLivenessMonitor(store interfaces.Store, clock interfaces.TimeProvider, logger log.Logger, timeout, sweepInterval time.Duration) *LivenessMonitor {
	if timeout <= 0 {
		timeout = DefaultLivenessTimeout
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	return &LivenessMonitor{
		store:         helpers.NilPanic(store, "service.liveness_monitor.go: store is required"),
		clock:         helpers.NilPanic(clock, "service.liveness_monitor.go: clock is required"),
		logger:        log.WithPrefix(helpers.NilPanic(logger, "service.liveness_monitor.go: logger is required"), "component", "LivenessMonitor"),
		timeout:       timeout,
		sweepInterval: sweepInterval,
	}
}

// Timeout returns the configured liveness timeout.
func (m *LivenessMonitor) Timeout() time.Duration {
	return m.timeout
}

// Start launches the sweep loop and returns immediately.
func (m *LivenessMonitor) Start(ctx context.Context) error {
	if m.running.Swap(true) {
		return ErrAlreadyStarted
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m.stopCh = make(chan struct{})
	m.doneCh = make(chan struct{})

	go m.run(ctx)
	level.Info(m.logger).Log("msg", "liveness monitor started", "timeout", m.timeout, "sweep_interval", m.sweepInterval)
	return nil
}

func (m *LivenessMonitor) run(ctx context.Context) {
	defer close(m.doneCh)

	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			if _, err := m.Sweep(ctx); err != nil {
				level.Error(m.logger).Log("msg", "liveness sweep failed", "err", err)
			}
		}
	}
}

// Stop ends the sweep loop and waits for an in-flight sweep to finish.
func (m *LivenessMonitor) Stop() error {
	if !m.running.Swap(false) {
		return ErrNotStarted
	}
	close(m.stopCh)
	<-m.doneCh
	level.Info(m.logger).Log("msg", "liveness monitor stopped")
	return nil
}

// Sweep evicts every service silent for longer than the timeout and returns the evicted ids.
// A service touched between listing and eviction survives this sweep.
func (m *LivenessMonitor) Sweep(ctx context.Context) ([]string, error) {
	stale, err := m.store.ListStale(ctx, m.timeout)
	if err != nil {
		return nil, fmt.Errorf("list stale services: %w", err)
	}

	evicted := make([]string, 0, len(stale))
	var errs []error
	for _, id := range stale {
		ok, err := m.store.EvictIfStale(ctx, id, m.timeout)
		if err != nil {
			errs = append(errs, fmt.Errorf("evict %q: %w", id, err))
			continue
		}
		if !ok {
			level.Debug(m.logger).Log("msg", "service refreshed before eviction", "service_id", id)
			continue
		}
		evicted = append(evicted, id)
		level.Info(m.logger).Log("msg", "service evicted", "service_id", id, "timeout", m.timeout, "swept_at", m.clock.Now())
	}
	return evicted, errors.Join(errs...)
}
