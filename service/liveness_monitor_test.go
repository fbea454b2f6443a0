package service_test

import (
	"context"
	"testing"
	"time"

	"myregistry/adapters/memstore"
	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces/mock"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMonitorFixture(timeout, sweep time.Duration) (*service.LivenessMonitor, *memstore.Store, *helpers.TestClock) {
	clock := helpers.NewTestClock()
	tp := service.NewTimeProvider(clock.Now)
	store := memstore.NewStore(tp)
	return service.NewLivenessMonitor(store, tp, log.NewNopLogger(), timeout, sweep), store, clock
}

func TestNewLivenessMonitor(t *testing.T) {
	tp := service.NewTimeProvider(helpers.TestNow)
	assert.PanicsWithValue(t, "service.liveness_monitor.go: store is required", func() {
		service.NewLivenessMonitor(nil, tp, log.NewNopLogger(), 0, 0)
	})
	assert.PanicsWithValue(t, "service.liveness_monitor.go: clock is required", func() {
		service.NewLivenessMonitor(&mock.StoreMock{}, nil, log.NewNopLogger(), 0, 0)
	})
	assert.PanicsWithValue(t, "service.liveness_monitor.go: logger is required", func() {
		service.NewLivenessMonitor(&mock.StoreMock{}, tp, nil, 0, 0)
	})

	m := service.NewLivenessMonitor(&mock.StoreMock{}, tp, log.NewNopLogger(), 0, 0)
	assert.Equal(t, 90*time.Second, m.Timeout())
}

func TestLivenessMonitor_Sweep(t *testing.T) {
	ctx := context.Background()
	m, store, clock := newMonitorFixture(90*time.Second, 30*time.Second)

	require.NoError(t, store.Put(ctx, "svc-1", "http://a:8000"))
	require.NoError(t, store.Put(ctx, "svc-2", "http://b:8000"))

	clock.Advance(60 * time.Second)
	require.NoError(t, store.Touch(ctx, "svc-2", domain.StatusHealthy))

	evicted, err := m.Sweep(ctx)
	require.NoError(t, err)
	assert.Empty(t, evicted)

	clock.Advance(35 * time.Second)
	evicted, err = m.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"svc-1"}, evicted)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "svc-2", all[0].ServiceID)
}

func TestLivenessMonitor_SweepSkipsRefreshedService(t *testing.T) {
	ctx := context.Background()
	store := &mock.StoreMock{
		ListStaleFunc: func(ctx context.Context, timeout time.Duration) ([]string, error) {
			return []string{"fresh", "stale"}, nil
		},
		EvictIfStaleFunc: func(ctx context.Context, serviceID string, timeout time.Duration) (bool, error) {
			assert.Equal(t, 90*time.Second, timeout)
			return serviceID == "stale", nil
		},
	}
	m := service.NewLivenessMonitor(store, service.NewTimeProvider(helpers.TestNow), log.NewNopLogger(), 90*time.Second, time.Second)

	evicted, err := m.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"stale"}, evicted)
	assert.Len(t, store.EvictIfStaleCalls(), 2)
}

func TestLivenessMonitor_SweepErrors(t *testing.T) {
	ctx := context.Background()
	tp := service.NewTimeProvider(helpers.TestNow)

	t.Run("list failure", func(t *testing.T) {
		store := &mock.StoreMock{
			ListStaleFunc: func(ctx context.Context, timeout time.Duration) ([]string, error) {
				return nil, assert.AnError
			},
		}
		_, err := service.NewLivenessMonitor(store, tp, log.NewNopLogger(), 0, 0).Sweep(ctx)
		require.ErrorIs(t, err, assert.AnError)
		assert.Empty(t, store.EvictIfStaleCalls())
	})

	t.Run("one failed eviction does not stop the others", func(t *testing.T) {
		store := &mock.StoreMock{
			ListStaleFunc: func(ctx context.Context, timeout time.Duration) ([]string, error) {
				return []string{"a", "b"}, nil
			},
			EvictIfStaleFunc: func(ctx context.Context, serviceID string, timeout time.Duration) (bool, error) {
				if serviceID == "a" {
					return false, assert.AnError
				}
				return true, nil
			},
		}
		evicted, err := service.NewLivenessMonitor(store, tp, log.NewNopLogger(), 0, 0).Sweep(ctx)
		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, []string{"b"}, evicted)
	})
}

func TestLivenessMonitor_StartStop(t *testing.T) {
	ctx := context.Background()
	m, store, clock := newMonitorFixture(90*time.Second, 5*time.Millisecond)

	require.ErrorIs(t, m.Stop(), service.ErrNotStarted)

	require.NoError(t, store.Put(ctx, "svc-1", "http://a:8000"))
	clock.Advance(95 * time.Second)

	require.NoError(t, m.Start(ctx))
	require.ErrorIs(t, m.Start(ctx), service.ErrAlreadyStarted)

	assert.Eventually(t, func() bool {
		all, err := store.List(ctx)
		return err == nil && len(all) == 0
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, m.Stop())
	require.ErrorIs(t, m.Stop(), service.ErrNotStarted)
}

func TestLivenessMonitor_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m, _, _ := newMonitorFixture(90*time.Second, time.Hour)

	require.NoError(t, m.Start(ctx))
	cancel()

	done := make(chan struct{})
	go func() {
		_ = m.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}
