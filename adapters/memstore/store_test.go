package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *helpers.TestClock) {
	clock := helpers.NewTestClock()
	return NewStore(service.NewTimeProvider(clock.Now)), clock
}

func TestNewStore_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "memstore.store.go: clock is required", func() {
		NewStore(nil)
	})
}

func TestStore_PutAndGet(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	require.NoError(t, s.Put(ctx, "svc-1", "http://a:8000"))

	rec, err := s.Get(ctx, "svc-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ServiceRecord{
		ServiceID: "svc-1",
		URL:       "http://a:8000",
		Status:    domain.StatusHealthy,
		LastSeen:  helpers.TestNow(),
	}, rec)

	_, err = s.Get(ctx, "missing")
	assert.True(t, service.IsEntityNotFoundError(err))
}

func TestStore_PutReplacesWithoutDuplicate(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore()

	require.NoError(t, s.Put(ctx, "svc-1", "http://a:8000"))
	require.NoError(t, s.Touch(ctx, "svc-1", domain.StatusUnknown))
	clock.Advance(10 * time.Second)
	require.NoError(t, s.Put(ctx, "svc-1", "http://b:9000"))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "http://b:9000", all[0].URL)
	assert.Equal(t, domain.StatusHealthy, all[0].Status)
	assert.Equal(t, helpers.TestNow().Add(10*time.Second), all[0].LastSeen)
}

func TestStore_Touch(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore()

	err := s.Touch(ctx, "svc-1", domain.StatusHealthy)
	require.Error(t, err)
	assert.True(t, service.IsEntityNotFoundError(err))

	require.NoError(t, s.Put(ctx, "svc-1", "http://a:8000"))
	clock.Advance(20 * time.Second)
	require.NoError(t, s.Touch(ctx, "svc-1", domain.StatusUnknown))

	rec, err := s.Get(ctx, "svc-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnknown, rec.Status)
	assert.Equal(t, helpers.TestNow().Add(20*time.Second), rec.LastSeen)
}

func TestStore_LastSeenNeverMovesBackwards(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore()

	clock.Advance(time.Minute)
	require.NoError(t, s.Put(ctx, "svc-1", "http://a:8000"))
	clock.Advance(-30 * time.Second)
	require.NoError(t, s.Touch(ctx, "svc-1", domain.StatusHealthy))
	require.NoError(t, s.Put(ctx, "svc-1", "http://a:8000"))

	rec, err := s.Get(ctx, "svc-1")
	require.NoError(t, err)
	assert.Equal(t, helpers.TestNow().Add(time.Minute), rec.LastSeen)
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	require.NoError(t, s.Put(ctx, "svc-1", "http://a:8000"))
	require.NoError(t, s.Remove(ctx, "svc-2"))
	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.Remove(ctx, "svc-1"))
	require.NoError(t, s.Remove(ctx, "svc-1"))
	all, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_ListStale(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore()
	timeout := 90 * time.Second

	require.NoError(t, s.Put(ctx, "old", "http://old:1"))
	clock.Advance(60 * time.Second)
	require.NoError(t, s.Put(ctx, "young", "http://young:1"))

	clock.Advance(30 * time.Second)
	stale, err := s.ListStale(ctx, timeout)
	require.NoError(t, err)
	assert.Empty(t, stale, "exactly timeout old is not stale")

	clock.Advance(time.Second)
	stale, err = s.ListStale(ctx, timeout)
	require.NoError(t, err)
	assert.Equal(t, []string{"old"}, stale)

	clock.Advance(time.Minute)
	stale, err = s.ListStale(ctx, timeout)
	require.NoError(t, err)
	assert.Equal(t, []string{"old", "young"}, stale)
}

func TestStore_EvictIfStale(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore()
	timeout := 90 * time.Second

	require.NoError(t, s.Put(ctx, "svc-1", "http://a:8000"))
	clock.Advance(95 * time.Second)

	stale, err := s.ListStale(ctx, timeout)
	require.NoError(t, err)
	require.Equal(t, []string{"svc-1"}, stale)

	// A heartbeat lands after the listing but before eviction: the record must survive.
	require.NoError(t, s.Touch(ctx, "svc-1", domain.StatusHealthy))
	evicted, err := s.EvictIfStale(ctx, "svc-1", timeout)
	require.NoError(t, err)
	assert.False(t, evicted)

	clock.Advance(91 * time.Second)
	evicted, err = s.EvictIfStale(ctx, "svc-1", timeout)
	require.NoError(t, err)
	assert.True(t, evicted)

	evicted, err = s.EvictIfStale(ctx, "svc-1", timeout)
	require.NoError(t, err)
	assert.False(t, evicted)
	assert.True(t, service.IsEntityNotFoundError(s.Touch(ctx, "svc-1", domain.StatusHealthy)))
}

func TestStore_ConcurrentRegisterDeregister(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	const workers = 16
	const perWorker = 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := fmt.Sprintf("svc-%d-%d", w, i)
				_ = s.Put(ctx, id, "http://host:1")
				_ = s.Touch(ctx, id, domain.StatusHealthy)
				if i%2 == 1 {
					_ = s.Remove(ctx, id)
				}
			}
		}(w)
	}
	wg.Wait()

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers*perWorker/2)
	for _, rec := range all {
		var w, i int
		_, err := fmt.Sscanf(rec.ServiceID, "svc-%d-%d", &w, &i)
		require.NoError(t, err)
		assert.Equal(t, 0, i%2, "removed id %s still listed", rec.ServiceID)
	}
}

func TestStore_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()
	require.NoError(t, s.Put(ctx, "svc-1", "http://a:8000"))

	all, err := s.List(ctx)
	require.NoError(t, err)
	all[0].URL = "mutated"

	rec, err := s.Get(ctx, "svc-1")
	require.NoError(t, err)
	assert.Equal(t, "http://a:8000", rec.URL)
}
