// Package memstore holds the process-local registry store and journey journal.
// Everything here is lost when the process exits.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"
	"myregistry/service"
)

// Store is the in-memory implementation of interfaces.Store. A single RWMutex serializes all
// mutations, so eviction and touch for the same id never interleave.
type Store struct {
	clock interfaces.TimeProvider

	mu      sync.RWMutex
	records map[string]domain.ServiceRecord
}

var _ interfaces.Store = (*Store)(nil)

// NewStore creates an empty store. Panics on nil clock.
func NewStore(clock interfaces.TimeProvider) *Store {
	return &Store{
		clock:   helpers.NilPanic(clock, "memstore.store.go: clock is required"),
		records: make(map[string]domain.ServiceRecord),
	}
}

func (s *Store) Put(_ context.Context, serviceID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[serviceID] = domain.ServiceRecord{
		ServiceID: serviceID,
		URL:       url,
		Status:    domain.StatusHealthy,
		LastSeen:  s.nextLastSeenLocked(serviceID),
	}
	return nil
}

func (s *Store) Touch(_ context.Context, serviceID string, status domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[serviceID]
	if !ok {
		return service.NewServiceNotFoundError(serviceID)
	}
	rec.Status = status
	rec.LastSeen = s.nextLastSeenLocked(serviceID)
	s.records[serviceID] = rec
	return nil
}

func (s *Store) Remove(_ context.Context, serviceID string) error {
	s.mu.Lock()
	delete(s.records, serviceID)
	s.mu.Unlock()
	return nil
}

func (s *Store) ListStale(_ context.Context, timeout time.Duration) ([]string, error) {
	now := s.clock.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	stale := make([]string, 0)
	for id, rec := range s.records {
		if now.Sub(rec.LastSeen) > timeout {
			stale = append(stale, id)
		}
	}
	sort.Strings(stale)
	return stale, nil
}

func (s *Store) EvictIfStale(_ context.Context, serviceID string, timeout time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[serviceID]
	if !ok {
		return false, nil
	}
	if s.clock.Now().Sub(rec.LastSeen) <= timeout {
		return false, nil
	}
	delete(s.records, serviceID)
	return true, nil
}

func (s *Store) Get(_ context.Context, serviceID string) (domain.ServiceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[serviceID]
	if !ok {
		return domain.ServiceRecord{}, service.NewServiceNotFoundError(serviceID)
	}
	return rec, nil
}

func (s *Store) List(_ context.Context) ([]domain.ServiceRecord, error) {
	s.mu.RLock()
	out := make([]domain.ServiceRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ServiceID < out[j].ServiceID })
	return out, nil
}

// nextLastSeenLocked returns now, clamped so LastSeen never moves backwards for an existing record.
// Caller must hold s.mu.
func (s *Store) nextLastSeenLocked(serviceID string) time.Time {
	now := s.clock.Now()
	if prev, ok := s.records[serviceID]; ok && prev.LastSeen.After(now) {
		return prev.LastSeen
	}
	return now
}
