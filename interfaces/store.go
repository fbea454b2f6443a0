package interfaces

import (
	"context"
	"time"

	"myregistry/domain"
)

// Store holds the registry's service records. It is the only owner of records: callers get copies.
// Implementations must be safe for concurrent use and must never expose a partially updated record.
//
//go:generate moq -stub -out mock/store.go -pkg mock . Store
type Store interface {
	// Put inserts or replaces the record for serviceID, setting LastSeen to now and Status to healthy.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the backing storage fails (never for the memory store).
	Put(ctx context.Context, serviceID, url string) error

	// Touch refreshes LastSeen and Status of an existing record.
	// Returns:
	// 1) nil on success;
	// 2) entity_not_found when serviceID is not registered (caller must re-register);
	// 3) internal_server_error when the backing storage fails.
	Touch(ctx context.Context, serviceID string, status domain.Status) error

	// Remove deletes the record if present. Removing an absent id is not an error.
	Remove(ctx context.Context, serviceID string) error

	// ListStale returns ids whose now - LastSeen > timeout.
	ListStale(ctx context.Context, timeout time.Duration) ([]string, error)

	// EvictIfStale removes serviceID only if it is still stale at the time of the call.
	// Returns true when the record was removed.
	EvictIfStale(ctx context.Context, serviceID string, timeout time.Duration) (bool, error)

	// Get returns a copy of one record.
	// Returns entity_not_found when serviceID is not registered.
	Get(ctx context.Context, serviceID string) (domain.ServiceRecord, error)

	// List returns a snapshot of all records sorted by ServiceID. Empty registry yields an empty slice.
	List(ctx context.Context) ([]domain.ServiceRecord, error)
}

// Journal keeps journeys logged by the travel calculator.
//
//go:generate moq -stub -out mock/journal.go -pkg mock . Journal
type Journal interface {
	// Append stores a journey.
	Append(ctx context.Context, journey domain.Journey) error

	// List returns stored journeys, oldest first.
	List(ctx context.Context) ([]domain.Journey, error)
}
