package interfaces

import (
	"context"

	"myregistry/domain"
)

// RegistryClient talks to one registry endpoint on behalf of a registered service.
//
// Implemented by adapters.RegistryHTTP (POST /register, /deregister, /heartbeat). Used by
// service.HeartbeatSender, one client per configured registry, and by the scenario runner.
//
//go:generate moq -stub -out mock/registry_client.go -pkg mock . RegistryClient
type RegistryClient interface {
	// Endpoint returns the registry base URL this client talks to (used as the endpoint key in logs and state).
	Endpoint() string

	// Register registers serviceID at url. Returns nil on 200; error on network failure or non-200.
	Register(ctx context.Context, serviceID, url string) error

	// Deregister removes serviceID. Returns nil on 200 (also for unknown ids); error otherwise.
	Deregister(ctx context.Context, serviceID, url string) error

	// Heartbeat sends one heartbeat.
	// Returns: (Acknowledged, nil) or (ReregisterRequired, nil) on 200; (_, error) on network failure or non-200.
	Heartbeat(ctx context.Context, hb domain.Heartbeat) (domain.HeartbeatResult, error)
}
