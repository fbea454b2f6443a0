package scenario

import (
	"context"
	"fmt"
	"time"

	"myregistry/domain"
)

const scenarioReregisterAfterDeregister = "reregister_after_deregister"

func init() {
	Register(Scenario{
		Name:        scenarioReregisterAfterDeregister,
		Description: "heartbeat after deregister answers Reregister; registering again restores the record",
		Run:         runReregisterAfterDeregister,
	})
}

func runReregisterAfterDeregister(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := CreateRegistryClient(cfg)
	serviceID := newServiceID()
	defer client.Deregister(context.Background(), serviceID, serviceURL) //nolint:errcheck

	if err := client.Register(ctx, serviceID, serviceURL); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err := client.Deregister(ctx, serviceID, serviceURL); err != nil {
		return fmt.Errorf("deregister: %w", err)
	}

	// The registry forgot the id: heartbeats ask for registration and must not resurrect the record.
	if err := SendHeartbeat(ctx, client, serviceID, serviceURL, domain.ReregisterRequired); err != nil {
		return fmt.Errorf("heartbeat after deregister: %w", err)
	}
	if err := ExpectNotListed(ctx, cfg, serviceID); err != nil {
		return fmt.Errorf("heartbeat after deregister: %w", err)
	}

	const movedURL = "http://scenario-host:9000"
	if err := client.Register(ctx, serviceID, movedURL); err != nil {
		return fmt.Errorf("re-register: %w", err)
	}
	if _, err := ExpectListed(ctx, cfg, serviceID, movedURL); err != nil {
		return fmt.Errorf("after re-register: %w", err)
	}
	if err := SendHeartbeat(ctx, client, serviceID, movedURL, domain.Acknowledged); err != nil {
		return fmt.Errorf("heartbeat after re-register: %w", err)
	}

	return nil
}
