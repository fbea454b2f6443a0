package scenario

import (
	"context"
	"fmt"
	"time"

	"myregistry/domain"
	"myregistry/handlers"
)

const scenarioBasicWorkflow = "basic_workflow"

func init() {
	Register(Scenario{
		Name:        scenarioBasicWorkflow,
		Description: "register, heartbeat, list, deregister",
		Run:         runBasicWorkflow,
	})
}

func runBasicWorkflow(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := CreateRegistryClient(cfg)
	serviceID := newServiceID()

	// 1. Register
	if err := client.Register(ctx, serviceID, serviceURL); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	registered, err := ExpectListed(ctx, cfg, serviceID, serviceURL)
	if err != nil {
		return fmt.Errorf("after register: %w", err)
	}
	if registered.Status != handlers.Healthy {
		return fmt.Errorf("after register: status=%q, want healthy", registered.Status)
	}

	// 2. Heartbeat
	for i := 0; i < 3; i++ {
		if err := SendHeartbeat(ctx, client, serviceID, serviceURL, domain.Acknowledged); err != nil {
			return fmt.Errorf("heartbeat (iteration %d): %w", i, err)
		}
	}
	refreshed, err := ExpectListed(ctx, cfg, serviceID, serviceURL)
	if err != nil {
		return fmt.Errorf("after heartbeat: %w", err)
	}
	if refreshed.LastSeen.Before(registered.LastSeen) {
		return fmt.Errorf("after heartbeat: lastSeen moved backwards from %s to %s", registered.LastSeen, refreshed.LastSeen)
	}

	// 3. Deregister
	if err := client.Deregister(ctx, serviceID, serviceURL); err != nil {
		return fmt.Errorf("deregister: %w", err)
	}
	if err := ExpectNotListed(ctx, cfg, serviceID); err != nil {
		return fmt.Errorf("after deregister: %w", err)
	}

	return nil
}
