package scenario

import (
	"context"
	"fmt"
	"time"
)

const scenarioIdempotentDeregister = "idempotent_deregister"

func init() {
	Register(Scenario{
		Name:        scenarioIdempotentDeregister,
		Description: "deregistering unknown or removed ids succeeds and changes nothing",
		Run:         runIdempotentDeregister,
	})
}

func runIdempotentDeregister(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client := CreateRegistryClient(cfg)
	serviceID := newServiceID()

	// Deregistering an id the registry never saw succeeds and creates nothing.
	if err := client.Deregister(ctx, serviceID, serviceURL); err != nil {
		return fmt.Errorf("deregister unknown id: %w", err)
	}
	if err := ExpectNotListed(ctx, cfg, serviceID); err != nil {
		return fmt.Errorf("deregister unknown id: %w", err)
	}

	if err := client.Register(ctx, serviceID, serviceURL); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	for i := 0; i < 2; i++ {
		if err := client.Deregister(ctx, serviceID, serviceURL); err != nil {
			return fmt.Errorf("deregister (iteration %d): %w", i, err)
		}
		if err := ExpectNotListed(ctx, cfg, serviceID); err != nil {
			return fmt.Errorf("deregister (iteration %d): %w", i, err)
		}
	}

	return nil
}
