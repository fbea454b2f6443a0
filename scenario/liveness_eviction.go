package scenario

import (
	"context"
	"fmt"
	"time"

	"myregistry/domain"
)

const scenarioLivenessEviction = "liveness_eviction"

func init() {
	Register(Scenario{
		Name:        scenarioLivenessEviction,
		Description: "a silent service is evicted after the liveness timeout, a heartbeating one is kept",
		Run:         runLivenessEviction,
	})
}

func runLivenessEviction(ctx context.Context, cfg *Config) error {
	deadline := cfg.EvictionDeadline()
	ctx, cancel := context.WithTimeout(ctx, 2*deadline+10*time.Second)
	defer cancel()

	client := CreateRegistryClient(cfg)
	silent := newServiceID()
	alive := newServiceID()
	defer client.Deregister(context.Background(), alive, serviceURL) //nolint:errcheck

	registeredAt := time.Now()
	for _, id := range []string{silent, alive} {
		if err := client.Register(ctx, id, serviceURL); err != nil {
			return fmt.Errorf("register %s: %w", id, err)
		}
	}

	// Keep one service alive while the other goes quiet.
	hbCtx, stopHeartbeats := context.WithCancel(ctx)
	defer stopHeartbeats()
	hbErr := make(chan error, 1)
	go func() {
		interval := cfg.LivenessTimeout / 3
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-hbCtx.Done():
				hbErr <- nil
				return
			case <-ticker.C:
				if err := SendHeartbeat(hbCtx, client, alive, serviceURL, domain.Acknowledged); err != nil && hbCtx.Err() == nil {
					hbErr <- err
					return
				}
			}
		}
	}()

	err := WaitUntil(ctx, cfg, "silent service eviction", func(ctx context.Context) (bool, error) {
		_, ok, err := FindService(ctx, cfg, silent)
		return !ok, err
	})
	if err != nil {
		return err
	}
	if elapsed := time.Since(registeredAt); elapsed < cfg.LivenessTimeout {
		return fmt.Errorf("silent service evicted after %s, before the %s liveness timeout", elapsed, cfg.LivenessTimeout)
	}

	if _, err := ExpectListed(ctx, cfg, alive, serviceURL); err != nil {
		return fmt.Errorf("heartbeating service: %w", err)
	}
	stopHeartbeats()
	if err := <-hbErr; err != nil {
		return fmt.Errorf("heartbeating service: %w", err)
	}

	if err := SendHeartbeat(ctx, client, silent, serviceURL, domain.ReregisterRequired); err != nil {
		return fmt.Errorf("heartbeat after eviction: %w", err)
	}

	return nil
}
