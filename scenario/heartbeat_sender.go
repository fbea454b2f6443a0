package scenario

import (
	"context"
	"fmt"
	"time"

	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-kit/log"
)

const scenarioHeartbeatSender = "heartbeat_sender"

func init() {
	Register(Scenario{
		Name:        scenarioHeartbeatSender,
		Description: "a HeartbeatSender keeps the record fresh and deregisters on stop",
		Run:         runHeartbeatSender,
	})
}

func runHeartbeatSender(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 10*cfg.HeartbeatInterval+30*time.Second)
	defer cancel()

	client := CreateRegistryClient(cfg)
	serviceID := newServiceID()
	sender := service.NewHeartbeatSender(service.HeartbeatSenderConfig{
		ServiceID:        serviceID,
		URL:              serviceURL,
		Interval:         cfg.HeartbeatInterval,
		DeregisterOnStop: true,
	}, []interfaces.RegistryClient{client}, service.NewUTCTimeProvider(), log.NewNopLogger())

	if err := sender.RegisterAll(ctx); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	first, err := ExpectListed(ctx, cfg, serviceID, serviceURL)
	if err != nil {
		return fmt.Errorf("after register: %w", err)
	}

	if err := sender.Start(ctx); err != nil {
		return fmt.Errorf("start sender: %w", err)
	}
	stopped := false
	defer func() {
		if !stopped {
			_ = sender.Stop(context.Background())
		}
	}()

	// The registry must see lastSeen advance from background heartbeats alone.
	err = WaitUntil(ctx, cfg, "heartbeat refresh", func(ctx context.Context) (bool, error) {
		info, err := ExpectListed(ctx, cfg, serviceID, serviceURL)
		if err != nil {
			return false, err
		}
		return info.LastSeen.After(first.LastSeen), nil
	})
	if err != nil {
		return err
	}

	stopped = true
	if err := sender.Stop(ctx); err != nil {
		return fmt.Errorf("stop sender: %w", err)
	}
	if err := ExpectNotListed(ctx, cfg, serviceID); err != nil {
		return fmt.Errorf("after stop: %w", err)
	}
	if st := sender.States()[client.Endpoint()]; st != service.EndpointUnregistered {
		return fmt.Errorf("after stop: endpoint state=%s, want %s", st, service.EndpointUnregistered)
	}

	return nil
}
