package service

import (
	"context"
	"fmt"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Registry is the only writer of the registry store. It is transport agnostic: handlers.HTTPServer
// and the scenario runner call it directly.
type Registry struct {
	store  interfaces.Store
	logger log.Logger
}

// NewRegistry creates a Registry over store. Panics on nil store or logger.
func NewRegistry(store interfaces.Store, logger log.Logger) *Registry {
	return &Registry{
		store:  helpers.NilPanic(store, "service.registry.go: store is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "service.registry.go: logger is required"), "component", "Registry"),
	}
}

// Register inserts or replaces the record for serviceID. Re-registering an existing id is a success.
func (r *Registry) Register(ctx context.Context, serviceID, url string) error {
	if err := requireIdentity(serviceID, url); err != nil {
		return err
	}
	if err := r.store.Put(ctx, serviceID, url); err != nil {
		return fmt.Errorf("register %q: %w", serviceID, err)
	}
	level.Info(r.logger).Log("msg", "service registered", "service_id", serviceID, "url", url)
	return nil
}

// Deregister removes serviceID. Unknown ids are not an error.
func (r *Registry) Deregister(ctx context.Context, serviceID, url string) error {
	if err := requireIdentity(serviceID, url); err != nil {
		return err
	}
	if err := r.store.Remove(ctx, serviceID); err != nil {
		return fmt.Errorf("deregister %q: %w", serviceID, err)
	}
	level.Info(r.logger).Log("msg", "service deregistered", "service_id", serviceID)
	return nil
}

// Heartbeat refreshes the record of hb.ServiceID. An unknown id is answered with ReregisterRequired, not an error.
func (r *Registry) Heartbeat(ctx context.Context, hb domain.Heartbeat) (domain.HeartbeatResult, error) {
	if err := requireIdentity(hb.ServiceID, hb.URL); err != nil {
		return domain.Acknowledged, err
	}
	status := hb.Status
	if status == "" {
		status = domain.StatusHealthy
	}
	err := r.store.Touch(ctx, hb.ServiceID, status)
	switch {
	case err == nil:
		level.Debug(r.logger).Log("msg", "heartbeat acknowledged", "service_id", hb.ServiceID, "status", status)
		return domain.Acknowledged, nil
	case IsEntityNotFoundError(err):
		level.Info(r.logger).Log("msg", "heartbeat from unknown service, asking to re-register", "service_id", hb.ServiceID, "url", hb.URL)
		return domain.ReregisterRequired, nil
	default:
		return domain.Acknowledged, fmt.Errorf("heartbeat %q: %w", hb.ServiceID, err)
	}
}

// Services returns a snapshot of every registered service sorted by id.
func (r *Registry) Services(ctx context.Context) ([]domain.ServiceRecord, error) {
	records, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return records, nil
}

func requireIdentity(serviceID, url string) error {
	if serviceID == "" {
		return NewBadParameterError("serviceId is required", nil)
	}
	if url == "" {
		return NewBadParameterError("myUrl is required", nil)
	}
	return nil
}
