package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// EndpointState is the sender's view of its registration at one registry endpoint.
type EndpointState int

const (
	// EndpointUnregistered means no heartbeats are sent until the service registers again.
	EndpointUnregistered EndpointState = iota
	// EndpointRegistered means heartbeats are sent every interval.
	EndpointRegistered
)

func (s EndpointState) String() string {
	switch s {
	case EndpointUnregistered:
		return "unregistered"
	case EndpointRegistered:
		return "registered"
	default:
		return "unknown"
	}
}

// HeartbeatSenderConfig configures a HeartbeatSender.
type HeartbeatSenderConfig struct {
	// ServiceID and URL identify this service at every registry.
	ServiceID string
	URL       string
	// Interval between heartbeats. Zero means DefaultHeartbeatInterval.
	Interval time.Duration
	// AutoReregister makes the sender register again on the tick after a registry asked for it.
	AutoReregister bool
	// DeregisterOnStop sends a final deregister to every endpoint from Stop.
	DeregisterOnStop bool
	// OnReregister is called with the endpoint that answered ReregisterRequired. It runs on the
	// endpoint's loop goroutine and must not block.
	OnReregister func(endpoint string)
}

// HeartbeatSender keeps a service alive at one or more registries. Each endpoint has its own loop and
// state; a slow or failing registry never delays heartbeats to the others.
type HeartbeatSender struct {
	cfg     HeartbeatSenderConfig
	clients []interfaces.RegistryClient
	clock   interfaces.TimeProvider
	logger  log.Logger

	mu     sync.RWMutex
	states map[string]EndpointState

	running atomic.Bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewHeartbeatSender creates a sender for cfg.ServiceID talking to clients. All endpoints start unregistered.
// Panics on empty ServiceID or URL, no clients, nil clock or nil logger.
func NewHeartbeatSender(cfg HeartbeatSenderConfig, clients []interfaces.RegistryClient, clock interfaces.TimeProvider, logger log.Logger) *HeartbeatSender {
	helpers.StrPanic(cfg.ServiceID, "service.heartbeat_sender.go: service id is required")
	helpers.StrPanic(cfg.URL, "service.heartbeat_sender.go: url is required")
	if len(clients) == 0 {
		panic("service.heartbeat_sender.go: at least one registry client is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultHeartbeatInterval
	}

	states := make(map[string]EndpointState, len(clients))
	for _, c := range clients {
		states[helpers.NilPanic(c, "service.heartbeat_sender.go: registry client is nil").Endpoint()] = EndpointUnregistered
	}
	return &HeartbeatSender{
		cfg:     cfg,
		clients: clients,
		clock:   helpers.NilPanic(clock, "service.heartbeat_sender.go: clock is required"),
		logger: log.WithPrefix(helpers.NilPanic(logger, "service.heartbeat_sender.go: logger is required"),
			"component", "HeartbeatSender", "service_id", cfg.ServiceID),
		states: states,
	}
}

// RegisterAll registers with every endpoint concurrently. Endpoints that accept become Registered.
// The returned error joins one error per failed endpoint.
func (s *HeartbeatSender) RegisterAll(ctx context.Context) error {
	errs := make([]error, len(s.clients))
	var wg sync.WaitGroup
	for i, c := range s.clients {
		wg.Add(1)
		go func(i int, c interfaces.RegistryClient) {
			defer wg.Done()
			errs[i] = s.register(ctx, c)
		}(i, c)
	}
	wg.Wait()
	return errors.Join(errs...)
}

// MarkRegistered records that registration at endpoint was done by someone else.
// Unknown endpoints are ignored.
func (s *HeartbeatSender) MarkRegistered(endpoint string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.states[endpoint]; ok {
		s.states[endpoint] = EndpointRegistered
	}
}

// States returns a snapshot of endpoint -> state.
func (s *HeartbeatSender) States() map[string]EndpointState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]EndpointState, len(s.states))
	for k, v := range s.states {
		out[k] = v
	}
	return out
}

// Start launches one heartbeat loop per endpoint and returns immediately. The first heartbeat is sent at once.
// The loops end when ctx is cancelled or Stop is called.
func (s *HeartbeatSender) Start(ctx context.Context) error {
	if s.running.Swap(true) {
		return ErrAlreadyStarted
	}
	if ctx == nil {
		ctx = context.Background()
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	for _, c := range s.clients {
		s.wg.Add(1)
		go s.run(loopCtx, c)
	}
	level.Info(s.logger).Log("msg", "heartbeat sender started", "endpoints", len(s.clients), "interval", s.cfg.Interval)
	return nil
}

// Stop cancels the loops, waits for them and, with DeregisterOnStop, deregisters from every endpoint using ctx.
func (s *HeartbeatSender) Stop(ctx context.Context) error {
	if !s.running.Swap(false) {
		return ErrNotStarted
	}
	s.cancel()
	s.wg.Wait()
	level.Info(s.logger).Log("msg", "heartbeat sender stopped")

	if !s.cfg.DeregisterOnStop {
		return nil
	}
	var errs []error
	for _, c := range s.clients {
		if err := c.Deregister(ctx, s.cfg.ServiceID, s.cfg.URL); err != nil {
			level.Warn(s.logger).Log("msg", "deregister failed", "endpoint", c.Endpoint(), "err", err)
			errs = append(errs, fmt.Errorf("deregister at %s: %w", c.Endpoint(), err))
			continue
		}
		s.setState(c.Endpoint(), EndpointUnregistered)
		level.Info(s.logger).Log("msg", "deregistered", "endpoint", c.Endpoint())
	}
	return errors.Join(errs...)
}

func (s *HeartbeatSender) run(ctx context.Context, c interfaces.RegistryClient) {
	defer s.wg.Done()

	s.tick(ctx, c)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, c)
		}
	}
}

// tick does one unit of work for endpoint c: a heartbeat when registered, or a registration attempt
// when unregistered and AutoReregister is on.
func (s *HeartbeatSender) tick(ctx context.Context, c interfaces.RegistryClient) {
	endpoint := c.Endpoint()
	if s.state(endpoint) == EndpointUnregistered {
		if s.cfg.AutoReregister {
			_ = s.register(ctx, c)
		}
		return
	}

	res, err := c.Heartbeat(ctx, domain.Heartbeat{
		ServiceID: s.cfg.ServiceID,
		Status:    domain.StatusHealthy,
		Timestamp: s.clock.Now().UTC(),
		URL:       s.cfg.URL,
	})
	if err != nil {
		if ctx.Err() == nil {
			level.Warn(s.logger).Log("msg", "heartbeat failed", "endpoint", endpoint, "err", err)
		}
		return
	}
	if res == domain.ReregisterRequired {
		s.setState(endpoint, EndpointUnregistered)
		level.Warn(s.logger).Log("msg", "registry asked to re-register", "endpoint", endpoint, "auto_reregister", s.cfg.AutoReregister)
		if s.cfg.OnReregister != nil {
			s.cfg.OnReregister(endpoint)
		}
		return
	}
	level.Debug(s.logger).Log("msg", "heartbeat acknowledged", "endpoint", endpoint)
}

func (s *HeartbeatSender) register(ctx context.Context, c interfaces.RegistryClient) error {
	endpoint := c.Endpoint()
	if err := c.Register(ctx, s.cfg.ServiceID, s.cfg.URL); err != nil {
		if ctx.Err() == nil {
			level.Warn(s.logger).Log("msg", "register failed", "endpoint", endpoint, "err", err)
		}
		return fmt.Errorf("register at %s: %w", endpoint, err)
	}
	s.setState(endpoint, EndpointRegistered)
	level.Info(s.logger).Log("msg", "registered", "endpoint", endpoint, "url", s.cfg.URL)
	return nil
}

func (s *HeartbeatSender) state(endpoint string) EndpointState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[endpoint]
}

func (s *HeartbeatSender) setState(endpoint string, st EndpointState) {
	s.mu.Lock()
	s.states[endpoint] = st
	s.mu.Unlock()
}
