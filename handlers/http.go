// Package handlers contains http handlers for myregistry.
//
//go:generate oapi-codegen -config openapi.config.yaml ../api/registry.openapi.yaml
package handlers

import (
	"fmt"
	"net/http"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// Heartbeat response bodies.
const (
	heartbeatAcknowledged = "OK"
	heartbeatReregister   = "Reregister"
)

// HTTPServer implements ServerInterface generated from OpenAPI spec.
type HTTPServer struct {
	registry *service.Registry
	journal  interfaces.Journal
	clock    interfaces.TimeProvider
	logger   log.Logger
}

var _ ServerInterface = (*HTTPServer)(nil)

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(registry *service.Registry, journal interfaces.Journal, clock interfaces.TimeProvider, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		registry: helpers.NilPanic(registry, "handlers.http.go: registry is required"),
		journal:  helpers.NilPanic(journal, "handlers.http.go: journal is required"),
		clock:    helpers.NilPanic(clock, "handlers.http.go: clock is required"),
		logger:   logger,
	}
}

// RegisterService (POST /register) inserts or replaces the caller's record. Returns 200 with an empty body.
func (h *HTTPServer) RegisterService(ectx echo.Context) error {
	var req RegistrationRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	serviceID, url, err := fromRegistrationRequest(req)
	if err != nil {
		return err
	}

	if err := h.registry.Register(ectx.Request().Context(), serviceID, url); err != nil {
		return fmt.Errorf("registerService failed, err: %w", err)
	}
	return ectx.NoContent(http.StatusOK)
}

// DeregisterService (POST /deregister) removes the caller's record. Unknown ids also get 200.
func (h *HTTPServer) DeregisterService(ectx echo.Context) error {
	var req RegistrationRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	// Presence only: the url is not checked for URL syntax here.
	if req.ServiceId == "" || req.MyUrl == "" {
		return service.NewBadParameterError("serviceId and myUrl are required", nil)
	}

	if err := h.registry.Deregister(ectx.Request().Context(), req.ServiceId, req.MyUrl); err != nil {
		return fmt.Errorf("deregisterService failed, err: %w", err)
	}
	return ectx.NoContent(http.StatusOK)
}

// Heartbeat (POST /heartbeat) answers "OK" or "Reregister" as text/plain.
func (h *HTTPServer) Heartbeat(ectx echo.Context) error {
	var req HeartbeatRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	hb, err := fromHeartbeatRequest(req)
	if err != nil {
		return err
	}

	res, err := h.registry.Heartbeat(ectx.Request().Context(), hb)
	if err != nil {
		return fmt.Errorf("heartbeat failed, err: %w", err)
	}
	if res == domain.ReregisterRequired {
		return ectx.String(http.StatusOK, heartbeatReregister)
	}
	return ectx.String(http.StatusOK, heartbeatAcknowledged)
}

// ListServices (GET /services) returns every registered service.
func (h *HTTPServer) ListServices(ectx echo.Context) error {
	records, err := h.registry.Services(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("listServices failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toServicesResponse(records))
}

// LogJourney (POST /journeys) records one journey. Returns 201 with an empty body.
func (h *HTTPServer) LogJourney(ectx echo.Context) error {
	var req JourneyRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}
	journey, err := fromJourneyRequest(req, h.clock.Now().UTC())
	if err != nil {
		return err
	}

	if err := h.journal.Append(ectx.Request().Context(), journey); err != nil {
		return fmt.Errorf("logJourney failed to append journey, err: %w", err)
	}
	return ectx.NoContent(http.StatusCreated)
}

// ListJourneys (GET /journeys) returns recorded journeys, oldest first.
func (h *HTTPServer) ListJourneys(ectx echo.Context) error {
	journeys, err := h.journal.List(ectx.Request().Context())
	if err != nil {
		return fmt.Errorf("listJourneys failed, err: %w", err)
	}
	return ectx.JSON(http.StatusOK, toJourneysResponse(journeys))
}

// Healthz (GET /healthz) reports that the process is serving.
func (h *HTTPServer) Healthz(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
