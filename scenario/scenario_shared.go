package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"myregistry/adapters"
	"myregistry/domain"
	"myregistry/handlers"
	"myregistry/interfaces"

	"github.com/google/uuid"
)

const (
	serviceIDPrefix = "scenario-svc"
	serviceURL      = "http://scenario-host:8000"
	requestTimeout  = 10 * time.Second
)

var httpClient = &http.Client{Timeout: requestTimeout}

// newServiceID returns a service id unique to this run so scenarios never collide on a shared registry.
func newServiceID() string {
	return serviceIDPrefix + "-" + uuid.NewString()
}

// CreateRegistryClient creates a registry client for cfg.RegistryURL.
func CreateRegistryClient(cfg *Config) interfaces.RegistryClient {
	return adapters.RegistryHTTP(cfg.RegistryURL, httpClient)
}

// ListServices fetches GET /services.
func ListServices(ctx context.Context, cfg *Config) ([]handlers.ServiceInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(cfg.RegistryURL, "/")+"/services", nil)
	if err != nil {
		return nil, err
	}
	var out handlers.ServicesResponse
	if err := doJSON(req, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out.Services, nil
}

// FindService returns the listed entry for serviceID, or ok=false.
func FindService(ctx context.Context, cfg *Config, serviceID string) (handlers.ServiceInfo, bool, error) {
	services, err := ListServices(ctx, cfg)
	if err != nil {
		return handlers.ServiceInfo{}, false, err
	}
	for _, s := range services {
		if s.ServiceId == serviceID {
			return s, true, nil
		}
	}
	return handlers.ServiceInfo{}, false, nil
}

// ExpectListed fails unless serviceID is listed with url.
func ExpectListed(ctx context.Context, cfg *Config, serviceID, url string) (handlers.ServiceInfo, error) {
	info, ok, err := FindService(ctx, cfg, serviceID)
	if err != nil {
		return info, err
	}
	if !ok {
		return info, fmt.Errorf("service %s is not listed", serviceID)
	}
	if info.MyUrl != url {
		return info, fmt.Errorf("service %s: myUrl=%q, want %q", serviceID, info.MyUrl, url)
	}
	return info, nil
}

// ExpectNotListed fails if serviceID is listed.
func ExpectNotListed(ctx context.Context, cfg *Config, serviceID string) error {
	_, ok, err := FindService(ctx, cfg, serviceID)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("service %s is still listed", serviceID)
	}
	return nil
}

// WaitUntil polls cond every cfg.PollInterval until it returns true, it errors, or ctx ends.
func WaitUntil(ctx context.Context, cfg *Config, what string, cond func(ctx context.Context) (bool, error)) error {
	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()
	for {
		done, err := cond(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s: %w", what, ctx.Err())
		case <-ticker.C:
		}
	}
}

// SendHeartbeat sends one heartbeat and checks the result.
func SendHeartbeat(ctx context.Context, client interfaces.RegistryClient, serviceID, url string, want domain.HeartbeatResult) error {
	got, err := client.Heartbeat(ctx, domain.Heartbeat{
		ServiceID: serviceID,
		Status:    domain.StatusHealthy,
		Timestamp: time.Now().UTC(),
		URL:       url,
	})
	if err != nil {
		return fmt.Errorf("heartbeat request failed: %w", err)
	}
	if got != want {
		return fmt.Errorf("heartbeat: result=%s, want %s", got, want)
	}
	return nil
}

// PostJourney sends POST /journeys.
func PostJourney(ctx context.Context, cfg *Config, journey handlers.JourneyRequest) error {
	body, err := json.Marshal(journey)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(cfg.RegistryURL, "/")+"/journeys", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if err := doJSON(req, http.StatusCreated, nil); err != nil {
		return fmt.Errorf("log journey: %w", err)
	}
	return nil
}

// ListJourneys fetches GET /journeys.
func ListJourneys(ctx context.Context, cfg *Config) ([]handlers.JourneyInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(cfg.RegistryURL, "/")+"/journeys", nil)
	if err != nil {
		return nil, err
	}
	var out handlers.JourneysResponse
	if err := doJSON(req, http.StatusOK, &out); err != nil {
		return nil, fmt.Errorf("list journeys: %w", err)
	}
	return out.Journeys, nil
}

func doJSON(req *http.Request, wantStatus int, out any) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantStatus {
		var e handlers.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Error.Code != "" {
			return fmt.Errorf("status %d, want %d: %s: %s", resp.StatusCode, wantStatus, e.Error.Code, e.Error.Message)
		}
		return fmt.Errorf("status %d, want %d", resp.StatusCode, wantStatus)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
