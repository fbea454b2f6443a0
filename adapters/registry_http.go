package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"myregistry/domain"
	"myregistry/helpers"
	"myregistry/interfaces"
)

// ReregisterMarker is the heartbeat response body that tells the caller to register again.
const ReregisterMarker = "Reregister"

// maxResponseBody caps how much of a registry response is read.
const maxResponseBody = 64 << 10

// RegistryHTTP creates an interfaces.RegistryClient that talks to a registry over HTTP: POST baseURL/register,
// POST baseURL/deregister and POST baseURL/heartbeat with JSON bodies. Panics on empty baseURL or nil client.
//
// Parameters: baseURL is the registry base URL (e.g. http://registry:8080), trailing slash trimmed. client is the HTTP client
// (timeout recommended; cmd/agent uses request_timeout_ms).
//
// Returns: interfaces.RegistryClient (*registryHTTP).
//
// Called from cmd/agent for each configured registry and from the scenario runner.
func RegistryHTTP(baseURL string, client *http.Client) interfaces.RegistryClient {
	return &registryHTTP{
		baseURL: strings.TrimRight(helpers.StrPanic(baseURL, "adapters.registry_http.go: baseURL is required"), "/"),
		client:  helpers.NilPanic(client, "adapters.registry_http.go: http client is required"),
	}
}

// registryHTTP implements interfaces.RegistryClient.
type registryHTTP struct {
	baseURL string
	client  *http.Client
}

// registrationRequest is the JSON body of /register and /deregister.
type registrationRequest struct {
	ServiceID string `json:"serviceId"`
	MyURL     string `json:"myUrl"`
}

// heartbeatRequest is the JSON body of /heartbeat.
type heartbeatRequest struct {
	ServiceID string `json:"serviceId"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	MyURL     string `json:"myUrl"`
}

// errorEnvelope is the registry's JSON error body: {"error":{"code","message"}}.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (r *registryHTTP) Endpoint() string {
	return r.baseURL
}

func (r *registryHTTP) Register(ctx context.Context, serviceID, url string) error {
	_, err := r.post(ctx, "/register", registrationRequest{ServiceID: serviceID, MyURL: url})
	return err
}

func (r *registryHTTP) Deregister(ctx context.Context, serviceID, url string) error {
	_, err := r.post(ctx, "/deregister", registrationRequest{ServiceID: serviceID, MyURL: url})
	return err
}

// Heartbeat posts one heartbeat. A 200 whose trimmed body equals ReregisterMarker maps to ReregisterRequired;
// any other 200 body (empty or "OK") is Acknowledged.
func (r *registryHTTP) Heartbeat(ctx context.Context, hb domain.Heartbeat) (domain.HeartbeatResult, error) {
	status := hb.Status
	if status == "" {
		status = domain.StatusHealthy
	}
	body, err := r.post(ctx, "/heartbeat", heartbeatRequest{
		ServiceID: hb.ServiceID,
		Status:    string(status),
		Timestamp: hb.Timestamp.UTC().Format(domain.HeartbeatTimeLayout),
		MyURL:     hb.URL,
	})
	if err != nil {
		return domain.Acknowledged, err
	}
	if strings.TrimSpace(string(body)) == ReregisterMarker {
		return domain.ReregisterRequired, nil
	}
	return domain.Acknowledged, nil
}

// post sends payload as JSON and returns the response body on 200. Non-200 responses become errors carrying
// the status code and, when present, the registry's error message.
func (r *registryHTTP) post(ctx context.Context, path string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("can't marshal %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		var env errorEnvelope
		if json.Unmarshal(body, &env) == nil && env.Error.Message != "" {
			return nil, fmt.Errorf("registry %s returned %d: %s", path, resp.StatusCode, env.Error.Message)
		}
		return nil, fmt.Errorf("registry %s returned %d", path, resp.StatusCode)
	}
	return body, nil
}
