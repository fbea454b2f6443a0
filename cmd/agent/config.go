package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envEnvFile    = "ENV_FILE"
	envConfigPath = "CONFIG_PATH"
)

// AgentConfig holds the agent configuration loaded by LoadConfig.
type AgentConfig struct {
	ServiceID         string
	MyURL             string
	Registries        []string
	HeartbeatInterval time.Duration
	RequestTimeout    time.Duration
	AutoReregister    bool
	DeregisterOnStop  bool
}

// yamlConfig is the root struct for YAML unmarshalling. Pointers distinguish "absent" from zero.
type yamlConfig struct {
	ServiceID           string   `yaml:"service_id"`
	MyURL               string   `yaml:"my_url"`
	Registries          []string `yaml:"registries"`
	HeartbeatIntervalMs *int     `yaml:"heartbeat_interval_ms"`
	RequestTimeoutMs    *int     `yaml:"request_timeout_ms"`
	AutoReregister      *bool    `yaml:"auto_reregister"`
	DeregisterOnStop    *bool    `yaml:"deregister_on_stop"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the agent config from the YAML file at CONFIG_PATH (required), after loading ENV_FILE when set.
// my_url and at least one registry are required; every URL must be absolute http(s).
// An empty service_id gets a random UUID.
func LoadConfig() (*AgentConfig, error) {
	if envFile := strings.TrimSpace(os.Getenv(envEnvFile)); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s %s: %w", envEnvFile, envFile, err)
		}
	}

	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	myURL := strings.TrimSpace(raw.MyURL)
	if myURL == "" {
		return nil, fmt.Errorf("my_url is required")
	}
	if err := checkHTTPURL(myURL); err != nil {
		return nil, fmt.Errorf("my_url: %w", err)
	}

	if len(raw.Registries) == 0 {
		return nil, fmt.Errorf("registries must list at least one registry URL")
	}
	registries := make([]string, 0, len(raw.Registries))
	seen := make(map[string]bool, len(raw.Registries))
	for i, r := range raw.Registries {
		r = strings.TrimRight(strings.TrimSpace(r), "/")
		if err := checkHTTPURL(r); err != nil {
			return nil, fmt.Errorf("registries[%d]: %w", i, err)
		}
		if seen[r] {
			return nil, fmt.Errorf("registries[%d]: duplicate registry %s", i, r)
		}
		seen[r] = true
		registries = append(registries, r)
	}

	serviceID := strings.TrimSpace(raw.ServiceID)
	if serviceID == "" {
		serviceID = uuid.NewString()
	}

	interval, err := positiveMs("heartbeat_interval_ms", raw.HeartbeatIntervalMs, 30*time.Second)
	if err != nil {
		return nil, err
	}
	timeout, err := positiveMs("request_timeout_ms", raw.RequestTimeoutMs, 10*time.Second)
	if err != nil {
		return nil, err
	}

	return &AgentConfig{
		ServiceID:         serviceID,
		MyURL:             myURL,
		Registries:        registries,
		HeartbeatInterval: interval,
		RequestTimeout:    timeout,
		AutoReregister:    boolOr(raw.AutoReregister, false),
		DeregisterOnStop:  boolOr(raw.DeregisterOnStop, true),
	}, nil
}

func checkHTTPURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q must be an absolute http(s) URL", s)
	}
	return nil
}

func positiveMs(name string, v *int, def time.Duration) (time.Duration, error) {
	if v == nil {
		return def, nil
	}
	if *v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", name, *v)
	}
	return time.Duration(*v) * time.Millisecond, nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
