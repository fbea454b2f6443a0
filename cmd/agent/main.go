package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"myregistry/adapters"
	"myregistry/interfaces"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting registry agent")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_id", config.ServiceID,
		"my_url", config.MyURL,
		"registries", len(config.Registries),
		"heartbeat_interval", config.HeartbeatInterval,
		"auto_reregister", config.AutoReregister,
	)

	httpClient := &http.Client{Timeout: config.RequestTimeout}
	clients := make([]interfaces.RegistryClient, 0, len(config.Registries))
	for _, registryURL := range config.Registries {
		clients = append(clients, adapters.RegistryHTTP(registryURL, httpClient))
	}

	clock := service.NewUTCTimeProvider()
	sender := service.NewHeartbeatSender(service.HeartbeatSenderConfig{
		ServiceID:        config.ServiceID,
		URL:              config.MyURL,
		Interval:         config.HeartbeatInterval,
		AutoReregister:   config.AutoReregister,
		DeregisterOnStop: config.DeregisterOnStop,
		OnReregister: func(endpoint string) {
			level.Warn(logger).Log("msg", "Registry forgot this service", "endpoint", endpoint, "auto_reregister", config.AutoReregister)
		},
	}, clients, clock, logger)

	// Register synchronously and report every endpoint
	registerCtx, registerCancel := context.WithTimeout(context.Background(), config.RequestTimeout)
	if err := sender.RegisterAll(registerCtx); err != nil {
		level.Warn(logger).Log("msg", "Registration failed on some registries", "err", err)
	}
	registerCancel()
	registered := 0
	for endpoint, state := range sender.States() {
		level.Info(logger).Log("msg", "Registration result", "endpoint", endpoint, "state", state)
		if state == service.EndpointRegistered {
			registered++
		}
	}
	if registered == 0 && !config.AutoReregister {
		level.Error(logger).Log("msg", "No registry accepted the registration")
		os.Exit(1)
	}

	if err := sender.Start(context.Background()); err != nil {
		level.Error(logger).Log("msg", "Failed to start heartbeat sender", "err", err)
		os.Exit(1)
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	level.Info(logger).Log("msg", "Shutting down agent...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.RequestTimeout)
	defer shutdownCancel()
	if err := sender.Stop(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during agent shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Agent stopped")
}
