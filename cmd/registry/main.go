package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myregistry/adapters/memstore"
	"myregistry/api"
	"myregistry/handlers"
	"myregistry/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting registry service")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"service_port_grpc", config.GRPCPort,
		"store_backend", config.StoreBackend,
		"heartbeat_interval", config.HeartbeatInterval,
		"liveness_timeout", config.LivenessTimeout,
		"sweep_interval", config.SweepInterval,
	)

	clock := service.NewUTCTimeProvider()

	store, closeStore, err := newStore(context.Background(), config, clock, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create registry store", "err", err)
		os.Exit(1)
	}

	registry := service.NewRegistry(store, logger)
	monitor := service.NewLivenessMonitor(store, clock, logger, config.LivenessTimeout, config.SweepInterval)

	// Create HTTPServer
	var httpServer handlers.ServerInterface
	{
		httpServer = handlers.NewHTTPServer(registry, memstore.NewJournal(memstore.DefaultJournalCapacity), clock, logger)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		doc, err := api.LoadRegistrySpec()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI spec", "err", err)
			os.Exit(1)
		}
		validator, err := handlers.NewOpenAPIValidator(doc)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create OpenAPI validator", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		e.HidePort = true
		e.Use(validator)
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, httpServer)
	}

	// Optional gRPC health endpoint
	var grpcHealthServer *grpcHealth
	if config.GRPCPort != 0 {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", config.GRPCPort))
		if err != nil {
			level.Error(logger).Log("msg", "Failed to listen", "err", err)
			os.Exit(1)
		}
		grpcHealthServer = newGRPCHealth()
		go func() {
			level.Info(logger).Log("msg", "Starting gRPC health server", "addr", lis.Addr())
			if err := grpcHealthServer.Serve(lis); err != nil {
				level.Error(logger).Log("msg", "gRPC server error", "err", err)
			}
		}()
	}

	if err := monitor.Start(context.Background()); err != nil {
		level.Error(logger).Log("msg", "Failed to start liveness monitor", "err", err)
		os.Exit(1)
	}

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Wait for interrupt signal
	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")
	if grpcHealthServer != nil {
		grpcHealthServer.MarkNotServing()
	}

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	if err := monitor.Stop(); err != nil {
		level.Error(logger).Log("msg", "Error stopping liveness monitor", "err", err)
	}
	if grpcHealthServer != nil {
		grpcHealthServer.Stop()
	}
	if err := closeStore(); err != nil {
		level.Error(logger).Log("msg", "Error closing registry store", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}
