package main

import (
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// grpcHealth serves grpc.health.v1.Health for orchestrators that probe over gRPC.
type grpcHealth struct {
	server *grpc.Server
	health *health.Server
}

func newGRPCHealth() *grpcHealth {
	server := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(server, healthServer)
	reflection.Register(server)
	return &grpcHealth{server: server, health: healthServer}
}

func (g *grpcHealth) Serve(lis net.Listener) error {
	return g.server.Serve(lis)
}

// MarkNotServing flips every service to NOT_SERVING; called when shutdown begins.
func (g *grpcHealth) MarkNotServing() {
	g.health.Shutdown()
}

func (g *grpcHealth) Stop() {
	g.server.GracefulStop()
}
