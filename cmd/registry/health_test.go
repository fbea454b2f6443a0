package main

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/proto"
)

func startGRPCHealth(t *testing.T) (*grpcHealth, grpc_health_v1.HealthClient) {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	hs := newGRPCHealth()
	go func() { _ = hs.Serve(lis) }()
	t.Cleanup(hs.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return hs, grpc_health_v1.NewHealthClient(conn)
}

func TestGRPCHealth_ServingUntilShutdown(t *testing.T) {
	hs, client := startGRPCHealth(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	check := func() *grpc_health_v1.HealthCheckResponse {
		resp, err := client.Check(ctx, &grpc_health_v1.HealthCheckRequest{})
		require.NoError(t, err)
		return resp
	}

	want := &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVING}
	assert.True(t, proto.Equal(want, check()), "want SERVING")

	hs.MarkNotServing()
	want = &grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_NOT_SERVING}
	assert.True(t, proto.Equal(want, check()), "want NOT_SERVING after MarkNotServing")
}

func TestGRPCHealth_RegistersReflection(t *testing.T) {
	hs := newGRPCHealth()
	services := hs.server.GetServiceInfo()
	assert.Contains(t, services, "grpc.health.v1.Health")
	assert.Contains(t, services, "grpc.reflection.v1.ServerReflection")
}
