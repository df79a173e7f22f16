package grpc

import (
	"context"
	"net"
	"testing"

	"github.com/MKhiriev/coffee-shop/internal/logger"
	"github.com/MKhiriev/coffee-shop/internal/service"
	"github.com/MKhiriev/coffee-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "v1.0.0" }

func (stubAppInfo) GetBuildInfo(context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo("v1.0.0", "", "")
}

// startServer serves h over an in-memory listener and returns a connected
// health client.
func startServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryInterceptor))
	h.Register(server)

	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestNewHandler_InitialStatuses(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startServer(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, DrinksServiceName))
}

func TestHandler_StatusUpdates(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := startServer(t, h)

	h.HealthServer().SetServingStatus(DrinksServiceName, healthpb.HealthCheckResponse_SERVING)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, DrinksServiceName))

	h.Shutdown()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, DrinksServiceName))
}

func TestHandler_UnknownService(t *testing.T) {
	client := startServer(t, NewHandler(nil, logger.Nop()))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "coffeeshop.Unknown"})

	require.Error(t, err)
}

func TestHandler_VersionHeader(t *testing.T) {
	h := NewHandler(&service.Services{AppInfoService: stubAppInfo{}}, logger.Nop())
	client := startServer(t, h)

	var header metadata.MD
	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{}, grpc.Header(&header))

	require.NoError(t, err)
	assert.Equal(t, []string{"v1.0.0"}, header.Get(versionHeader))
}

func TestHandler_ServiceNames(t *testing.T) {
	h := NewHandler(nil, logger.Nop())

	assert.Equal(t, []string{"", DrinksServiceName}, h.ServiceNames())
}
