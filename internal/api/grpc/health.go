package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"autorental-backend/internal/api/grpc/interceptor"
	"autorental-backend/internal/logger"
)

// ServiceName is the health service name reported for the rental API.
const ServiceName = "autorental.v1.RentalAPI"

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthServer answers grpc.health.v1 checks. Every Check pings the
// database, so the answer reflects the store at call time.
type HealthServer struct {
	*health.Server
	db      Pinger
	timeout time.Duration
}

func NewHealthServer(db Pinger) *HealthServer {
	return &HealthServer{Server: health.NewServer(), db: db, timeout: 2 * time.Second}
}

func (h *HealthServer) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	st := healthpb.HealthCheckResponse_SERVING
	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("Health check failed", "error", err)
		st = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.SetServingStatus("", st)
	h.SetServingStatus(ServiceName, st)
	return h.Server.Check(ctx, req)
}

// NewServer builds the gRPC server carrying the health and reflection services.
func NewServer(hs *HealthServer) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(interceptor.Logging()))
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)
	return s
}

// Serve blocks serving on lis until the server stops.
func Serve(s *grpc.Server, lis net.Listener) error {
	logger.Info("gRPC health server listening", "address", lis.Addr().String())
	return s.Serve(lis)
}
