package server

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service key reporting chat listener readiness.
// The empty service name reports the process itself.
const ServiceName = "care.chat.v1.ChatServer"

const defaultProbeInterval = time.Second

// ReadinessProbe reports whether the chat listener currently accepts connections.
type ReadinessProbe func() bool

// HealthServer exposes the standard gRPC health protocol for orchestrators.
type HealthServer struct {
	log           *slog.Logger
	port          int
	probe         ReadinessProbe
	probeInterval time.Duration
	health        *health.Server
}

func NewHealthServer(log *slog.Logger, port int, probe ReadinessProbe) *HealthServer {
	return &HealthServer{
		log:           log,
		port:          port,
		probe:         probe,
		probeInterval: defaultProbeInterval,
		health:        health.NewServer(),
	}
}

// WithProbeInterval changes how often readiness is re-evaluated.
func (s *HealthServer) WithProbeInterval(interval time.Duration) *HealthServer {
	s.probeInterval = interval
	return s
}

// Run listens on the configured port and serves until ctx is done.
func (s *HealthServer) Run(ctx context.Context) error {
	address := fmt.Sprintf("0.0.0.0:%d", s.port)
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	return s.Serve(ctx, lis)
}

// Serve is Run on an already open listener.
func (s *HealthServer) Serve(ctx context.Context, lis net.Listener) error {
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(s.log)))
	healthpb.RegisterHealthServer(grpcServer, s.health)
	s.refresh()

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting health server", "address", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil && !goerrors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("health server error: %w", err)
		}
	}()

	ticker := time.NewTicker(s.probeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.health.Shutdown()
			grpcServer.GracefulStop()
			s.log.Info("Health server stopped")
			return nil
		case err := <-errChan:
			// Release connections still held by this instance.
			grpcServer.Stop()
			s.log.Error("Health server failed", "error", err)
			return err
		case <-ticker.C:
			s.refresh()
		}
	}
}

func (s *HealthServer) refresh() {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if s.probe() {
		status = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, status)
}
