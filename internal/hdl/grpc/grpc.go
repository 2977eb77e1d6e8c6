package grpc

import (
	"fmt"
	"net"

	metrics "github.com/JMURv/gate-access/internal/observability/metrics/prometheus"
	pm "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Handler exposes the stock health service for orchestrator probes; the
// device-facing API itself is HTTP only.
type Handler struct {
	srv  *grpc.Server
	hsrv *health.Server
	name string
}

func New(name string) *Handler {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			metrics.SrvMetrics.UnaryServerInterceptor(
				pm.WithExemplarFromContext(metrics.Exemplar),
			),
		),
		grpc.ChainStreamInterceptor(
			metrics.SrvMetrics.StreamServerInterceptor(
				pm.WithExemplarFromContext(metrics.Exemplar),
			),
		),
	)

	reflection.Register(srv)

	hsrv := health.NewServer()
	hsrv.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	return &Handler{
		srv:  srv,
		hsrv: hsrv,
		name: name,
	}
}

func (h *Handler) Start(port int) {
	grpc_health_v1.RegisterHealthServer(h.srv, h.hsrv)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%v", port))
	if err != nil {
		zap.L().Fatal("Failed to listen", zap.Error(err))
	}

	zap.L().Info("Starting gRPC health server", zap.String("addr", lis.Addr().String()))
	if err = h.srv.Serve(lis); err != nil {
		zap.L().Error("gRPC server error", zap.Error(err))
	}
}

func (h *Handler) Close() error {
	h.hsrv.SetServingStatus(h.name, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	h.srv.GracefulStop()
	return nil
}
