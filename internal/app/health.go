package app

import (
	"context"
	"time"

	"github.com/avc-dev/shortlink/internal/config/db"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// healthServiceName имя сервиса в gRPC health; пустое имя означает сервер целиком
const healthServiceName = "shortlink.Shortener"

const (
	healthCheckInterval = 10 * time.Second
	healthPingTimeout   = 2 * time.Second
)

// healthReporter публикует доступность хранилища через gRPC health.
// Без базы данных сервис всегда SERVING.
type healthReporter struct {
	server   *health.Server
	database db.Database
	interval time.Duration
	logger   *zap.Logger
}

func newHealthReporter(database db.Database, logger *zap.Logger) *healthReporter {
	return &healthReporter{
		server:   health.NewServer(),
		database: database,
		interval: healthCheckInterval,
		logger:   logger,
	}
}

// register подключает health сервис к gRPC серверу
func (r *healthReporter) register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, r.server)
}

func (r *healthReporter) check(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING

	if r.database != nil {
		pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
		err := r.database.Ping(pingCtx)
		cancel()

		if err != nil {
			r.logger.Warn("Database health check failed", zap.Error(err))
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}

	r.server.SetServingStatus("", status)
	r.server.SetServingStatus(healthServiceName, status)
}

// run обновляет статус с интервалом до отмены ctx
func (r *healthReporter) run(ctx context.Context) error {
	r.check(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.check(ctx)
		}
	}
}

// shutdown переводит все сервисы в NOT_SERVING и игнорирует дальнейшие обновления
func (r *healthReporter) shutdown() {
	r.server.Shutdown()
}
