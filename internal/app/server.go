package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const readHeaderTimeout = 5 * time.Second

// serve запускает HTTP сервер и, если задан адрес, gRPC health endpoint.
// Оба останавливаются при отмене ctx.
func (a *App) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.config.ServerAddress.String(),
		Handler:           a.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	var grpcListener net.Listener
	if a.config.GRPCAddress != "" {
		listener, err := net.Listen("tcp", a.config.GRPCAddress)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", a.config.GRPCAddress, err)
		}
		grpcListener = listener
	}

	g, gctx := errgroup.WithContext(ctx)

	if grpcListener != nil {
		a.serveGRPC(gctx, g, grpcListener)
	}

	g.Go(func() error {
		a.logger.Info("Starting server", zap.String("address", srv.Addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		a.logger.Info("Shutting down server", zap.Duration("timeout", a.config.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// serveGRPC обслуживает gRPC health на listener до отмены ctx
func (a *App) serveGRPC(ctx context.Context, g *errgroup.Group, listener net.Listener) {
	grpcServer := grpc.NewServer()
	reporter := newHealthReporter(a.deps.database, a.logger)
	reporter.register(grpcServer)

	g.Go(func() error {
		return reporter.run(ctx)
	})

	g.Go(func() error {
		a.logger.Info("Starting gRPC health endpoint", zap.String("address", listener.Addr().String()))

		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		reporter.shutdown()
		grpcServer.GracefulStop()
		return nil
	})
}
