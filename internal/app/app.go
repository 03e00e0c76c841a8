package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shortlink/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// App представляет HTTP сервис коротких ссылок
type App struct {
	config *config.Config
	logger *zap.Logger
	router http.Handler
	deps   *dependencies
}

// New создает новый экземпляр приложения из окружения и флагов
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app, err := newApp(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return app, nil
}

func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		router: newRouter(deps, logger, cfg),
		deps:   deps,
	}, nil
}

// NewLogger создаёт production логгер с уровнем из конфигурации
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.deps != nil {
		a.deps.closeAll(a.logger)
	}
}

// Run запускает приложение и блокируется до SIGINT или SIGTERM
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = app.logger.Sync() }()
	defer app.Close()

	return app.serve(ctx)
}
