package app

import (
	"context"
	"fmt"
	"io"

	"github.com/avc-dev/shortlink/internal/broker"
	"github.com/avc-dev/shortlink/internal/cache"
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/config/db"
	"github.com/avc-dev/shortlink/internal/config/rdb"
	"github.com/avc-dev/shortlink/internal/handler"
	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/avc-dev/shortlink/internal/migrations"
	"github.com/avc-dev/shortlink/internal/notifier"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/store"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// dependencies собранный граф зависимостей HTTP сервиса
type dependencies struct {
	handler  *handler.Handler
	limiter  middleware.Limiter
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	notifier *notifier.VisitNotifier
	database db.Database
	closers  []io.Closer
}

// initDependencies инициализирует все зависимости приложения.
// При ошибке уже открытые ресурсы закрываются.
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *dependencies, err error) {
	deps := &dependencies{registry: prometheus.NewRegistry()}
	defer func() {
		if err != nil {
			deps.closeAll(logger)
		}
	}()

	deps.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.metrics = metrics.New(deps.registry)

	storage, err := deps.initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	urlCache, ranker, err := deps.initCache(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	publisher, err := deps.initPublisher(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize visit broker: %w", err)
	}

	deps.notifier = notifier.NewVisitNotifier(
		publisher,
		cfg.Broker.Topic,
		cfg.Visits.Buffer,
		cfg.Visits.Workers,
		deps.metrics,
		logger,
	)

	repo := repository.New(storage)
	urlService := service.NewURLService(repo, urlCache, ranker, cfg, deps.metrics, logger)
	urlUsecase := usecase.NewURLUsecase(urlService, deps.notifier, cfg, logger)

	deps.handler = handler.New(urlUsecase, logger, deps.database)

	return deps, nil
}

// initStorage выбирает хранилище: PostgreSQL, файл или память
func (d *dependencies) initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Store, error) {
	if cfg.DatabaseDSN != "" {
		adapter, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
		if err != nil {
			return nil, err
		}
		d.database = adapter

		if err := migrations.NewMigrator(adapter.Pool, logger).RunUp(); err != nil {
			return nil, err
		}

		logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(adapter.Pool), nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil
}

// initCache выбирает горячий кэш, рейтинг и ограничитель запросов: Redis или память
func (d *dependencies) initCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.Cache, service.Ranker, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("Using in-memory cache and ranking")
		d.limiter = middleware.NewMemoryLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
		return cache.NewMemoryCache(), cache.NewMemoryRanker(), nil
	}

	client, err := rdb.NewConfig(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB).Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	d.closers = append(d.closers, client)

	logger.Info("Using Redis cache and ranking", zap.String("addr", cfg.Redis.Addr))
	d.limiter = middleware.NewRedisLimiter(client, cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)

	return cache.NewRedisCache(client), cache.NewRedisRanker(client), nil
}

// initPublisher выбирает транспорт событий посещений
func (d *dependencies) initPublisher(cfg *config.Config, logger *zap.Logger) (notifier.Publisher, error) {
	switch cfg.Broker.Kind {
	case config.BrokerNATS:
		natsBroker, err := broker.NewNATSBroker(broker.NATSConfig{
			URL:     cfg.Broker.NATSURL,
			Stream:  cfg.Broker.NATSStream,
			Subject: cfg.Broker.Topic,
		}, logger)
		if err != nil {
			return nil, err
		}
		d.closers = append(d.closers, natsBroker)
		logger.Info("Publishing visits to NATS JetStream", zap.String("url", cfg.Broker.NATSURL))
		return natsBroker, nil

	case config.BrokerKafka:
		kafkaPublisher := broker.NewKafkaPublisher(cfg.Broker.KafkaBrokers)
		d.closers = append(d.closers, kafkaPublisher)
		logger.Info("Publishing visits to Kafka", zap.Strings("brokers", cfg.Broker.KafkaBrokers))
		return kafkaPublisher, nil

	default:
		logger.Info("Publishing visits to log")
		return broker.NewLogPublisher(logger), nil
	}
}

// closeAll дожидается отправки событий посещений, затем закрывает брокер, Redis и базу данных
func (d *dependencies) closeAll(logger *zap.Logger) {
	if d.notifier != nil {
		d.notifier.Close()
	}
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			logger.Warn("Failed to close resource", zap.Error(err))
		}
	}
	if d.database != nil {
		d.database.Close()
		logger.Info("Database connection closed")
	}
}
