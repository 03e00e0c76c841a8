package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc-dev/shortlink/internal/broker"
	"github.com/avc-dev/shortlink/internal/cache"
	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/avc-dev/shortlink/internal/repository"
	"github.com/avc-dev/shortlink/internal/service"
	"github.com/avc-dev/shortlink/internal/usecase"
	"go.uber.org/zap"
)

// ErrNoVisitBroker возвращается, когда счётчику посещений не из чего читать события
var ErrNoVisitBroker = errors.New("visit counter requires nats or kafka broker")

// ErrNoSharedStorage возвращается без DATABASE_DSN: файл и память принадлежат одному процессу,
// и сервер не увидел бы посчитанные посещения
var ErrNoSharedStorage = errors.New("visit counter requires DATABASE_DSN")

// RunVisitCounter читает события посещений из брокера до SIGINT или SIGTERM
func RunVisitCounter() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.DatabaseDSN == "" {
		return ErrNoSharedStorage
	}

	subscriber, err := newSubscriber(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := subscriber.Close(); err != nil {
			logger.Warn("Failed to close subscriber", zap.Error(err))
		}
	}()

	return consumeVisits(ctx, cfg, logger, subscriber)
}

// consumeVisits подключается к PostgreSQL и считает посещения из subscriber
func consumeVisits(ctx context.Context, cfg *config.Config, logger *zap.Logger, subscriber broker.Subscriber) error {
	if cfg.DatabaseDSN == "" {
		return ErrNoSharedStorage
	}

	deps := &dependencies{}
	defer deps.closeAll(logger)

	storage, err := deps.initStorage(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	return countVisits(ctx, storage, cfg, logger, subscriber)
}

// countVisits увеличивает счётчики посещений в storage для каждого события
func countVisits(
	ctx context.Context,
	storage repository.Store,
	cfg *config.Config,
	logger *zap.Logger,
	subscriber broker.Subscriber,
) error {
	// Увеличение счётчика не читает кэш и рейтинг
	urlService := service.NewURLService(
		repository.New(storage),
		cache.NewMemoryCache(),
		cache.NewMemoryRanker(),
		cfg,
		metrics.NewNop(),
		logger,
	)
	urlUsecase := usecase.NewURLUsecase(urlService, nil, cfg, logger)

	logger.Info("Consuming visit events",
		zap.String("broker", cfg.Broker.Kind),
		zap.String("topic", cfg.Broker.Topic),
		zap.String("consumer", cfg.Broker.ConsumerName),
	)

	if err := subscriber.Consume(ctx, urlUsecase.RecordVisit); err != nil {
		return fmt.Errorf("visit consumer stopped: %w", err)
	}

	logger.Info("Visit consumer stopped")
	return nil
}

func newSubscriber(cfg *config.Config, logger *zap.Logger) (broker.Subscriber, error) {
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
		return natsBroker.Subscriber(cfg.Broker.ConsumerName), nil

	case config.BrokerKafka:
		return broker.NewKafkaSubscriber(cfg.Broker.KafkaBrokers, cfg.Broker.Topic, cfg.Broker.ConsumerName, logger), nil

	default:
		return nil, fmt.Errorf("%w: got %q", ErrNoVisitBroker, cfg.Broker.Kind)
	}
}
