package broker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// streamMaxAge срок хранения событий посещений в потоке
const streamMaxAge = 7 * 24 * time.Hour

// NATSConfig настройки подключения к NATS JetStream
type NATSConfig struct {
	URL     string
	Stream  string
	Subject string
}

// NATSBroker публикует и читает события через JetStream
type NATSBroker struct {
	conn   *nats.Conn
	js     nats.JetStreamContext
	cfg    NATSConfig
	logger *zap.Logger
}

// NewNATSBroker подключается к серверу и создаёт или обновляет поток
func NewNATSBroker(cfg NATSConfig, logger *zap.Logger) (*NATSBroker, error) {
	conn, err := nats.Connect(
		cfg.URL,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
		nats.PingInterval(20*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	b := &NATSBroker{conn: conn, js: js, cfg: cfg, logger: logger}
	if err := b.ensureStream(); err != nil {
		conn.Close()
		return nil, err
	}

	return b, nil
}

func (b *NATSBroker) ensureStream() error {
	streamCfg := &nats.StreamConfig{
		Name:      b.cfg.Stream,
		Subjects:  []string{b.cfg.Subject},
		Storage:   nats.FileStorage,
		Retention: nats.LimitsPolicy,
		MaxAge:    streamMaxAge,
		Replicas:  1,
	}

	_, err := b.js.StreamInfo(b.cfg.Stream)
	switch {
	case errors.Is(err, nats.ErrStreamNotFound):
		if _, err := b.js.AddStream(streamCfg); err != nil {
			return fmt.Errorf("failed to create stream %s: %w", b.cfg.Stream, err)
		}
	case err != nil:
		return fmt.Errorf("failed to get stream %s info: %w", b.cfg.Stream, err)
	default:
		if _, err := b.js.UpdateStream(streamCfg); err != nil {
			return fmt.Errorf("failed to update stream %s: %w", b.cfg.Stream, err)
		}
	}

	return nil
}

// Publish ждёт подтверждения JetStream в пределах ctx
func (b *NATSBroker) Publish(ctx context.Context, subject string, payload []byte) error {
	if _, err := b.js.Publish(subject, payload, nats.Context(ctx)); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// NATSSubscriber durable-потребитель в группе очереди
type NATSSubscriber struct {
	broker  *NATSBroker
	durable string
}

func (b *NATSBroker) Subscriber(durable string) *NATSSubscriber {
	return &NATSSubscriber{broker: b, durable: durable}
}

// Consume подтверждает сообщение после успешной обработки, иначе запрашивает повторную доставку
func (s *NATSSubscriber) Consume(ctx context.Context, handler Handler) error {
	b := s.broker

	sub, err := b.js.QueueSubscribe(
		b.cfg.Subject,
		s.durable,
		func(msg *nats.Msg) {
			if err := handler(ctx, msg.Data); err != nil {
				b.logger.Warn("Failed to handle message, requesting redelivery",
					zap.String("subject", msg.Subject), zap.Error(err))
				_ = msg.Nak()
				return
			}
			_ = msg.Ack()
		},
		nats.Durable(s.durable),
		nats.ManualAck(),
		nats.AckWait(30*time.Second),
		nats.MaxDeliver(5),
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", b.cfg.Subject, err)
	}

	<-ctx.Done()

	if err := sub.Drain(); err != nil {
		return fmt.Errorf("failed to drain subscription: %w", err)
	}

	return nil
}

func (s *NATSSubscriber) Close() error {
	return s.broker.Close()
}

func (b *NATSBroker) Close() error {
	if b.conn != nil && !b.conn.IsClosed() {
		b.conn.Close()
	}
	return nil
}
