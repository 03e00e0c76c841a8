package broker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher пишет события в топик Kafka
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := p.writer.WriteMessages(ctx, kafka.Message{Topic: topic, Value: payload}); err != nil {
		return fmt.Errorf("failed to write to kafka topic %s: %w", topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// kafkaMaxDeliver совпадает с MaxDeliver подписки NATS
const kafkaMaxDeliver = 5

type kafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSubscriber читает топик в группе потребителей с ручной фиксацией смещений.
// Сообщение обрабатывается повторно на месте, пока не будет обработано
// или не исчерпает kafkaMaxDeliver попыток; смещение никогда не фиксируется раньше.
type KafkaSubscriber struct {
	reader     kafkaReader
	retryDelay time.Duration
	logger     *zap.Logger
}

func NewKafkaSubscriber(brokers []string, topic, groupID string, logger *zap.Logger) *KafkaSubscriber {
	return &KafkaSubscriber{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			Topic:    topic,
			GroupID:  groupID,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
		retryDelay: 500 * time.Millisecond,
		logger:     logger,
	}
}

func (s *KafkaSubscriber) Consume(ctx context.Context, handler Handler) error {
	for {
		msg, err := s.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("failed to fetch kafka message: %w", err)
		}

		if !s.handle(ctx, handler, msg) {
			// Смещение не зафиксировано, группа получит сообщение снова после перезапуска
			return nil
		}

		if err := s.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("failed to commit kafka offset: %w", err)
		}
	}
}

// handle возвращает false, если ctx отменён до завершения обработки
func (s *KafkaSubscriber) handle(ctx context.Context, handler Handler, msg kafka.Message) bool {
	fields := []zap.Field{
		zap.String("topic", msg.Topic),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset),
	}

	for attempt := 1; ; attempt++ {
		err := handler(ctx, msg.Value)
		if err == nil {
			return true
		}

		if attempt >= kafkaMaxDeliver {
			s.logger.Error("Dropping message after max delivery attempts",
				append(fields, zap.Int("attempts", attempt), zap.Error(err))...)
			return true
		}

		s.logger.Warn("Failed to handle message, retrying",
			append(fields, zap.Int("attempt", attempt), zap.Error(err))...)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(s.retryDelay):
		}
	}
}

func (s *KafkaSubscriber) Close() error {
	return s.reader.Close()
}
