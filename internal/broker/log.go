package broker

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher пишет события в журнал, когда брокер не настроен
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, topic string, payload []byte) error {
	p.logger.Info("Visit event", zap.String("topic", topic), zap.ByteString("payload", payload))
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
