// Package broker содержит транспорты событий посещений: NATS JetStream, Kafka и журнал.
package broker

import (
	"context"
	"io"
)

// Handler обрабатывает одно полученное сообщение.
// Ошибка означает, что сообщение нужно доставить повторно;
// после исчерпания попыток транспорта сообщение отбрасывается.
type Handler func(ctx context.Context, payload []byte) error

// Subscriber читает сообщения из брокера до отмены ctx
type Subscriber interface {
	io.Closer
	Consume(ctx context.Context, handler Handler) error
}
