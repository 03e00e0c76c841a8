package broker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogPublisher_Publish(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	publisher := NewLogPublisher(zap.New(core))

	err := publisher.Publish(context.Background(), "visits", []byte(`{"short_code":"abc1234"}`))
	require.NoError(t, err)
	require.NoError(t, publisher.Close())

	entries := logs.FilterMessage("Visit event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "visits", entries[0].ContextMap()["topic"])
	assert.Equal(t, `{"short_code":"abc1234"}`, entries[0].ContextMap()["payload"])
}

func TestNewNATSBroker_Unreachable(t *testing.T) {
	_, err := NewNATSBroker(NATSConfig{
		URL:     "nats://127.0.0.1:1",
		Stream:  "VISITS",
		Subject: "visits",
	}, zap.NewNop())

	assert.Error(t, err)
}

func TestKafkaSubscriber_StopsOnCancel(t *testing.T) {
	subscriber := NewKafkaSubscriber([]string{"127.0.0.1:1"}, "visits", "visitcounter", zap.NewNop())
	defer subscriber.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := subscriber.Consume(ctx, func(context.Context, []byte) error {
		t.Fatal("handler must not be called")
		return nil
	})

	assert.NoError(t, err)
}

// fakeKafkaReader отдаёт сообщения по очереди и запоминает зафиксированные смещения
type fakeKafkaReader struct {
	messages  []kafka.Message
	committed []int64
}

func (r *fakeKafkaReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func (r *fakeKafkaReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, msg := range msgs {
		r.committed = append(r.committed, msg.Offset)
	}
	return nil
}

func (r *fakeKafkaReader) Close() error {
	return nil
}

func TestKafkaSubscriber_RetriesBeforeCommit(t *testing.T) {
	tests := []struct {
		name          string
		failures      int
		wantAttempts  int
		wantCommitted []int64
	}{
		{
			name:          "handled on first attempt",
			failures:      0,
			wantAttempts:  2,
			wantCommitted: []int64{10, 11},
		},
		{
			name:          "handled after retries",
			failures:      2,
			wantAttempts:  4,
			wantCommitted: []int64{10, 11},
		},
		{
			name:          "dropped after max deliveries",
			failures:      kafkaMaxDeliver,
			wantAttempts:  kafkaMaxDeliver + 1,
			wantCommitted: []int64{10, 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			reader := &fakeKafkaReader{messages: []kafka.Message{
				{Offset: 10, Value: []byte("first")},
				{Offset: 11, Value: []byte("second")},
			}}
			subscriber := &KafkaSubscriber{reader: reader, logger: zap.NewNop()}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			attempts := 0
			failuresLeft := tt.failures
			handler := func(_ context.Context, payload []byte) error {
				attempts++
				if string(payload) == "first" && failuresLeft > 0 {
					failuresLeft--
					return errors.New("storage unavailable")
				}
				if string(payload) == "second" {
					cancel()
				}
				return nil
			}

			// Act
			err := subscriber.Consume(ctx, handler)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.wantAttempts, attempts)
			assert.Equal(t, tt.wantCommitted, reader.committed)
		})
	}
}

func TestKafkaSubscriber_CancelDuringRetryLeavesOffset(t *testing.T) {
	// Arrange
	reader := &fakeKafkaReader{messages: []kafka.Message{{Offset: 10, Value: []byte("first")}}}
	subscriber := &KafkaSubscriber{reader: reader, retryDelay: time.Hour, logger: zap.NewNop()}

	ctx, cancel := context.WithCancel(context.Background())
	handler := func(context.Context, []byte) error {
		cancel()
		return errors.New("storage unavailable")
	}

	// Act
	err := subscriber.Consume(ctx, handler)

	// Assert
	require.NoError(t, err)
	assert.Empty(t, reader.committed)
}
