// Package notifier асинхронно публикует события посещений коротких ссылок.
package notifier

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/avc-dev/shortlink/internal/metrics"
	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// publishTimeout ограничивает одну попытку публикации
const publishTimeout = 5 * time.Second

// Publisher отправляет сообщение в брокер
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

// VisitNotifier принимает события без блокировки вызывающего и публикует их пулом воркеров.
// Доставка не чаще одного раза: при переполнении буфера событие отбрасывается,
// ошибки публикации не повторяются.
type VisitNotifier struct {
	publisher Publisher
	topic     string
	events    chan model.VisitEvent
	metrics   *metrics.Metrics
	logger    *zap.Logger

	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
	now    func() time.Time
}

// NewVisitNotifier создаёт notifier и запускает workers воркеров
func NewVisitNotifier(
	publisher Publisher,
	topic string,
	buffer int,
	workers int,
	m *metrics.Metrics,
	logger *zap.Logger,
) *VisitNotifier {
	n := &VisitNotifier{
		publisher: publisher,
		topic:     topic,
		events:    make(chan model.VisitEvent, buffer),
		metrics:   m,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}

	for i := 0; i < workers; i++ {
		n.wg.Add(1)
		go n.worker(i)
	}

	return n
}

// Notify ставит событие в очередь и сразу возвращается
func (n *VisitNotifier) Notify(code model.Code) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.closed {
		n.drop(code, "notifier closed")
		return
	}

	select {
	case n.events <- model.VisitEvent{ShortCode: code, VisitedAt: n.now()}:
	default:
		n.drop(code, "buffer full")
	}
}

// Close перестаёт принимать события и дожидается публикации уже принятых
func (n *VisitNotifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.events)
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *VisitNotifier) worker(id int) {
	defer n.wg.Done()

	for event := range n.events {
		n.publish(id, event)
	}
}

func (n *VisitNotifier) publish(workerID int, event model.VisitEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		n.metrics.Visit(metrics.VisitFailed)
		n.logger.Error("Failed to marshal visit event", zap.String("code", event.ShortCode.String()), zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := n.publisher.Publish(ctx, n.topic, payload); err != nil {
		n.metrics.Visit(metrics.VisitFailed)
		n.metrics.CollaboratorFailed(metrics.ComponentPublisher, "publish")
		n.logger.Warn("Failed to publish visit event",
			zap.Int("worker", workerID),
			zap.String("topic", n.topic),
			zap.String("code", event.ShortCode.String()),
			zap.Error(err))
		return
	}

	n.metrics.Visit(metrics.VisitPublished)
}

func (n *VisitNotifier) drop(code model.Code, reason string) {
	n.metrics.Visit(metrics.VisitDropped)
	n.logger.Warn("Dropping visit event", zap.String("code", code.String()), zap.String("reason", reason))
}
