package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

// RecordVisit обрабатывает событие посещения из брокера.
// Нечитаемые события отбрасываются, ошибка хранилища возвращается для повторной доставки.
func (u *URLUsecase) RecordVisit(ctx context.Context, payload []byte) error {
	var event model.VisitEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		u.logger.Warn("Skipping undecodable visit event", zap.ByteString("payload", payload), zap.Error(err))
		return nil
	}
	if event.ShortCode == "" {
		u.logger.Warn("Skipping visit event without short code", zap.ByteString("payload", payload))
		return nil
	}

	if err := u.service.IncrementVisitCount(ctx, event.ShortCode); err != nil {
		u.logger.Error("failed to record visit",
			zap.String("code", event.ShortCode.String()),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return nil
}
