package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

// ResolveURL возвращает оригинальный URL и отправляет событие посещения без ожидания
func (u *URLUsecase) ResolveURL(ctx context.Context, code string) (model.URL, error) {
	record, err := u.service.FindByShortCode(ctx, model.Code(code))
	if err != nil {
		return "", u.mapLookupError(code, err)
	}

	u.notifier.Notify(record.ShortCode)

	return record.OriginalURL, nil
}

// GetURLStats возвращает запись со свежим счётчиком посещений
func (u *URLUsecase) GetURLStats(ctx context.Context, code string) (*model.URLRecord, error) {
	record, err := u.service.GetURLStats(ctx, model.Code(code))
	if err != nil {
		return nil, u.mapLookupError(code, err)
	}

	return record, nil
}

func (u *URLUsecase) mapLookupError(code string, err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrURLNotFound, err)
	}

	u.logger.Error("failed to get URL by code",
		zap.String("code", code),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
