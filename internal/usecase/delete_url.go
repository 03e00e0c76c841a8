package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/service"
	"go.uber.org/zap"
)

// DeleteURL удаляет короткую ссылку
func (u *URLUsecase) DeleteURL(ctx context.Context, code string) error {
	err := u.service.DeleteURL(ctx, model.Code(code))
	if err == nil {
		return nil
	}

	if errors.Is(err, service.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrURLNotFound, err)
	}

	u.logger.Error("failed to delete URL",
		zap.String("code", code),
		zap.Error(err),
	)
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}
