package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/store"
)

// Exists проверяет существование кода в хранилище.
// Отсутствие записи не считается ошибкой, остальные ошибки хранилища возвращаются.
func (r *Repository) Exists(ctx context.Context, code model.Code) (bool, error) {
	_, err := r.underlying.FindOne(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}

	return true, nil
}
