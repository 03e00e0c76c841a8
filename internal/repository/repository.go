package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/shortlink/internal/model"
)

// Store описывает хранилище записей коротких ссылок
type Store interface {
	FindOne(ctx context.Context, code model.Code) (*model.URLRecord, error)
	Insert(ctx context.Context, record model.URLRecord) (*model.URLRecord, error)
	FindOneAndDelete(ctx context.Context, code model.Code) (*model.URLRecord, error)
	IncrementVisitCount(ctx context.Context, code model.Code) (bool, error)
}

// Repository добавляет контекст ошибок поверх Store
type Repository struct {
	underlying Store
}

func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// DeleteByCode удаляет запись и возвращает её последнее состояние
func (r *Repository) DeleteByCode(ctx context.Context, code model.Code) (*model.URLRecord, error) {
	record, err := r.underlying.FindOneAndDelete(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to delete URL: %w", err)
	}
	return record, nil
}

// IncrementVisitCount возвращает false, если запись с кодом не найдена
func (r *Repository) IncrementVisitCount(ctx context.Context, code model.Code) (bool, error) {
	matched, err := r.underlying.IncrementVisitCount(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to increment visit count: %w", err)
	}
	return matched, nil
}
