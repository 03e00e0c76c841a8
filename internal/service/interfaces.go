package service

import (
	"context"

	"github.com/avc-dev/shortlink/internal/model"
)

//go:generate mockery

// URLRepository определяет методы для работы с хранилищем записей
type URLRepository interface {
	CodeChecker
	// CreateURL возвращает store.ErrAlreadyExists, если код уже занят
	CreateURL(ctx context.Context, record model.URLRecord) (*model.URLRecord, error)
	GetURLByCode(ctx context.Context, code model.Code) (*model.URLRecord, error)
	DeleteByCode(ctx context.Context, code model.Code) (*model.URLRecord, error)
	IncrementVisitCount(ctx context.Context, code model.Code) (bool, error)
}

// CodeChecker проверяет, занят ли код
type CodeChecker interface {
	Exists(ctx context.Context, code model.Code) (bool, error)
}

// Generator источник случайных кандидатов в коды
type Generator interface {
	GenerateCode() (model.Code, error)
}

// Cache горячий кэш сериализованных записей
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}

// Ranker рейтинг популярности кодов
type Ranker interface {
	IncrementScore(ctx context.Context, setKey, member string) error
	// Top возвращает до n+1 участников по убыванию счёта
	Top(ctx context.Context, setKey string, n int) ([]string, error)
	// RemoveLowest возвращает удалённых участников
	RemoveLowest(ctx context.Context, setKey string, count int) ([]string, error)
	RemoveMember(ctx context.Context, setKey, member string) error
}
