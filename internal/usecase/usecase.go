package usecase

import (
	"context"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery

// URLService определяет интерфейс сервиса коротких ссылок
type URLService interface {
	CreateShortURL(ctx context.Context, originalURL model.URL, ownerID string) (*model.URLRecord, error)
	FindByShortCode(ctx context.Context, code model.Code) (*model.URLRecord, error)
	DeleteURL(ctx context.Context, code model.Code) error
	IncrementVisitCount(ctx context.Context, code model.Code) error
	GetURLStats(ctx context.Context, code model.Code) (*model.URLRecord, error)
}

// VisitNotifier неблокирующая отправка события посещения
type VisitNotifier interface {
	Notify(code model.Code)
}

// URLUsecase содержит прикладную логику работы с URL
type URLUsecase struct {
	service  URLService
	notifier VisitNotifier
	cfg      *config.Config
	logger   *zap.Logger
}

// NewURLUsecase создает новый экземпляр URLUsecase
func NewURLUsecase(service URLService, notifier VisitNotifier, cfg *config.Config, logger *zap.Logger) *URLUsecase {
	return &URLUsecase{
		service:  service,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}
