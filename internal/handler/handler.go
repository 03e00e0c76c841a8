package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/avc-dev/shortlink/internal/usecase"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockery

// URLUsecase определяет интерфейс прикладного слоя для HTTP обработчиков
type URLUsecase interface {
	CreateShortURL(ctx context.Context, rawURL, ownerID, requestBase string) (*model.ShortenResult, error)
	ResolveURL(ctx context.Context, code string) (model.URL, error)
	DeleteURL(ctx context.Context, code string) error
	GetURLStats(ctx context.Context, code string) (*model.URLRecord, error)
}

// Database нужна только для проверки соединения в /ping
type Database interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы сервиса коротких ссылок
type Handler struct {
	usecase  URLUsecase
	logger   *zap.Logger
	db       Database
	validate *validator.Validate
}

// New создает новый экземпляр Handler. db может быть nil, если база не настроена.
func New(usecase URLUsecase, logger *zap.Logger, db Database) *Handler {
	return &Handler{
		usecase:  usecase,
		logger:   logger,
		db:       db,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Message string `json:"message"`
}

const (
	msgNotFound           = "Short URL not found"
	msgServiceUnavailable = "Service temporarily unavailable, please try again later"
	msgInvalidBody        = "Request body must be a JSON object"
)

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Message: message})
}

// handleError сопоставляет ошибки прикладного слоя с HTTP статусами
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrURLNotFound):
		h.writeError(w, r, http.StatusNotFound, msgNotFound)
	case errors.Is(err, usecase.ErrInvalidURL), errors.Is(err, usecase.ErrEmptyURL):
		h.writeError(w, r, http.StatusBadRequest, invalidURLMessage)
	case errors.Is(err, usecase.ErrServiceUnavailable):
		h.writeError(w, r, http.StatusServiceUnavailable, msgServiceUnavailable)
	default:
		h.logger.Error("unexpected error",
			zap.Error(err),
			zap.String("uri", r.RequestURI),
		)
		h.writeError(w, r, http.StatusInternalServerError, msgServiceUnavailable)
	}
}
