package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// StatsResponse статистика короткой ссылки
type StatsResponse struct {
	ShortCode   string    `json:"shortCode"`
	OriginalURL string    `json:"originalUrl"`
	OwnerID     string    `json:"userId"`
	VisitCount  int64     `json:"visitCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GetURLStats обрабатывает GET /urls/{shortCode}
func (h *Handler) GetURLStats(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortCode")

	record, err := h.usecase.GetURLStats(req.Context(), code)
	if err != nil {
		h.handleError(w, req, err)
		return
	}

	render.Status(req, http.StatusOK)
	render.JSON(w, req, StatsResponse{
		ShortCode:   record.ShortCode.String(),
		OriginalURL: record.OriginalURL.String(),
		OwnerID:     record.OwnerID,
		VisitCount:  record.VisitCount,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	})
}
