package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetURL перенаправляет на оригинальный URL по короткому коду
func (h *Handler) GetURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortCode")

	url, err := h.usecase.ResolveURL(req.Context(), code)
	if err != nil {
		h.handleError(w, req, err)
		return
	}

	http.Redirect(w, req, url.String(), http.StatusMovedPermanently)
}
