package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DeleteURL обрабатывает DELETE /urls/{shortCode}
func (h *Handler) DeleteURL(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "shortCode")

	if err := h.usecase.DeleteURL(req.Context(), code); err != nil {
		h.handleError(w, req, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
