package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const (
	invalidURLMessage     = "Invalid URL format"
	ownerRequiredMessage  = "User ID is required"
	emptyRequestMessage   = "Request body is empty"
	defaultInvalidMessage = "Invalid request"
)

// ShortenRequest тело запроса POST /shorten
type ShortenRequest struct {
	URL    string `json:"url" validate:"required,url"`
	UserID string `json:"userId" validate:"required"`
}

// ShortenResponse тело ответа POST /shorten
type ShortenResponse struct {
	ShortCode string `json:"shortCode"`
	ShortURL  string `json:"shortUrl"`
}

// Shorten обрабатывает POST /shorten
func (h *Handler) Shorten(w http.ResponseWriter, req *http.Request) {
	var request ShortenRequest
	if err := render.DecodeJSON(req.Body, &request); err != nil {
		h.logger.Debug("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		if errors.Is(err, io.EOF) {
			h.writeError(w, req, http.StatusBadRequest, emptyRequestMessage)
			return
		}
		h.writeError(w, req, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if err := h.validate.Struct(request); err != nil {
		h.writeError(w, req, http.StatusBadRequest, validationMessage(err))
		return
	}

	result, err := h.usecase.CreateShortURL(req.Context(), request.URL, request.UserID, requestBase(req))
	if err != nil {
		h.handleError(w, req, err)
		return
	}

	render.Status(req, http.StatusCreated)
	render.JSON(w, req, ShortenResponse{
		ShortCode: result.Code.String(),
		ShortURL:  result.ShortURL,
	})
}

// validationMessage возвращает сообщение для первого нарушенного правила
func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return defaultInvalidMessage
	}

	switch validationErrs[0].Field() {
	case "URL":
		return invalidURLMessage
	case "UserID":
		return ownerRequiredMessage
	default:
		return defaultInvalidMessage
	}
}

// requestBase собирает scheme://host запроса
func requestBase(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	// Прокси может прислать что угодно, принимаются только http и https
	switch forwarded := strings.ToLower(strings.TrimSpace(req.Header.Get("X-Forwarded-Proto"))); forwarded {
	case "http", "https":
		scheme = forwarded
	}

	return scheme + "://" + req.Host
}
