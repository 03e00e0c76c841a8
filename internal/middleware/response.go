package middleware

import (
	"net/http"

	"github.com/go-chi/render"
)

type messageResponse struct {
	Message string `json:"message"`
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, messageResponse{Message: message})
}
