package handler

import (
	"net/http"

	"github.com/go-chi/render"
)

// errorResponse is the uniform error envelope: a single human-readable
// message, nothing else.
type errorResponse struct {
	Error string `json:"error"`
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg})
}

func renderJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}
