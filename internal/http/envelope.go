package http

import (
	"encoding/json"
	"net/http"
)

// EntityResponse is the uniform response envelope. StatusCode mirrors the
// HTTP status line; Payload is null on every error path.
type EntityResponse[T any] struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
	Payload    *T     `json:"payload"`
}

func respond[T any](w http.ResponseWriter, status int, message string, payload *T) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(EntityResponse[T]{
		Message:    message,
		StatusCode: status,
		Payload:    payload,
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond[struct{}](w, status, message, nil)
}
