package api

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the standard error envelope for a failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error envelope.
func WriteError(w http.ResponseWriter, status int, err error) {
	JSON(w, status, ErrorBody{Error: err.Error()})
}
