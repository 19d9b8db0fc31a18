package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Routes builds the auditor's HTTP router.
func (h *Handler) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(RecoveryMiddleware)
	r.Use(LoggingMiddleware)

	r.HandleFunc("/healthz", h.HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/audit", h.HandleAudit).Methods(http.MethodPost)

	return r
}
