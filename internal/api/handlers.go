package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zalemm/pokerauditor/internal/config"
)

// Handler serves the auditor's HTTP surface: health and a single synchronous
// audit endpoint for a fully-submitted hand transcript.
type Handler struct {
	cfg *config.Config
}

// NewHandler builds a Handler bound to cfg.
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "healthy", "version": h.cfg.Version})
}

// HandleAudit decodes a full transcript, runs the analyzer pipeline to
// completion, and returns the verdict.
func (h *Handler) HandleAudit(w http.ResponseWriter, r *http.Request) {
	var req AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	an, err := buildAnalyzer(&req, h.cfg)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err)
		return
	}

	ctx, cancel := h.runContext(r)
	defer cancel()

	analysis := an.Run(ctx, h.cfg.KeychainPollInterval)
	JSON(w, http.StatusOK, toResponse(req.HandID, analysis))
}

// runContext returns a context bound to the handler's keychain-commit
// timeout, used when the caller's request has no deadline of its own.
func (h *Handler) runContext(r *http.Request) (context.Context, context.CancelFunc) {
	if _, ok := r.Context().Deadline(); ok {
		return r.Context(), func() {}
	}
	return context.WithTimeout(r.Context(), h.cfg.KeychainCommitTimeout)
}
