package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mdhasanali39/taskQuest-server/internal/platform/logger"
	"github.com/mdhasanali39/taskQuest-server/internal/redact"
)

// RootBanner is the plain-text body of GET /.
const RootBanner = "taskQuest server running well"

// healthTimeout bounds the store ping of a health check.
const healthTimeout = 2 * time.Second

// Pinger checks that a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the banner and health endpoints.
type HealthHandler struct {
	store  Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a HealthHandler that pings store.
func NewHealthHandler(store Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{store: store, logger: logger.With("component", "health_handler")}
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, h.logger, http.StatusOK, RootBanner)
}

// Health handles GET /health. It answers 503 when the store cannot be pinged.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("health check failed",
			"error", redact.Error(err))
		writeText(w, r, h.logger, http.StatusServiceUnavailable, "UNAVAILABLE")
		return
	}
	writeText(w, r, h.logger, http.StatusOK, "OK")
}

func writeText(w http.ResponseWriter, r *http.Request, fallback *slog.Logger, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.FromContextOrDefault(r.Context(), fallback).Error("failed to write response", "error", err)
	}
}
