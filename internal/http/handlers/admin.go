package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/f1-telemetry-service/internal/dashboard"
	"github.com/preston-bernstein/f1-telemetry-service/internal/http/requestutil"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
)

// Reloader re-runs the selected race's fetch pair.
type Reloader interface {
	Reload(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	reloader Reloader
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(reloader Reloader, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		reloader: reloader,
		token:    token,
		logger:   logger,
	}
}

// Refresh reloads the selected race out of band of the poller.
// Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.reloader == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	err := h.reloader.Reload(r.Context())
	switch {
	case errors.Is(err, dashboard.ErrNoSelection):
		writeError(w, r, http.StatusConflict, "no race selected", logger)
		return
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, http.StatusServiceUnavailable, "refresh interrupted", logger)
		return
	case err != nil:
		// Upstream failures leave demo data in place; that is still a completed refresh.
		logging.Warn(logger, "admin refresh fell back to demo data", slog.Any("error", err))
		writeJSON(w, http.StatusOK, map[string]string{"status": "demo", "error": err.Error()}, logger)
		return
	}

	logging.Info(logger, "admin refresh complete")
	writeJSON(w, http.StatusOK, map[string]string{"status": "live"}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), []byte(want)) == 1
}
