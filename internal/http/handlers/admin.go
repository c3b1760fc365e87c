package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/pbertain/wnbapuff/internal/http/requestutil"
	"github.com/pbertain/wnbapuff/internal/logging"
	"github.com/pbertain/wnbapuff/internal/season"
	"github.com/pbertain/wnbapuff/internal/seasonconfig"
)

// AdminHandler exposes admin-only endpoints (e.g., season calendar reload).
type AdminHandler struct {
	registry    *season.Registry
	seasonsPath string
	token       string
	logger      *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. seasonsPath may be empty, in
// which case reloads fall back to the embedded calendar.
func NewAdminHandler(registry *season.Registry, seasonsPath, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		registry:    registry,
		seasonsPath: seasonsPath,
		token:       token,
		logger:      logger,
	}
}

// ReloadSeasons re-reads the season calendar file and swaps the registry
// contents. Guarded by ADMIN_TOKEN env; returns 401 if missing/invalid.
func (h *AdminHandler) ReloadSeasons(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", clientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.registry == nil {
		writeError(w, r, http.StatusServiceUnavailable, "season registry not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	defs, err := seasonconfig.Load(h.seasonsPath)
	if err != nil {
		logger.Warn("season reload failed", "path", h.seasonsPath, "err", err)
		writeError(w, r, http.StatusBadRequest, "invalid season configuration", logger)
		return
	}

	h.registry.ReplaceAll(defs)
	logger.Info("season calendar reloaded", "path", h.seasonsPath, "seasons", len(defs))
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"seasons": len(defs),
		"sports":  h.registry.Sports(),
	}, logger)
}

// AdminTokenFromEnv reads ADMIN_TOKEN (optional).
func AdminTokenFromEnv() string {
	return os.Getenv("ADMIN_TOKEN")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}

func clientIP(r *http.Request) string {
	return requestutil.ClientIP(r)
}
