package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pbertain/wnbapuff/internal/app/schedule"
	"github.com/pbertain/wnbapuff/internal/app/scores"
	"github.com/pbertain/wnbapuff/internal/app/seasoninfo"
	"github.com/pbertain/wnbapuff/internal/app/standings"
	"github.com/pbertain/wnbapuff/internal/poller"
	"github.com/pbertain/wnbapuff/internal/render"
	"github.com/pbertain/wnbapuff/internal/season"
)

// Handler wires HTTP routes to the app services. It serves the JSON API under
// /api/v1/{sport}/... and the plain-text mirror under /curl/....
type Handler struct {
	scores    *scores.Service
	schedule  *schedule.Service
	standings *standings.Service
	seasons   *seasoninfo.Service
	sports    []string
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(scoresSvc *scores.Service, scheduleSvc *schedule.Service, standingsSvc *standings.Service, seasonsSvc *seasoninfo.Service, sports []string, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		scores:    scoresSvc,
		schedule:  scheduleSvc,
		standings: standingsSvc,
		seasons:   seasonsSvc,
		sports:    sports,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// API dispatches /api/v1/{sport}/{resource} requests.
func (h *Handler) API(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/")
	sport, resource, ok := strings.Cut(rest, "/")
	if !ok || sport == "" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	sport = strings.ToLower(sport)
	date := r.URL.Query().Get("date")
	logger := loggerFromContext(r, h.logger)

	switch resource {
	case "scores":
		resp, err := h.scores.Get(r.Context(), sport, date)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		logger.Info("served scores", "sport", sport, "date", resp.Date, "count", len(resp.Games))
		writeJSON(w, nethttp.StatusOK, resp, h.logger)
	case "schedule":
		resp, err := h.schedule.Get(r.Context(), sport, date)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		logger.Info("served schedule", "sport", sport, "date", resp.Date, "count", len(resp.Games))
		writeJSON(w, nethttp.StatusOK, resp, h.logger)
	case "standings":
		resp, err := h.standings.Get(r.Context(), sport)
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		logger.Info("served standings", "sport", sport, "count", len(resp.Rows))
		writeJSON(w, nethttp.StatusOK, resp, h.logger)
	case "season":
		resp, err := h.seasons.ContextFor(sport, date, queryInt(r, "year"))
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, nethttp.StatusOK, resp, h.logger)
	case "season/milestone":
		resp, err := h.seasons.MilestoneFor(sport, date, queryInt(r, "year"))
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, nethttp.StatusOK, resp, h.logger)
	case "season/transition":
		resp, err := h.seasons.TransitionFor(sport, date, queryInt(r, "year"), queryInt(r, "threshold"))
		if err != nil {
			h.writeServiceError(w, r, err)
			return
		}
		writeJSON(w, nethttp.StatusOK, resp, h.logger)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Curl dispatches the /curl/{resource} plain-text endpoints.
func (h *Handler) Curl(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}

	resource := strings.TrimPrefix(r.URL.Path, "/curl/")
	if resource == "" || resource == "help" {
		writeText(w, nethttp.StatusOK, render.Help(h.sports), h.logger)
		return
	}

	sport := strings.ToLower(r.URL.Query().Get("sport"))
	if sport == "" {
		sport = "wnba"
	}
	date := r.URL.Query().Get("date")

	switch resource {
	case "scores":
		resp, err := h.scores.Get(r.Context(), sport, date)
		if err != nil {
			h.writeTextError(w, r, err)
			return
		}
		writeText(w, nethttp.StatusOK, render.Scores(resp), h.logger)
	case "schedule":
		resp, err := h.schedule.Get(r.Context(), sport, date)
		if err != nil {
			h.writeTextError(w, r, err)
			return
		}
		writeText(w, nethttp.StatusOK, render.Schedule(resp), h.logger)
	case "standings":
		resp, err := h.standings.Get(r.Context(), sport)
		if err != nil {
			h.writeTextError(w, r, err)
			return
		}
		writeText(w, nethttp.StatusOK, render.Standings(resp), h.logger)
	case "season":
		seasonCtx, err := h.seasons.Context(sport, date)
		if err != nil {
			h.writeTextError(w, r, err)
			return
		}
		milestone, err := h.seasons.Milestone(sport, date)
		if err != nil {
			h.writeTextError(w, r, err)
			return
		}
		transition, err := h.seasons.Transition(sport, date)
		if err != nil {
			h.writeTextError(w, r, err)
			return
		}
		writeText(w, nethttp.StatusOK, render.Season(seasonCtx, milestone, transition), h.logger)
	default:
		writeText(w, nethttp.StatusNotFound, "unknown endpoint; see /curl/help\n", h.logger)
	}
}

func (h *Handler) writeServiceError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	status, msg := classifyError(err)
	writeError(w, r, status, msg, h.logger)
}

func (h *Handler) writeTextError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	_ = r
	status, msg := classifyError(err)
	writeText(w, status, msg+"\n", h.logger)
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, season.ErrNotFound):
		return nethttp.StatusNotFound, "unknown sport or season"
	case isDateError(err):
		return nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)"
	default:
		return nethttp.StatusBadGateway, "upstream unavailable"
	}
}

// queryInt reads an optional integer query parameter; absent or malformed
// values resolve to zero so the services fall back to their defaults.
func queryInt(r *nethttp.Request, key string) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func isDateError(err error) bool {
	var parseErr *time.ParseError
	return errors.As(err, &parseErr)
}

func requireMethod(w nethttp.ResponseWriter, r *nethttp.Request, method string, logger *slog.Logger) bool {
	if r.Method != method {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
		return false
	}
	return true
}
