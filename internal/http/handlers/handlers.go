package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/f1-telemetry-service/internal/app/catalog"
	"github.com/preston-bernstein/f1-telemetry-service/internal/app/roster"
	"github.com/preston-bernstein/f1-telemetry-service/internal/app/telemetry"
	"github.com/preston-bernstein/f1-telemetry-service/internal/dashboard"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/http/requestutil"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/poller"
)

// RacesResponse is the race catalog plus the selected round (0 when none).
type RacesResponse struct {
	Races    []races.Race `json:"races"`
	Selected int          `json:"selected"`
}

// Handler wires HTTP routes to the dashboard.
type Handler struct {
	dash     *dashboard.Dashboard
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(dash *dashboard.Dashboard, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		dash:     dash,
		logger:   logger,
		statusFn: statusFn,
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

// Ready reports readiness for traffic once the dashboard has bootstrapped.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Races returns the race catalog and the selected round.
func (h *Handler) Races(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	list, round := h.dash.Races()
	if list == nil {
		list = []races.Race{}
	}
	writeJSON(w, nethttp.StatusOK, RacesResponse{Races: list, Selected: round}, h.logger)
}

// Race returns the current race view.
func (h *Handler) Race(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.dash.RaceView(), h.logger)
}

// SelectRace switches to ?round=N. The response is 202 with the in-flight view,
// or 200 with the settled view when ?wait=true and no newer load is pending.
func (h *Handler) SelectRace(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	round, err := requestutil.PositiveIntParam(r, "round")
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid round", logger)
		return
	}

	done, err := h.dash.SelectRace(r.Context(), round)
	if errors.Is(err, catalog.ErrUnknownRound) {
		writeError(w, r, nethttp.StatusNotFound, "unknown round", logger)
		return
	}
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	logging.Info(logger, "race selected", slog.Int(logging.FieldRound, round))

	status := settleStatus(r, done)
	view := h.dash.RaceView()
	if view.Status == string(telemetry.StateLoading) {
		// done also closes when a newer selection superseded this one.
		status = nethttp.StatusAccepted
	}
	writeJSON(w, status, view, logger)
}

// Teams returns the team list and the selected team's careers.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.dash.TeamView(), h.logger)
}

// SelectTeam switches the roster to ?team=NAME, honouring ?wait=true like SelectRace.
func (h *Handler) SelectTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	name := requestutil.QueryParam(r, "team")
	if name == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing team", logger)
		return
	}

	done, err := h.dash.SelectTeam(r.Context(), name)
	if errors.Is(err, roster.ErrUnknownTeam) {
		writeError(w, r, nethttp.StatusNotFound, "unknown team", logger)
		return
	}
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	logging.Info(logger, "team selected", slog.String(logging.FieldTeam, name))

	status := settleStatus(r, done)
	writeJSON(w, status, h.dash.TeamView(), logger)
}

// Specs returns the car specs with humanized labels.
func (h *Handler) Specs(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.dash.SpecsView(), h.logger)
}

// settleStatus waits on done when the caller asked to, returning 200 once
// settled and 202 otherwise.
func settleStatus(r *nethttp.Request, done <-chan struct{}) int {
	if !requestutil.BoolParam(r, "wait") {
		return nethttp.StatusAccepted
	}
	select {
	case <-done:
		return nethttp.StatusOK
	case <-r.Context().Done():
		return nethttp.StatusAccepted
	}
}
