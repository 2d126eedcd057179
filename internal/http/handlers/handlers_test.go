package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/f1-telemetry-service/internal/dashboard"
	"github.com/preston-bernstein/f1-telemetry-service/internal/http/middleware"
	"github.com/preston-bernstein/f1-telemetry-service/internal/poller"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
	"github.com/preston-bernstein/f1-telemetry-service/internal/testutil"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(testutil.NewInitializedDashboard(t, testutil.SampleGrid()), nil, nil)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyWithStatus(t *testing.T) {
	d := testutil.NewDashboard(t, testutil.SampleGrid())
	h := NewHandler(d, nil, func() poller.Status { return poller.Status{Bootstrapped: true} })

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestReadyNotReady(t *testing.T) {
	d := testutil.NewDashboard(t, testutil.SampleGrid())
	h := NewHandler(d, nil, func() poller.Status { return poller.Status{LastError: "bootstrapping"} })

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "bootstrapping" {
		t.Fatalf("expected last error surfaced, got %q", resp["error"])
	}
}

func TestRaces(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Races), http.MethodGet, "/races", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp RacesResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Races) != 2 || resp.Selected != 1 {
		t.Fatalf("unexpected races response %+v", resp)
	}
}

func TestRacesEmptyCatalogEncodesArray(t *testing.T) {
	grid := testutil.SampleGrid()
	grid.RacesErr = errors.New("down")
	h := NewHandler(testutil.NewInitializedDashboard(t, grid), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Races), http.MethodGet, "/races", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if body := rr.Body.String(); body != "{\"races\":[],\"selected\":1}\n" {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestRace(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Race), http.MethodGet, "/race", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var view dashboard.RaceView
	testutil.DecodeJSON(t, rr, &view)
	if view.Status != "loaded_live" || view.RaceName != "Bahrain Grand Prix" {
		t.Fatalf("unexpected view %+v", view)
	}
	if len(view.Podium) != 3 || len(view.Stints.Points) != 2 {
		t.Fatalf("expected podium and stints, got %+v", view)
	}
}

func TestSelectRaceWaitReturnsSettledView(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.SelectRace), http.MethodPost, "/race/select?round=2&wait=true", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var view dashboard.RaceView
	testutil.DecodeJSON(t, rr, &view)
	if view.Round != 2 || view.RaceName != "Saudi Arabian Grand Prix" || view.Source != "live" {
		t.Fatalf("expected round 2 live, got %+v", view)
	}
}

func TestSelectRaceWithoutWaitReturnsAccepted(t *testing.T) {
	grid := testutil.SampleGrid()
	h := NewHandler(testutil.NewInitializedDashboard(t, grid), nil, nil)
	grid.Hold("results/2")
	defer grid.Release("results/2")

	rr := testutil.Serve(http.HandlerFunc(h.SelectRace), http.MethodPost, "/race/select?round=2", nil)
	testutil.AssertStatus(t, rr, http.StatusAccepted)

	var view dashboard.RaceView
	testutil.DecodeJSON(t, rr, &view)
	if view.Status != "loading" || view.Round != 2 {
		t.Fatalf("expected loading round 2, got %+v", view)
	}
	if view.ShowLoading || view.RaceName != "Bahrain Grand Prix" {
		t.Fatalf("expected previous race kept while loading, got %+v", view)
	}
}

func TestSelectRaceWaitSupersededReturnsAccepted(t *testing.T) {
	grid := testutil.SampleGrid()
	dash := testutil.NewInitializedDashboard(t, grid)
	h := NewHandler(dash, nil, nil)
	grid.Hold("results/2")
	grid.Hold("results/1")
	defer grid.Release("results/1")
	defer grid.Release("results/2")

	responses := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		responses <- testutil.Serve(http.HandlerFunc(h.SelectRace), http.MethodPost, "/race/select?round=2&wait=true", nil)
	}()
	deadline := time.Now().Add(time.Second)
	for grid.Calls("results/2") == 0 {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for round 2 fetch")
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := dash.SelectRace(context.Background(), 1); err != nil {
		t.Fatalf("select round 1: %v", err)
	}
	grid.Release("results/2")

	var rr *httptest.ResponseRecorder
	select {
	case rr = <-responses:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for response")
	}
	testutil.AssertStatus(t, rr, http.StatusAccepted)

	var view dashboard.RaceView
	testutil.DecodeJSON(t, rr, &view)
	if view.Status != "loading" || view.Round != 1 {
		t.Fatalf("expected round 1 still loading, got %+v", view)
	}
}

func TestSelectRaceFallbackStillSucceeds(t *testing.T) {
	grid := testutil.SampleGrid()
	grid.StintsErr = map[int]error{2: &providers.StatusError{Endpoint: providers.EndpointTyres, StatusCode: http.StatusBadGateway}}
	h := NewHandler(testutil.NewInitializedDashboard(t, grid), nil, nil)

	rr := testutil.Serve(http.HandlerFunc(h.SelectRace), http.MethodPost, "/race/select?round=2&wait=1", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var view dashboard.RaceView
	testutil.DecodeJSON(t, rr, &view)
	if view.Source != "demo" || view.Warning == "" {
		t.Fatalf("expected demo view with warning, got %+v", view)
	}
}

func TestSelectRaceRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/race/select", http.StatusBadRequest, "invalid round"},
		{"/race/select?round=x", http.StatusBadRequest, "invalid round"},
		{"/race/select?round=0", http.StatusBadRequest, "invalid round"},
		{"/race/select?round=24", http.StatusNotFound, "unknown round"},
	}
	for _, tc := range cases {
		rr := testutil.Serve(http.HandlerFunc(h.SelectRace), http.MethodPost, tc.path, nil)
		testutil.AssertStatus(t, rr, tc.status)
		if msg := testutil.ErrorMessage(t, rr); msg != tc.message {
			t.Fatalf("%s: expected %q, got %q", tc.path, tc.message, msg)
		}
	}
}

func TestTeams(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var view dashboard.TeamView
	testutil.DecodeJSON(t, rr, &view)
	if view.Selected == nil || view.Selected.Team != "Red Bull Racing" || len(view.Drivers) != 2 {
		t.Fatalf("unexpected team view %+v", view)
	}
}

func TestSelectTeam(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.SelectTeam), http.MethodPost, "/teams/select?team=Ferrari&wait=true", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var view dashboard.TeamView
	testutil.DecodeJSON(t, rr, &view)
	if view.Selected == nil || view.Selected.Team != "Ferrari" {
		t.Fatalf("expected Ferrari selected, got %+v", view)
	}
	for _, driver := range view.Drivers {
		if driver.Stats == nil {
			t.Fatalf("expected settled careers, %s missing", driver.Code)
		}
	}
}

func TestSelectTeamRejectsBadInput(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.SelectTeam), http.MethodPost, "/teams/select", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.Serve(http.HandlerFunc(h.SelectTeam), http.MethodPost, "/teams/select?team=Brawn", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestSpecs(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(http.HandlerFunc(h.Specs), http.MethodGet, "/specs", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var view dashboard.SpecsView
	testutil.DecodeJSON(t, rr, &view)
	if !view.Loaded || len(view.Categories) != 4 {
		t.Fatalf("unexpected specs view %+v", view)
	}
	if got := view.Categories[0].Fields[0].Label; got != "rpm limit" {
		t.Fatalf("expected humanized label, got %q", got)
	}
}

func TestMethodNotAllowedHandlers(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		handler http.HandlerFunc
		method  string
		path    string
	}{
		{h.Health, http.MethodPost, "/health"},
		{h.Ready, http.MethodPost, "/ready"},
		{h.Races, http.MethodPost, "/races"},
		{h.Race, http.MethodDelete, "/race"},
		{h.SelectRace, http.MethodGet, "/race/select?round=1"},
		{h.Teams, http.MethodPut, "/teams"},
		{h.SelectTeam, http.MethodGet, "/teams/select?team=Ferrari"},
		{h.Specs, http.MethodPost, "/specs"},
	}
	for _, tc := range cases {
		rr := testutil.Serve(tc.handler, tc.method, tc.path, nil)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s %s: expected 405, got %d", tc.method, tc.path, rr.Code)
		}
		if rr.Header().Get("Allow") == "" {
			t.Fatalf("%s %s: expected Allow header", tc.method, tc.path)
		}
	}
}

func TestRequestIDPropagatesThroughMiddleware(t *testing.T) {
	h := newTestHandler(t)
	logger, _ := testutil.NewBufferLogger()
	handler := middleware.LoggingMiddleware(logger, nil, http.HandlerFunc(h.SelectRace))

	req := httptest.NewRequest(http.MethodPost, "/race/select?round=x", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["requestId"] != "req-42" {
		t.Fatalf("expected request id in error body, got %+v", resp)
	}
}
