package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/f1-telemetry-service/internal/app/policy"
	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
	"github.com/preston-bernstein/f1-telemetry-service/internal/logging"
	"github.com/preston-bernstein/f1-telemetry-service/internal/metrics"
	"github.com/preston-bernstein/f1-telemetry-service/internal/providers"
)

const component = "catalog"

// ErrUnknownRound is returned when selecting a round that is not in the catalog.
var ErrUnknownRound = errors.New("unknown round")

// Store defines the contract for holding the season calendar.
type Store interface {
	ListRaces() []races.Race
	GetRace(round int) (races.Race, bool)
	SetRaces([]races.Race)
	Len() int
}

// Options configures a Catalog.
type Options struct {
	Season       int
	InitialRound int
	Logger       *slog.Logger
	Metrics      *metrics.Recorder
}

// Catalog holds the season's race list and the currently selected round.
type Catalog struct {
	provider providers.RaceProvider
	store    Store
	season   int
	policy   policy.Policy
	logger   *slog.Logger

	mu       sync.RWMutex
	selected int
	explicit bool
}

// New constructs a Catalog. InitialRound pre-seeds the selection so a race can
// load before the list arrives.
func New(provider providers.RaceProvider, store Store, opts Options) *Catalog {
	return &Catalog{
		provider: provider,
		store:    store,
		season:   opts.Season,
		policy:   policy.New(policy.LogAndLeaveEmpty, component, opts.Logger, opts.Metrics),
		logger:   opts.Logger,
		selected: opts.InitialRound,
	}
}

// Init fetches the race list once. On failure the catalog stays empty and the
// error is returned for the caller to log; it is never fatal.
func (c *Catalog) Init(ctx context.Context) error {
	list, err := c.provider.FetchRaces(ctx, c.season)
	if err != nil {
		c.policy.Handle(ctx, err, slog.Int(logging.FieldSeason, c.season))
		return err
	}
	c.store.SetRaces(list)

	ordered := c.store.ListRaces()
	c.mu.Lock()
	if !c.explicit && len(ordered) > 0 {
		c.selected = ordered[0].Round
	}
	selected := c.selected
	c.mu.Unlock()

	logging.Info(c.logger, "race catalog loaded",
		slog.Int(logging.FieldSeason, c.season),
		slog.Int(logging.FieldCount, len(ordered)),
		slog.Int(logging.FieldRound, selected),
	)
	return nil
}

// Races returns the calendar ordered by round.
func (c *Catalog) Races() []races.Race {
	return c.store.ListRaces()
}

// Lookup returns the race for round when the catalog knows it.
func (c *Catalog) Lookup(round int) (races.Race, bool) {
	return c.store.GetRace(round)
}

// Selected returns the current round, if any.
func (c *Catalog) Selected() (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.selected, c.selected > 0
}

// Select makes round the current selection. An empty catalog accepts any
// positive round so selection still works when the list failed to load.
func (c *Catalog) Select(round int) error {
	if round < 1 {
		return ErrUnknownRound
	}
	if c.store.Len() > 0 {
		if _, ok := c.store.GetRace(round); !ok {
			return ErrUnknownRound
		}
	}
	c.mu.Lock()
	c.selected = round
	c.explicit = true
	c.mu.Unlock()
	return nil
}

// Season returns the season this catalog serves.
func (c *Catalog) Season() int {
	return c.season
}
