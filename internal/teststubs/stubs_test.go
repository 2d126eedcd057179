package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/f1-telemetry-service/internal/domain/races"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := &StubProvider{ResultsErr: map[int]error{1: err}}

	if _, got := p.FetchRaceResults(context.Background(), 2024, 1); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls("results/1") != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls("results/1"))
	}
}

func TestStubProviderHoldAndRelease(t *testing.T) {
	p := &StubProvider{Stints: map[int][]races.TyreStint{2: {{Driver: "VER"}}}}
	p.Hold("tyres/2")

	done := make(chan []races.TyreStint)
	go func() {
		out, _ := p.FetchTyreStints(context.Background(), 2024, 2)
		done <- out
	}()

	select {
	case <-done:
		t.Fatalf("expected held call to block")
	case <-time.After(20 * time.Millisecond):
	}

	p.Release("tyres/2")
	p.Release("tyres/2")

	select {
	case out := <-done:
		if len(out) != 1 {
			t.Fatalf("expected stints, got %v", out)
		}
	case <-time.After(time.Second):
		t.Fatalf("expected release to unblock call")
	}
}

func TestStubProviderCareerDefaults(t *testing.T) {
	p := &StubProvider{}

	stats, err := p.FetchDriverCareer(context.Background(), "nor")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if stats.Wins != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
	if p.Calls("career/NOR") != 1 {
		t.Fatalf("expected normalized key")
	}
}
