package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/registry"
	"github.com/vovakirdan/quad-arcade/internal/storage"
)

func newSimGame(t *testing.T, id string) registry.Game {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", id, err)
	}
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	g.Reset(cfg)
	return g
}

func TestSimulateIsReproducible(t *testing.T) {
	for _, id := range []string{"lander", "pong", "shooter", "scene"} {
		run := func() simResult {
			g := newSimGame(t, id)
			return simulate(g, 20*time.Second, 16*time.Millisecond, rand.New(rand.NewSource(42)))
		}
		a, b := run(), run()
		if a != b {
			t.Errorf("simulate(%s) = %+v and %+v, expected equal", id, a, b)
		}
	}
}

func TestSimulateStopsAtGameOver(t *testing.T) {
	g := newSimGame(t, "lander")
	res := simulate(g, 10*time.Minute, time.Second/60, nil)

	if !res.State.GameOver {
		t.Fatalf("lander still running after %v", res.Elapsed)
	}
	if res.State.Outcome != core.OutcomeWin {
		t.Errorf("Outcome = %v, expected the autopilot to land", res.State.Outcome)
	}
	if res.Elapsed >= 10*time.Minute {
		t.Errorf("Elapsed = %v, expected an early stop", res.Elapsed)
	}
}

func TestSimulateRespectsLimit(t *testing.T) {
	g := newSimGame(t, "scene")
	res := simulate(g, time.Second, 100*time.Millisecond, nil)

	if res.Frames != 10 {
		t.Errorf("Frames = %d, expected 10", res.Frames)
	}
	if res.State.Ticks != 60 {
		t.Errorf("Ticks = %d, expected 60", res.State.Ticks)
	}
}

func TestSaveSimulatedRun(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	st := core.GameState{Score: 250, GameOver: true, Outcome: core.OutcomeWin, Ticks: 600}

	run, err := saveSimulatedRun(dbPath, "lander", st, 42)
	if err != nil {
		t.Fatalf("saveSimulatedRun() error = %v", err)
	}

	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	got, err := store.RunByID(run.RunID)
	if err != nil {
		t.Fatalf("RunByID() error = %v", err)
	}
	if got == nil {
		t.Fatalf("RunByID(%q) = nil, expected the saved run", run.RunID)
	}
	if got.Score != 250 || got.Seed != 42 || got.Outcome != core.OutcomeWin {
		t.Errorf("stored run = %+v, expected score 250, seed 42, win", got)
	}
}

func TestSaveSimulatedRunReportsErrors(t *testing.T) {
	// A regular file where the database directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	st := core.GameState{Score: 1, Ticks: 1}
	if _, err := saveSimulatedRun(filepath.Join(blocker, "scores.db"), "scene", st, 1); err == nil {
		t.Error("saveSimulatedRun() error = nil, expected an error for an unusable path")
	}
}
