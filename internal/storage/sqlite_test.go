package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/quad-arcade/internal/core"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, outcome core.Outcome, score int) Run {
	t.Helper()
	run, err := store.SaveRun(Run{GameID: gameID, Outcome: outcome, Score: score, Ticks: 600, Seed: 7})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return run
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	saved := save(t, store, "lander", core.OutcomeWin, 880)
	if saved.ID == 0 || saved.RunID == "" {
		t.Fatalf("SaveRun() = %+v, expected IDs to be assigned", saved)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() = nil, expected the saved run")
	}
	if got.GameID != "lander" || got.Outcome != core.OutcomeWin || got.Score != 880 || got.Ticks != 600 || got.Seed != 7 {
		t.Errorf("RunByID() = %+v, expected the saved fields", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	missing, err := store.RunByID("no-such-run")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v, expected nil, nil", missing, err)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openStore(t)

	for i := range 5 {
		save(t, store, "shooter", core.OutcomeLose, (i+1)*100)
	}
	save(t, store, "pong", core.OutcomeWin, 5)

	// Request only top 3
	runs, err := store.TopRuns("shooter", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openStore(t)

	save(t, store, "lander", core.OutcomeLose, 0)
	save(t, store, "pong", core.OutcomeWin, 5)
	last := save(t, store, "lander", core.OutcomeWin, 900)

	tests := []struct {
		gameID   string
		expected int
	}{
		{"", 3},
		{"lander", 2},
		{"scene", 0},
	}
	for _, tc := range tests {
		runs, err := store.RecentRuns(tc.gameID, 10)
		if err != nil {
			t.Fatalf("RecentRuns(%q) failed: %v", tc.gameID, err)
		}
		if len(runs) != tc.expected {
			t.Errorf("RecentRuns(%q) = %d runs, expected %d", tc.gameID, len(runs), tc.expected)
		}
	}

	runs, _ := store.RecentRuns("lander", 1)
	if len(runs) != 1 || runs[0].RunID != last.RunID {
		t.Errorf("RecentRuns(lander, 1) = %v, expected the newest run", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	// No runs yet
	high, err := store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "lander", core.OutcomeWin, 100)
	save(t, store, "lander", core.OutcomeWin, 300)
	save(t, store, "lander", core.OutcomeLose, 0)

	high, err = store.HighScore("lander")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openStore(t)

	save(t, store, "lander", core.OutcomeWin, 100)
	save(t, store, "lander", core.OutcomeWin, 200)
	save(t, store, "pong", core.OutcomeLose, 3)

	// Clear only lander runs
	if err := store.ClearRuns("lander"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	landerRuns, _ := store.TopRuns("lander", 10)
	if len(landerRuns) != 0 {
		t.Errorf("Expected 0 lander runs after clear, got %d", len(landerRuns))
	}

	pongRuns, _ := store.TopRuns("pong", 10)
	if len(pongRuns) != 1 {
		t.Errorf("Pong runs should not be affected by clearing lander")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	save(t, store, "shooter", core.OutcomeWin, 1600)
	save(t, store, "shooter", core.OutcomeLose, 400)
	save(t, store, "shooter", core.OutcomeNone, 100)
	save(t, store, "pong", core.OutcomeWin, 5)

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Wins != 1 || stats.Losses != 1 {
		t.Errorf("stats = %+v, expected 3 games, 1 win, 1 loss", stats)
	}
	if stats.HighScore != 1600 || stats.TotalScore != 2100 || stats.AvgScore != 700 {
		t.Errorf("stats = %+v, expected high 1600, total 2100, avg 700", stats)
	}

	empty, err := store.GetGameStats("scene")
	if err != nil {
		t.Fatalf("GetGameStats(empty) failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v, expected zero", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["pong"] == nil || all["pong"].Wins != 1 {
		t.Errorf("GetAllGamesStats() = %v, expected shooter and pong", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
