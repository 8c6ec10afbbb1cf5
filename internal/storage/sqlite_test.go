package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
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

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		_, err := store.SaveRound(RoundRecord{
			GameID:  "bomber",
			Round:   i,
			Level:   i + 1,
			Players: 2,
			Winner:  1,
			Ticks:   uint64(100 * i),
		})
		if err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	if _, err := store.SaveRound(RoundRecord{GameID: "bomber_cpu", Round: 1, Players: 4, Winner: 3}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	rounds, err := store.RecentRounds("bomber", 10)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(rounds))
	}

	// Newest first
	if rounds[0].Round != 3 || rounds[2].Round != 1 {
		t.Errorf("Expected newest first, got rounds %d..%d", rounds[0].Round, rounds[2].Round)
	}
	if rounds[0].Ticks != 300 || rounds[0].Level != 4 {
		t.Errorf("Round fields not preserved: %+v", rounds[0])
	}
	if rounds[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveRound(RoundRecord{GameID: "bomber", Round: i + 1, Players: 2})
	}

	rounds, err := store.RecentRounds("bomber", 5)
	if err != nil {
		t.Fatalf("RecentRounds() failed: %v", err)
	}
	if len(rounds) != 5 {
		t.Errorf("Expected 5 rounds, got %d", len(rounds))
	}

	// Non-positive limit falls back to 10
	rounds, _ = store.RecentRounds("bomber", 0)
	if len(rounds) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(rounds))
	}
}

func TestStoreWinTally(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{GameID: "bomber", Round: 1, Players: 2, Winner: 1})
	store.SaveRound(RoundRecord{GameID: "bomber", Round: 2, Players: 2, Winner: 2})
	store.SaveRound(RoundRecord{GameID: "bomber", Round: 3, Players: 2, Winner: 1})
	// A draw never counts as a win, even if a seat was passed
	store.SaveRound(RoundRecord{GameID: "bomber", Round: 4, Players: 2, Winner: 2, Draw: true})

	tally, err := store.WinTally("bomber")
	if err != nil {
		t.Fatalf("WinTally() failed: %v", err)
	}
	if tally[1] != 2 || tally[2] != 1 {
		t.Errorf("Unexpected tally: %v", tally)
	}

	empty, err := store.WinTally("bomber_cpu")
	if err != nil {
		t.Fatalf("WinTally() failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty tally, got %v", empty)
	}
}

func TestStoreRoundStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetRoundStats("bomber")
	if err != nil {
		t.Fatalf("GetRoundStats() failed: %v", err)
	}
	if stats.RoundsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRound(RoundRecord{GameID: "bomber", Round: 1, Level: 2, Players: 2, Winner: 1, Ticks: 400})
	store.SaveRound(RoundRecord{GameID: "bomber", Round: 2, Level: 3, Players: 2, Draw: true, Ticks: 900})

	stats, err = store.GetRoundStats("bomber")
	if err != nil {
		t.Fatalf("GetRoundStats() failed: %v", err)
	}
	if stats.RoundsCount != 2 || stats.Draws != 1 {
		t.Errorf("Expected 2 rounds and 1 draw, got %+v", stats)
	}
	if stats.LongestTick != 900 || stats.MaxLevel != 3 {
		t.Errorf("Unexpected aggregates: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearRounds(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundRecord{GameID: "bomber", Round: 1, Players: 2})
	store.SaveRound(RoundRecord{GameID: "bomber_cpu", Round: 1, Players: 2})

	if err := store.ClearRounds("bomber"); err != nil {
		t.Fatalf("ClearRounds() failed: %v", err)
	}

	rounds, _ := store.RecentRounds("bomber", 10)
	if len(rounds) != 0 {
		t.Errorf("Expected 0 rounds after clear, got %d", len(rounds))
	}

	other, _ := store.RecentRounds("bomber_cpu", 10)
	if len(other) != 1 {
		t.Error("bomber_cpu rounds should not be affected by clearing bomber")
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
