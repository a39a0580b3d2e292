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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	id, err := store.SaveGame(GameRecord{World: "mansion", Outcome: OutcomeDraw})
	if err != nil {
		t.Fatal(err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	rec, err := store.GameByID(id)
	if err != nil || rec == nil {
		t.Fatalf("GameByID after reopen = %v, %v", rec, err)
	}
}

func TestSaveGameAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveGame(GameRecord{
		World:     "mansion",
		Winner:    "Alice",
		Outcome:   OutcomeWon,
		TurnsLeft: 7,
		Players: []PlayerRecord{
			{Name: "Alice", Kind: "human"},
			{Name: "Hal", Kind: "computer"},
		},
	})
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveGame() should generate an ID")
	}

	rec, err := store.GameByID(id)
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if rec == nil {
		t.Fatal("saved game not found")
	}
	if rec.World != "mansion" || rec.Winner != "Alice" || rec.Outcome != OutcomeWon || rec.TurnsLeft != 7 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if len(rec.Players) != 2 || rec.Players[1].Name != "Hal" || rec.Players[1].Kind != "computer" {
		t.Errorf("unexpected players: %+v", rec.Players)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	missing, err := store.GameByID("nope")
	if err != nil || missing != nil {
		t.Errorf("GameByID(missing) = %v, %v, want nil, nil", missing, err)
	}
}

func TestSaveGameValidation(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		name string
		rec  GameRecord
		ok   bool
	}{
		{"won without winner", GameRecord{World: "w", Outcome: OutcomeWon}, false},
		{"unknown outcome", GameRecord{World: "w", Outcome: "lost"}, false},
		{"draw", GameRecord{World: "w", Outcome: OutcomeDraw}, true},
		{"abandoned drops winner", GameRecord{World: "w", Outcome: OutcomeAbandoned, Winner: "Alice"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := store.SaveGame(tt.rec)
			if (err == nil) != tt.ok {
				t.Fatalf("SaveGame() error = %v, want ok=%v", err, tt.ok)
			}
			if !tt.ok {
				return
			}
			rec, err := store.GameByID(id)
			if err != nil || rec == nil {
				t.Fatalf("GameByID() = %v, %v", rec, err)
			}
			if rec.Winner != "" {
				t.Errorf("non-won game kept winner %q", rec.Winner)
			}
		})
	}
}

func TestSaveGameDuplicateID(t *testing.T) {
	store := openTestStore(t)

	rec := GameRecord{ID: NewGameID(), World: "w", Outcome: OutcomeDraw}
	if _, err := store.SaveGame(rec); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveGame(rec); err == nil {
		t.Error("saving the same ID twice should fail")
	}
}

func TestActions(t *testing.T) {
	store := openTestStore(t)
	gameID := NewGameID()

	log := []struct {
		player, verb, result string
	}{
		{"Alice", "move", "The Player Alice has moved to the space Attic"},
		{"Hal", "look", "The Player Hal is looking around..."},
		{"Alice", "attack", "Attack completed! The target's health has decreased."},
	}
	// Insert out of order to check sorting.
	for _, i := range []int{2, 0, 1} {
		e := log[i]
		if err := store.RecordAction(gameID, i, e.player, e.verb, e.result); err != nil {
			t.Fatalf("RecordAction() failed: %v", err)
		}
	}
	if err := store.RecordAction("other", 0, "Bob", "look", "x"); err != nil {
		t.Fatal(err)
	}

	actions, err := store.Actions(gameID)
	if err != nil {
		t.Fatalf("Actions() failed: %v", err)
	}
	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d", len(actions))
	}
	for i, a := range actions {
		if a.Seq != i || a.Player != log[i].player || a.Verb != log[i].verb || a.Result != log[i].result {
			t.Errorf("action %d = %+v", i, a)
		}
	}
}

func TestRecentGamesAndWins(t *testing.T) {
	store := openTestStore(t)

	games := []GameRecord{
		{World: "mansion", Outcome: OutcomeWon, Winner: "Alice"},
		{World: "manor", Outcome: OutcomeDraw},
		{World: "mansion", Outcome: OutcomeWon, Winner: "Hal"},
		{World: "mansion", Outcome: OutcomeWon, Winner: "Alice"},
	}
	var ids []string
	for _, g := range games {
		id, err := store.SaveGame(g)
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	recent, err := store.RecentGames(3)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 games, got %d", len(recent))
	}
	if recent[0].ID != ids[3] || recent[2].ID != ids[1] {
		t.Errorf("games should be newest first, got %s..%s", recent[0].ID, recent[2].ID)
	}

	wins, err := store.Wins(10)
	if err != nil {
		t.Fatalf("Wins() failed: %v", err)
	}
	if len(wins) != 2 {
		t.Fatalf("expected 2 winners, got %d", len(wins))
	}
	if wins[0].Player != "Alice" || wins[0].Wins != 2 {
		t.Errorf("top winner = %+v, want Alice with 2", wins[0])
	}
	if wins[1].Player != "Hal" || wins[1].Wins != 1 {
		t.Errorf("second winner = %+v, want Hal with 1", wins[1])
	}
}
