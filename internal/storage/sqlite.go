// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Game outcomes.
const (
	OutcomeWon       = "won"
	OutcomeDraw      = "draw"
	OutcomeAbandoned = "abandoned"
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished (or abandoned) game.
type GameRecord struct {
	ID        string
	World     string
	Winner    string // Empty unless Outcome is OutcomeWon
	Outcome   string
	TurnsLeft int
	Players   []PlayerRecord
	CreatedAt time.Time
}

// PlayerRecord is a participant of a recorded game.
type PlayerRecord struct {
	Name string
	Kind string
}

// ActionEntry is one action played during a game.
type ActionEntry struct {
	GameID    string
	Seq       int
	Player    string
	Verb      string
	Result    string
	CreatedAt time.Time
}

// WinnerStats aggregates wins for the leaderboard.
type WinnerStats struct {
	Player  string
	Wins    int
	LastWin time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			world TEXT NOT NULL,
			winner TEXT,
			outcome TEXT NOT NULL,
			turns_left INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at);
		CREATE INDEX IF NOT EXISTS idx_games_winner ON games(winner);

		CREATE TABLE IF NOT EXISTS game_players (
			game_id TEXT NOT NULL REFERENCES games(id),
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			PRIMARY KEY (game_id, position)
		);

		CREATE TABLE IF NOT EXISTS actions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			player TEXT NOT NULL,
			verb TEXT NOT NULL,
			result TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_actions_game ON actions(game_id, seq);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NewGameID returns a fresh game identifier.
func NewGameID() string {
	return uuid.NewString()
}

// SaveGame records a game and its roster. An empty ID is filled with a
// new one. Returns the ID of the stored game.
func (s *Store) SaveGame(rec GameRecord) (string, error) {
	switch rec.Outcome {
	case OutcomeWon:
		if rec.Winner == "" {
			return "", fmt.Errorf("storage: won game needs a winner")
		}
	case OutcomeDraw, OutcomeAbandoned:
		rec.Winner = ""
	default:
		return "", fmt.Errorf("storage: unknown outcome %q", rec.Outcome)
	}
	if rec.ID == "" {
		rec.ID = NewGameID()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	var winner sql.NullString
	if rec.Winner != "" {
		winner = sql.NullString{String: rec.Winner, Valid: true}
	}

	if _, err := tx.Exec(
		"INSERT INTO games (id, world, winner, outcome, turns_left) VALUES (?, ?, ?, ?, ?)",
		rec.ID, rec.World, winner, rec.Outcome, rec.TurnsLeft,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	for i, p := range rec.Players {
		if _, err := tx.Exec(
			"INSERT INTO game_players (game_id, position, name, kind) VALUES (?, ?, ?, ?)",
			rec.ID, i, p.Name, p.Kind,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save player %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return rec.ID, nil
}

// RecordAction appends one action to a game's log.
func (s *Store) RecordAction(gameID string, seq int, player, verb, result string) error {
	_, err := s.db.Exec(
		"INSERT INTO actions (game_id, seq, player, verb, result) VALUES (?, ?, ?, ?, ?)",
		gameID, seq, player, verb, result,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record action: %w", err)
	}
	return nil
}

// Actions returns the action log of a game in play order.
func (s *Store) Actions(gameID string) ([]ActionEntry, error) {
	rows, err := s.db.Query(
		`SELECT game_id, seq, player, verb, result, created_at
		 FROM actions
		 WHERE game_id = ?
		 ORDER BY seq, id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query actions: %w", err)
	}
	defer rows.Close()

	var entries []ActionEntry
	for rows.Next() {
		var e ActionEntry
		var createdAt any
		if err := rows.Scan(&e.GameID, &e.Seq, &e.Player, &e.Verb, &e.Result, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// GameByID retrieves a game by its ID. Returns nil when it does not exist.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	var rec GameRecord
	var winner sql.NullString
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, world, winner, outcome, turns_left, created_at
		 FROM games
		 WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.World, &winner, &rec.Outcome, &rec.TurnsLeft, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}

	rec.Winner = winner.String
	rec.CreatedAt = parseTime(createdAt)
	if rec.Players, err = s.players(rec.ID); err != nil {
		return nil, err
	}
	return &rec, nil
}

// RecentGames retrieves the most recent games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, world, winner, outcome, turns_left, created_at
		 FROM games
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}

	var records []GameRecord
	for rows.Next() {
		var rec GameRecord
		var winner sql.NullString
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.World, &winner, &rec.Outcome, &rec.TurnsLeft, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Winner = winner.String
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range records {
		if records[i].Players, err = s.players(records[i].ID); err != nil {
			return nil, err
		}
	}
	return records, nil
}

// Wins returns the players with the most wins, best first.
func (s *Store) Wins(limit int) ([]WinnerStats, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT winner, COUNT(*), MAX(created_at)
		 FROM games
		 WHERE outcome = ? AND winner IS NOT NULL
		 GROUP BY winner
		 ORDER BY COUNT(*) DESC, winner
		 LIMIT ?`,
		OutcomeWon, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	defer rows.Close()

	var stats []WinnerStats
	for rows.Next() {
		var ws WinnerStats
		var lastWin any
		if err := rows.Scan(&ws.Player, &ws.Wins, &lastWin); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ws.LastWin = parseTime(lastWin)
		stats = append(stats, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

func (s *Store) players(gameID string) ([]PlayerRecord, error) {
	rows, err := s.db.Query(
		"SELECT name, kind FROM game_players WHERE game_id = ? ORDER BY position",
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []PlayerRecord
	for rows.Next() {
		var p PlayerRecord
		if err := rows.Scan(&p.Name, &p.Kind); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// parseTime handles both time.Time and string datetimes returned by the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
