// Package storage provides SQLite-based persistence for replay journals.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mkorolev/riverhop/internal/game"
)

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayEntry describes one saved run without its command journal.
type ReplayEntry struct {
	ID        int64
	Variant   string
	Score     int
	Ticks     uint64
	Commands  int
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_variant ON replays(variant);
		CREATE INDEX IF NOT EXISTS idx_replays_recent ON replays(created_at DESC);

		CREATE TABLE IF NOT EXISTS replay_commands (
			replay_id INTEGER NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			at_tick INTEGER NOT NULL,
			axis TEXT NOT NULL,
			delta INTEGER NOT NULL,
			PRIMARY KEY (replay_id, seq)
		);
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

// SaveReplay records a finished run's journal for the given variant.
// The header row and the command rows are written in one transaction.
// Returns the ID of the inserted replay.
func (s *Store) SaveReplay(variant string, score int, rec game.Recording) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		"INSERT INTO replays (variant, score, ticks) VALUES (?, ?, ?)",
		variant, score, rec.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO replay_commands (replay_id, seq, at_tick, axis, delta) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare command insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range rec.Commands {
		if _, err := stmt.Exec(id, c.Seq, c.AtTick, c.Axis.String(), c.Delta); err != nil {
			return 0, fmt.Errorf("storage: cannot save command %d: %w", c.Seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit replay: %w", err)
	}

	return id, nil
}

// ListReplays retrieves the most recent replays for the given variant.
// An empty variant lists every replay. Results are newest first.
func (s *Store) ListReplays(variant string, limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT r.id, r.variant, r.score, r.ticks,
	                 (SELECT COUNT(*) FROM replay_commands c WHERE c.replay_id = r.id),
	                 r.created_at
	          FROM replays r`
	args := []any{}
	if variant != "" {
		query += " WHERE r.variant = ?"
		args = append(args, variant)
	}
	query += " ORDER BY r.created_at DESC, r.id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		var e ReplayEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Variant, &e.Score, &e.Ticks, &e.Commands, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// LoadReplay retrieves one replay's header and full command journal.
// Returns a nil entry when the ID does not exist.
func (s *Store) LoadReplay(id int64) (*ReplayEntry, game.Recording, error) {
	var e ReplayEntry
	var createdAt any

	err := s.db.QueryRow(
		"SELECT id, variant, score, ticks, created_at FROM replays WHERE id = ?",
		id,
	).Scan(&e.ID, &e.Variant, &e.Score, &e.Ticks, &createdAt)

	if err == sql.ErrNoRows {
		return nil, game.Recording{}, nil
	}
	if err != nil {
		return nil, game.Recording{}, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	e.CreatedAt = parseTimestamp(createdAt)

	rows, err := s.db.Query(
		"SELECT seq, at_tick, axis, delta FROM replay_commands WHERE replay_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return nil, game.Recording{}, fmt.Errorf("storage: cannot query commands: %w", err)
	}
	defer rows.Close()

	rec := game.Recording{Ticks: e.Ticks}
	for rows.Next() {
		var c game.RecordedCommand
		var axis string
		if err := rows.Scan(&c.Seq, &c.AtTick, &axis, &c.Delta); err != nil {
			return nil, game.Recording{}, fmt.Errorf("storage: cannot scan command: %w", err)
		}
		c.Axis = game.ParseAxis(axis)
		rec.Commands = append(rec.Commands, c)
	}

	if err := rows.Err(); err != nil {
		return nil, game.Recording{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	e.Commands = len(rec.Commands)
	return &e, rec, nil
}

// DeleteReplay removes one replay and its commands.
func (s *Store) DeleteReplay(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The cascade does not fire unless foreign keys are enabled for the
	// connection, so the commands are removed explicitly.
	if _, err := tx.Exec("DELETE FROM replay_commands WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete commands: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM replays WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}

	return tx.Commit()
}

// ClearReplays deletes all replays for the given variant, or every replay
// when the variant is empty.
func (s *Store) ClearReplays(variant string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if variant == "" {
		if _, err := tx.Exec("DELETE FROM replay_commands"); err != nil {
			return fmt.Errorf("storage: cannot clear commands: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM replays"); err != nil {
			return fmt.Errorf("storage: cannot clear replays: %w", err)
		}
	} else {
		if _, err := tx.Exec(
			"DELETE FROM replay_commands WHERE replay_id IN (SELECT id FROM replays WHERE variant = ?)",
			variant,
		); err != nil {
			return fmt.Errorf("storage: cannot clear commands: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM replays WHERE variant = ?", variant); err != nil {
			return fmt.Errorf("storage: cannot clear replays: %w", err)
		}
	}

	return tx.Commit()
}

// BestScore returns the highest saved score for the given variant.
// Returns 0 if no replays exist.
func (s *Store) BestScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM replays WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or string.
func parseTimestamp(v any) time.Time {
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
