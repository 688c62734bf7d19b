// Package storage provides SQLite-based persistence for match replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// A replay is the seed a session started from plus the per-tick paddle key
// masks, run-length encoded. Replaying the inputs through a fresh session of
// the same variant and config reproduces the match; FinalHash detects
// divergence.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrReplayNotFound is returned when no replay matches the requested ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

// ErrAmbiguousID is returned when an ID prefix matches more than one replay.
var ErrAmbiguousID = errors.New("storage: ambiguous replay id")

// Store manages the SQLite database connection for the replay journal.
type Store struct {
	db *sql.DB
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

	// Test connection
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
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			final_hash TEXT NOT NULL,
			config TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);

		CREATE TABLE IF NOT EXISTS replay_inputs (
			replay_id TEXT NOT NULL REFERENCES replays(id) ON DELETE CASCADE,
			seq INTEGER NOT NULL,
			mask INTEGER NOT NULL,
			run INTEGER NOT NULL,
			PRIMARY KEY (replay_id, seq)
		);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	// Journals created before configs were recorded lack the column.
	return s.addColumnIfMissing("replays", "config", "TEXT NOT NULL DEFAULT ''")
}

// addColumnIfMissing adds column to table unless it already exists.
func (s *Store) addColumnIfMissing(table, column, decl string) error {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?",
		table, column,
	).Scan(&n)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	_, err = s.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, decl))
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay stores a finished recording with all of its input runs.
func (s *Store) SaveReplay(r Replay) error {
	if r.ID == "" {
		return fmt.Errorf("storage: replay has no id")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO replays (id, variant, seed, tick_rate, ticks, final_hash, config)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Variant, r.Seed, r.TickRate, r.Ticks, strconv.FormatUint(r.FinalHash, 16), string(r.Config),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save replay: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO replay_inputs (replay_id, seq, mask, run) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare input insert: %w", err)
	}
	defer stmt.Close()

	for i, run := range r.Inputs {
		if _, err := stmt.Exec(r.ID, i, int(run.Mask), run.Ticks); err != nil {
			return fmt.Errorf("storage: cannot save replay input: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return nil
}

// Replay loads a replay and its inputs. idOrPrefix may be a full ID or a
// unique prefix of one.
func (s *Store) Replay(idOrPrefix string) (Replay, error) {
	id, err := s.resolveID(idOrPrefix)
	if err != nil {
		return Replay{}, err
	}

	var r Replay
	var hash, cfg string
	var createdAt any
	err = s.db.QueryRow(
		`SELECT id, variant, seed, tick_rate, ticks, final_hash, config, created_at
		 FROM replays WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Variant, &r.Seed, &r.TickRate, &r.Ticks, &hash, &cfg, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Replay{}, ErrReplayNotFound
	}
	if err != nil {
		return Replay{}, fmt.Errorf("storage: cannot query replay: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	if cfg != "" {
		r.Config = []byte(cfg)
	}
	if r.FinalHash, err = strconv.ParseUint(hash, 16, 64); err != nil {
		return Replay{}, fmt.Errorf("storage: corrupt hash for replay %s: %w", id, err)
	}

	rows, err := s.db.Query(
		"SELECT mask, run FROM replay_inputs WHERE replay_id = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return Replay{}, fmt.Errorf("storage: cannot query replay inputs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mask, run int
		if err := rows.Scan(&mask, &run); err != nil {
			return Replay{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Inputs = append(r.Inputs, InputRun{Mask: uint8(mask), Ticks: run}) //nolint:gosec // masks are 4 bits
	}

	if err := rows.Err(); err != nil {
		return Replay{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return r, nil
}

// resolveID expands a prefix into the single replay ID it matches.
func (s *Store) resolveID(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrReplayNotFound
	}

	rows, err := s.db.Query("SELECT id FROM replays WHERE substr(id, 1, ?) = ? LIMIT 2", len(prefix), prefix)
	if err != nil {
		return "", fmt.Errorf("storage: cannot query replay ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("storage: row iteration error: %w", err)
	}

	switch len(ids) {
	case 0:
		return "", ErrReplayNotFound
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("%w: %q", ErrAmbiguousID, prefix)
	}
}

// ListReplays returns the most recent replays, newest first, without their
// inputs.
func (s *Store) ListReplays(limit int) ([]Replay, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant, seed, tick_rate, ticks, final_hash, created_at
		 FROM replays
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var replays []Replay
	for rows.Next() {
		var r Replay
		var hash string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Seed, &r.TickRate, &r.Ticks, &hash, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.FinalHash, _ = strconv.ParseUint(hash, 16, 64)
		r.CreatedAt = parseTime(createdAt)
		replays = append(replays, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return replays, nil
}

// DeleteReplay removes a replay and its inputs.
func (s *Store) DeleteReplay(idOrPrefix string) error {
	id, err := s.resolveID(idOrPrefix)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM replay_inputs WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay inputs: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM replays WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
