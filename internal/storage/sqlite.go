// Package storage provides SQLite-based persistence for country packs.
// A pack is a named country list that can be played instead of the
// bundled data. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flags/internal/countries"
)

// ErrPackNotFound is returned when no pack has the requested name.
var ErrPackNotFound = errors.New("storage: pack not found")

// Store manages the SQLite database connection for country packs.
type Store struct {
	db *sql.DB
}

// PackInfo summarizes one stored pack.
type PackInfo struct {
	ID        int64
	Name      string
	Count     int
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

	// Open database
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

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS packs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pack_countries (
			pack_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			code TEXT NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (pack_id, position)
		);
		CREATE INDEX IF NOT EXISTS idx_pack_countries_pack ON pack_countries(pack_id);
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

// SavePack stores pool under name, replacing any pack with the same name.
// Returns the ID of the new pack.
func (s *Store) SavePack(name string, pool countries.Pool) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.New("storage: pack name is empty")
	}
	if pool.Len() == 0 {
		return 0, fmt.Errorf("storage: cannot save pack %q: %w", name, countries.ErrEmptyPool)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deletePack(tx, name); err != nil && !errors.Is(err, ErrPackNotFound) {
		return 0, err
	}

	result, err := tx.Exec("INSERT INTO packs (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save pack: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO pack_countries (pack_id, position, code, name) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range pool.Countries() {
		if _, err := stmt.Exec(id, i, c.Code, c.Name); err != nil {
			return 0, fmt.Errorf("storage: cannot save country %s: %w", c.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit pack: %w", err)
	}
	return id, nil
}

// LoadPack returns the countries stored under name, in saved order.
func (s *Store) LoadPack(name string) (countries.Pool, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM packs WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return countries.Pool{}, fmt.Errorf("%w: %q", ErrPackNotFound, name)
	}
	if err != nil {
		return countries.Pool{}, fmt.Errorf("storage: cannot query pack: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT code, name
		 FROM pack_countries
		 WHERE pack_id = ?
		 ORDER BY position`,
		id,
	)
	if err != nil {
		return countries.Pool{}, fmt.Errorf("storage: cannot query pack countries: %w", err)
	}
	defer rows.Close()

	var entries []countries.Country
	for rows.Next() {
		var c countries.Country
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return countries.Pool{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, c)
	}
	if err := rows.Err(); err != nil {
		return countries.Pool{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return countries.NewPool(entries), nil
}

// HasPack reports whether a pack named name is stored.
func (s *Store) HasPack(name string) (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM packs WHERE name = ?", strings.TrimSpace(name)).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query pack: %w", err)
	}
	return n > 0, nil
}

// Packs lists stored packs ordered by name.
func (s *Store) Packs() ([]PackInfo, error) {
	rows, err := s.db.Query(
		`SELECT p.id, p.name, COUNT(c.code), p.created_at
		 FROM packs p
		 LEFT JOIN pack_countries c ON c.pack_id = p.id
		 GROUP BY p.id
		 ORDER BY p.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var packs []PackInfo
	for rows.Next() {
		var p PackInfo
		var createdAt any
		if err := rows.Scan(&p.ID, &p.Name, &p.Count, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTimestamp(createdAt)
		packs = append(packs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return packs, nil
}

// DeletePack removes a pack and its countries.
func (s *Store) DeletePack(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deletePack(tx, name); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

func deletePack(tx *sql.Tx, name string) error {
	var id int64
	err := tx.QueryRow("SELECT id FROM packs WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %q", ErrPackNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot query pack: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM pack_countries WHERE pack_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete pack countries: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM packs WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete pack: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetimes from the driver.
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
