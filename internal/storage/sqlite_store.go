package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/denisok6893-rgb/roommate-matching/internal/domain"
)

// ErrNotFound is returned when a candidate id does not exist.
var ErrNotFound = errors.New("candidate not found")

type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	const createTable = `
CREATE TABLE IF NOT EXISTS profiles (
  id TEXT PRIMARY KEY,
  display_name TEXT NOT NULL,
  accommodation_status TEXT NOT NULL DEFAULT '',
  visible INTEGER NOT NULL DEFAULT 1,
  profile_json TEXT NOT NULL DEFAULT '{}'
);
`
	if _, err := s.db.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("create profiles table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_profiles_visible_status ON profiles(visible, accommodation_status);`); err != nil {
		return fmt.Errorf("create profiles index: %w", err)
	}
	return nil
}

func (s *SQLiteStore) CountCandidates(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&n)
	return n, err
}

// UpsertMany inserts a seed dataset without duplicating by id.
func (s *SQLiteStore) UpsertMany(ctx context.Context, items []domain.Candidate) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT OR IGNORE INTO profiles (id, display_name, accommodation_status, visible, profile_json)
VALUES (?, ?, ?, ?, ?)
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range items {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		pj, err := json.Marshal(c.Profile)
		if err != nil {
			return fmt.Errorf("marshal profile %s: %w", c.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, c.ID, c.DisplayName, string(c.AccommodationStatus), c.Visible, string(pj)); err != nil {
			return fmt.Errorf("insert profile %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

// CreateCandidate stores c, assigning a new id when it has none.
func (s *SQLiteStore) CreateCandidate(ctx context.Context, c domain.Candidate) (domain.Candidate, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	pj, err := json.Marshal(c.Profile)
	if err != nil {
		return c, fmt.Errorf("marshal profile: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO profiles (id, display_name, accommodation_status, visible, profile_json)
VALUES (?, ?, ?, ?, ?)
`, c.ID, c.DisplayName, string(c.AccommodationStatus), c.Visible, string(pj))
	return c, err
}

func (s *SQLiteStore) DeleteCandidate(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

func (s *SQLiteStore) GetCandidate(ctx context.Context, id string) (domain.Candidate, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, display_name, accommodation_status, visible, profile_json
FROM profiles WHERE id = ?
`, id)
	c, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Candidate{}, ErrNotFound
	}
	return c, err
}

func (s *SQLiteStore) ListCandidates(ctx context.Context, limit, offset int) ([]domain.Candidate, int, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	total, err := s.CountCandidates(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, display_name, accommodation_status, visible, profile_json
FROM profiles
ORDER BY id
LIMIT ? OFFSET ?
`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := scanAll(rows)
	return out, total, err
}

// ListVisible returns the discovery pool. An empty status matches any status.
func (s *SQLiteStore) ListVisible(ctx context.Context, status domain.AccommodationStatus) ([]domain.Candidate, error) {
	q := `
SELECT id, display_name, accommodation_status, visible, profile_json
FROM profiles
WHERE visible = 1`
	var args []any
	if status != "" {
		q += ` AND accommodation_status = ?`
		args = append(args, string(status))
	}
	q += "\nORDER BY id"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAll(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(sc scanner) (domain.Candidate, error) {
	var c domain.Candidate
	var status, profileJSON string
	if err := sc.Scan(&c.ID, &c.DisplayName, &status, &c.Visible, &profileJSON); err != nil {
		return domain.Candidate{}, err
	}
	c.AccommodationStatus = domain.AccommodationStatus(status)
	if err := json.Unmarshal([]byte(profileJSON), &c.Profile); err != nil {
		return domain.Candidate{}, fmt.Errorf("unmarshal profile %s: %w", c.ID, err)
	}
	return c, nil
}

func scanAll(rows *sql.Rows) ([]domain.Candidate, error) {
	out := make([]domain.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
