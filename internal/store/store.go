package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"beenama/internal/media"
)

// Store persists the TMDB session and playback resume points in a
// local sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS session (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			session_id TEXT NOT NULL,
			account_id INTEGER NOT NULL,
			username TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS resume (
			media_id INTEGER NOT NULL,
			media_type TEXT NOT NULL,
			season INTEGER NOT NULL DEFAULT 0,
			episode INTEGER NOT NULL DEFAULT 0,
			title TEXT NOT NULL,
			position_ms INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			updated_at INTEGER NOT NULL DEFAULT (unixepoch()),
			PRIMARY KEY (media_id, media_type, season, episode)
		);

		CREATE INDEX IF NOT EXISTS idx_resume_updated ON resume(updated_at);
	`)
	if err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// Session is the stored TMDB session.
type Session struct {
	SessionID string
	AccountID int64
	Username  string
}

// SaveSession stores the session, replacing any previous one.
func (s *Store) SaveSession(sess Session) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, session_id, account_id, username)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			session_id = excluded.session_id,
			account_id = excluded.account_id,
			username = excluded.username
	`, sess.SessionID, sess.AccountID, sess.Username)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// LoadSession returns the stored session, or nil when not logged in.
func (s *Store) LoadSession() (*Session, error) {
	var sess Session
	err := s.db.QueryRow(`SELECT session_id, account_id, username FROM session WHERE id = 1`).
		Scan(&sess.SessionID, &sess.AccountID, &sess.Username)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &sess, nil
}

// ClearSession removes the stored session.
func (s *Store) ClearSession() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// SaveResume upserts a resume point. Positions in the final 5% of a
// title are treated as finished and remove the entry instead.
func (s *Store) SaveResume(e media.ResumeEntry) error {
	if e.DurationMillis > 0 && e.PositionMillis >= e.DurationMillis*95/100 {
		return s.DeleteResume(e.MediaID, e.Type, e.Season, e.Episode)
	}

	_, err := s.db.Exec(`
		INSERT INTO resume (media_id, media_type, season, episode, title, position_ms, duration_ms, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, unixepoch())
		ON CONFLICT(media_id, media_type, season, episode) DO UPDATE SET
			title = excluded.title,
			position_ms = excluded.position_ms,
			duration_ms = excluded.duration_ms,
			updated_at = excluded.updated_at
	`, e.MediaID, e.Type.String(), e.Season, e.Episode, e.Title, e.PositionMillis, e.DurationMillis)
	if err != nil {
		return fmt.Errorf("failed to save resume point: %w", err)
	}
	return nil
}

// Resume returns the stored resume point for an item, or nil.
func (s *Store) Resume(mediaID int64, mt media.MediaType, season, episode int) (*media.ResumeEntry, error) {
	row := s.db.QueryRow(`
		SELECT media_id, media_type, season, episode, title, position_ms, duration_ms
		FROM resume
		WHERE media_id = ? AND media_type = ? AND season = ? AND episode = ?
	`, mediaID, mt.String(), season, episode)

	entry, err := scanResume(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load resume point: %w", err)
	}
	return entry, nil
}

// ListResume returns resume points ordered by recency, newest first.
func (s *Store) ListResume(limit int) ([]media.ResumeEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT media_id, media_type, season, episode, title, position_ms, duration_ms
		FROM resume
		ORDER BY updated_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume points: %w", err)
	}
	defer rows.Close()

	var out []media.ResumeEntry
	for rows.Next() {
		entry, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume point: %w", err)
		}
		out = append(out, *entry)
	}
	return out, rows.Err()
}

// DeleteResume removes one resume point.
func (s *Store) DeleteResume(mediaID int64, mt media.MediaType, season, episode int) error {
	_, err := s.db.Exec(`
		DELETE FROM resume
		WHERE media_id = ? AND media_type = ? AND season = ? AND episode = ?
	`, mediaID, mt.String(), season, episode)
	if err != nil {
		return fmt.Errorf("failed to delete resume point: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResume(row scanner) (*media.ResumeEntry, error) {
	var (
		e      media.ResumeEntry
		rawType string
	)
	if err := row.Scan(&e.MediaID, &rawType, &e.Season, &e.Episode, &e.Title, &e.PositionMillis, &e.DurationMillis); err != nil {
		return nil, err
	}
	mt, err := media.ParseMediaType(rawType)
	if err != nil {
		return nil, err
	}
	e.Type = mt
	return &e, nil
}
