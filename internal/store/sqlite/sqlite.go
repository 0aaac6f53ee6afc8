// Package sqlite is the single-node file-backed store adapter.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/youspace/youspace/internal/model"
	"github.com/youspace/youspace/internal/store"
)

// Open opens (or creates) a SQLite database at the given path and
// enables WAL journal mode for better read concurrency.
func Open(path string) (*sql.DB, error) {
	// ensure parent directory exists to avoid SQLITE_CANTOPEN errors
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the tables if they do not exist.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS memories (
            id           TEXT PRIMARY KEY,
            space_id     TEXT NOT NULL,
            display_name TEXT NOT NULL,
            note         TEXT NOT NULL,
            photo_url    TEXT NOT NULL,
            created_at   TIMESTAMP NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS memories_space_id_idx ON memories (space_id, created_at);`,
		`CREATE TABLE IF NOT EXISTS generated_stories (
            id         TEXT PRIMARY KEY,
            space_id   TEXT NOT NULL UNIQUE,
            mode       TEXT NOT NULL,
            title      TEXT NOT NULL,
            content    TEXT NOT NULL DEFAULT '',
            captions   TEXT,
            created_at TIMESTAMP NOT NULL
        );`,
	}
	for _, q := range stmts {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// New opens the database at path, ensures the schema and returns the
// store.
func New(path string) (store.Store, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return NewWithDB(db), nil
}

// NewWithDB allows wiring with an existing connection (used by tests).
func NewWithDB(db *sql.DB) store.Store { return &sqliteStore{db: db} }

type sqliteStore struct{ db *sql.DB }

func (s *sqliteStore) Memories() store.Memories { return &memories{db: s.db} }
func (s *sqliteStore) Stories() store.Stories   { return &stories{db: s.db} }

// HealthPing implements store.HealthPinger.
func (s *sqliteStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type memories struct{ db *sql.DB }

func (m *memories) Create(ctx context.Context, in *model.Memory) (*model.Memory, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := time.Now().UTC()
	_, err := m.db.ExecContext(ctx, `
        INSERT INTO memories (id, space_id, display_name, note, photo_url, created_at)
        VALUES (?,?,?,?,?,?)
    `, id, in.SpaceID, in.DisplayName, in.Note, in.PhotoURL, now)
	if err != nil {
		return nil, err
	}
	out := *in
	out.ID = id
	out.CreatedAt = now
	return &out, nil
}

func (m *memories) ListBySpace(ctx context.Context, spaceID string) ([]*model.Memory, error) {
	rows, err := m.db.QueryContext(ctx, `
        SELECT id, display_name, note, photo_url, created_at
        FROM memories WHERE space_id=? ORDER BY created_at ASC, id ASC
    `, spaceID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	res := make([]*model.Memory, 0)
	for rows.Next() {
		mem := &model.Memory{SpaceID: spaceID}
		if err := rows.Scan(&mem.ID, &mem.DisplayName, &mem.Note, &mem.PhotoURL, &mem.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, mem)
	}
	return res, rows.Err()
}

type stories struct{ db *sql.DB }

func (s *stories) Upsert(ctx context.Context, in *model.GeneratedStory) (*model.GeneratedStory, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	var captions any
	if in.Captions != nil {
		b, err := json.Marshal(in.Captions)
		if err != nil {
			return nil, fmt.Errorf("marshal captions: %w", err)
		}
		captions = string(b)
	}
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO generated_stories (id, space_id, mode, title, content, captions, created_at)
        VALUES (?,?,?,?,?,?,?)
        ON CONFLICT (space_id) DO UPDATE SET
            mode = excluded.mode,
            title = excluded.title,
            content = excluded.content,
            captions = excluded.captions,
            created_at = excluded.created_at
    `, id, in.SpaceID, string(in.Mode), in.Title, in.Content, captions, now)
	if err != nil {
		return nil, err
	}
	// The stored id may predate this call when the row already existed.
	return s.GetBySpace(ctx, in.SpaceID)
}

func (s *stories) GetBySpace(ctx context.Context, spaceID string) (*model.GeneratedStory, error) {
	out := &model.GeneratedStory{SpaceID: spaceID}
	var mode string
	var captions sql.NullString
	row := s.db.QueryRowContext(ctx, `
        SELECT id, mode, title, content, captions, created_at
        FROM generated_stories WHERE space_id=?
    `, spaceID)
	if err := row.Scan(&out.ID, &mode, &out.Title, &out.Content, &captions, &out.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	out.Mode = model.StoryMode(mode)
	if captions.Valid && captions.String != "" {
		if err := json.Unmarshal([]byte(captions.String), &out.Captions); err != nil {
			return nil, fmt.Errorf("unmarshal captions: %w", err)
		}
	}
	return out, nil
}
