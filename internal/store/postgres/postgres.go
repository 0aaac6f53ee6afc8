package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/youspace/youspace/internal/model"
	"github.com/youspace/youspace/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and
// verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the two tables when absent. Idempotent; safe to
// run at every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS memories (
            id           TEXT PRIMARY KEY,
            space_id     TEXT NOT NULL,
            display_name TEXT NOT NULL,
            note         TEXT NOT NULL,
            photo_url    TEXT NOT NULL,
            created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
		`CREATE INDEX IF NOT EXISTS memories_space_id_idx ON memories (space_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS generated_stories (
            id         TEXT PRIMARY KEY,
            space_id   TEXT NOT NULL UNIQUE,
            mode       TEXT NOT NULL,
            title      TEXT NOT NULL,
            content    TEXT NOT NULL DEFAULT '',
            captions   JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// NewWithDB constructs a Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Memories() store.Memories { return &memories{db: s.db} }
func (s *pgStore) Stories() store.Stories   { return &stories{db: s.db} }

// HealthPing implements store.HealthPinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type memories struct{ db *sql.DB }

func (m *memories) Create(ctx context.Context, in *model.Memory) (*model.Memory, error) {
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	var created time.Time
	row := m.db.QueryRowContext(ctx, `
        INSERT INTO memories (id, space_id, display_name, note, photo_url)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at
    `, id, in.SpaceID, in.DisplayName, in.Note, in.PhotoURL)
	if err := row.Scan(&created); err != nil {
		return nil, err
	}
	out := *in
	out.ID = id
	out.CreatedAt = created
	return &out, nil
}

func (m *memories) ListBySpace(ctx context.Context, spaceID string) ([]*model.Memory, error) {
	rows, err := m.db.QueryContext(ctx, `
        SELECT id, display_name, note, photo_url, created_at
        FROM memories WHERE space_id=$1 ORDER BY created_at ASC, id ASC
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
	var captions []byte
	if in.Captions != nil {
		b, err := json.Marshal(in.Captions)
		if err != nil {
			return nil, fmt.Errorf("marshal captions: %w", err)
		}
		captions = b
	}
	// ON CONFLICT keeps the existing row id so the record is replaced
	// in place, never duplicated.
	var outID string
	var created time.Time
	row := s.db.QueryRowContext(ctx, `
        INSERT INTO generated_stories (id, space_id, mode, title, content, captions, created_at)
        VALUES ($1,$2,$3,$4,$5,$6, now())
        ON CONFLICT (space_id) DO UPDATE SET
            mode = EXCLUDED.mode,
            title = EXCLUDED.title,
            content = EXCLUDED.content,
            captions = EXCLUDED.captions,
            created_at = EXCLUDED.created_at
        RETURNING id, created_at
    `, id, in.SpaceID, string(in.Mode), in.Title, in.Content, captions)
	if err := row.Scan(&outID, &created); err != nil {
		return nil, err
	}
	out := *in
	out.ID = outID
	out.CreatedAt = created
	return &out, nil
}

func (s *stories) GetBySpace(ctx context.Context, spaceID string) (*model.GeneratedStory, error) {
	out := &model.GeneratedStory{SpaceID: spaceID}
	var mode string
	var captions []byte
	row := s.db.QueryRowContext(ctx, `
        SELECT id, mode, title, content, captions, created_at
        FROM generated_stories WHERE space_id=$1
    `, spaceID)
	if err := row.Scan(&out.ID, &mode, &out.Title, &out.Content, &captions, &out.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	out.Mode = model.StoryMode(mode)
	if len(captions) > 0 {
		if err := json.Unmarshal(captions, &out.Captions); err != nil {
			return nil, fmt.Errorf("unmarshal captions: %w", err)
		}
	}
	return out, nil
}
