package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/wordpass/wordpass/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS wordlists (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL UNIQUE,
		source      TEXT,
		word_count  INTEGER NOT NULL,
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS wordlist_words (
		wordlist_id TEXT NOT NULL REFERENCES wordlists(id) ON DELETE CASCADE,
		seq         INTEGER NOT NULL,
		word        TEXT NOT NULL,
		PRIMARY KEY (wordlist_id, seq)
	);
	CREATE INDEX IF NOT EXISTS idx_words_list ON wordlist_words(wordlist_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Save(ctx context.Context, p SaveParams) (*model.Wordlist, error) {
	if p.Name == "" {
		return nil, fmt.Errorf("wordlist name is required")
	}
	if len(p.Words) == 0 {
		return nil, fmt.Errorf("wordlist %q has no words", p.Name)
	}

	now := time.Now().UTC()
	id := s.newID()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Replace any existing list with the same name.
	var prevID string
	err = tx.QueryRowContext(ctx, `SELECT id FROM wordlists WHERE name = ?`, p.Name).Scan(&prevID)
	if err == nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM wordlist_words WHERE wordlist_id = ?`, prevID); err != nil {
			return nil, fmt.Errorf("delete previous words: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM wordlists WHERE id = ?`, prevID); err != nil {
			return nil, fmt.Errorf("delete previous list: %w", err)
		}
	}

	var sourcePtr *string
	if p.Source != "" {
		sourcePtr = &p.Source
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO wordlists (id, name, source, word_count, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, p.Name, sourcePtr, len(p.Words), now.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("insert wordlist: %w", err)
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO wordlist_words (wordlist_id, seq, word) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, err
	}
	defer insert.Close()

	for i, w := range p.Words {
		if _, err := insert.ExecContext(ctx, id, i, w); err != nil {
			return nil, fmt.Errorf("insert word %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Wordlist{
		ID:        id,
		Name:      p.Name,
		Source:    p.Source,
		WordCount: len(p.Words),
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) Words(ctx context.Context, name string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT w.word FROM wordlist_words w
		 INNER JOIN wordlists l ON w.wordlist_id = l.id
		 WHERE l.name = ?
		 ORDER BY w.seq`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("wordlist not found: %s", name)
	}
	return words, nil
}

func (s *SQLiteStore) List(ctx context.Context) ([]model.Wordlist, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, source, word_count, created_at FROM wordlists ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lists []model.Wordlist
	for rows.Next() {
		var l model.Wordlist
		var source sql.NullString
		var createdAt string
		if err := rows.Scan(&l.ID, &l.Name, &source, &l.WordCount, &createdAt); err != nil {
			return nil, err
		}
		if source.Valid {
			l.Source = source.String
		}
		l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		lists = append(lists, l)
	}
	return lists, rows.Err()
}

func (s *SQLiteStore) Rm(ctx context.Context, name string) error {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM wordlists WHERE name = ?`, name).Scan(&id)
	if err != nil {
		return fmt.Errorf("wordlist not found: %s", name)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM wordlist_words WHERE wordlist_id = ?`, id); err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `DELETE FROM wordlists WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
