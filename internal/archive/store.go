// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps every generated blueprint in a SQLite database so
// past versions can be listed, inspected, counted, and exported.
package archive

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/blueprint-engine/pkg/types"
)

const dbFile = "blueprints.db"

// ErrNotFound is returned when no run matches an ID.
var ErrNotFound = errors.New("run not found")

// Run is one archived generation: the input form and the blueprint it
// produced, both stored as JSON.
type Run struct {
	ID        string          `json:"id"`
	Engine    types.Engine    `json:"engine"`
	Title     string          `json:"title"`
	Digest    string          `json:"digest"`
	Input     json.RawMessage `json:"input"`
	Blueprint json.RawMessage `json:"blueprint"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewRun encodes input and blueprint into an unsaved Run.
func NewRun(engine types.Engine, title string, input, blueprint any) (Run, error) {
	in, err := json.Marshal(input)
	if err != nil {
		return Run{}, fmt.Errorf("encoding input: %w", err)
	}
	bp, err := json.Marshal(blueprint)
	if err != nil {
		return Run{}, fmt.Errorf("encoding blueprint: %w", err)
	}
	return Run{
		Engine:    engine,
		Title:     title,
		Digest:    digestBytes(in),
		Input:     in,
		Blueprint: bp,
	}, nil
}

// Digest returns the hex SHA-256 of input's JSON encoding. Inputs that
// generate identical blueprints share a digest.
func Digest(input any) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encoding input: %w", err)
	}
	return digestBytes(data), nil
}

func digestBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Store manages the archive database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	now        func() time.Time
}

// NewStore opens or creates the archive at cfg.Dir/blueprints.db and
// creates the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		dir:        cfg.Dir,
		maxResults: maxResults,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			engine TEXT NOT NULL,
			title TEXT,
			digest TEXT NOT NULL,
			input TEXT NOT NULL,
			blueprint TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_engine ON runs(engine)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_digest ON runs(digest)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores run under a fresh ID and returns it with ID and CreatedAt set.
func (s *Store) Save(ctx context.Context, run Run) (Run, error) {
	if _, err := types.ParseEngine(string(run.Engine)); err != nil {
		return Run{}, err
	}
	run.ID = uuid.NewString()
	if run.CreatedAt.IsZero() {
		run.CreatedAt = s.now()
	}
	run.CreatedAt = run.CreatedAt.UTC()
	if run.Digest == "" {
		run.Digest = digestBytes(run.Input)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, engine, title, digest, input, blueprint, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, string(run.Engine), run.Title, run.Digest,
		string(run.Input), string(run.Blueprint),
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("inserting run: %w", err)
	}
	return run, nil
}

// ListOptions filters List.
type ListOptions struct {
	// Engine restricts results to one generator. Empty lists both.
	Engine types.Engine

	// Limit caps the result count. Zero uses the store default.
	Limit int
}

const runColumns = `id, engine, title, digest, input, blueprint, created_at`

// List returns runs newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]Run, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT ` + runColumns + ` FROM runs`)
	if opts.Engine != "" {
		qb.WriteString(` WHERE engine = ?`)
		args = append(args, string(opts.Engine))
	}
	qb.WriteString(` ORDER BY rowid DESC LIMIT ?`)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns the run whose ID equals id or, failing that, the only run
// whose ID starts with id.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Run{}, ErrNotFound
	}

	run, err := scanRun(s.db.QueryRowContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Run{}, err
	}

	pattern, ok := likePrefix(id)
	if !ok {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE id LIKE ? ORDER BY rowid DESC LIMIT 2`,
		pattern)
	if err != nil {
		return Run{}, fmt.Errorf("querying run: %w", err)
	}
	defer rows.Close()

	var matches []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return Run{}, err
		}
		matches = append(matches, r)
	}
	if err := rows.Err(); err != nil {
		return Run{}, fmt.Errorf("querying run: %w", err)
	}

	switch len(matches) {
	case 0:
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return Run{}, fmt.Errorf("run ID prefix %q is ambiguous", id)
	}
}

// Count returns the number of archived runs for engine, or for every engine
// when engine is empty.
func (s *Store) Count(ctx context.Context, engine types.Engine) (int, error) {
	query := `SELECT count(*) FROM runs`
	var args []any
	if engine != "" {
		query += ` WHERE engine = ?`
		args = append(args, string(engine))
	}
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting runs: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run                      Run
		engine, input, blueprint string
		title                    sql.NullString
		createdAt                string
	)
	if err := row.Scan(&run.ID, &engine, &title, &run.Digest, &input, &blueprint, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}
	run.Engine = types.Engine(engine)
	run.Title = title.String
	run.Input = json.RawMessage(input)
	run.Blueprint = json.RawMessage(blueprint)

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parsing created_at for %s: %w", run.ID, err)
	}
	run.CreatedAt = t
	return run, nil
}

// likePrefix builds a LIKE pattern matching IDs that start with s. Wildcard
// characters never occur in IDs, so they are dropped; ok is false when
// nothing is left to match on.
func likePrefix(s string) (pattern string, ok bool) {
	prefix := strings.NewReplacer(`%`, ``, `_`, ``).Replace(s)
	if prefix == "" {
		return "", false
	}
	return prefix + "%", true
}
