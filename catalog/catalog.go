// Package catalog is an optional SQLite ledger of completed conversions.
// Batch tooling uses it to skip inputs whose content hash has not changed
// since the last successful run. The conversion pipeline itself never
// touches it.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Conversion statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Conversion represents a row in the conversions table.
type Conversion struct {
	ID            string `json:"id"`
	Path          string `json:"path"`
	Filename      string `json:"filename"`
	ContentHash   string `json:"content_hash"`
	OutputPath    string `json:"output_path"`
	TotalPages    int    `json:"total_pages"`
	TotalChars    int    `json:"total_characters"`
	PagesWithText int    `json:"pages_with_extractable_text"`
	Status        string `json:"status"`
	DurationMs    int64  `json:"duration_ms"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// Catalog wraps the SQLite database.
type Catalog struct {
	db *sql.DB
}

// New opens (or creates) a SQLite database at the given path and
// initialises the schema.
func New(dbPath string) (*Catalog, error) {
	// Ensure parent directory exists
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=30000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	// Connection pool settings for SQLite.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	c := &Catalog{db: db}

	// Run pending migrations.
	if err := c.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// Close closes the underlying database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// DB returns the underlying *sql.DB for advanced queries.
func (c *Catalog) DB() *sql.DB {
	return c.db
}

// Upsert inserts or updates the conversion record for a path. Returns the
// record ID. A new row gets a generated UUID; updating an existing path
// keeps its ID.
func (c *Catalog) Upsert(ctx context.Context, conv Conversion) (string, error) {
	if conv.ID == "" {
		conv.ID = uuid.NewString()
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO conversions (id, path, filename, content_hash, output_path,
			total_pages, total_characters, pages_with_text, status, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			filename = excluded.filename,
			content_hash = excluded.content_hash,
			output_path = excluded.output_path,
			total_pages = excluded.total_pages,
			total_characters = excluded.total_characters,
			pages_with_text = excluded.pages_with_text,
			status = excluded.status,
			duration_ms = excluded.duration_ms,
			updated_at = CURRENT_TIMESTAMP
	`, conv.ID, conv.Path, conv.Filename, conv.ContentHash, conv.OutputPath,
		conv.TotalPages, conv.TotalChars, conv.PagesWithText, conv.Status, conv.DurationMs)
	if err != nil {
		return "", err
	}

	// If the UPSERT updated an existing row, the stored ID wins.
	var id string
	row := c.db.QueryRowContext(ctx, "SELECT id FROM conversions WHERE path = ?", conv.Path)
	if err := row.Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// GetByPath retrieves a conversion record by its input path.
func (c *Catalog) GetByPath(ctx context.Context, path string) (*Conversion, error) {
	conv := &Conversion{}
	err := c.db.QueryRowContext(ctx, `
		SELECT id, path, filename, content_hash, output_path,
			total_pages, total_characters, pages_with_text, status, duration_ms,
			created_at, updated_at
		FROM conversions WHERE path = ?
	`, path).Scan(&conv.ID, &conv.Path, &conv.Filename, &conv.ContentHash,
		&conv.OutputPath, &conv.TotalPages, &conv.TotalChars, &conv.PagesWithText,
		&conv.Status, &conv.DurationMs, &conv.CreatedAt, &conv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return conv, nil
}

// List returns all conversion records ordered by last update, newest first.
func (c *Catalog) List(ctx context.Context) ([]Conversion, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, path, filename, content_hash, output_path,
			total_pages, total_characters, pages_with_text, status, duration_ms,
			created_at, updated_at
		FROM conversions ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var convs []Conversion
	for rows.Next() {
		var cv Conversion
		if err := rows.Scan(&cv.ID, &cv.Path, &cv.Filename, &cv.ContentHash,
			&cv.OutputPath, &cv.TotalPages, &cv.TotalChars, &cv.PagesWithText,
			&cv.Status, &cv.DurationMs, &cv.CreatedAt, &cv.UpdatedAt); err != nil {
			return nil, err
		}
		convs = append(convs, cv)
	}
	return convs, rows.Err()
}

// Delete removes a conversion record by ID.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM conversions WHERE id = ?", id)
	return err
}

// Unchanged reports whether path was already converted successfully with
// the given content hash.
func (c *Catalog) Unchanged(ctx context.Context, path, hash string) bool {
	existing, err := c.GetByPath(ctx, path)
	if err != nil {
		return false
	}
	return existing.Status == StatusSuccess && existing.ContentHash == hash
}
