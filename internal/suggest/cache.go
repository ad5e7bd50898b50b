package suggest

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var cacheSchema string

// Cache stores AI-generated suggestion text keyed by rule id and model, so
// repeated scans do not re-ask the provider for the same rule.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if needed) the sqlite cache at path and applies
// the schema.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Get returns the cached suggestion text for a rule and model, if present.
func (c *Cache) Get(ctx context.Context, rule, model string) (string, bool) {
	var text string
	err := c.db.QueryRowContext(ctx,
		"SELECT text FROM suggestions WHERE rule = ? AND model = ?",
		rule, model).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return text, true
}

// Put stores suggestion text for a rule and model, replacing any prior entry.
func (c *Cache) Put(ctx context.Context, rule, model, text string) {
	c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO suggestions (rule, model, text, created_at) VALUES (?, ?, ?, ?)",
		rule, model, text, time.Now().Unix())
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
