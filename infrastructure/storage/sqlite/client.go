// ABOUTME: SQLite-backed key-value store for persistent session state
// ABOUTME: The file-based store lets the session survive process restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"barangay-app-client/core/interfaces"

	_ "github.com/mattn/go-sqlite3"
)

// Client implements the KeyValueStore interface using SQLite.
type Client struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteStore creates a new SQLite store backed by the given file.
func NewSQLiteStore(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "portal.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return client, nil
}

// initSchema creates the store table if it doesn't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS local_store (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL
		);
	`

	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value by key.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte
	err := c.db.QueryRowContext(ctx, "SELECT value FROM local_store WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, interfaces.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set stores a value under the given key, replacing any previous value.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT INTO local_store (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}

// Delete removes a key. Absent keys are not an error.
func (c *Client) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	_, err := c.db.ExecContext(ctx, "DELETE FROM local_store WHERE key = ?", key)
	return err
}

// Close closes the underlying database.
func (c *Client) Close() error {
	return c.db.Close()
}
