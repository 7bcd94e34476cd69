// Package store persists the class timetable and the history of tracked
// sessions in a BoltDB file
package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/classfocus/internal/osutil"
)

const (
	kvBucket      = "kv"
	historyBucket = "history"

	// timetableKey holds the JSON array of class sessions.
	timetableKey = "timetable"
)

const lockTimeout = 1 * time.Second

// Client is a BoltDB client. Each operation opens the database for its own
// duration so that a running tracker never holds the file lock for long.
type Client struct {
	path string
}

// NewClient creates the database at dbPath if needed, along with its buckets.
func NewClient(dbPath string) (*Client, error) {
	err := os.MkdirAll(filepath.Dir(dbPath), osutil.DirPermission)
	if err != nil {
		return nil, err
	}

	db, err := openDB(dbPath, false)
	if err != nil {
		return nil, err
	}

	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{kvBucket, historyBucket} {
			_, err := tx.CreateBucketIfNotExists([]byte(name))
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Client{path: dbPath}, nil
}

// Path returns the location of the database file.
func (c *Client) Path() string {
	return c.path
}

func (c *Client) view(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	return c.with(ctx, true, func(db *bolt.DB) error {
		return db.View(fn)
	})
}

func (c *Client) update(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	return c.with(ctx, false, func(db *bolt.DB) error {
		return db.Update(fn)
	})
}

func (c *Client) with(
	ctx context.Context,
	readOnly bool,
	fn func(db *bolt.DB) error,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db, err := openDB(c.path, readOnly)
	if err != nil {
		return err
	}

	defer db.Close()

	return fn(db)
}

// openDB opens the database file. Writers take an exclusive lock and readers
// a shared one.
func openDB(path string, readOnly bool) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: lockTimeout, ReadOnly: readOnly},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, ErrDatabaseLocked
		}

		return nil, err
	}

	return db, nil
}

func bucket(tx *bolt.Tx, name string) (*bolt.Bucket, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, errBucketMissing.Fmt(name)
	}

	return b, nil
}
