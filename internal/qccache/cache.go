// Package qccache is a local SQLite cache of validation results, keyed
// by file content and metadata snapshot so a re-run over an unchanged
// batch skips re-validation.
package qccache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/edafy/ingest-cli/internal/qc"
)

// Cache stores QC results in a local SQLite database.
type Cache struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at the given path and
// applies its schema.
func Open(dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "qccache: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close() //nolint:errcheck
			return nil, eris.Wrapf(err, "qccache: exec %s", pragma)
		}
	}

	c := &Cache{db: db}
	if err := c.migrate(); err != nil {
		db.Close() //nolint:errcheck
		return nil, err
	}
	return c, nil
}

const cacheMigration = `
CREATE TABLE IF NOT EXISTS qc_results (
	file_hash     TEXT NOT NULL,
	snapshot_hash TEXT NOT NULL,
	format        TEXT NOT NULL,
	result        TEXT NOT NULL,
	created_at    DATETIME NOT NULL DEFAULT (datetime('now')),
	PRIMARY KEY (file_hash, snapshot_hash)
);
`

func (c *Cache) migrate() error {
	_, err := c.db.Exec(cacheMigration)
	return eris.Wrap(err, "qccache: migrate")
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key identifies one cached validation: the file's content hash plus a
// hash of the metadata record the validation saw. Editing metadata or
// replacing the file both miss.
type Key struct {
	FileHash     string
	SnapshotHash string
}

// KeyFor computes the cache key for a file path and its metadata
// record.
func KeyFor(filePath string, record any) (Key, error) {
	fh, err := hashFile(filePath)
	if err != nil {
		return Key{}, err
	}
	sh, err := hashSnapshot(record)
	if err != nil {
		return Key{}, err
	}
	return Key{FileHash: fh, SnapshotHash: sh}, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", eris.Wrapf(err, "qccache: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", eris.Wrapf(err, "qccache: hash %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func hashSnapshot(record any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", eris.Wrap(err, "qccache: marshal snapshot")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Get returns the cached result for a key, or ok=false on a miss.
func (c *Cache) Get(ctx context.Context, key Key) (qc.Result, bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx,
		`SELECT result FROM qc_results WHERE file_hash = ? AND snapshot_hash = ?`,
		key.FileHash, key.SnapshotHash,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return qc.Result{}, false, nil
	}
	if err != nil {
		return qc.Result{}, false, eris.Wrap(err, "qccache: get")
	}

	var res qc.Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return qc.Result{}, false, eris.Wrap(err, "qccache: unmarshal result")
	}
	return res, true, nil
}

// Put stores a validation result for a key, replacing any previous
// entry.
func (c *Cache) Put(ctx context.Context, key Key, format qc.Format, res qc.Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return eris.Wrap(err, "qccache: marshal result")
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO qc_results (file_hash, snapshot_hash, format, result)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (file_hash, snapshot_hash) DO UPDATE SET result = excluded.result, format = excluded.format`,
		key.FileHash, key.SnapshotHash, string(format), string(payload),
	)
	return eris.Wrap(err, "qccache: put")
}
