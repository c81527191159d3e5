package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded repair run.
type Entry struct {
	ID             int64
	RunID          string
	Path           string
	Encoding       string
	BytesBefore    int
	BytesAfter     int
	DigestBefore   string
	DigestAfter    string
	StructuralHits int
	SymbolicHits   int
	CreatedAt      time.Time
}

// Changed reports whether the run altered the file content.
func (e Entry) Changed() bool {
	return e.DigestBefore != e.DigestAfter
}

// Store manages journal persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

const entryColumns = "id, run_id, path, encoding, bytes_before, bytes_after, digest_before, digest_after, structural_hits, symbolic_hits, created_at"

// Open initializes or connects to the journal database at path.
func Open(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("journal path must be set")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends entry and returns it with ID and CreatedAt assigned.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	ctx = ensureContext(ctx)
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(
			ctx,
			`INSERT INTO repair_runs (
            run_id, path, encoding, bytes_before, bytes_after,
            digest_before, digest_after, structural_hits, symbolic_hits, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.RunID,
			entry.Path,
			entry.Encoding,
			entry.BytesBefore,
			entry.BytesAfter,
			entry.DigestBefore,
			entry.DigestAfter,
			entry.StructuralHits,
			entry.SymbolicHits,
			entry.CreatedAt.Format(time.RFC3339Nano),
		)
		return execErr
	})
	if err != nil {
		return Entry{}, fmt.Errorf("insert repair run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("last insert id: %w", err)
	}
	entry.ID = id
	return entry, nil
}

// List returns up to limit entries, newest first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	ctx = ensureContext(ctx)
	query := "SELECT " + entryColumns + " FROM repair_runs ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query repair runs: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate repair runs: %w", err)
	}
	return entries, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		entry      Entry
		createdRaw string
	)
	if err := scanner.Scan(
		&entry.ID,
		&entry.RunID,
		&entry.Path,
		&entry.Encoding,
		&entry.BytesBefore,
		&entry.BytesAfter,
		&entry.DigestBefore,
		&entry.DigestAfter,
		&entry.StructuralHits,
		&entry.SymbolicHits,
		&createdRaw,
	); err != nil {
		return Entry{}, fmt.Errorf("scan repair run: %w", err)
	}
	created, err := time.Parse(time.RFC3339Nano, createdRaw)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at %q: %w", createdRaw, err)
	}
	entry.CreatedAt = created
	return entry, nil
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
