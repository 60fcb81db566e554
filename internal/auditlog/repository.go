package auditlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/database"
)

// Repository defines the persistence interface for import entries.
type Repository interface {
	Save(entry *ImportEntry) error
	List(limit int) ([]ImportEntry, error)
	ListBySource(source string, limit int) ([]ImportEntry, error)
	Prune(olderThan time.Duration) (int64, error)
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the import log at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("auditlog: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	err := database.Migrate(r.db,
		`CREATE TABLE IF NOT EXISTS import_log (
            id          INTEGER PRIMARY KEY AUTOINCREMENT,
            timestamp   TEXT    NOT NULL,
            source      TEXT    NOT NULL,
            file_name   TEXT    NOT NULL DEFAULT '',
            format      TEXT    NOT NULL DEFAULT '',
            total_rows  INTEGER NOT NULL DEFAULT 0,
            accepted    INTEGER NOT NULL DEFAULT 0,
            skipped     INTEGER NOT NULL DEFAULT 0,
            outcome     TEXT    NOT NULL DEFAULT '',
            detail      TEXT    NOT NULL DEFAULT '',
            duration_ms INTEGER NOT NULL DEFAULT 0
        )`,
		`CREATE INDEX IF NOT EXISTS idx_import_log_timestamp ON import_log(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_import_log_source ON import_log(source)`,
	)
	if err != nil {
		return fmt.Errorf("auditlog: %w", err)
	}
	return nil
}

// Save inserts a new import entry.
func (r *SQLiteRepository) Save(entry *ImportEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := r.db.Exec(`
        INSERT INTO import_log (timestamp, source, file_name, format, total_rows, accepted, skipped, outcome, detail, duration_ms)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.Timestamp.UTC().Format(time.RFC3339Nano), entry.Source, entry.FileName, entry.Format,
		entry.TotalRows, entry.Accepted, entry.Skipped, entry.Outcome, entry.Detail, entry.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("auditlog: insert failed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("auditlog: failed to get last insert ID: %w", err)
	}
	entry.ID = id
	return nil
}

// List returns the most recent n import entries.
func (r *SQLiteRepository) List(limit int) ([]ImportEntry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, source, file_name, format, total_rows, accepted, skipped,
               outcome, detail, duration_ms
        FROM import_log ORDER BY timestamp DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("auditlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// ListBySource returns the most recent n entries for one import source.
func (r *SQLiteRepository) ListBySource(source string, limit int) ([]ImportEntry, error) {
	rows, err := r.db.Query(`
        SELECT id, timestamp, source, file_name, format, total_rows, accepted, skipped,
               outcome, detail, duration_ms
        FROM import_log WHERE source = ? ORDER BY timestamp DESC, id DESC LIMIT ?`, source, limit)
	if err != nil {
		return nil, fmt.Errorf("auditlog: query failed: %w", err)
	}
	defer rows.Close()
	return scanRows(rows)
}

// Prune deletes entries older than the given duration.
func (r *SQLiteRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(time.RFC3339Nano)
	result, err := r.db.Exec(`DELETE FROM import_log WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("auditlog: delete failed: %w", err)
	}
	return result.RowsAffected()
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanRows(rows *sql.Rows) ([]ImportEntry, error) {
	var entries []ImportEntry
	for rows.Next() {
		var entry ImportEntry
		var timestampStr string
		err := rows.Scan(
			&entry.ID, &timestampStr, &entry.Source, &entry.FileName, &entry.Format,
			&entry.TotalRows, &entry.Accepted, &entry.Skipped,
			&entry.Outcome, &entry.Detail, &entry.DurationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("auditlog: scan failed: %w", err)
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339Nano, timestampStr)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
