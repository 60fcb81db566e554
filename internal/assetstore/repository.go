package assetstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/database"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for assets and projects.
type Repository interface {
	// SaveAll inserts records in one transaction and returns their IDs in
	// input order. Either every record is stored or none is.
	SaveAll(records []domain.ValidatedServerData, source string) ([]int64, error)

	// Get returns a single asset, or nil if not found.
	Get(id int64) (*Asset, error)

	// List returns the most recent n assets, newest first.
	List(limit int) ([]Asset, error)

	// ListByProject returns the most recent n assets linked to projectID.
	ListByProject(projectID string, limit int) ([]Asset, error)

	// Count returns the number of stored assets.
	Count() (int, error)

	// AddProject creates a project with a new UUID. Names are unique
	// ignoring case.
	AddProject(name string) (domain.ProjectRef, error)

	// ListProjects returns all projects ordered by name.
	ListProjects() ([]Project, error)

	// ProjectRefs returns all projects in the form ingestion matches against.
	ProjectRefs() ([]domain.ProjectRef, error)

	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the asset store at the default path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("assetstore: %w", err)
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assetstore: %w", err)
	}

	r := &SQLiteRepository{db: db, now: time.Now}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *SQLiteRepository) migrate() error {
	err := database.Migrate(r.db,
		`CREATE TABLE IF NOT EXISTS projects (
            id         TEXT PRIMARY KEY,
            name       TEXT NOT NULL UNIQUE COLLATE NOCASE,
            created_at TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS assets (
            id              INTEGER PRIMARY KEY AUTOINCREMENT,
            name            TEXT    NOT NULL,
            category        TEXT    NOT NULL,
            status          TEXT    NOT NULL,
            location        TEXT    NOT NULL,
            purchase_date   TEXT    NOT NULL,
            assigned_to     TEXT    NOT NULL,
            project_id      TEXT    NOT NULL DEFAULT '',
            project_name    TEXT    NOT NULL DEFAULT '',
            cpu             INTEGER NOT NULL,
            ram_mb          INTEGER NOT NULL,
            disk_mb         INTEGER NOT NULL,
            vm_info         TEXT    NOT NULL DEFAULT '{}',
            specs           TEXT    NOT NULL DEFAULT '{}',
            additional_data TEXT    NOT NULL DEFAULT '{}',
            source          TEXT    NOT NULL DEFAULT '',
            created_at      TEXT    NOT NULL
        )`,
		`CREATE INDEX IF NOT EXISTS idx_assets_project ON assets(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_assets_created ON assets(created_at)`,
	)
	if err != nil {
		return fmt.Errorf("assetstore: %w", err)
	}
	return nil
}

// SaveAll inserts records in a single transaction.
func (r *SQLiteRepository) SaveAll(records []domain.ValidatedServerData, source string) ([]int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("assetstore: begin failed: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
        INSERT INTO assets (name, category, status, location, purchase_date, assigned_to,
                            project_id, project_name, cpu, ram_mb, disk_mb,
                            vm_info, specs, additional_data, source, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("assetstore: prepare failed: %w", err)
	}
	defer stmt.Close()

	created := r.now().UTC().Format(time.RFC3339Nano)
	ids := make([]int64, 0, len(records))
	for i, rec := range records {
		vmInfo, specs, extra, err := encodeViews(rec)
		if err != nil {
			return nil, fmt.Errorf("assetstore: record %d: %w", i, err)
		}

		result, err := stmt.Exec(
			rec.Name, rec.Category, rec.Status, rec.Location,
			rec.PurchaseDate.UTC().Format(time.RFC3339Nano), rec.AssignedTo,
			rec.Project, rec.ProjectName,
			rec.Resources.CPU, rec.Resources.RAM, rec.Resources.Disk,
			vmInfo, specs, extra, source, created,
		)
		if err != nil {
			return nil, fmt.Errorf("assetstore: insert %q failed: %w", rec.Name, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("assetstore: failed to get last insert ID: %w", err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("assetstore: commit failed: %w", err)
	}
	return ids, nil
}

const assetColumns = `id, name, category, status, location, purchase_date, assigned_to,
               project_id, project_name, cpu, ram_mb, disk_mb,
               vm_info, specs, additional_data, source, created_at`

// Get returns one asset by ID, or nil if it does not exist.
func (r *SQLiteRepository) Get(id int64) (*Asset, error) {
	row := r.db.QueryRow(`SELECT `+assetColumns+` FROM assets WHERE id = ?`, id)

	asset, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assetstore: query failed: %w", err)
	}
	return asset, nil
}

// List returns the most recent n assets.
func (r *SQLiteRepository) List(limit int) ([]Asset, error) {
	rows, err := r.db.Query(`SELECT `+assetColumns+` FROM assets ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("assetstore: query failed: %w", err)
	}
	defer rows.Close()
	return scanAssets(rows)
}

// ListByProject returns the most recent n assets linked to projectID.
func (r *SQLiteRepository) ListByProject(projectID string, limit int) ([]Asset, error) {
	rows, err := r.db.Query(`SELECT `+assetColumns+` FROM assets WHERE project_id = ? ORDER BY id DESC LIMIT ?`, projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("assetstore: query failed: %w", err)
	}
	defer rows.Close()
	return scanAssets(rows)
}

// Count returns the number of stored assets.
func (r *SQLiteRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM assets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("assetstore: count failed: %w", err)
	}
	return n, nil
}

// AddProject creates a project.
func (r *SQLiteRepository) AddProject(name string) (domain.ProjectRef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ProjectRef{}, ErrEmptyName
	}

	var existing string
	err := r.db.QueryRow(`SELECT id FROM projects WHERE name = ?`, name).Scan(&existing)
	switch {
	case err == nil:
		return domain.ProjectRef{}, fmt.Errorf("assetstore: %q: %w", name, ErrProjectExists)
	case err != sql.ErrNoRows:
		return domain.ProjectRef{}, fmt.Errorf("assetstore: query failed: %w", err)
	}

	ref := domain.ProjectRef{ID: uuid.NewString(), Name: name}
	_, err = r.db.Exec(`INSERT INTO projects (id, name, created_at) VALUES (?, ?, ?)`,
		ref.ID, ref.Name, r.now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return domain.ProjectRef{}, fmt.Errorf("assetstore: insert project failed: %w", err)
	}
	return ref, nil
}

// ListProjects returns all projects ordered by name.
func (r *SQLiteRepository) ListProjects() ([]Project, error) {
	rows, err := r.db.Query(`SELECT id, name, created_at FROM projects ORDER BY name COLLATE NOCASE`)
	if err != nil {
		return nil, fmt.Errorf("assetstore: query failed: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var p Project
		var createdStr string
		if err := rows.Scan(&p.ID, &p.Name, &createdStr); err != nil {
			return nil, fmt.Errorf("assetstore: scan failed: %w", err)
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ProjectRefs returns all projects as match candidates.
func (r *SQLiteRepository) ProjectRefs() ([]domain.ProjectRef, error) {
	projects, err := r.ListProjects()
	if err != nil {
		return nil, err
	}
	refs := make([]domain.ProjectRef, len(projects))
	for i, p := range projects {
		refs[i] = p.Ref()
	}
	return refs, nil
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func encodeViews(rec domain.ValidatedServerData) (vmInfo, specs, extra string, err error) {
	var b []byte
	if b, err = marshalMap(rec.VMInfo); err != nil {
		return
	}
	vmInfo = string(b)
	if b, err = marshalMap(rec.Specs); err != nil {
		return
	}
	specs = string(b)
	if b, err = marshalMap(rec.AdditionalData); err != nil {
		return
	}
	extra = string(b)
	return
}

func marshalMap(m map[string]string) ([]byte, error) {
	if m == nil {
		m = map[string]string{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode view: %w", err)
	}
	return b, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(s scanner) (*Asset, error) {
	var a Asset
	var purchaseStr, createdStr, vmInfo, specs, extra string
	err := s.Scan(
		&a.ID, &a.Name, &a.Category, &a.Status, &a.Location, &purchaseStr, &a.AssignedTo,
		&a.Project, &a.ProjectName, &a.Resources.CPU, &a.Resources.RAM, &a.Resources.Disk,
		&vmInfo, &specs, &extra, &a.Source, &createdStr,
	)
	if err != nil {
		return nil, err
	}

	a.PurchaseDate, _ = time.Parse(time.RFC3339Nano, purchaseStr)
	a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	if err := json.Unmarshal([]byte(vmInfo), &a.VMInfo); err != nil {
		return nil, fmt.Errorf("decode vm_info: %w", err)
	}
	if err := json.Unmarshal([]byte(specs), &a.Specs); err != nil {
		return nil, fmt.Errorf("decode specs: %w", err)
	}
	if err := json.Unmarshal([]byte(extra), &a.AdditionalData); err != nil {
		return nil, fmt.Errorf("decode additional_data: %w", err)
	}
	return &a, nil
}

func scanAssets(rows *sql.Rows) ([]Asset, error) {
	var assets []Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("assetstore: scan failed: %w", err)
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}
