// Package assetstore persists ingested server records and the projects they
// can be linked to.
//
// Storage is backed by the SQLite database at ~/.config/assetctl/assetctl.db
// (shared with the import log, separate tables).
package assetstore

import (
	"errors"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
)

var (
	ErrProjectExists = errors.New("project already exists")
	ErrEmptyName     = errors.New("project name is required")
)

// Asset is a stored server record.
type Asset struct {
	ID        int64     `json:"id"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`

	domain.ValidatedServerData
}

// Project is a stored project.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// Ref returns the identity ingestion matches row labels against.
func (p Project) Ref() domain.ProjectRef {
	return domain.ProjectRef{ID: p.ID, Name: p.Name}
}
