package ingest

import (
	"fmt"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/assemble"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/fields"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/projects"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/sizing"

	"go.uber.org/zap"
)

// Validator turns one raw row into a finished server record. It never fails:
// every missing or unreadable value degrades to a default.
type Validator struct {
	now    func() time.Time
	logger *zap.Logger
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithClock replaces the time source used for placeholder names and the
// purchase date.
func WithClock(now func() time.Time) ValidatorOption {
	return func(v *Validator) { v.now = now }
}

// WithValidatorLogger sets the logger used for per-row trace output.
func WithValidatorLogger(logger *zap.Logger) ValidatorOption {
	return func(v *Validator) { v.logger = logger }
}

// NewValidator creates a Validator.
func NewValidator(opts ...ValidatorOption) *Validator {
	v := &Validator{now: time.Now, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = zap.NewNop()
	}
	return v
}

// Validate builds the record for row, linking it to one of known when the
// row's project label names a known project.
func (v *Validator) Validate(row domain.RawRow, known []domain.ProjectRef) domain.ValidatedServerData {
	now := v.now().UTC()
	ix := fields.NewIndex(row)

	name := ix.Resolve(fields.NameAliases, placeholderName(now))
	location := ix.Resolve(fields.LocationAliases, domain.LocationUnknown)
	label := ix.Resolve(fields.ProjectAliases, domain.ProjectUnassigned)

	alloc := sizing.Compute(ix)
	views := assemble.Assemble(ix, alloc)

	record := domain.ValidatedServerData{
		Name:           name,
		Category:       domain.CategoryServers,
		Status:         domain.StatusOperational,
		Location:       location,
		PurchaseDate:   now,
		AssignedTo:     domain.AssigneeUnassigned,
		ProjectName:    label,
		Resources:      alloc,
		VMInfo:         views.VMInfo,
		Specs:          views.Specs,
		AdditionalData: views.AdditionalData,
	}

	if p, ok := projects.Match(label, known); ok {
		record.Project = p.ID
	}

	v.logger.Debug("row validated",
		zap.String("name", record.Name),
		zap.String("location", record.Location),
		zap.String("project_label", label),
		zap.String("project_id", record.Project),
		zap.Int("cpu", alloc.CPU),
		zap.Int("ram_mb", alloc.RAM),
		zap.Int("disk_mb", alloc.Disk),
	)

	return record
}

func placeholderName(now time.Time) string {
	return fmt.Sprintf("VM-%d", now.UnixMilli())
}
