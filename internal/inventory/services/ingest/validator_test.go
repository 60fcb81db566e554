package ingest

import (
	"testing"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"

	"github.com/google/go-cmp/cmp"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestValidate_ProjectLinking(t *testing.T) {
	known := []domain.ProjectRef{
		{ID: "p1", Name: "Marketing"},
		{ID: "p9", Name: "Finance"},
	}

	tests := []struct {
		name            string
		row             domain.RawRow
		wantProject     string
		wantProjectName string
	}{
		{
			name:            "exact name",
			row:             domain.RawRow{"VM": "app01", "projet": "Finance"},
			wantProject:     "p9",
			wantProjectName: "Finance",
		},
		{
			name:            "case-insensitive name",
			row:             domain.RawRow{"VM": "app01", "Project": "  finance "},
			wantProject:     "p9",
			wantProjectName: "finance",
		},
		{
			name:            "unknown label keeps name",
			row:             domain.RawRow{"VM": "app01", "projet": "UnknownProj"},
			wantProject:     "",
			wantProjectName: "UnknownProj",
		},
		{
			name:            "no label",
			row:             domain.RawRow{"VM": "app01"},
			wantProject:     "",
			wantProjectName: domain.ProjectUnassigned,
		},
		{
			name:            "partial names do not match",
			row:             domain.RawRow{"VM": "app01", "projet": "Fin"},
			wantProject:     "",
			wantProjectName: "Fin",
		},
	}

	v := NewValidator(WithClock(fixedClock))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Validate(tt.row, known)
			if got.Project != tt.wantProject {
				t.Errorf("Project = %q, want %q", got.Project, tt.wantProject)
			}
			if got.ProjectName != tt.wantProjectName {
				t.Errorf("ProjectName = %q, want %q", got.ProjectName, tt.wantProjectName)
			}
		})
	}
}

func TestValidate_Defaults(t *testing.T) {
	v := NewValidator(WithClock(fixedClock))

	got := v.Validate(domain.RawRow{"Notes": "spare"}, nil)

	if want := "VM-1741944413000"; got.Name != want {
		t.Errorf("Name = %q, want %q", got.Name, want)
	}
	if got.Location != domain.LocationUnknown {
		t.Errorf("Location = %q, want %q", got.Location, domain.LocationUnknown)
	}
	if !got.PurchaseDate.Equal(fixedNow) {
		t.Errorf("PurchaseDate = %v, want %v", got.PurchaseDate, fixedNow)
	}
	want := domain.ResourceAllocation{CPU: 4, RAM: 8192, Disk: 102400}
	if diff := cmp.Diff(want, got.Resources); diff != "" {
		t.Errorf("Resources mismatch (-want +got):\n%s", diff)
	}
	if len(got.VMInfo) != 0 {
		t.Errorf("VMInfo = %v, want empty", got.VMInfo)
	}
	if got.AdditionalData["Notes"] != "spare" {
		t.Errorf("AdditionalData[Notes] = %q, want spare", got.AdditionalData["Notes"])
	}
}

func TestValidate_FixedFields(t *testing.T) {
	v := NewValidator(WithClock(fixedClock))

	got := v.Validate(domain.RawRow{"Name": "db01", "Site": "Paris", "CPUs": "8", "RAM": "16 GB", "Provisioned MB": "204800"}, nil)

	if got.Category != domain.CategoryServers || got.Status != domain.StatusOperational || got.AssignedTo != domain.AssigneeUnassigned {
		t.Errorf("fixed fields = (%q, %q, %q)", got.Category, got.Status, got.AssignedTo)
	}
	if got.Name != "db01" || got.Location != "Paris" {
		t.Errorf("Name, Location = %q, %q", got.Name, got.Location)
	}
	want := domain.ResourceAllocation{CPU: 8, RAM: 16384, Disk: 204800}
	if diff := cmp.Diff(want, got.Resources); diff != "" {
		t.Errorf("Resources mismatch (-want +got):\n%s", diff)
	}
	if got.Specs["ram_total"] != "16GB DDR4" {
		t.Errorf("specs.ram_total = %q, want %q", got.Specs["ram_total"], "16GB DDR4")
	}
}

func TestValidate_ClockIsUTC(t *testing.T) {
	paris := time.FixedZone("CET", 3600)
	v := NewValidator(WithClock(func() time.Time { return fixedNow.In(paris) }))

	got := v.Validate(domain.RawRow{"VM": "x"}, nil)
	if got.PurchaseDate.Location() != time.UTC {
		t.Errorf("PurchaseDate location = %v, want UTC", got.PurchaseDate.Location())
	}
}
