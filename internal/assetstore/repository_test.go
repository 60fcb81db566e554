package assetstore

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"

	"github.com/google/go-cmp/cmp"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assetctl.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func sampleRecord(name, projectID string) domain.ValidatedServerData {
	return domain.ValidatedServerData{
		Name:         name,
		Category:     domain.CategoryServers,
		Status:       domain.StatusOperational,
		Location:     "DC-East",
		PurchaseDate: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		AssignedTo:   domain.AssigneeUnassigned,
		Project:      projectID,
		ProjectName:  "Alpha",
		Resources:    domain.ResourceAllocation{CPU: 4, RAM: 8192, Disk: 102400},
		VMInfo:       map[string]string{"vm": name},
		Specs:        map[string]string{"cpu_cores": "4 vCPU", "VM": name},
		AdditionalData: map[string]string{
			"VM":     name,
			"Custom": "kept",
		},
	}
}

func TestSaveAll_RoundTrip(t *testing.T) {
	r := tempRepo(t)

	records := []domain.ValidatedServerData{sampleRecord("web01", "p1"), sampleRecord("web02", "")}
	ids, err := r.SaveAll(records, "inventory.csv")
	if err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}
	if len(ids) != 2 || ids[0] >= ids[1] {
		t.Fatalf("unexpected ids: %v", ids)
	}

	got, err := r.Get(ids[0])
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected asset, got nil")
	}
	if diff := cmp.Diff(records[0], got.ValidatedServerData); diff != "" {
		t.Errorf("stored record mismatch (-want +got):\n%s", diff)
	}
	if got.Source != "inventory.csv" {
		t.Errorf("Source = %q, want inventory.csv", got.Source)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestGet_NotFound(t *testing.T) {
	r := tempRepo(t)

	got, err := r.Get(42)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestListAndCount(t *testing.T) {
	r := tempRepo(t)

	if _, err := r.SaveAll([]domain.ValidatedServerData{
		sampleRecord("a", "p1"),
		sampleRecord("b", "p2"),
		sampleRecord("c", "p1"),
	}, "x.csv"); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	n, err := r.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}

	latest, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(latest) != 2 || latest[0].Name != "c" || latest[1].Name != "b" {
		t.Errorf("List(2) = %v, want c then b", names(latest))
	}

	byProject, err := r.ListByProject("p1", 10)
	if err != nil {
		t.Fatalf("ListByProject failed: %v", err)
	}
	if diff := cmp.Diff([]string{"c", "a"}, names(byProject)); diff != "" {
		t.Errorf("ListByProject mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveAll_Empty(t *testing.T) {
	r := tempRepo(t)

	ids, err := r.SaveAll(nil, "empty.csv")
	if err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no ids, got %v", ids)
	}
}

func TestAddProject(t *testing.T) {
	r := tempRepo(t)

	ref, err := r.AddProject("  Finance ")
	if err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}
	if ref.Name != "Finance" || ref.ID == "" {
		t.Errorf("unexpected ref: %+v", ref)
	}

	if _, err := r.AddProject("FINANCE"); !errors.Is(err, ErrProjectExists) {
		t.Errorf("expected ErrProjectExists, got %v", err)
	}
	if _, err := r.AddProject("   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestListProjectsAndRefs(t *testing.T) {
	r := tempRepo(t)

	for _, name := range []string{"beta", "Alpha", "gamma"} {
		if _, err := r.AddProject(name); err != nil {
			t.Fatalf("AddProject(%q) failed: %v", name, err)
		}
	}

	refs, err := r.ProjectRefs()
	if err != nil {
		t.Fatalf("ProjectRefs failed: %v", err)
	}
	var got []string
	for _, ref := range refs {
		got = append(got, ref.Name)
		if ref.ID == "" {
			t.Errorf("project %q has empty ID", ref.Name)
		}
	}
	if diff := cmp.Diff([]string{"Alpha", "beta", "gamma"}, got); diff != "" {
		t.Errorf("ProjectRefs order mismatch (-want +got):\n%s", diff)
	}
}

func names(assets []Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.Name
	}
	return out
}
