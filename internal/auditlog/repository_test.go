package auditlog

import (
	"path/filepath"
	"testing"
	"time"
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

func TestSave_AssignsIDAndTimestamp(t *testing.T) {
	r := tempRepo(t)

	entry := &ImportEntry{
		Source:     SourceFile,
		FileName:   "inventory.csv",
		Format:     "delimited",
		TotalRows:  10,
		Accepted:   9,
		Skipped:    1,
		Outcome:    OutcomePartial,
		DurationMs: 12,
	}

	if err := r.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("expected ID to be assigned")
	}
	if entry.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}

	got, err := r.List(1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].FileName != "inventory.csv" || got[0].Accepted != 9 || got[0].Skipped != 1 {
		t.Errorf("unexpected stored entry: %+v", got)
	}
}

func TestList(t *testing.T) {
	r := tempRepo(t)

	for i := range 3 {
		entry := &ImportEntry{
			Source:    SourceFile,
			Outcome:   OutcomeSuccess,
			Timestamp: time.Now().UTC().Add(time.Duration(i) * time.Second),
		}
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	entries, err := r.List(2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Timestamp.Before(entries[1].Timestamp) {
		t.Error("expected entries sorted by timestamp descending")
	}
}

func TestListBySource(t *testing.T) {
	r := tempRepo(t)

	entries := []*ImportEntry{
		{Source: SourceFile, Outcome: OutcomeSuccess},
		{Source: SourceHetzner, Outcome: OutcomeSuccess},
		{Source: SourceFile, Outcome: OutcomeError},
	}
	for _, entry := range entries {
		if err := r.Save(entry); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := r.ListBySource(SourceFile, 10)
	if err != nil {
		t.Fatalf("ListBySource failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, entry := range got {
		if entry.Source != SourceFile {
			t.Errorf("expected source %q, got %q", SourceFile, entry.Source)
		}
	}
}

func TestPrune(t *testing.T) {
	r := tempRepo(t)

	oldEntry := &ImportEntry{
		Source:    SourceFile,
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-48 * time.Hour),
	}
	recentEntry := &ImportEntry{
		Source:    SourceFile,
		Outcome:   OutcomeSuccess,
		Timestamp: time.Now().UTC().Add(-1 * time.Hour),
	}

	if err := r.Save(oldEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := r.Save(recentEntry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	removed, err := r.Prune(24 * time.Hour)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	remaining, err := r.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", len(remaining))
	}
}

func TestOutcomeFor(t *testing.T) {
	tests := []struct {
		accepted, skipped int
		want              string
	}{
		{5, 0, OutcomeSuccess},
		{0, 0, OutcomeSuccess},
		{4, 1, OutcomePartial},
		{0, 3, OutcomeError},
	}
	for _, tt := range tests {
		if got := OutcomeFor(tt.accepted, tt.skipped); got != tt.want {
			t.Errorf("OutcomeFor(%d, %d) = %q, want %q", tt.accepted, tt.skipped, got, tt.want)
		}
	}
}
