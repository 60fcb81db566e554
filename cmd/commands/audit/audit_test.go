package audit

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/auditlog"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/database"
)

// setupTestDB points the database package at a temp file and seeds entries.
func setupTestDB(t *testing.T, entries ...auditlog.ImportEntry) {
	t.Helper()
	database.SetPath(filepath.Join(t.TempDir(), "assetctl.db"))
	t.Cleanup(database.ResetPath)

	repo, err := auditlog.Open()
	if err != nil {
		t.Fatalf("open import log: %v", err)
	}
	defer repo.Close()
	for i := range entries {
		if err := repo.Save(&entries[i]); err != nil {
			t.Fatalf("save entry: %v", err)
		}
	}
}

func execAudit(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestList_Empty(t *testing.T) {
	setupTestDB(t)

	stdout, _ := execAudit(t, "list")
	if !strings.Contains(stdout, "No imports recorded.") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestList_Table(t *testing.T) {
	setupTestDB(t,
		auditlog.ImportEntry{Source: auditlog.SourceFile, FileName: "rvtools.xlsx", TotalRows: 10, Accepted: 9, Skipped: 1, Outcome: auditlog.OutcomePartial, DurationMs: 1500},
		auditlog.ImportEntry{Source: auditlog.SourceHetzner, FileName: "hetzner", TotalRows: 3, Accepted: 3, Outcome: auditlog.OutcomeSuccess, DurationMs: 40},
	)

	stdout, stderr := execAudit(t, "list")
	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{"SOURCE", "rvtools.xlsx", "partial", "1.5s", "hetzner", "40ms"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, stdout)
		}
	}
}

func TestList_SourceFilterJSON(t *testing.T) {
	setupTestDB(t,
		auditlog.ImportEntry{Source: auditlog.SourceFile, FileName: "a.csv", Outcome: auditlog.OutcomeSuccess},
		auditlog.ImportEntry{Source: auditlog.SourceHetzner, FileName: "hetzner", Outcome: auditlog.OutcomeSuccess},
	)

	stdout, _ := execAudit(t, "list", "--source", "file", "-o", "json")

	var entries []auditlog.ImportEntry
	if err := json.Unmarshal([]byte(stdout), &entries); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	if len(entries) != 1 || entries[0].FileName != "a.csv" {
		t.Errorf("entries = %+v, want only a.csv", entries)
	}
}

func TestList_InvalidLimit(t *testing.T) {
	setupTestDB(t)

	_, stderr := execAudit(t, "list", "--limit", "0")
	if !strings.Contains(stderr, "limit must be greater than 0") {
		t.Errorf("expected limit error, got: %s", stderr)
	}
}

func TestPrune_RequiresDuration(t *testing.T) {
	setupTestDB(t)

	_, stderr := execAudit(t, "prune")
	if !strings.Contains(stderr, "--older-than is required") {
		t.Errorf("expected required flag error, got: %s", stderr)
	}
}

func TestPrune_KeepsRecent(t *testing.T) {
	setupTestDB(t, auditlog.ImportEntry{Source: auditlog.SourceFile, Outcome: auditlog.OutcomeSuccess})

	stdout, _ := execAudit(t, "prune", "--older-than", "30d")
	if !strings.Contains(stdout, "Removed 0 import") {
		t.Errorf("unexpected output: %s", stdout)
	}
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"30d", 30 * 24 * time.Hour, false},
		{"72h", 72 * time.Hour, false},
		{"15m", 15 * time.Minute, false},
		{"xd", 0, true},
		{"-1d", 0, true},
		{"soon", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDuration(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDuration(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDuration(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
