package importcmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/auditlog"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/config"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/database"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/services/ingest"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/sources"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/services/auth"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"
)

const inventoryCSV = `VM,Datacenter,CPUs,Memory Size,Provisioned MB,projet
web01,DC-East,4,8 GB,51200,Finance
web02,DC-West,2,4 GB,20480,Unknown
broken,row
`

// setupEnv points the database and config at temp files and returns the
// directory for input files.
func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	database.SetPath(filepath.Join(dir, "assetctl.db"))
	t.Cleanup(database.ResetPath)
	config.SetPath(filepath.Join(dir, "config.json"))
	t.Cleanup(config.ResetPath)
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func addProject(t *testing.T, name string) string {
	t.Helper()
	repo, err := assetstore.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer repo.Close()
	ref, err := repo.AddProject(name)
	if err != nil {
		t.Fatalf("add project: %v", err)
	}
	return ref.ID
}

func storedAssets(t *testing.T) []assetstore.Asset {
	t.Helper()
	repo, err := assetstore.Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer repo.Close()
	assets, err := repo.List(100)
	if err != nil {
		t.Fatalf("list assets: %v", err)
	}
	return assets
}

func importLog(t *testing.T) []auditlog.ImportEntry {
	t.Helper()
	repo, err := auditlog.Open()
	if err != nil {
		t.Fatalf("open import log: %v", err)
	}
	defer repo.Close()
	entries, err := repo.List(100)
	if err != nil {
		t.Fatalf("list import log: %v", err)
	}
	return entries
}

func execImport(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func TestImportFile_SavesAcceptedRows(t *testing.T) {
	dir := setupEnv(t)
	financeID := addProject(t, "finance")
	path := writeFile(t, dir, "inventory.csv", inventoryCSV)

	stdout, stderr, err := execImport(t, "file", path, "--yes")
	if err != nil {
		t.Fatalf("import failed: %v\nstderr: %s", err, stderr)
	}
	if !strings.Contains(stdout, "inventory.csv") || !strings.Contains(stdout, "partial") {
		t.Errorf("summary missing file name or outcome:\n%s", stdout)
	}
	if !strings.Contains(stderr, "Saved 2 asset(s).") {
		t.Errorf("unexpected stderr: %s", stderr)
	}

	assets := storedAssets(t)
	if len(assets) != 2 {
		t.Fatalf("stored %d assets, want 2", len(assets))
	}
	byName := map[string]assetstore.Asset{}
	for _, a := range assets {
		byName[a.Name] = a
	}
	web01 := byName["web01"]
	if web01.Project != financeID || web01.Resources.RAM != 8192 || web01.Resources.Disk != 51200 {
		t.Errorf("web01 = project %q, resources %+v", web01.Project, web01.Resources)
	}
	if web01.Source != "inventory.csv" {
		t.Errorf("web01 source = %q", web01.Source)
	}
	if byName["web02"].Project != "" || byName["web02"].ProjectName != "Unknown" {
		t.Errorf("web02 project = %q / %q", byName["web02"].Project, byName["web02"].ProjectName)
	}

	entries := importLog(t)
	if len(entries) != 1 {
		t.Fatalf("import log has %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.Source != auditlog.SourceFile || got.TotalRows != 3 || got.Accepted != 2 || got.Skipped != 1 || got.Outcome != auditlog.OutcomePartial {
		t.Errorf("import log entry = %+v", got)
	}
}

func TestImportFile_HelpListsColumns(t *testing.T) {
	stdout, _, err := execImport(t, "file", "--help")
	if err != nil {
		t.Fatalf("help failed: %v", err)
	}
	for _, want := range []string{"Recognized columns", "provisionedMB", "Provisioned MiB", "projet"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help missing %q:\n%s", want, stdout)
		}
	}
}

func TestImportFile_DryRunJSON(t *testing.T) {
	dir := setupEnv(t)
	path := writeFile(t, dir, "inventory.csv", inventoryCSV)

	stdout, _, err := execImport(t, "file", path, "--dry-run", "-o", "json")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}

	var result ingest.Result
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if len(result.Records) != 2 || len(result.Skipped) != 1 || result.Skipped[0].Row != 4 {
		t.Errorf("result = %d records, skipped %+v", len(result.Records), result.Skipped)
	}
	for _, key := range []string{`"fileName"`, `"totalRows"`, `"purchaseDate"`, `"vmInfo"`} {
		if !strings.Contains(stdout, key) {
			t.Errorf("JSON output missing key %s", key)
		}
	}
	if strings.Contains(stdout, "_rows") || strings.Contains(stdout, "file_name") {
		t.Errorf("JSON output mixes snake_case keys:\n%s", stdout)
	}

	if assets := storedAssets(t); len(assets) != 0 {
		t.Errorf("dry run stored %d assets", len(assets))
	}
	entries := importLog(t)
	if len(entries) != 1 || entries[0].Outcome != auditlog.OutcomeDryRun {
		t.Errorf("import log = %+v, want one dry-run entry", entries)
	}
}

func TestImportFile_DelimiterFlag(t *testing.T) {
	dir := setupEnv(t)
	path := writeFile(t, dir, "export.txt", "VM;Notes\nweb01;a,b\n")

	stdout, _, err := execImport(t, "file", path, "--dry-run", "-o", "json", "--delimiter", ";")
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	var result ingest.Result
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(result.Records) != 1 || result.Records[0].AdditionalData["Notes"] != "a,b" {
		t.Errorf("records = %+v", result.Records)
	}
}

func TestImportFile_HeaderOnlyIsLoggedAsError(t *testing.T) {
	dir := setupEnv(t)
	path := writeFile(t, dir, "empty.csv", "VM,CPUs\n")

	_, _, err := execImport(t, "file", path, "--yes")
	if err == nil {
		t.Fatal("expected error for header-only file")
	}

	entries := importLog(t)
	if len(entries) != 1 || entries[0].Outcome != auditlog.OutcomeError || entries[0].Detail == "" {
		t.Errorf("import log = %+v, want one error entry", entries)
	}
}

func TestImportFile_InvalidFlags(t *testing.T) {
	dir := setupEnv(t)
	path := writeFile(t, dir, "inventory.csv", inventoryCSV)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"output", []string{"-o", "yaml"}, "unsupported output format"},
		{"delimiter", []string{"--delimiter", ";;"}, "single character"},
		{"workers", []string{"--workers", "-2"}, "workers must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execImport(t, append([]string{"file", path}, tt.args...)...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestImportFile_MissingFile(t *testing.T) {
	setupEnv(t)

	_, _, err := execImport(t, "file", "/does/not/exist.csv")
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %v, want read failure", err)
	}
}

type stubLister struct {
	servers []*hcloud.Server
}

func (s stubLister) All(ctx context.Context) ([]*hcloud.Server, error) {
	return s.servers, nil
}

func stubHetzner(t *testing.T, token string, servers ...*hcloud.Server) *string {
	t.Helper()
	t.Setenv("HCLOUD_TOKEN", "")

	store := auth.NewMockStore()
	if token != "" {
		_ = store.SetToken(auth.ProviderHetzner, token)
	}
	origStore, origLister := tokenStore, newServerLister
	var gotToken string
	tokenStore = func() auth.Store { return store }
	newServerLister = func(token, version string) sources.ServerLister {
		gotToken = token
		return stubLister{servers: servers}
	}
	t.Cleanup(func() { tokenStore, newServerLister = origStore, origLister })
	return &gotToken
}

func TestImportHetzner(t *testing.T) {
	setupEnv(t)
	alphaID := addProject(t, "Alpha")
	gotToken := stubHetzner(t, "secret",
		&hcloud.Server{ID: 2, Name: "b-node", Status: hcloud.ServerStatusOff,
			ServerType: &hcloud.ServerType{Cores: 2, Memory: 4, Disk: 40}},
		&hcloud.Server{ID: 1, Name: "a-node", Status: hcloud.ServerStatusRunning,
			ServerType: &hcloud.ServerType{Cores: 8, Memory: 32, Disk: 240},
			Location:   &hcloud.Location{Name: "nbg1"},
			Labels:     map[string]string{"project": "alpha"}},
	)

	_, stderr, err := execImport(t, "hetzner", "--yes")
	if err != nil {
		t.Fatalf("import failed: %v\nstderr: %s", err, stderr)
	}
	if *gotToken != "secret" {
		t.Errorf("lister got token %q, want secret", *gotToken)
	}

	assets := storedAssets(t)
	if len(assets) != 2 {
		t.Fatalf("stored %d assets, want 2", len(assets))
	}
	byName := map[string]assetstore.Asset{}
	for _, a := range assets {
		byName[a.Name] = a
	}
	a := byName["a-node"]
	if a.Project != alphaID || a.Location != "nbg1" || a.Resources.CPU != 8 || a.Resources.RAM != 32768 {
		t.Errorf("a-node = %+v", a.ValidatedServerData)
	}
	if a.Source != "hetzner" {
		t.Errorf("a-node source = %q", a.Source)
	}

	entries := importLog(t)
	if len(entries) != 1 || entries[0].Source != auditlog.SourceHetzner || entries[0].Accepted != 2 {
		t.Errorf("import log = %+v", entries)
	}
}

func TestImportHetzner_NoToken(t *testing.T) {
	setupEnv(t)
	stubHetzner(t, "")

	_, _, err := execImport(t, "hetzner", "--yes")
	if err == nil || !strings.Contains(err.Error(), "auth login hetzner") {
		t.Errorf("error = %v, want login hint", err)
	}
}

func TestImportFile_ProjectsFile(t *testing.T) {
	dir := setupEnv(t)
	path := writeFile(t, dir, "inventory.csv", inventoryCSV)
	projects := writeFile(t, dir, "projects.json", `[{"_id":"65f1c0ffee","name":"Finance"},{"id":"u-2","name":"Ops"}]`)

	stdout, _, err := execImport(t, "file", path, "--dry-run", "-o", "json", "--projects", projects)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	var result ingest.Result
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got := result.Records[0].Project; got != "65f1c0ffee" {
		t.Errorf("web01 project = %q, want 65f1c0ffee", got)
	}
}
