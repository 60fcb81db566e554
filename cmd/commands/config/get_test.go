package config

import (
	"strings"
	"testing"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/config"
)

func TestGet_Workers_NotSet(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "get", "workers")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_Workers_Set(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{Workers: 6}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "--key", "workers")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if strings.TrimSpace(stdout) != "6" {
		t.Errorf("expected '6', got: %s", stdout)
	}
}

func TestGet_ListsAllKeys(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{Delimiter: ";"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "get")

	for _, want := range []string{"workers: (not set)", "delimiter: ;", "log-level: (not set)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got:\n%s", want, stdout)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
