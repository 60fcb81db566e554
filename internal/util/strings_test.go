package util

import "testing"

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"  Hetzner ":    "hetzner",
		".XLSX":         ".xlsx",
		"":              "",
		"\tLog-Level\n": "log-level",
	}
	for in, want := range tests {
		if got := NormalizeKey(in); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMB(t *testing.T) {
	tests := map[int]string{
		512:    "512 MB",
		1024:   "1 GB",
		102400: "100 GB",
		1500:   "1500 MB",
	}
	for in, want := range tests {
		if got := FormatMB(in); got != want {
			t.Errorf("FormatMB(%d) = %q, want %q", in, got, want)
		}
	}
}
