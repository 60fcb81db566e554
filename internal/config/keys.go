package config

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "workers").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Normalize validates a user-supplied value and returns the form that
	// will be stored. Nil means any value is accepted as-is.
	Normalize func(value string) (string, error)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "workers",
		Description: "Goroutines used to validate imported rows (1 = sequential)",
		Get: func(cfg *Config) string {
			if cfg.Workers == 0 {
				return ""
			}
			return strconv.Itoa(cfg.Workers)
		},
		Set: func(cfg *Config, v string) {
			n, _ := strconv.Atoi(v)
			cfg.Workers = n
		},
		Normalize: normalizeWorkers,
	},
	{
		Name:        "delimiter",
		Description: `Field separator for CSV imports: ",", ";", "|" or "tab" (empty = detect)`,
		Get:         func(cfg *Config) string { return cfg.Delimiter },
		Set:         func(cfg *Config, v string) { cfg.Delimiter = v },
		Normalize:   normalizeDelimiter,
	},
	{
		Name:        "log-level",
		Description: "Log level: debug, info, warn or error",
		Get:         func(cfg *Config) string { return cfg.LogLevel },
		Set:         func(cfg *Config, v string) { cfg.LogLevel = v },
		Normalize:   normalizeLogLevel,
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

// ParseDelimiter converts a stored delimiter value to a rune. The empty
// string yields 0, meaning auto-detect.
func ParseDelimiter(v string) (rune, error) {
	switch strings.ToLower(v) {
	case "":
		return 0, nil
	case "tab", `\t`, "\t":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(v)
	if size != len(v) || r == utf8.RuneError {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", v)
	}
	switch r {
	case '"', '\r', '\n':
		return 0, fmt.Errorf("delimiter %q is not allowed", v)
	}
	return r, nil
}

func normalizeWorkers(v string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 || n > 64 {
		return "", fmt.Errorf("workers must be a number between 1 and 64, got %q", v)
	}
	return strconv.Itoa(n), nil
}

func normalizeDelimiter(v string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(v), "tab") {
		return "tab", nil
	}
	if _, err := ParseDelimiter(v); err != nil {
		return "", err
	}
	return v, nil
}

var logLevels = []string{"debug", "info", "warn", "error"}

func normalizeLogLevel(v string) (string, error) {
	level := strings.ToLower(strings.TrimSpace(v))
	for _, l := range logLevels {
		if l == level {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown log level %q (valid: %s)", v, strings.Join(logLevels, ", "))
}
