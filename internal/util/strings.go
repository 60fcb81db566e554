package util

import (
	"fmt"
	"strings"
)

// NormalizeKey lowercases and trims a string for use as a consistent lookup key.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FormatMB prints a megabyte count in GB when it divides evenly.
func FormatMB(mb int) string {
	if mb >= 1024 && mb%1024 == 0 {
		return fmt.Sprintf("%d GB", mb/1024)
	}
	return fmt.Sprintf("%d MB", mb)
}
