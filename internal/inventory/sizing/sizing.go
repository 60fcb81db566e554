// Package sizing turns free-form CPU, memory and disk text from inventory
// exports into normalized integers.
//
// Parsing never fails: anything that cannot be read as a positive quantity
// falls back to a fixed default so every record carries a full allocation.
package sizing

import (
	"math"
	"strconv"
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/fields"
)

// Defaults applied when a value is missing or unreadable.
const (
	DefaultCPUCores = 4
	DefaultRAMMB    = 8192
	DefaultDiskMB   = 102400
)

const mbPerGB = 1024

// CPUCores returns the vCPU count of row.
func CPUCores(row domain.RawRow) int {
	return cpuCores(fields.NewIndex(row))
}

// RAMMB returns the configured memory of row in megabytes. Values carrying a
// GB marker ("16 GB", "1.5gb") are converted; anything else is read as MB.
func RAMMB(row domain.RawRow) int {
	return ramMB(fields.NewIndex(row))
}

// DiskMB returns the provisioned storage of row in megabytes.
func DiskMB(row domain.RawRow) int {
	return diskMB(fields.NewIndex(row))
}

// Compute returns the full allocation for the row behind ix.
func Compute(ix *fields.Index) domain.ResourceAllocation {
	return domain.ResourceAllocation{
		CPU:  cpuCores(ix),
		RAM:  ramMB(ix),
		Disk: diskMB(ix),
	}
}

func cpuCores(ix *fields.Index) int {
	return positiveOr(leadingInt(ix.Resolve(fields.CPUAliases, "")), DefaultCPUCores)
}

func ramMB(ix *fields.Index) int {
	text := ix.Resolve(fields.MemoryAliases, "")
	if text == "" {
		return DefaultRAMMB
	}

	if strings.Contains(strings.ToUpper(text), "GB") {
		gb, err := strconv.ParseFloat(keep(text, isDecimal), 64)
		if err != nil || math.IsNaN(gb) || math.IsInf(gb, 0) {
			return DefaultRAMMB
		}
		return positiveOr(int(math.Round(gb*mbPerGB)), DefaultRAMMB)
	}

	mb, err := strconv.Atoi(keep(text, isDigit))
	if err != nil {
		return DefaultRAMMB
	}
	return positiveOr(mb, DefaultRAMMB)
}

func diskMB(ix *fields.Index) int {
	text := ix.Resolve(fields.DiskAliases, "")
	text = strings.NewReplacer(",", "", " ", "", "\u00a0", "").Replace(text)
	return positiveOr(leadingInt(text), DefaultDiskMB)
}

// leadingInt reads the run of digits at the start of s, after an optional
// sign. It returns 0 when there is none.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		neg = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && isDigit(rune(s[end])) {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	if neg {
		return -n
	}
	return n
}

func positiveOr(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

func keep(s string, pred func(rune) bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if pred(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isDecimal(r rune) bool { return isDigit(r) || r == '.' }
