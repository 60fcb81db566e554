package fields

import (
	"sort"
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
)

// undefinedLiteral is what spreadsheet exports from JavaScript tooling write
// for missing cells. It is treated as blank.
const undefinedLiteral = "undefined"

// Index is a row prepared for repeated lookups. The lower-case key index is
// built lazily, at most once, and only when an exact-case pass fails.
type Index struct {
	row   domain.RawRow
	lower map[string]string
}

// NewIndex wraps row for resolution.
func NewIndex(row domain.RawRow) *Index {
	return &Index{row: row}
}

// Row returns the wrapped row.
func (ix *Index) Row() domain.RawRow {
	return ix.row
}

// Resolve returns the first usable value for aliases, or def.
//
// Every alias is tried with an exact key lookup before any case-insensitive
// lookup happens, so an exact-case match always beats a case-insensitive one
// regardless of alias order. Returned values are trimmed.
func (ix *Index) Resolve(aliases []string, def string) string {
	for _, alias := range aliases {
		if v, ok := usable(ix.row[alias]); ok {
			return v
		}
	}

	if ix.lower == nil {
		ix.lower = lowerIndex(ix.row)
	}
	for _, alias := range aliases {
		if v, ok := usable(ix.lower[strings.ToLower(alias)]); ok {
			return v
		}
	}

	return def
}

// Resolve is the one-shot form of Index.Resolve.
func Resolve(row domain.RawRow, aliases []string, def string) string {
	return NewIndex(row).Resolve(aliases, def)
}

// lowerIndex keys row by lower-cased header. When two headers differ only by
// case, the one that sorts first wins so results do not depend on map order.
// Headers whose value is blank do not claim a slot.
func lowerIndex(row domain.RawRow) map[string]string {
	headers := make([]string, 0, len(row))
	for h := range row {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	idx := make(map[string]string, len(row))
	for _, h := range headers {
		key := strings.ToLower(h)
		if _, taken := idx[key]; taken {
			continue
		}
		if _, ok := usable(row[h]); !ok {
			continue
		}
		idx[key] = row[h]
	}
	return idx
}

func usable(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || v == undefinedLiteral {
		return "", false
	}
	return v, true
}
