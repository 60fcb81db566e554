// Package projects links free-text project labels from inventory rows to
// known projects.
package projects

import (
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/inventory/domain"
)

// Match returns the first project whose name equals label, ignoring case and
// surrounding whitespace. There is no partial or fuzzy matching.
func Match(label string, known []domain.ProjectRef) (domain.ProjectRef, bool) {
	want := strings.ToLower(strings.TrimSpace(label))
	if want == "" {
		return domain.ProjectRef{}, false
	}

	for _, p := range known {
		if strings.ToLower(strings.TrimSpace(p.Name)) == want {
			return p, true
		}
	}
	return domain.ProjectRef{}, false
}
