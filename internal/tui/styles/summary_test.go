package styles

import (
	"fmt"
	"strings"
	"testing"
)

func TestRenderSummary_ContainsCounts(t *testing.T) {
	out := RenderSummary(Summary{
		Source:   "inventory.csv",
		Format:   "delimited",
		Total:    3,
		Accepted: 2,
		Issues:   []Issue{{Row: 3, Reason: "row has 2 field(s), header has 3"}},
		Outcome:  "partial",
	})

	for _, want := range []string{"inventory.csv", "delimited", "Accepted", "row has 2 field(s)", "partial"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummary_NoIssuesNoTable(t *testing.T) {
	out := RenderSummary(Summary{Source: "x.csv", Total: 1, Accepted: 1})
	if strings.Contains(out, "REASON") {
		t.Errorf("did not expect an issue table:\n%s", out)
	}
}

func TestIssueTable_Truncates(t *testing.T) {
	var issues []Issue
	for i := range maxIssues + 5 {
		issues = append(issues, Issue{Row: i + 2, Reason: fmt.Sprintf("reason-%d", i)})
	}

	out := IssueTable(issues)
	if !strings.Contains(out, "... and 5 more") {
		t.Errorf("expected truncation note:\n%s", out)
	}
	if strings.Contains(out, fmt.Sprintf("reason-%d", maxIssues)) {
		t.Errorf("row beyond the cap should not be rendered")
	}
}

func TestOutcomeIndicator(t *testing.T) {
	for _, outcome := range []string{"success", "partial", "error", "unknown"} {
		if !strings.Contains(OutcomeIndicator(outcome), outcome) {
			t.Errorf("indicator for %q does not contain the outcome text", outcome)
		}
	}
}
