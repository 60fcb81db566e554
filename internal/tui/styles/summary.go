package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Issue is a skipped row shown in an import summary.
type Issue struct {
	Row    int
	Reason string
}

// Summary is the data shown after an import has been validated.
type Summary struct {
	Source   string
	Format   string
	Total    int
	Accepted int
	Issues   []Issue
	Outcome  string
}

// maxIssues caps the skipped rows listed in a summary.
const maxIssues = 20

// RenderSummary renders s as a card followed by a table of skipped rows.
func RenderSummary(s Summary) string {
	lines := []string{
		Title.Render("Import " + s.Source),
		field("Format", s.Format),
		field("Rows", strconv.Itoa(s.Total)),
		field("Accepted", SuccessText.Render(strconv.Itoa(s.Accepted))),
		field("Skipped", skippedText(len(s.Issues))),
	}
	if s.Outcome != "" {
		lines = append(lines, field("Outcome", OutcomeIndicator(s.Outcome)))
	}

	var b strings.Builder
	b.WriteString(Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	b.WriteString("\n")

	if len(s.Issues) > 0 {
		b.WriteString(IssueTable(s.Issues))
		b.WriteString("\n")
	}
	return b.String()
}

// IssueTable renders skipped rows as a bordered table.
func IssueTable(issues []Issue) string {
	shown := issues
	if len(shown) > maxIssues {
		shown = shown[:maxIssues]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(DimGray)).
		Headers("ROW", "REASON").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeader
			}
			return TableCell
		})
	for _, issue := range shown {
		t.Row(strconv.Itoa(issue.Row), issue.Reason)
	}

	out := t.Render()
	if extra := len(issues) - len(shown); extra > 0 {
		out += "\n" + MutedText.Render(fmt.Sprintf("... and %d more", extra))
	}
	return out
}

func field(label, value string) string {
	return Label.Render(fmt.Sprintf("%-9s", label)) + " " + Value.Render(value)
}

func skippedText(n int) string {
	if n == 0 {
		return MutedText.Render("0")
	}
	return WarningText.Render(strconv.Itoa(n))
}
