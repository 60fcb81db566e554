package styles

import "github.com/charmbracelet/lipgloss"

// --- Typography ---

var (
	// Title is the main header text style.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(White)

	// Subtitle is used for secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Gray)

	// Label is used for field names in detail views.
	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	// Value is used for field values in detail views.
	Value = lipgloss.NewStyle().
		Foreground(White)

	// MutedText is for hints and less important info.
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorText is for error messages.
	ErrorText = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// SuccessText is for success messages.
	SuccessText = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// WarningText is for warning messages.
	WarningText = lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true)
)

// --- Outcome badges ---

// OutcomeStyle returns the style for an import outcome value.
func OutcomeStyle(outcome string) lipgloss.Style {
	switch outcome {
	case "success":
		return lipgloss.NewStyle().Foreground(Green).Bold(true)
	case "partial", "dry-run":
		return lipgloss.NewStyle().Foreground(Yellow).Bold(true)
	case "error":
		return lipgloss.NewStyle().Foreground(Red).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Gray)
	}
}

// OutcomeIndicator returns a small dot + outcome text with appropriate color.
func OutcomeIndicator(outcome string) string {
	style := OutcomeStyle(outcome)
	return style.Render("●") + " " + style.Render(outcome)
}

// --- Layout components ---

var (
	// Card is a rounded-border panel for content sections.
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DimGray).
		Padding(0, 1)

	// TableHeader is used for column headers in rendered tables.
	TableHeader = lipgloss.NewStyle().
			Foreground(Gray).
			Bold(true).
			Padding(0, 1)

	// TableCell is used for regular table cells.
	TableCell = lipgloss.NewStyle().
			Foreground(White).
			Padding(0, 1)

	// TableSelectedRow is the style for the currently selected table row.
	TableSelectedRow = lipgloss.NewStyle().
				Foreground(White).
				Background(DarkBlue).
				Bold(true)
)

// --- Key binding hint styles ---

var (
	// KeyStyle is used for key labels in the footer (e.g. "q").
	KeyStyle = lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true)

	// KeyDescStyle is used for key descriptions in the footer (e.g. "quit").
	KeyDescStyle = lipgloss.NewStyle().
			Foreground(Gray)

	// KeySepStyle is used for separators between key bindings.
	KeySepStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// FormatKeyBinding formats a single key binding for the footer.
func FormatKeyBinding(key, desc string) string {
	return KeyStyle.Render(key) + " " + KeyDescStyle.Render(desc)
}
