// Package components provides render-only building blocks shared by the
// full-window asset views. None of them is a tea.Model.
package components

import (
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Header renders the top bar: "assetctl > <breadcrumb>" on the left and an
// optional context label, such as a project filter, on the right.
func Header(width int, breadcrumb, context string) string {
	if width < 10 {
		return ""
	}

	left := styles.Title.Foreground(styles.Blue).Render("assetctl")
	if breadcrumb != "" {
		left += styles.MutedText.Render(" > ") + styles.Title.Render(breadcrumb)
	}

	right := ""
	if context != "" {
		right = styles.Subtitle.Render(context)
	}

	innerWidth := width - 4
	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(styles.DimGray).
		Render(left + strings.Repeat(" ", gap) + right)
}
