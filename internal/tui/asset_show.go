package tui

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui/components"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui/styles"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/util"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// closeDetailMsg returns an embedded detail view to the list.
type closeDetailMsg struct{}

type assetShowModel struct {
	asset *assetstore.Asset

	width  int
	height int

	// viewport keeps the scroll offset; its size is set at render time.
	viewport viewport.Model

	// embedded is true when the list view owns this model. Closing then
	// goes back to the list instead of quitting.
	embedded bool
	quitting bool
}

func newAssetShowModel(asset *assetstore.Asset, embedded bool) assetShowModel {
	return assetShowModel{
		asset:    asset,
		viewport: viewport.New(0, 0),
		embedded: embedded,
	}
}

// RunAssetShow opens the full-window detail view for one asset.
func RunAssetShow(asset *assetstore.Asset) error {
	p := tea.NewProgram(newAssetShowModel(asset, false), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run asset show: %w", err)
	}
	return nil
}

func (m assetShowModel) Init() tea.Cmd { return nil }

func (m assetShowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q", "esc":
			if m.embedded {
				return m, func() tea.Msg { return closeDetailMsg{} }
			}
			m.quitting = true
			return m, tea.Quit
		}
		m.syncViewport()
		m.viewport, _ = m.viewport.Update(msg)
		return m, nil

	case tea.MouseMsg:
		m.syncViewport()
		m.viewport, _ = m.viewport.Update(msg)
		return m, nil
	}

	return m, nil
}

// syncViewport sizes the viewport and loads the detail so scrolling is
// clamped against the real content height.
func (m *assetShowModel) syncViewport() {
	m.viewport.Width = m.width
	m.viewport.Height = m.contentHeight()
	m.viewport.SetContent(m.renderDetail())
}

func (m assetShowModel) footer() string {
	bindings := []components.KeyBinding{{Key: "j/k", Desc: "scroll"}}
	if m.embedded {
		bindings = append(bindings, components.KeyBinding{Key: "esc", Desc: "back"})
	} else {
		bindings = append(bindings, components.KeyBinding{Key: "q", Desc: "quit"})
	}
	return components.Footer(m.width, bindings)
}

func (m assetShowModel) header() string {
	return components.Header(m.width, "asset show", m.asset.Source)
}

func (m assetShowModel) contentHeight() int {
	return max(m.height-lipgloss.Height(m.header())-lipgloss.Height(m.footer()), 1)
}

func (m assetShowModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	vp := m.viewport
	vp.Width = m.width
	vp.Height = m.contentHeight()
	vp.SetContent(m.renderDetail())

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), vp.View(), m.footer())
}

func (m assetShowModel) renderDetail() string {
	a := m.asset

	const hPad = 2
	const columnGap = 2
	usableWidth := max(m.width-hPad*2, 40)

	// Two columns once there is room for both; stacked otherwise.
	twoColumns := usableWidth >= 100
	cardWidth := usableWidth
	if twoColumns {
		cardWidth = (usableWidth - columnGap) / 2
	}

	const labelWidth = 14
	valueWidth := max(cardWidth-labelWidth-4, 6)
	renderField := func(label, value string) string {
		return styles.Label.Width(labelWidth).Render(label) + styles.Value.Width(valueWidth).Render(value)
	}
	card := func(title string, lines []string) string {
		return styles.Card.Width(cardWidth).Render(
			styles.Subtitle.Render(title) + "\n\n" + strings.Join(lines, "\n"),
		)
	}
	mapCard := func(title string, values map[string]string) string {
		if len(values) == 0 {
			return ""
		}
		lines := make([]string, 0, len(values))
		for _, k := range slices.Sorted(maps.Keys(values)) {
			lines = append(lines, renderField(k, values[k]))
		}
		return card(title, lines)
	}

	project := a.ProjectName
	if a.Project != "" {
		project = fmt.Sprintf("%s (%s)", a.ProjectName, a.Project)
	}

	overview := card("Overview", []string{
		renderField("ID", strconv.FormatInt(a.ID, 10)),
		renderField("Category", a.Category),
		renderField("Location", a.Location),
		renderField("Assigned to", a.AssignedTo),
		renderField("Project", project),
		renderField("Purchased", a.PurchaseDate.UTC().Format("2006-01-02 15:04:05 UTC")),
		renderField("Imported", a.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC")),
	})
	resources := card("Resources", []string{
		renderField("CPU", fmt.Sprintf("%d core(s)", a.Resources.CPU)),
		renderField("RAM", util.FormatMB(a.Resources.RAM)),
		renderField("Disk", util.FormatMB(a.Resources.Disk)),
	})

	left := []string{overview, resources}
	var right []string
	for _, c := range []string{mapCard("VM info", a.VMInfo), mapCard("Original columns", a.AdditionalData)} {
		if c != "" {
			right = append(right, c)
		}
	}

	title := styles.Title.Render(a.Name) + "  " + styles.SuccessText.Render("● "+a.Status)

	var body string
	if twoColumns && len(right) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.JoinVertical(lipgloss.Left, left...),
			strings.Repeat(" ", columnGap),
			lipgloss.JoinVertical(lipgloss.Left, right...),
		)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, append(left, right...)...)
	}

	return lipgloss.NewStyle().PaddingLeft(hPad).Render(title + "\n\n" + body)
}
