package tui

import (
	"fmt"
	"strconv"

	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/assetstore"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui/components"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/tui/styles"
	"github.com/Mariembenjaballah1/PFE-mern-sub001/internal/util"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AssetLoader fetches the assets shown by the list view together with the
// number of assets in the store.
type AssetLoader func() (assets []assetstore.Asset, total int, err error)

// --- Messages ---

type assetsLoadedMsg struct {
	assets []assetstore.Asset
	total  int
}

type assetsErrorMsg struct {
	err error
}

// --- Asset list model ---

type assetListModel struct {
	load  AssetLoader
	scope string

	assets []assetstore.Asset
	total  int
	table  table.Model

	width  int
	height int

	loading bool
	spinner spinner.Model
	err     error
	status  string

	// detail is set while the selected asset is open.
	detail *assetShowModel

	quitting bool
}

func newAssetListModel(load AssetLoader, scope string) assetListModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	t := table.New(table.WithFocused(true))
	ts := table.DefaultStyles()
	ts.Header = styles.TableHeader.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(styles.DimGray)
	ts.Cell = styles.TableCell
	ts.Selected = styles.TableSelectedRow
	t.SetStyles(ts)

	return assetListModel{
		load:    load,
		scope:   scope,
		loading: true,
		spinner: s,
		table:   t,
	}
}

// RunAssetList starts the full-window asset browser. scope is shown in the
// header, for example the active project filter.
func RunAssetList(load AssetLoader, scope string) error {
	p := tea.NewProgram(newAssetListModel(load, scope), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run asset list: %w", err)
	}
	return nil
}

func (m assetListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchAssets())
}

func (m assetListModel) fetchAssets() tea.Cmd {
	return func() tea.Msg {
		assets, total, err := m.load()
		if err != nil {
			return assetsErrorMsg{err: err}
		}
		return assetsLoadedMsg{assets: assets, total: total}
	}
}

// --- Update ---

func (m assetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.detail != nil {
		switch msg := msg.(type) {
		case closeDetailMsg:
			m.detail = nil
			return m, nil
		case tea.WindowSizeMsg:
			m.width, m.height = msg.Width, msg.Height
			m.resize()
		}
		updated, cmd := m.detail.Update(msg)
		detail := updated.(assetShowModel)
		m.detail = &detail
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case assetsLoadedMsg:
		m.loading = false
		m.err = nil
		m.assets = msg.assets
		m.total = msg.total
		m.table.SetRows(assetRows(m.assets))
		m.table.GotoTop()
		if len(m.assets) == 0 {
			m.status = "No assets found."
		} else {
			m.status = fmt.Sprintf("Showing %d of %d stored asset(s)", len(m.assets), m.total)
		}
		m.resize()
		return m, nil

	case assetsErrorMsg:
		m.loading = false
		m.err = msg.err
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m assetListModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		if len(m.assets) == 0 {
			return m, nil
		}
		asset := m.assets[m.table.Cursor()]
		detail := newAssetShowModel(&asset, true)
		detail.width, detail.height = m.width, m.height
		m.detail = &detail
		return m, nil

	case "r":
		m.loading = true
		m.err = nil
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.fetchAssets())
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// resize fits the table columns and height to the window.
func (m *assetListModel) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.table.SetColumns(assetColumns(m.width - 4))
	m.table.SetWidth(m.width - 4)
	m.table.SetHeight(max(m.contentHeight(), 3))
}

func (m assetListModel) footer() string {
	if m.loading {
		return components.Footer(m.width, []components.KeyBinding{{Key: "ctrl+c", Desc: "quit"}})
	}
	return components.Footer(m.width, []components.KeyBinding{
		{Key: "j/k", Desc: "navigate"},
		{Key: "enter", Desc: "show"},
		{Key: "r", Desc: "refresh"},
		{Key: "q", Desc: "quit"},
	})
}

func (m assetListModel) statusBar() string {
	if m.err != nil {
		return components.StatusBar(m.width, "Error: "+m.err.Error(), true)
	}
	return components.StatusBar(m.width, m.status, false)
}

func (m assetListModel) contentHeight() int {
	header := components.Header(m.width, "asset list", m.scope)
	chrome := lipgloss.Height(header) + lipgloss.Height(m.footer())
	if bar := m.statusBar(); bar != "" {
		chrome += lipgloss.Height(bar)
	}
	return max(m.height-chrome, 1)
}

// --- View ---

func (m assetListModel) View() string {
	if m.detail != nil {
		return m.detail.View()
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, "asset list", m.scope)
	sections := []string{header, m.renderContent(m.contentHeight())}
	if bar := m.statusBar(); bar != "" {
		sections = append(sections, bar)
	}
	sections = append(sections, m.footer())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m assetListModel) renderContent(height int) string {
	place := func(s string) string {
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, s)
	}

	switch {
	case m.loading:
		return place(styles.MutedText.Render(m.spinner.View() + "  Loading assets…"))
	case m.err != nil:
		return place(styles.ErrorText.Render("Failed to load assets"))
	case len(m.assets) == 0:
		return place(styles.MutedText.Render("No assets found. Run ") +
			styles.KeyStyle.Render("assetctl import file") +
			styles.MutedText.Render(" to add some."))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(m.table.View())
}

// assetColumns sizes the table for width cells. NAME takes what is left
// after the fixed columns.
func assetColumns(width int) []table.Column {
	cols := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "NAME", Width: 16},
		{Title: "LOCATION", Width: 14},
		{Title: "PROJECT", Width: 16},
		{Title: "CPU", Width: 5},
		{Title: "RAM", Width: 9},
		{Title: "DISK", Width: 9},
		{Title: "SOURCE", Width: 16},
	}

	// Each cell carries one column of padding on both sides.
	used := 0
	for _, c := range cols {
		used += c.Width + 2
	}
	if width > used {
		cols[1].Width += width - used
	}
	return cols
}

func assetRows(assets []assetstore.Asset) []table.Row {
	rows := make([]table.Row, len(assets))
	for i, a := range assets {
		rows[i] = table.Row{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			a.Location,
			a.ProjectName,
			strconv.Itoa(a.Resources.CPU),
			util.FormatMB(a.Resources.RAM),
			util.FormatMB(a.Resources.Disk),
			a.Source,
		}
	}
	return rows
}
