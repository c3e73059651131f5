package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	snakecore "github.com/vovakirdan/tui-snake/internal/games/snake/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxRecords         = 100
)

var (
	boardTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardStatsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardWarnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	boardEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the records board.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	Clear       key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.PrevVariant, k.Clear, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.Clear, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows this session's records, one tab per variant.
type ScoreboardModel struct {
	variants     []registry.GameInfo
	cursor       int
	store        *storage.Store
	records      []storage.Record
	stats        map[string]*storage.GameStats
	table        table.Model
	help         help.Model
	keys         ScoreboardKeyMap
	width        int
	height       int
	confirmClear bool // x pressed once; a second x clears
	quitting     bool
	goingBack    bool
}

// NewScoreboardModel creates a records board. A nil store shows empty tabs.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

func (m ScoreboardModel) current() (registry.GameInfo, bool) {
	if len(m.variants) == 0 {
		return registry.GameInfo{}, false
	}
	return m.variants[m.cursor], true
}

func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Apples", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Result", Width: 7},
		{Title: "Played", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the stats of every variant and the records of the
// current one.
func (m *ScoreboardModel) reload() {
	m.records, m.stats = nil, nil
	if m.store != nil {
		if stats, err := m.store.GetAllGamesStats(); err == nil {
			m.stats = stats
		}
		if v, ok := m.current(); ok {
			if records, err := m.store.TopRecords(v.ID, maxRecords); err == nil {
				m.records = records
			}
		}
	}

	rows := make([]table.Row, len(m.records))
	for i, r := range m.records {
		rows[i] = recordRow(i+1, r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func recordRow(rank int, r storage.Record) table.Row {
	result := "lost"
	if r.Won {
		result = "won"
	}
	elapsed := "-"
	if r.Elapsed > 0 {
		elapsed = snakecore.FormatElapsed(r.Elapsed)
	}
	return table.Row{
		strconv.Itoa(rank),
		strconv.Itoa(r.Score),
		strconv.Itoa(r.Level),
		elapsed,
		result,
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

func (m *ScoreboardModel) moveCursor(delta int) {
	if len(m.variants) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.variants)) % len(m.variants)
	m.confirmClear = false
	m.reload()
}

// Init initializes the records board.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records board.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			if m.confirmClear {
				m.confirmClear = false
				return m, nil
			}
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextVariant):
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			v, ok := m.current()
			if !ok || m.store == nil || len(m.records) == 0 {
				return m, nil
			}
			if !m.confirmClear {
				m.confirmClear = true
				return m, nil
			}
			m.confirmClear = false
			_ = m.store.ClearRecords(v.ID) // Board simply shows what is left
			m.reload()
			return m, nil
		}
		m.confirmClear = false

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the records board.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "RECORDS"
	if v, ok := m.current(); ok {
		title += " - " + v.Title
	}
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderSidebar(), "  ", boardFrameStyle.Render(m.renderTable())))
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
		b.WriteString(boardFrameStyle.Render(m.renderTable()))
	}
	b.WriteString("\n")

	if v, ok := m.current(); ok {
		if st := m.stats[v.ID]; st != nil && st.GamesCount > 0 {
			line := fmt.Sprintf("%d rounds  |  best %d  |  %d won  |  best level %d",
				st.GamesCount, st.HighScore, st.Wins, st.BestLevel)
			b.WriteString(centerText(boardStatsStyle.Render(line), m.width))
			b.WriteString("\n")
		}
	}

	if m.confirmClear {
		b.WriteString(centerText(boardWarnStyle.Render("Press x again to clear these records"), m.width))
		b.WriteString("\n")
	}

	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderSidebar lists the variants with their round count and best score.
func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Variants\n")
	sb.WriteString(strings.Repeat("─", sidebarWidth-4))
	sb.WriteString("\n")

	for i, v := range m.variants {
		line := "  " + v.Title
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + v.Title
			style = boardActiveStyle
		}
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")

		summary := "    no rounds"
		if st := m.stats[v.ID]; st != nil && st.GamesCount > 0 {
			summary = fmt.Sprintf("    %d played, best %d", st.GamesCount, st.HighScore)
		}
		sb.WriteString(boardDimStyle.Render(summary))
		sb.WriteString("\n")
	}

	return boardFrameStyle.Width(sidebarWidth).Render(sb.String())
}

// renderTabs shows the variants in one line, or only the current one
// when they do not fit.
func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.cursor {
			tabs[i] = boardTabStyle.Render(v.Title)
		} else {
			tabs[i] = boardDimStyle.Render(" " + v.Title + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if v, ok := m.current(); ok && lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", v.Title)
	}
	return line
}

func (m ScoreboardModel) renderTable() string {
	if len(m.records) == 0 {
		return boardEmptyStyle.Render("No records this session yet.\nFinish a round to set one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
