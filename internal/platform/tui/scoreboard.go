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

	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

const (
	boardRunLimit    = 100
	statsPanelWidth  = 24
	minWidthForStats = 90
)

// ScoreboardKeyMap holds the scoreboard bindings. Up and down scroll the
// table, the game bindings switch variants.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextGame, k.PrevGame}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the stock scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	bind := func(label, desc string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, desc))
	}
	return ScoreboardKeyMap{
		Up:       bind("↑/k", "scroll up", "up", "k"),
		Down:     bind("↓/j", "scroll down", "down", "j"),
		NextGame: bind("tab", "next variant", "tab", "right", "l"),
		PrevGame: bind("S-tab", "prev variant", "shift+tab", "left", "h"),
		Back:     bind("esc/b", "back", "esc", "b"),
		Quit:     bind("q", "quit", "q", "ctrl+c"),
	}
}

// ScoreboardModel lists the best runs of one variant at a time next to
// the variant's totals.
type ScoreboardModel struct {
	store   *storage.Store
	games   []registry.GameInfo
	current int

	runs    []storage.Run
	stats   *storage.Stats
	high    int
	loadErr error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	exit          screenExit
}

// NewScoreboardModel opens the scoreboard on the first registered variant.
// A nil store shows every variant as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = newRunTable(height)
	m.reload()
	return m
}

func newRunTable(height int) table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 7},
			{Title: "Bricks", Width: 7},
			{Title: "Result", Width: 7},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 13},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-9, 3)),
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

// reload reads the runs, the high score and the totals of the current
// variant. The first failing query is kept for display.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.high, m.loadErr = nil, nil, 0, nil
	if m.store != nil && len(m.games) > 0 {
		variant := m.games[m.current].ID
		m.runs, m.loadErr = m.store.TopRuns(variant, boardRunLimit)
		if m.loadErr == nil {
			m.high, m.loadErr = m.store.HighScore(variant)
		}
		if m.loadErr == nil {
			var all map[string]*storage.Stats
			all, m.loadErr = m.store.AllStats()
			m.stats = all[variant]
		}
	}
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		date := ""
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("Jan 02 15:04")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Bricks),
			runResult(r.Won),
			formatTicks(r.Ticks),
			date,
		}
	}
	return rows
}

func runResult(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

// formatTicks shows a tick count at 60 ticks per second as m:ss.
func formatTicks(ticks int) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.exit = screenQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.exit = screenBack
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycle(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newRunTable(msg.Height)
		m.table.SetRows(runRows(m.runs))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycle(d int) {
	if n := len(m.games); n > 0 {
		m.current = (m.current + d + n) % n
		m.reload()
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
)

func (m ScoreboardModel) View() string {
	if m.exit != screenOpen {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("HIGH SCORES - %s (best %d)", m.games[m.current].Title, m.high)
	}

	body := boardBoxStyle.Render(m.tableView())
	if m.width >= minWidthForStats {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.statsView())
	}

	return strings.Join([]string{
		boardTitleStyle.Render(centerText(title, m.width)),
		"",
		centerText(m.tabsView(), m.width),
		"",
		body,
		boardDimStyle.Render(m.help.View(m.keys)),
	}, "\n")
}

func (m ScoreboardModel) tabsView() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = boardTabStyle.Render(g.Title)
		} else {
			tabs[i] = boardDimStyle.Render(" " + g.Title + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.games) > 0 {
		return fmt.Sprintf("< %s >", m.games[m.current].Title)
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	switch {
	case m.loadErr != nil:
		return boardDimStyle.Render("Scores unavailable: " + m.loadErr.Error())
	case len(m.runs) == 0:
		return boardDimStyle.Italic(true).Padding(2, 4).Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsView() string {
	lines := []string{"Totals", strings.Repeat("─", statsPanelWidth-4)}
	if m.stats == nil {
		lines = append(lines, boardDimStyle.Render("nothing yet"))
	} else {
		lines = append(lines,
			fmt.Sprintf("Runs    %d", m.stats.Runs),
			fmt.Sprintf("Wins    %d", m.stats.Wins),
			fmt.Sprintf("Average %.1f", m.stats.AvgScore),
			fmt.Sprintf("Bricks  %d", m.stats.Bricks),
		)
		if !m.stats.LastPlayed.IsZero() {
			lines = append(lines, "Last    "+m.stats.LastPlayed.Format("Jan 02"))
		}
	}
	return boardBoxStyle.Width(statsPanelWidth).Render(strings.Join(lines, "\n"))
}

// Rows returns the table rows on display.
func (m ScoreboardModel) Rows() []table.Row { return m.table.Rows() }

// IsGoingBack reports whether the scoreboard was left with Back.
func (m ScoreboardModel) IsGoingBack() bool { return m.exit == screenBack }

// RunScoreboard shows the scoreboard and reports whether the player went
// back rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
