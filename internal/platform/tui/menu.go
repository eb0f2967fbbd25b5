package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// MenuItem is one variant in the menu.
type MenuItem struct {
	GameID    string
	Title     string
	HighScore int
}

// screenExit records how a menu screen was left.
type screenExit int

const (
	screenOpen screenExit = iota
	screenPicked
	screenScoreboard
	screenBack
	screenQuit
)

// MenuModel picks a variant. It ends on a choice, on Tab for the
// scoreboard, or on quit.
type MenuModel struct {
	items  []MenuItem
	cursor int
	config core.RuntimeConfig
	keys   *KeyMapper
	exit   screenExit
}

// NewMenuModel lists every registered variant with its stored best score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if store != nil {
			items[i].HighScore, _ = store.HighScore(g.ID) // unreadable shows as 0
		}
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case MenuActionSelect:
			if len(m.items) > 0 {
				return m.leave(screenPicked)
			}
		case MenuActionScoreboard:
			return m.leave(screenScoreboard)
		case MenuActionQuit, MenuActionBack:
			return m.leave(screenQuit)
		}
	}
	return m, nil
}

func (m MenuModel) leave(e screenExit) (tea.Model, tea.Cmd) {
	m.exit = e
	return m, tea.Quit
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	menuBoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
)

func (m MenuModel) View() string {
	if m.exit != screenOpen {
		return ""
	}

	rows := make([]string, len(m.items))
	for i, it := range m.items {
		line := fmt.Sprintf("  %-24s best %d", it.Title, it.HighScore)
		if i == m.cursor {
			line = menuActiveStyle.Render(fmt.Sprintf("> %-24s best %d", it.Title, it.HighScore))
		}
		rows[i] = line
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render("B R I C K   B R E A K E R"),
		"",
		menuBoxStyle.Render(strings.Join(rows, "\n")),
		"",
		menuHintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// centerText pads text so it sits in the middle of width. Styled text is
// measured without its escape codes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the menu hands back to the caller.
type MenuResult struct {
	GameID          string
	Title           string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	switch m.exit {
	case screenPicked:
		res.GameID, res.Title = m.items[m.cursor].GameID, m.items[m.cursor].Title
	case screenScoreboard:
		res.WantsScoreboard = true
	default:
		res.Quit = true
	}
	return res
}

// RunMenu shows the menu until the player leaves it.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(MenuModel); ok {
		return m.Result(), nil
	}
	return MenuResult{Config: cfg, Quit: true}, nil
}
