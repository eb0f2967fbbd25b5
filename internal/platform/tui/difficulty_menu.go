package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	hint   string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy", "wider paddle, slower ball, extra lives"},
	{config.DifficultyNormal, "Normal", "ball speeds up as bricks fall"},
	{config.DifficultyHard, "Hard", "narrow paddle, fast ball, one life less"},
	{config.DifficultyFixed, "Fixed", "the ball never speeds up"},
}

// DifficultyModel asks for a difficulty preset before a game starts.
type DifficultyModel struct {
	title  string
	cursor int
	width  int
	height int
	keys   *KeyMapper
	exit   screenExit
}

// NewDifficultyModel builds the picker for the variant called title. The
// cursor starts on current, or on normal when current is not a preset.
func NewDifficultyModel(title string, current config.DifficultyPreset, width, height int) DifficultyModel {
	m := DifficultyModel{title: title, width: width, height: height, keys: NewKeyMapper(), cursor: 1}
	for i, o := range difficultyOptions {
		if o.preset == current {
			m.cursor = i
		}
	}
	return m
}

func (m DifficultyModel) Init() tea.Cmd { return nil }

func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(difficultyOptions)-1)
		case MenuActionSelect:
			m.exit = screenPicked
			return m, tea.Quit
		case MenuActionBack:
			m.exit = screenBack
			return m, tea.Quit
		case MenuActionQuit:
			m.exit = screenQuit
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DifficultyModel) View() string {
	if m.exit != screenOpen {
		return ""
	}

	rows := make([]string, len(difficultyOptions))
	for i, o := range difficultyOptions {
		if i == m.cursor {
			rows[i] = menuActiveStyle.Render(fmt.Sprintf("> %-7s %s", o.label, o.hint))
		} else {
			rows[i] = fmt.Sprintf("  %-7s %s", o.label, o.hint)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		menuTitleStyle.Render(strings.ToUpper(m.title)),
		"",
		"Select difficulty:",
		menuBoxStyle.Render(strings.Join(rows, "\n")),
		"",
		menuHintStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen preset, or "" while nothing is chosen.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	if m.exit != screenPicked {
		return ""
	}
	return difficultyOptions[m.cursor].preset
}

// WantsBack reports whether the picker was left with Esc.
func (m DifficultyModel) WantsBack() bool { return m.exit == screenBack }

// RunDifficultySelector asks for a difficulty. It returns "" when the player
// backs out or quits; quit is set in the latter case.
func RunDifficultySelector(title string, current config.DifficultyPreset, cfg core.RuntimeConfig) (preset config.DifficultyPreset, quit bool, err error) {
	final, err := tea.NewProgram(NewDifficultyModel(title, current, cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(DifficultyModel)
	if !ok {
		return "", true, nil
	}
	return m.Selected(), m.exit == screenQuit, nil
}
