package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// Sounds plays the cues of a step.
type Sounds interface {
	Play(events []core.Event)
}

type silent struct{}

func (silent) Play([]core.Event) {}

// Options are the collaborators of a game session. Zero values are
// valid: no persistence, no sound, no logging.
type Options struct {
	Store  *storage.Store
	Sounds Sounds
	Logger *log.Logger
	// ScreenshotDir is where ctrl+s writes the screen as text.
	ScreenshotDir string
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	log        *log.Logger
	keys       *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      int
	quitting   bool
	back       bool
	runSaved   bool // the finished run is recorded
}

// NewModel creates a model for game.
func NewModel(game registry.Game, opts Options, cfg core.RuntimeConfig) Model {
	cfg.TickRate = ClampTickRate(cfg.TickRate)
	if opts.Sounds == nil {
		opts.Sounds = silent{}
	}
	l := opts.Logger
	if l == nil {
		l = log.New(io.Discard)
	}

	var scores core.HighScoreStore
	if opts.Store != nil {
		scores = opts.Store.HighScores(game.ID())
	}
	registry.Attach(game, l, scores)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		log:        l.WithPrefix("tui"),
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inputFrame.Has(core.ActionBack) {
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// resizer is implemented by games that can take a new screen size
// without rebuilding their scene.
type resizer interface {
	Resize(core.RuntimeConfig)
}

// handleResize rebuilds the scene for the new size. A finished game stays
// on screen and only learns the size for its next restart.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.ticks = 0
		m.log.Debug("resized", "w", msg.Width, "h", msg.Height)
	} else if r, ok := m.game.(resizer); ok {
		r.Resize(m.config)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.opts.Sounds.Play(res.Events)

	for _, ev := range res.Events {
		if ev == core.EventReset {
			m.runSaved = false
			m.ticks = 0
		}
	}
	m.gameState = res.State
	if !m.gameState.GameOver && !m.gameState.Paused {
		m.ticks++
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished game. Failures are logged and the game
// goes on.
func (m *Model) saveRun() {
	if m.opts.Store == nil {
		return
	}
	st := m.gameState
	id, err := m.opts.Store.SaveRun(storage.Run{
		Variant:   m.game.ID(),
		Score:     st.Score,
		Bricks:    st.Destroyed,
		BallsLost: st.BallsLost,
		Won:       st.Won,
		Ticks:     m.ticks,
	})
	if err != nil {
		m.log.Error("save run", "err", err)
		return
	}
	m.log.Info("run saved", "run", id, "score", st.Score, "won", st.Won)
}

// saveScreenshot writes the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.game.Render(m.screen)
	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// WantsBack reports whether the player left the game for the menu.
func (m Model) WantsBack() bool { return m.back }

// State returns the last state the game reported.
func (m Model) State() core.GameState { return m.gameState }

// Run plays game until the player quits or goes back. It reports whether
// the player asked to go back to the menu.
func Run(game registry.Game, opts Options, cfg core.RuntimeConfig) (bool, error) {
	p := tea.NewProgram(
		NewModel(game, opts, cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	return ok && m.WantsBack(), nil
}
