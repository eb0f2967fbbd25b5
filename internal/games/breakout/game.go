package breakout

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/entity"
	"github.com/vovakirdan/brickbreaker/internal/physics"
	"github.com/vovakirdan/brickbreaker/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

const (
	hudRow     = 0
	borderTop  = 1
	minScreenW = 30
	minScreenH = 15
	buttonW    = 15
	buttonH    = 3
	buttonText = "Try Again"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// HighScoreStore persists the best score of a variant.
type HighScoreStore = core.HighScoreStore

// Option configures a Game.
type Option func(*Game)

// WithPort replaces the built-in physics world.
func WithPort(p physics.Port) Option {
	return func(g *Game) { g.port = p }
}

// WithLogger sets the logger. Games log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.UseLogger(l) }
}

// WithConfig uses cfg as is instead of loading the configuration.
func WithConfig(cfg config.Config) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgLoaded = true
	}
}

// WithHighScores sets where the high score is kept.
func WithHighScores(s HighScoreStore) Option {
	return func(g *Game) { g.UseHighScores(s) }
}

type layout struct {
	play     core.Box // inside the border; the ball's edge loop
	paddleY  float64  // paddle centre
	lostLine float64  // ball centre below this is lost
	bricks   []BrickSlot
	minW     int
	minH     int
	tooSmall bool
}

type hud struct {
	left, center, right entity.Handle
}

// Game is a Breakout match wired on top of a physics port.
type Game struct {
	variant Variant
	log     *log.Logger
	port    physics.Port
	scores  HighScoreStore

	table      *entity.Table
	queue      *entity.Queue
	ctrl       *Controller
	collisions *CollisionHandler
	input      *InputHandler
	difficulty *config.DifficultyManager

	cfg        config.Config
	cfgLoaded  bool
	runtime    core.RuntimeConfig
	layout     layout
	highScore  int
	highLoaded bool

	ball, paddle entity.Handle
	hud          hud
	overlay      []entity.Handle
	button       entity.Handle
	paddleX      float64

	tick      int
	paused    bool
	overShown bool
	events    []core.Event
}

// New creates a game of variant v. Call Reset before the first Step.
func New(v Variant, opts ...Option) *Game {
	g := &Game{
		variant: v,
		log:     log.New(io.Discard),
		table:   entity.NewTable(),
	}
	g.queue = entity.NewQueue(g.table)
	for _, opt := range opts {
		opt(g)
	}
	if g.port == nil {
		g.port = physics.NewWorld()
	}
	g.port.OnContact(g.onContact)
	return g
}

// UseLogger sets the logger after construction.
func (g *Game) UseLogger(l *log.Logger) {
	if l == nil {
		return
	}
	g.log = l.WithPrefix(g.variant.ID)
}

// UseHighScores sets the high score store after construction. The score is
// read on the next Reset.
func (g *Game) UseHighScores(s HighScoreStore) {
	g.scores = s
	g.highLoaded = false
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return g.variant.ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return g.variant.Title }

// Reset tears the scene down and builds a fresh one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.loadConfig()
	g.loadHighScore()

	g.queue.Reset()
	g.table.Clear()
	g.port.Clear()
	g.ball, g.paddle, g.button = entity.Handle{}, entity.Handle{}, entity.Handle{}
	g.hud = hud{}
	g.overlay = g.overlay[:0]
	g.tick = 0
	g.paused = false
	g.overShown = false

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.ctrl = NewController(g.variant.Rules(g.cfg.Gameplay.Lives))
	g.collisions = NewCollisionHandler(g.table, g.queue, g.port, g.ctrl, g.targetSpeed, g.cfg.Paddle.EdgeThreshold)
	g.layout = g.computeLayout()
	if g.layout.tooSmall {
		g.log.Warn("window too small", "have", fmt.Sprintf("%dx%d", runtime.ScreenW, runtime.ScreenH),
			"need", fmt.Sprintf("%dx%d", g.layout.minW, g.layout.minH))
		return
	}

	g.input = NewInputHandler(g, g.layout.play, g.cfg.Paddle.Width, g.cfg.Physics.PaddleSpeed)
	g.ctrl.Reset(len(g.layout.bricks))
	g.buildScene()
	g.applyCommands()
	g.log.Debug("scene built", "bricks", len(g.layout.bricks), "lives", g.cfg.Gameplay.Lives)
}

func (g *Game) loadConfig() {
	if g.cfgLoaded {
		return
	}
	cfg, src, err := config.Load(configPath)
	if err != nil {
		g.log.Warn("config rejected, using defaults", "err", err)
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.cfgLoaded = true
	g.log.Info("config loaded", "source", src, "difficulty", string(difficultyPreset))
}

func (g *Game) loadHighScore() {
	if g.highLoaded || g.scores == nil {
		return
	}
	g.highLoaded = true
	hs, err := g.scores.LoadHighScore()
	if err != nil {
		g.log.Warn("high score unavailable", "err", err)
		return
	}
	g.highScore = hs
}

// computeLayout places the HUD on row 0, the border from row 1 down, the
// paddle BottomOffset rows above the bottom and the bricks between the
// HUD and the paddle's lane.
func (g *Game) computeLayout() layout {
	w, h := float64(g.runtime.ScreenW), float64(g.runtime.ScreenH)
	pc, bc, fc := g.cfg.Paddle, g.cfg.Ball, g.cfg.Field

	var l layout
	l.play = core.Box{X: 1, Y: borderTop + 1, W: w - 2, H: h - borderTop - 2}
	paddleTop := h - pc.BottomOffset
	l.paddleY = paddleTop + pc.Height/2
	l.lostLine = paddleTop + pc.Height + bc.LostMargin

	spec := FieldSpec{
		Rows:   fc.Rows,
		Cols:   fc.Cols,
		BrickW: fc.BrickWidth,
		BrickH: fc.BrickHeight,
		GapX:   fc.GapX,
		GapY:   fc.GapY,
		Margin: fc.Margin,
		Area:   core.Box{X: l.play.X, Y: l.play.Y, W: l.play.W, H: paddleTop - fc.LaneClearance - l.play.Y},
	}
	fw, fh := MinAreaFor(spec)
	l.minW = max(minScreenW, int(math.Ceil(max(fw, pc.Width)+2)))
	l.minH = max(minScreenH, int(math.Ceil(l.play.Y+fh+fc.LaneClearance+pc.BottomOffset)))

	bricks, err := GenerateField(spec)
	l.bricks = bricks
	l.tooSmall = err != nil || g.runtime.ScreenW < l.minW || g.runtime.ScreenH < l.minH
	return l
}

func (g *Game) buildScene() {
	play := g.layout.play
	q := g.queue

	q.Create(entity.Entity{
		Kind:  entity.KindBorder,
		Pos:   play.Center(),
		Size:  core.V(play.W, play.H),
		Color: core.ColorGray,
	})
	g.port.SetEdgeLoop(play, CategoryBorder, 0)

	g.paddleX = core.SnapCenter(play.Center().X, g.cfg.Paddle.Width)
	paddlePos := core.V(g.paddleX, g.layout.paddleY)
	g.paddle = q.Create(entity.Entity{
		Kind:  entity.KindPaddle,
		Pos:   paddlePos,
		Size:  core.V(g.cfg.Paddle.Width, g.cfg.Paddle.Height),
		Color: core.ColorBrightWhite,
	})

	for _, slot := range g.layout.bricks {
		q.Create(entity.Entity{
			Kind:  entity.KindBrick,
			Pos:   slot.Box.Center(),
			Size:  core.V(slot.Box.W, slot.Box.H),
			Row:   slot.Row,
			Color: core.RowColor(slot.Row),
		})
	}

	r := g.cfg.Ball.Radius
	g.ball = q.Create(entity.Entity{
		Kind:  entity.KindBall,
		Pos:   LaunchPosition(paddlePos, g.cfg.Ball.LaunchOffset),
		Size:  core.V(2*r, 2*r),
		Color: core.ColorBrightWhite,
	})
	q.SetVelocity(g.ball, LaunchVelocity(g.targetSpeed(), g.cfg.Physics.MaxBallSpeed))

	right := float64(g.runtime.ScreenW - 1)
	g.hud.left = q.Create(entity.Entity{Kind: entity.KindLabel, Pos: core.V(1, hudRow), Align: entity.AlignLeft, Color: core.ColorBrightYellow})
	g.hud.center = q.Create(entity.Entity{Kind: entity.KindLabel, Pos: core.V(play.Center().X, hudRow), Color: core.ColorBrightRed})
	if g.variant.ScoreBricks {
		g.hud.right = q.Create(entity.Entity{Kind: entity.KindLabel, Pos: core.V(right, hudRow), Align: entity.AlignRight, Color: core.ColorBrightCyan})
	}
	g.refreshLabels()
}

func (g *Game) bodyFor(h entity.Handle, e entity.Entity) (physics.BodyDef, bool) {
	def := physics.BodyDef{Entity: h, Position: e.Pos}
	switch e.Kind {
	case entity.KindBall:
		mask := CategoryBrick | CategoryPaddle | CategoryBorder
		def.Shape = physics.Circle(g.cfg.Ball.Radius)
		def.Dynamic = true
		def.Category = CategoryBall
		def.CollideMask = mask
		def.ContactMask = mask
		def.Restitution = g.cfg.Physics.Restitution
	case entity.KindPaddle:
		def.Shape = physics.Rectangle(e.Size.X, e.Size.Y)
		def.Category = CategoryPaddle
	case entity.KindBrick:
		def.Shape = physics.Rectangle(e.Size.X, e.Size.Y)
		def.Category = CategoryBrick
	default:
		return physics.BodyDef{}, false
	}
	return def, true
}

// applyCommands drains the command queue into the entity table and the
// physics port. It runs once per frame.
func (g *Game) applyCommands() {
	limit := g.cfg.Physics.MaxBallSpeed
	g.queue.Drain(func(c entity.Command) {
		switch c.Op {
		case entity.OpCreate:
			if !g.table.Activate(c.Handle, c.Entity) {
				return
			}
			if def, ok := g.bodyFor(c.Handle, c.Entity); ok {
				if err := g.port.CreateBody(def); err != nil {
					g.log.Error("create body", "kind", c.Entity.Kind, "err", err)
				}
			}
		case entity.OpMove:
			g.table.Update(c.Handle, func(e *entity.Entity) { e.Pos = c.Vec })
			g.port.SetPosition(c.Handle, c.Vec)
		case entity.OpSetVelocity:
			g.port.SetVelocity(c.Handle, ClampSpeed(c.Vec, limit))
		case entity.OpSetText:
			g.table.Update(c.Handle, func(e *entity.Entity) { e.Text = c.Text })
		case entity.OpRemove:
			g.port.RemoveBody(c.Handle)
			g.table.Remove(c.Handle)
		}
	})
}

func (g *Game) onContact(c physics.Contact) {
	if g.collisions != nil {
		g.collisions.OnContact(c)
	}
}

// targetSpeed is the current launch and paddle rebound speed.
func (g *Game) targetSpeed() float64 {
	broken := len(g.layout.bricks) - g.ctrl.Remaining()
	return g.difficulty.Speed(g.cfg.Physics.BallSpeed, g.cfg.Physics.MaxBallSpeed, broken, g.tick)
}

// Step advances the game by one tick: input, physics and contacts, the
// lost-ball check, game over handling, then the queued commands.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]
	if g.layout.tooSmall || g.ctrl == nil {
		return g.result()
	}

	if in.Has(core.ActionPause) && g.ctrl.Playing() {
		g.paused = !g.paused
		g.log.Debug("pause", "paused", g.paused)
	}
	if g.paused {
		return g.result()
	}

	if g.input.Apply(in) {
		g.events = append(g.events, core.EventReset)
		return g.result()
	}

	if g.ctrl.Playing() {
		g.tick++
		g.collisions.BeginStep()
		g.port.Step(g.runtime.DT())
		g.events = append(g.events, g.collisions.Events()...)
		g.checkBallLost()
		if !g.ctrl.Playing() && !g.overShown {
			g.onGameOver()
		}
	}

	g.refreshLabels()
	g.applyCommands()
	g.settleBall()
	return g.result()
}

func (g *Game) checkBallLost() {
	if !g.ctrl.Playing() || g.queue.PendingRemoval(g.ball) {
		return
	}
	st, ok := g.port.Body(g.ball)
	if !ok {
		return
	}
	if st.Position.Y <= g.layout.lostLine && !g.collisions.HitFloor() {
		return
	}

	g.events = append(g.events, core.EventBallLost)
	reposition := g.ctrl.OnBallLost()
	g.log.Debug("ball lost", "lost", g.ctrl.BallsLost(), "left", g.ctrl.LivesLeft())
	if !reposition {
		return
	}
	pos := LaunchPosition(core.V(g.paddleX, g.layout.paddleY), g.cfg.Ball.LaunchOffset)
	g.queue.Move(g.ball, pos)
	g.queue.SetVelocity(g.ball, LaunchVelocity(g.targetSpeed(), g.cfg.Physics.MaxBallSpeed))
}

// onGameOver removes the ball, shows the result and the "Try Again"
// control, and writes the high score if it was beaten.
func (g *Game) onGameOver() {
	g.overShown = true
	g.queue.Remove(g.ball)

	title, color, ev := "GAME OVER", core.ColorBrightRed, core.EventGameOver
	if g.ctrl.Outcome() == OutcomeWon {
		title, color, ev = "YOU WIN!", core.ColorBrightGreen, core.EventWin
	}
	c := g.layout.play.Center()
	label := func(y float64, text string, col core.Color) {
		g.overlay = append(g.overlay, g.queue.Create(entity.Entity{
			Kind:  entity.KindLabel,
			Pos:   core.V(c.X, y),
			Text:  text,
			Color: col,
		}))
	}
	label(c.Y-2, title, color)
	if g.variant.ScoreBricks {
		label(c.Y, fmt.Sprintf("Score: %d  Best: %d", g.ctrl.Score(), max(g.ctrl.Score(), g.highScore)), core.ColorWhite)
	}
	g.button = g.queue.Create(entity.Entity{
		Kind:  entity.KindButton,
		Pos:   core.V(core.SnapCenter(c.X, buttonW), core.SnapCenter(c.Y+3, buttonH)),
		Size:  core.V(buttonW, buttonH),
		Text:  buttonText,
		Color: core.ColorBrightYellow,
	})

	g.saveHighScore()
	g.events = append(g.events, ev)
	g.log.Info("game over", "outcome", g.ctrl.Outcome(), "score", g.ctrl.Score(), "ticks", g.tick)
}

func (g *Game) saveHighScore() {
	score := g.ctrl.Score()
	if score <= g.highScore {
		return
	}
	g.highScore = score
	if g.scores == nil {
		return
	}
	if err := g.scores.SaveHighScore(score); err != nil {
		g.log.Error("save high score", "score", score, "err", err)
		return
	}
	g.log.Info("new high score", "score", score)
}

func (g *Game) refreshLabels() {
	if g.variant.ScoreBricks {
		g.queue.SetText(g.hud.left, fmt.Sprintf("Score: %d", g.ctrl.Score()))
		g.queue.SetText(g.hud.right, fmt.Sprintf("High: %d", max(g.ctrl.Score(), g.highScore)))
	} else {
		g.queue.SetText(g.hud.left, fmt.Sprintf("Bricks: %d", g.ctrl.Remaining()))
	}
	g.queue.SetText(g.hud.center, fmt.Sprintf("Lives: %d", g.ctrl.LivesLeft()))
}

// settleBall copies the ball's simulated position into the entity table
// and enforces the speed cap on whatever the engine produced.
func (g *Game) settleBall() {
	st, ok := g.port.Body(g.ball)
	if !ok {
		return
	}
	if limit := g.cfg.Physics.MaxBallSpeed; st.Velocity.Len() > limit {
		g.port.SetVelocity(g.ball, ClampSpeed(st.Velocity, limit))
	}
	g.table.Update(g.ball, func(e *entity.Entity) { e.Pos = st.Position })
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Phase returns the controller phase.
func (g *Game) Phase() Phase {
	if g.ctrl == nil {
		return PhasePlaying
	}
	return g.ctrl.Phase()
}

// PaddleX returns the paddle centre the game is steering toward.
func (g *Game) PaddleX() float64 { return g.paddleX }

// MovePaddle queues a paddle move to centre x, snapped so the paddle
// covers whole cells.
func (g *Game) MovePaddle(x float64) {
	x = core.SnapCenter(x, g.cfg.Paddle.Width)
	g.paddleX = x
	g.queue.Move(g.paddle, core.V(x, g.layout.paddleY))
}

// TryAgain returns the bounds of the "Try Again" control while it is on
// screen.
func (g *Game) TryAgain() (core.Box, bool) {
	e, ok := g.table.Get(g.button)
	if !ok {
		return core.Box{}, false
	}
	return e.Bounds(), true
}

// Resize records a new screen size without touching the scene. The next
// Reset or Restart lays the game out for it.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
}

// Restart resets the game on the current screen.
func (g *Game) Restart() {
	g.log.Info("try again")
	g.Reset(g.runtime)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{HighScore: g.highScore, Paused: g.paused}
	if g.ctrl != nil {
		st.Score = g.ctrl.Score()
		st.Lives = g.ctrl.LivesLeft()
		st.BallsLost = g.ctrl.BallsLost()
		if !g.layout.tooSmall {
			st.Destroyed = len(g.layout.bricks) - g.ctrl.Remaining()
		}
		st.GameOver = g.ctrl.Phase() == PhaseGameOver
		st.Won = g.ctrl.Outcome() == OutcomeWon
	}
	return st
}

// Register the variants with the registry
func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}
