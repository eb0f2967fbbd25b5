package breakout

// Phase is the coarse game phase.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "gameover"
	}
	return "playing"
}

// Outcome says how a finished game ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeLost
	OutcomeWon
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLost:
		return "lost"
	case OutcomeWon:
		return "won"
	}
	return "none"
}

// Rules configure the controller for a variant.
type Rules struct {
	InitialLives int
	ScoreBricks  bool // +1 per destroyed brick
	WinOnClear   bool // clearing the field ends the game as a win
}

// Controller owns the phase, score and lives counter. Every method is a
// total function; once the game is over only Reset changes anything.
type Controller struct {
	rules     Rules
	phase     Phase
	outcome   Outcome
	score     int
	ballsLost int
	remaining int
}

// NewController creates a controller in the Playing phase with no bricks.
func NewController(r Rules) *Controller {
	if r.InitialLives < 1 {
		r.InitialLives = 1
	}
	return &Controller{rules: r}
}

// Reset starts a new game with bricks bricks on the field.
func (c *Controller) Reset(bricks int) {
	c.phase = PhasePlaying
	c.outcome = OutcomeNone
	c.score = 0
	c.ballsLost = 0
	c.remaining = max(bricks, 0)
}

// OnBrickDestroyed records a destroyed brick.
func (c *Controller) OnBrickDestroyed() {
	if c.phase != PhasePlaying {
		return
	}
	if c.rules.ScoreBricks {
		c.score++
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 && c.rules.WinOnClear {
		c.finish(OutcomeWon)
	}
}

// OnBallLost records a ball falling past the paddle. It reports whether
// the ball should be put back into play.
func (c *Controller) OnBallLost() bool {
	if c.phase != PhasePlaying {
		return false
	}
	c.ballsLost++
	if c.ballsLost >= c.rules.InitialLives {
		c.finish(OutcomeLost)
		return false
	}
	return true
}

func (c *Controller) finish(o Outcome) {
	c.phase = PhaseGameOver
	c.outcome = o
}

func (c *Controller) Phase() Phase     { return c.phase }
func (c *Controller) Outcome() Outcome { return c.outcome }
func (c *Controller) Score() int       { return c.score }
func (c *Controller) BallsLost() int   { return c.ballsLost }
func (c *Controller) Remaining() int   { return c.remaining }
func (c *Controller) Rules() Rules     { return c.rules }
func (c *Controller) LivesLeft() int   { return c.rules.InitialLives - c.ballsLost }
func (c *Controller) Playing() bool    { return c.phase == PhasePlaying }
