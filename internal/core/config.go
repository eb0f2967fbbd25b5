package core

// RuntimeConfig is handed to a game when it is reset.
type RuntimeConfig struct {
	ScreenW  int // columns
	ScreenH  int // rows
	TickRate int // steps per second
}

// DefaultConfig returns an 80×24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// DT returns the fixed timestep in seconds.
func (c RuntimeConfig) DT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(c.TickRate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score     int
	HighScore int
	Lives     int
	BallsLost int
	Destroyed int // bricks destroyed this game
	GameOver  bool
	Won       bool
	Paused    bool
}

// Event is something noteworthy that happened during a step. The platform
// uses events for sound cues.
type Event int

const (
	EventBrickBroken Event = iota + 1
	EventPaddleHit
	EventWallHit
	EventBallLost
	EventGameOver
	EventWin
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventBrickBroken:
		return "brick"
	case EventPaddleHit:
		return "paddle"
	case EventWallHit:
		return "wall"
	case EventBallLost:
		return "lost"
	case EventGameOver:
		return "gameover"
	case EventWin:
		return "win"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// StepResult is returned by every simulation step.
type StepResult struct {
	State  GameState
	Events []Event
}

// HighScoreStore persists a single best score.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}
