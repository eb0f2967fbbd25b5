// Package config provides YAML game configuration, environment overrides
// and difficulty management.
package config

// Config is the full brickbreaker configuration.
type Config struct {
	Physics    Physics          `yaml:"physics"`
	Paddle     Paddle           `yaml:"paddle"`
	Ball       Ball             `yaml:"ball"`
	Field      Field            `yaml:"field"`
	Gameplay   Gameplay         `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics holds speeds in cells per second.
type Physics struct {
	BallSpeed    float64 `yaml:"ball_speed"`     // launch speed at the lowest difficulty
	MaxBallSpeed float64 `yaml:"max_ball_speed"` // hard cap, never exceeded
	PaddleSpeed  float64 `yaml:"paddle_speed"`   // cells per key press
	Restitution  float64 `yaml:"restitution"`
}

// Paddle defines paddle geometry.
type Paddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // rows between the paddle's top edge and the screen bottom
	// EdgeThreshold is the normalised hit offset beyond which the ball
	// rebounds at a fixed 45°.
	EdgeThreshold float64 `yaml:"edge_threshold"`
}

// Ball defines ball geometry and placement.
type Ball struct {
	Radius       float64 `yaml:"radius"`
	LaunchOffset float64 `yaml:"launch_offset"` // distance above the paddle centre
	LostMargin   float64 `yaml:"lost_margin"`   // distance below the paddle that loses the ball
}

// Field defines the brick grid. BrickWidth 0 fits bricks to the width.
type Field struct {
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	BrickWidth    float64 `yaml:"brick_width"`
	BrickHeight   float64 `yaml:"brick_height"`
	GapX          float64 `yaml:"gap_x"`
	GapY          float64 `yaml:"gap_y"`
	Margin        float64 `yaml:"margin"`
	LaneClearance float64 `yaml:"lane_clearance"` // free rows kept above the paddle
}

// Gameplay defines rules shared by all variants.
type Gameplay struct {
	Lives int `yaml:"lives"`
}

// DifficultyConfig defines how the target ball speed grows.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "bricks", "time", or "none"
	MaxAt int    `yaml:"max_at"` // bricks broken or ticks at full difficulty
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to speed at full difficulty
}

// DifficultyPreset names a difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	}
	return ""
}

// InitialLevelForPreset returns the starting difficulty level of a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset adjusts cfg for preset. An empty preset leaves cfg alone.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives += 2
		cfg.Paddle.Width += 4
		cfg.Physics.BallSpeed *= 0.8
	case DifficultyHard:
		cfg.Gameplay.Lives = max(1, cfg.Gameplay.Lives-1)
		cfg.Paddle.Width = max(4, cfg.Paddle.Width-2)
		cfg.Physics.BallSpeed *= 1.25
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	case DifficultyNormal:
	default:
		return
	}
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	cfg.Physics.BallSpeed = min(cfg.Physics.BallSpeed, cfg.Physics.MaxBallSpeed)
}
