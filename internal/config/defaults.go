package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration used when even the embedded
// YAML cannot be parsed.
func Default() Config {
	return Config{
		Physics: Physics{
			BallSpeed:    24,
			MaxBallSpeed: 40,
			PaddleSpeed:  3,
			Restitution:  1,
		},
		Paddle: Paddle{
			Width:         10,
			Height:        1,
			BottomOffset:  4,
			EdgeThreshold: 0.8,
		},
		Ball: Ball{
			Radius:       0.5,
			LaunchOffset: 2,
			LostMargin:   0.5,
		},
		Field: Field{
			Rows:          5,
			Cols:          20,
			BrickWidth:    0,
			BrickHeight:   1,
			GapX:          1,
			GapY:          0,
			Margin:        1,
			LaneClearance: 6,
		},
		Gameplay: Gameplay{
			Lives: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "bricks",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
