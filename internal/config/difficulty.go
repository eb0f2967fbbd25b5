package config

import "math"

// DifficultyManager derives the target ball speed from progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// IsEnabled reports whether difficulty progresses at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty in [0, 1] after bricks broken and ticks
// played.
func (d *DifficultyManager) Level(bricks, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "bricks":
		progress = float64(bricks) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}
	progress = clampF(progress, 0, 1)

	return d.initialLevel + progress*(1-d.initialLevel)
}

// Speed scales base from base up to base*(1+speed_multiplier) with the
// difficulty level, never returning more than limit.
func (d *DifficultyManager) Speed(base, limit float64, bricks, ticks int) float64 {
	level := d.Level(bricks, ticks)
	return math.Min(base*(1+level*d.cfg.Scaling.SpeedMultiplier), limit)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
