package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg := Default()
	if err := decode(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v\nbuiltin = %+v", cfg, Default())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg.Gameplay.Lives != 3 || cfg.Field.Rows != 5 || cfg.Field.Cols != 20 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	local := filepath.Join(work, "configs", "brickbreaker.yaml")
	if err := os.WriteFile(local, []byte("gameplay:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if src != filepath.Join("configs", "brickbreaker.yaml") || cfg.Gameplay.Lives != 4 {
		t.Errorf("local config not used: src=%q lives=%d", src, cfg.Gameplay.Lives)
	}

	userDir := filepath.Join(home, ".brickbreaker")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("gameplay:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err = Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("user config should win over local, lives = %d", cfg.Gameplay.Lives)
	}
	if cfg.Paddle.Width != 10 {
		t.Errorf("keys missing from the file should keep defaults, paddle width = %v", cfg.Paddle.Width)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("field:\n  rows: 3\n  cols: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load(good)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if src != good || cfg.Field.Rows != 3 || cfg.Field.Cols != 8 {
		t.Errorf("custom config not applied: %q %+v", src, cfg.Field)
	}

	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "field: [\n"},
		{"invalid", "physics:\n  ball_speed: 50\n  max_ball_speed: 10\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			cfg, src, err := Load(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if src != SourceBuiltin || cfg != Default() {
				t.Error("a failed load should still hand back the builtin config")
			}
		})
	}

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero lives", func(c *Config) { c.Gameplay.Lives = 0 }},
		{"no rows", func(c *Config) { c.Field.Rows = 0 }},
		{"edge threshold", func(c *Config) { c.Paddle.EdgeThreshold = 1.5 }},
		{"negative gap", func(c *Config) { c.Field.GapX = -1 }},
		{"zero radius", func(c *Config) { c.Ball.Radius = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if cfg.Validate() == nil {
				t.Error("Validate() should fail")
			}
		})
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		width     float64
		enabled   bool
		initLevel float64
	}{
		{"", 3, 10, true, 0},
		{DifficultyEasy, 5, 14, true, 0},
		{DifficultyNormal, 3, 10, true, 0.3},
		{DifficultyHard, 2, 8, true, 0.7},
		{DifficultyFixed, 3, 10, false, 0},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Gameplay.Lives != tc.lives || cfg.Paddle.Width != tc.width {
				t.Errorf("lives=%d width=%v", cfg.Gameplay.Lives, cfg.Paddle.Width)
			}
			if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.InitialLevel != tc.initLevel {
				t.Errorf("difficulty = %+v", cfg.Difficulty)
			}
			if cfg.Physics.BallSpeed > cfg.Physics.MaxBallSpeed {
				t.Errorf("ball speed %v above max %v", cfg.Physics.BallSpeed, cfg.Physics.MaxBallSpeed)
			}
		})
	}

	if ParsePreset("hard") != DifficultyHard || ParsePreset("nightmare") != "" {
		t.Error("ParsePreset mismatch")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := Default().Difficulty
	d := NewDifficultyManager(cfg)

	if lvl := d.Level(0, 0); lvl != 0 {
		t.Errorf("Level(0) = %v, expected 0", lvl)
	}
	if lvl := d.Level(50, 0); lvl != 0.5 {
		t.Errorf("Level(50) = %v, expected 0.5", lvl)
	}
	if lvl := d.Level(500, 0); lvl != 1 {
		t.Errorf("Level(500) = %v, expected 1", lvl)
	}

	if s := d.Speed(24, 40, 100, 0); s != 36 {
		t.Errorf("Speed at full difficulty = %v, expected 36", s)
	}
	if s := d.Speed(24, 30, 100, 0); s != 30 {
		t.Errorf("Speed should be capped at 30, got %v", s)
	}

	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	fixed := NewDifficultyManager(cfg)
	if fixed.IsEnabled() || fixed.Level(100, 1000) != 0.5 {
		t.Error("disabled manager should stay at its initial level")
	}

	timed := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:     ScalingConfig{SpeedMultiplier: 1},
	})
	if lvl := timed.Level(0, 300); lvl != 0.5 {
		t.Errorf("time Level = %v, expected 0.5", lvl)
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("BRICKBREAKER_DB", "/tmp/bb.db")
	t.Setenv("BRICKBREAKER_SOUND", "true")
	t.Setenv("BRICKBREAKER_DIFFICULTY", "hard")

	e, err := ParseEnv()
	if err != nil {
		t.Fatalf("ParseEnv() error = %v", err)
	}
	if e.DB != "/tmp/bb.db" || !e.Sound || e.Difficulty != "hard" {
		t.Errorf("ParseEnv() = %+v", e)
	}
	if e.LogLevel != "info" {
		t.Errorf("LogLevel default = %q, expected info", e.LogLevel)
	}

	t.Setenv("BRICKBREAKER_SOUND", "loud")
	if _, err := ParseEnv(); err == nil {
		t.Error("invalid bool should fail to parse")
	}
}
