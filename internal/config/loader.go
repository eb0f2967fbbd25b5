package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names returned by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load reads the configuration and reports where it came from.
// Search order: customPath -> ~/.brickbreaker/config.yaml ->
// ./configs/brickbreaker.yaml -> embedded default -> Default().
//
// Files are decoded on top of Default, so a file only needs the keys it
// changes. A customPath that cannot be read or parsed is an error; the
// other locations are skipped silently.
func Load(customPath string) (Config, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), SourceBuiltin, err
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{UserConfigPath(), filepath.Join("configs", "brickbreaker.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := Default()
	if err := decode(defaultYAML, &cfg); err != nil {
		return Default(), SourceBuiltin, nil
	}
	return cfg, SourceEmbedded, nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-supplied config path
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Validate rejects values the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Physics.BallSpeed <= 0 {
		errs = append(errs, errors.New("physics.ball_speed must be positive"))
	}
	if c.Physics.MaxBallSpeed < c.Physics.BallSpeed {
		errs = append(errs, errors.New("physics.max_ball_speed must be at least ball_speed"))
	}
	if c.Paddle.Width < 1 || c.Paddle.Height <= 0 {
		errs = append(errs, errors.New("paddle size must be positive"))
	}
	if c.Paddle.EdgeThreshold <= 0 || c.Paddle.EdgeThreshold > 1 {
		errs = append(errs, errors.New("paddle.edge_threshold must be in (0, 1]"))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball.radius must be positive"))
	}
	if c.Field.Rows <= 0 || c.Field.Cols <= 0 || c.Field.BrickHeight <= 0 {
		errs = append(errs, errors.New("field rows, cols and brick_height must be positive"))
	}
	if c.Field.BrickWidth < 0 || c.Field.GapX < 0 || c.Field.GapY < 0 || c.Field.Margin < 0 {
		errs = append(errs, errors.New("field sizes must not be negative"))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, errors.New("gameplay.lives must be positive"))
	}
	return errors.Join(errs...)
}

// UserConfigPath returns ~/.brickbreaker/config.yaml, or "" when the home
// directory is unknown.
func UserConfigPath() string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// HomeDir returns ~/.brickbreaker, or "" when the home directory is
// unknown.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker")
}
