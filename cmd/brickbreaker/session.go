package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/brickbreaker/internal/audio"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/breakout"
	"github.com/vovakirdan/brickbreaker/internal/platform/tui"
	"github.com/vovakirdan/brickbreaker/internal/registry"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// session holds what every interactive command shares.
type session struct {
	cfg    core.RuntimeConfig
	store  *storage.Store
	sounds *audio.Player
	logger *log.Logger
	logOut io.Closer
}

// openSession sizes the screen, opens the log, the database and the
// speaker. Only a broken log file is fatal: without a database the game
// runs without scores, without a speaker it runs silent.
func openSession() (*session, error) {
	s := &session{cfg: terminalConfig()}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}
	s.logger, s.logOut = logger, closer

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		s.logger.Warn("scores disabled", "db", flagDBPath, "err", err)
	}
	s.store = store

	s.sounds = audio.NewPlayer(flagSound, s.logger)
	if err := s.sounds.Init(); err != nil {
		s.logger.Warn("sound disabled", "err", err)
	}

	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	s.logger.Info("session start", "w", s.cfg.ScreenW, "h", s.cfg.ScreenH, "fps", s.cfg.TickRate, "sound", s.sounds.Enabled())
	return s, nil
}

func (s *session) Close() {
	s.sounds.Close()
	if s.store != nil {
		s.store.Close()
	}
	s.logger.Info("session end")
	if s.logOut != nil {
		s.logOut.Close()
	}
}

// play runs one game of variant and reports whether the player went back
// to the menu.
func (s *session) play(variant string) (bool, error) {
	game, err := registry.Create(variant)
	if err != nil {
		return false, err
	}
	back, err := tui.Run(game, tui.Options{
		Store:         s.store,
		Sounds:        s.sounds,
		Logger:        s.logger,
		ScreenshotDir: filepath.Join(config.HomeDir(), "screenshots"),
	}, s.cfg)
	if err != nil {
		return false, fmt.Errorf("running %s: %w", variant, err)
	}
	return back, nil
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = tui.ClampTickRate(flagFPS)
	return cfg
}

// openLogger opens the log file for appending. The terminal belongs to
// the game, so nothing is logged to it.
func openLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	if path == "" {
		dir := config.HomeDir()
		if dir == "" {
			return log.New(io.Discard), nil, nil
		}
		path = filepath.Join(dir, "brickbreaker.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "brickbreaker",
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger, f, nil
}
