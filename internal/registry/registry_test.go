package registry

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

type stubGame struct {
	id     string
	logger *log.Logger
	scores core.HighScoreStore
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) UseLogger(l *log.Logger)              { g.logger = l }
func (g *stubGame) UseHighScores(s core.HighScoreStore)  { g.scores = s }

type nopScores struct{}

func (nopScores) LoadHighScore() (int, error) { return 0, nil }
func (nopScores) SaveHighScore(int) error     { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test-b", func() Game { return &stubGame{id: "zz-test-b"} })
	Register("zz-test-a", func() Game { return &stubGame{id: "zz-test-a"} })

	if !Exists("zz-test-a") || Exists("zz-test-missing") {
		t.Fatal("Exists() mismatch")
	}

	g, err := Create("zz-test-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz-test-a" {
		t.Errorf("ID() = %q", g.ID())
	}
	if _, err := Create("zz-test-missing"); err == nil {
		t.Error("expected error for unknown game")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz-test-") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title of %s = %q", info.ID, info.Title)
			}
		}
	}
	if strings.Join(ids, ",") != "zz-test-a,zz-test-b" {
		t.Errorf("List() order = %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate id")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}

func TestAttach(t *testing.T) {
	l := log.New(io.Discard)
	g := &stubGame{id: "x"}
	Attach(g, l, nopScores{})
	if g.logger != l || g.scores == nil {
		t.Error("Attach() did not hand over logger and scores")
	}

	g = &stubGame{id: "y"}
	Attach(g, nil, nil)
	if g.logger != nil || g.scores != nil {
		t.Error("Attach() should skip nil arguments")
	}
}
