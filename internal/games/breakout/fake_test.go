package breakout

import (
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/entity"
	"github.com/vovakirdan/brickbreaker/internal/physics"
)

// fakePort is a physics.Port that never moves anything on its own. Tests
// drive it through script, which runs on every Step.
type fakePort struct {
	bodies   map[entity.Handle]physics.BodyState
	defs     map[entity.Handle]physics.BodyDef
	loop     core.Box
	listener physics.ContactFunc
	steps    int
	clears   int
	script   func(p *fakePort, step int)
	pending  []physics.Contact
}

var _ physics.Port = (*fakePort)(nil)

func newFakePort() *fakePort {
	return &fakePort{
		bodies: make(map[entity.Handle]physics.BodyState),
		defs:   make(map[entity.Handle]physics.BodyDef),
	}
}

func (p *fakePort) CreateBody(def physics.BodyDef) error {
	if _, ok := p.bodies[def.Entity]; ok {
		return physics.ErrDuplicateBody
	}
	p.defs[def.Entity] = def
	p.bodies[def.Entity] = physics.BodyState{Position: def.Position, Velocity: def.Velocity, Dynamic: def.Dynamic}
	return nil
}

func (p *fakePort) RemoveBody(h entity.Handle) {
	delete(p.bodies, h)
	delete(p.defs, h)
}

func (p *fakePort) SetVelocity(h entity.Handle, v core.Vec2) {
	if st, ok := p.bodies[h]; ok {
		st.Velocity = v
		p.bodies[h] = st
	}
}

func (p *fakePort) SetPosition(h entity.Handle, pos core.Vec2) {
	if st, ok := p.bodies[h]; ok {
		st.Position = pos
		p.bodies[h] = st
	}
}

func (p *fakePort) Body(h entity.Handle) (physics.BodyState, bool) {
	st, ok := p.bodies[h]
	return st, ok
}

func (p *fakePort) SetEdgeLoop(box core.Box, _, _ physics.Category) { p.loop = box }

func (p *fakePort) OnContact(fn physics.ContactFunc) { p.listener = fn }

func (p *fakePort) Clear() {
	p.clears++
	clear(p.bodies)
	clear(p.defs)
}

func (p *fakePort) Step(float64) {
	p.steps++
	if p.script != nil {
		p.script(p, p.steps)
	}
	contacts := p.pending
	p.pending = nil
	for _, c := range contacts {
		if p.listener != nil {
			p.listener(c)
		}
	}
}

// emit queues a contact for delivery at the end of the current step.
func (p *fakePort) emit(c physics.Contact) {
	p.pending = append(p.pending, c)
}

func ballBrick(ball, brick entity.Handle) physics.Contact {
	return physics.Contact{A: ball, B: brick, CategoryA: CategoryBall, CategoryB: CategoryBrick}
}

// memScores is an in-memory HighScoreStore.
type memScores struct {
	high  int
	loads int
	saves []int
	err   error
}

func (m *memScores) LoadHighScore() (int, error) {
	m.loads++
	return m.high, m.err
}

func (m *memScores) SaveHighScore(score int) error {
	m.saves = append(m.saves, score)
	if m.err == nil {
		m.high = score
	}
	return m.err
}
