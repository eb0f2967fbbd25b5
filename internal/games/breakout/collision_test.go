package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/entity"
	"github.com/vovakirdan/brickbreaker/internal/physics"
)

func TestResolvePair(t *testing.T) {
	tests := []struct {
		a, b physics.Category
		want PairType
	}{
		{CategoryBall, CategoryBrick, PairBallBrick},
		{CategoryBall, CategoryPaddle, PairBallPaddle},
		{CategoryBall, CategoryBorder, PairBallBorder},
		{CategoryBrick, CategoryPaddle, PairUnknown},
		{CategoryBall, CategoryBall, PairUnknown},
		{CategoryBrick, CategoryBorder, PairUnknown},
		{CategoryBall, 1 << 7, PairUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.want.String(), func(t *testing.T) {
			if got := ResolvePair(tc.a, tc.b); got != tc.want {
				t.Errorf("ResolvePair(%d, %d) = %v, expected %v", tc.a, tc.b, got, tc.want)
			}
			if got := ResolvePair(tc.b, tc.a); got != tc.want {
				t.Errorf("ResolvePair(%d, %d) = %v, expected %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestPaddleBounce(t *testing.T) {
	const speed = 30.0

	tests := []struct {
		name   string
		offset float64
		v      core.Vec2
		dirX   float64 // sign of the outgoing x velocity, 0 to skip
	}{
		{"right edge", 4.5, core.V(-10, 10), 1},
		{"left edge", -4.5, core.V(10, 10), -1},
		{"beyond the paddle", 9, core.V(0, 20), 1},
		{"centre keeps direction", 0.5, core.V(-12, 16), -1},
		{"arrives moving up", 1, core.V(5, -5), 1},
		{"flat velocity", 0, core.V(20, 0), 1},
		{"no velocity", 0, core.Vec2{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := PaddleBounce(tc.offset, 5, tc.v, speed, 0.8)
			if math.Abs(out.Len()-speed) > 1e-9 {
				t.Errorf("speed = %v, expected %v", out.Len(), speed)
			}
			if out.Y >= 0 {
				t.Errorf("ball should leave upward, v = %+v", out)
			}
			if tc.dirX != 0 && math.Signbit(out.X) != math.Signbit(tc.dirX) {
				t.Errorf("x direction = %v, expected sign of %v", out.X, tc.dirX)
			}
		})
	}

	edge := PaddleBounce(5, 5, core.V(-3, 3), speed, 0.8)
	if math.Abs(math.Abs(edge.X)-math.Abs(edge.Y)) > 1e-9 {
		t.Errorf("edge hit should rebound at 45°, got %+v", edge)
	}
}

func TestPaddleBounceNeverExceedsSpeed(t *testing.T) {
	for off := -6.0; off <= 6; off += 0.25 {
		for vx := -40.0; vx <= 40; vx += 10 {
			for vy := -40.0; vy <= 40; vy += 10 {
				out := PaddleBounce(off, 5, core.V(vx, vy), 25, 0.8)
				if out.Len() > 25+1e-9 {
					t.Fatalf("offset %v v (%v, %v): speed %v", off, vx, vy, out.Len())
				}
			}
		}
	}
}

type collisionFixture struct {
	table   *entity.Table
	queue   *entity.Queue
	port    *fakePort
	ctrl    *Controller
	handler *CollisionHandler
	ball    entity.Handle
	paddle  entity.Handle
}

func newCollisionFixture(t *testing.T) *collisionFixture {
	t.Helper()
	f := &collisionFixture{table: entity.NewTable(), port: newFakePort()}
	f.queue = entity.NewQueue(f.table)
	f.ctrl = NewController(Scored.Rules(3))
	f.ctrl.Reset(10)
	f.handler = NewCollisionHandler(f.table, f.queue, f.port, f.ctrl, func() float64 { return 20 }, 0.8)

	f.ball = f.table.Create(entity.Entity{Kind: entity.KindBall, Pos: core.V(10, 10)})
	if err := f.port.CreateBody(physics.BodyDef{Entity: f.ball, Position: core.V(10, 10), Velocity: core.V(3, -4), Dynamic: true}); err != nil {
		t.Fatal(err)
	}
	f.paddle = f.table.Create(entity.Entity{Kind: entity.KindPaddle, Pos: core.V(10, 20), Size: core.V(10, 1)})
	f.handler.BeginStep()
	return f
}

func (f *collisionFixture) drain() []entity.Command {
	var cmds []entity.Command
	f.queue.Drain(func(c entity.Command) {
		cmds = append(cmds, c)
		if c.Op == entity.OpRemove {
			f.table.Remove(c.Handle)
		}
	})
	return cmds
}

func TestCollisionBallBrick(t *testing.T) {
	f := newCollisionFixture(t)
	brick := f.table.Create(entity.Entity{Kind: entity.KindBrick})

	// reported brick-first, twice in the same frame
	c := physics.Contact{A: brick, B: f.ball, CategoryA: CategoryBrick, CategoryB: CategoryBall}
	f.handler.OnContact(c)
	f.handler.OnContact(c)

	if f.ctrl.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", f.ctrl.Score())
	}
	cmds := f.drain()
	if len(cmds) != 1 || cmds[0].Op != entity.OpRemove || cmds[0].Handle != brick {
		t.Fatalf("commands = %+v, expected a single removal", cmds)
	}
	if evs := f.handler.Events(); len(evs) != 1 || evs[0] != core.EventBrickBroken {
		t.Errorf("events = %v", evs)
	}

	// the brick is gone now
	f.handler.OnContact(c)
	if f.ctrl.Score() != 1 || f.queue.Len() != 0 {
		t.Error("contact with a removed brick should be a no-op")
	}
}

func TestCollisionBallPaddle(t *testing.T) {
	f := newCollisionFixture(t)

	f.handler.OnContact(physics.Contact{
		A: f.ball, B: f.paddle,
		CategoryA: CategoryBall, CategoryB: CategoryPaddle,
		Point: core.V(14.8, 19.5),
	})

	cmds := f.drain()
	if len(cmds) != 1 || cmds[0].Op != entity.OpSetVelocity {
		t.Fatalf("commands = %+v, expected a velocity change", cmds)
	}
	v := cmds[0].Vec
	if math.Abs(v.Len()-20) > 1e-9 || v.X <= 0 || v.Y >= 0 {
		t.Errorf("right edge hit should send the ball up and right at speed 20, got %+v", v)
	}
}

func TestCollisionBorderFloor(t *testing.T) {
	f := newCollisionFixture(t)
	side := physics.Contact{A: f.ball, CategoryA: CategoryBall, CategoryB: CategoryBorder, Normal: core.V(1, 0)}
	floor := physics.Contact{A: f.ball, CategoryA: CategoryBall, CategoryB: CategoryBorder, Normal: core.V(0, -1)}

	f.handler.OnContact(side)
	if f.handler.HitFloor() {
		t.Error("side wall is not the floor")
	}
	f.handler.OnContact(floor)
	if !f.handler.HitFloor() {
		t.Error("bottom wall should count as the floor")
	}
	f.handler.BeginStep()
	if f.handler.HitFloor() || len(f.handler.Events()) != 0 {
		t.Error("BeginStep should clear per-step state")
	}
}

func TestCollisionIgnoresMalformedContacts(t *testing.T) {
	f := newCollisionFixture(t)
	brick := f.table.Create(entity.Entity{Kind: entity.KindBrick})
	stale := f.table.Create(entity.Entity{Kind: entity.KindBrick})
	f.table.Remove(stale)

	contacts := []physics.Contact{
		ballBrick(f.ball, stale),
		ballBrick(entity.Handle{}, brick),
		ballBrick(f.ball, f.paddle), // wrong kind behind the handle
		{A: brick, B: f.paddle, CategoryA: CategoryBrick, CategoryB: CategoryPaddle},
		{A: f.ball, B: brick, CategoryA: CategoryBall, CategoryB: CategoryPaddle},
	}
	for _, c := range contacts {
		f.handler.OnContact(c)
	}
	if f.queue.Len() != 0 || f.ctrl.Score() != 0 {
		t.Errorf("malformed contacts changed state: queued=%d score=%d", f.queue.Len(), f.ctrl.Score())
	}

	f.queue.Remove(f.ball)
	f.handler.OnContact(ballBrick(f.ball, brick))
	if f.ctrl.Score() != 0 {
		t.Error("a ball pending removal should not break bricks")
	}
}
