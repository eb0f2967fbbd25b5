package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/entity"
	"github.com/vovakirdan/brickbreaker/internal/physics"
)

// Collision categories.
const (
	CategoryBall   physics.Category = 1 << 0
	CategoryBrick  physics.Category = 1 << 1
	CategoryPaddle physics.Category = 1 << 2
	CategoryBorder physics.Category = 1 << 3
)

// PairType is the resolved kind of a contact.
type PairType uint8

const (
	PairUnknown PairType = iota
	PairBallBrick
	PairBallPaddle
	PairBallBorder
)

func (p PairType) String() string {
	switch p {
	case PairBallBrick:
		return "ball-brick"
	case PairBallPaddle:
		return "ball-paddle"
	case PairBallBorder:
		return "ball-border"
	}
	return "unknown"
}

// ResolvePair maps an unordered category pair to a PairType.
func ResolvePair(a, b physics.Category) PairType {
	if a > b {
		a, b = b, a
	}
	if a != CategoryBall {
		return PairUnknown
	}
	switch b {
	case CategoryBrick:
		return PairBallBrick
	case CategoryPaddle:
		return PairBallPaddle
	case CategoryBorder:
		return PairBallBorder
	}
	return PairUnknown
}

// resolveContact returns the pair type together with the ball and the
// other body, whatever order the engine reported them in.
func resolveContact(c physics.Contact) (PairType, entity.Handle, entity.Handle) {
	pair := ResolvePair(c.CategoryA, c.CategoryB)
	if c.CategoryA == CategoryBall {
		return pair, c.A, c.B
	}
	return pair, c.B, c.A
}

// PaddleBounce shapes the ball's velocity after it hits the paddle.
// offset is the contact x minus the paddle centre. Hits beyond threshold
// of the half width rebound at a fixed 45° away from the centre; any other
// hit keeps its direction, leaves upward and is renormalised to speed.
func PaddleBounce(offset, halfWidth float64, v core.Vec2, speed, threshold float64) core.Vec2 {
	n := 0.0
	if halfWidth > 0 {
		n = core.ClampF(offset/halfWidth, -1, 1)
	}
	if math.Abs(n) > threshold {
		return core.V(math.Copysign(1, n), -1).Normalize().Scale(speed)
	}
	out := core.V(v.X, -math.Abs(v.Y))
	if out.Y == 0 {
		out.Y = -1
	}
	return out.Normalize().Scale(speed)
}

// CollisionHandler turns physics contacts into gameplay. It never touches
// the physics world directly: all mutations go through the command queue.
type CollisionHandler struct {
	table *entity.Table
	queue *entity.Queue
	port  physics.Port
	ctrl  *Controller

	// speed returns the current target ball speed.
	speed     func() float64
	threshold float64

	hitFloor bool
	events   []core.Event
}

// NewCollisionHandler wires a handler to the scene.
func NewCollisionHandler(t *entity.Table, q *entity.Queue, port physics.Port, ctrl *Controller, speed func() float64, threshold float64) *CollisionHandler {
	return &CollisionHandler{
		table:     t,
		queue:     q,
		port:      port,
		ctrl:      ctrl,
		speed:     speed,
		threshold: threshold,
	}
}

// BeginStep clears per-step state.
func (h *CollisionHandler) BeginStep() {
	h.hitFloor = false
	h.events = h.events[:0]
}

// HitFloor reports whether the ball touched the bottom edge this step.
func (h *CollisionHandler) HitFloor() bool { return h.hitFloor }

// Events returns the events raised since BeginStep.
func (h *CollisionHandler) Events() []core.Event { return h.events }

// OnContact handles one contact. Contacts naming missing or already
// removed entities are ignored.
func (h *CollisionHandler) OnContact(c physics.Contact) {
	pair, ball, other := resolveContact(c)
	if pair == PairUnknown || !h.table.Alive(ball) || h.queue.PendingRemoval(ball) {
		return
	}

	switch pair {
	case PairBallBrick:
		h.onBrick(other)
	case PairBallPaddle:
		h.onPaddle(ball, other, c.Point)
	case PairBallBorder:
		if c.Normal.Y < 0 {
			h.hitFloor = true
		}
		h.events = append(h.events, core.EventWallHit)
	}
}

func (h *CollisionHandler) onBrick(brick entity.Handle) {
	e, ok := h.table.Get(brick)
	if !ok || e.Kind != entity.KindBrick || h.queue.PendingRemoval(brick) {
		return
	}
	h.queue.Remove(brick)
	h.ctrl.OnBrickDestroyed()
	h.events = append(h.events, core.EventBrickBroken)
}

func (h *CollisionHandler) onPaddle(ball, paddle entity.Handle, point core.Vec2) {
	p, ok := h.table.Get(paddle)
	if !ok || p.Kind != entity.KindPaddle {
		return
	}
	st, ok := h.port.Body(ball)
	if !ok {
		return
	}
	v := PaddleBounce(point.X-p.Pos.X, p.Size.X/2, st.Velocity, h.speed(), h.threshold)
	h.queue.SetVelocity(ball, v)
	h.events = append(h.events, core.EventPaddleHit)
}
