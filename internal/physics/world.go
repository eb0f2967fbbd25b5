package physics

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/entity"
)

const (
	maxSubsteps = 16
	touchEps    = 1e-9
)

type body struct {
	def BodyDef
	pos core.Vec2
	vel core.Vec2
}

func (b *body) state() BodyState {
	return BodyState{Position: b.pos, Velocity: b.vel, Dynamic: b.def.Dynamic}
}

type edgeLoop struct {
	box     core.Box
	cat     Category
	contact Category
}

// World is an arcade engine: dynamic circles move in straight lines and
// reflect off static boxes and the edge loop. There is no gravity, no
// friction, no rotation, and dynamic bodies ignore each other.
type World struct {
	bodies   map[entity.Handle]*body
	order    []*body // creation order, keeps steps deterministic
	loop     *edgeLoop
	tracker  *contactTracker
	listener ContactFunc
	pending  []Contact
}

var _ Port = (*World)(nil)

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{
		bodies:  make(map[entity.Handle]*body),
		tracker: newContactTracker(),
	}
}

// CreateBody adds a body. Dynamic bodies must be circles and static
// bodies must be boxes.
func (w *World) CreateBody(def BodyDef) error {
	if def.Entity.IsNil() {
		return fmt.Errorf("physics: cannot create body: nil entity handle")
	}
	if _, ok := w.bodies[def.Entity]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateBody, def.Entity.ID)
	}
	switch def.Shape.Kind {
	case ShapeCircle:
		if def.Shape.Radius <= 0 {
			return fmt.Errorf("%w: radius %v", ErrInvalidShape, def.Shape.Radius)
		}
		if !def.Dynamic {
			return fmt.Errorf("%w: static circle", ErrUnsupportedShape)
		}
	case ShapeBox:
		if def.Shape.W <= 0 || def.Shape.H <= 0 {
			return fmt.Errorf("%w: box %vx%v", ErrInvalidShape, def.Shape.W, def.Shape.H)
		}
		if def.Dynamic {
			return fmt.Errorf("%w: dynamic box", ErrUnsupportedShape)
		}
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidShape, def.Shape.Kind)
	}
	if def.Dynamic && def.Restitution == 0 {
		def.Restitution = 1
	}

	b := &body{def: def, pos: def.Position, vel: def.Velocity}
	if !def.Dynamic {
		b.vel = core.Vec2{}
	}
	w.bodies[def.Entity] = b
	w.order = append(w.order, b)
	return nil
}

// RemoveBody deletes the body of h. Unknown handles are ignored.
func (w *World) RemoveBody(h entity.Handle) {
	b, ok := w.bodies[h]
	if !ok {
		return
	}
	delete(w.bodies, h)
	for i, o := range w.order {
		if o == b {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	w.tracker.forget(h)
}

// SetVelocity sets the velocity of a dynamic body.
func (w *World) SetVelocity(h entity.Handle, v core.Vec2) {
	if b, ok := w.bodies[h]; ok && b.def.Dynamic {
		b.vel = v
	}
}

// SetPosition teleports a body.
func (w *World) SetPosition(h entity.Handle, p core.Vec2) {
	if b, ok := w.bodies[h]; ok {
		b.pos = p
	}
}

// Body returns the state of h.
func (w *World) Body(h entity.Handle) (BodyState, bool) {
	b, ok := w.bodies[h]
	if !ok {
		return BodyState{}, false
	}
	return b.state(), true
}

// Len returns the number of bodies.
func (w *World) Len() int { return len(w.order) }

// SetEdgeLoop installs the border that keeps dynamic bodies inside box.
func (w *World) SetEdgeLoop(box core.Box, cat, contactMask Category) {
	w.loop = &edgeLoop{box: box, cat: cat, contact: contactMask}
}

// OnContact registers the contact listener, replacing any previous one.
func (w *World) OnContact(fn ContactFunc) {
	w.listener = fn
}

// Clear removes all bodies and the edge loop.
func (w *World) Clear() {
	clear(w.bodies)
	w.order = w.order[:0]
	w.loop = nil
	w.tracker.reset()
	w.pending = w.pending[:0]
}

// Step advances the world by dt seconds, then reports contacts that began
// during the step in the order they happened.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, b := range w.order {
		if b.def.Dynamic {
			w.advance(b, dt)
		}
	}
	w.tracker.endStep()

	contacts := w.pending
	w.pending = nil
	if w.listener != nil {
		for _, c := range contacts {
			w.listener(c)
		}
	}
	if w.pending == nil {
		w.pending = contacts[:0]
	}
}

// advance moves b in substeps short enough that it cannot skip over a
// body thinner than its own diameter.
func (w *World) advance(b *body, dt float64) {
	r := b.def.Shape.Radius
	n := int(math.Ceil(b.vel.Len() * dt / (r * 0.5)))
	n = core.Clamp(n, 1, maxSubsteps)
	h := dt / float64(n)

	for i := 0; i < n; i++ {
		b.pos = b.pos.Add(b.vel.Scale(h))
		w.collideLoop(b)
		for _, s := range w.order {
			if !s.def.Dynamic {
				w.collideBox(b, s)
			}
		}
	}
}

func (w *World) collideLoop(b *body) {
	if w.loop == nil {
		return
	}
	bounce := b.def.CollideMask.Has(w.loop.cat)
	report := b.def.ContactMask.Has(w.loop.cat) || w.loop.contact.Has(b.def.Category)
	if !bounce && !report {
		return
	}

	r := b.def.Shape.Radius
	box := w.loop.box
	walls := []struct {
		side   edge
		pen    float64
		normal core.Vec2
		point  core.Vec2
	}{
		{edgeLeft, box.X - (b.pos.X - r), core.V(1, 0), core.V(box.X, b.pos.Y)},
		{edgeRight, (b.pos.X + r) - box.Right(), core.V(-1, 0), core.V(box.Right(), b.pos.Y)},
		{edgeTop, box.Y - (b.pos.Y - r), core.V(0, 1), core.V(b.pos.X, box.Y)},
		{edgeBottom, (b.pos.Y + r) - box.Bottom(), core.V(0, -1), core.V(b.pos.X, box.Bottom())},
	}
	for _, wall := range walls {
		if wall.pen <= touchEps {
			continue
		}
		if bounce {
			b.pos = b.pos.Add(wall.normal.Scale(wall.pen))
			b.reflect(wall.normal)
		}
		if report {
			w.touch(pairKey{a: b.def.Entity, side: wall.side}, Contact{
				A:         b.def.Entity,
				CategoryA: b.def.Category,
				CategoryB: w.loop.cat,
				Point:     wall.point,
				Normal:    wall.normal,
			})
		}
	}
}

func (w *World) collideBox(b, s *body) {
	bounce := b.def.CollideMask.Has(s.def.Category)
	report := b.def.ContactMask.Has(s.def.Category) || s.def.ContactMask.Has(b.def.Category)
	if !bounce && !report {
		return
	}

	box := core.BoxAt(s.pos, s.def.Shape.W, s.def.Shape.H)
	normal, pen, point, hit := circleBox(b.pos, b.def.Shape.Radius, box)
	if !hit {
		return
	}
	if bounce {
		b.pos = b.pos.Add(normal.Scale(pen))
		b.reflect(normal)
	}
	if report {
		w.touch(pairKey{a: b.def.Entity, b: s.def.Entity}, Contact{
			A:         b.def.Entity,
			B:         s.def.Entity,
			CategoryA: b.def.Category,
			CategoryB: s.def.Category,
			Point:     point,
			Normal:    normal,
		})
	}
}

func (w *World) touch(k pairKey, c Contact) {
	if w.tracker.touch(k) {
		w.pending = append(w.pending, c)
	}
}

// reflect bounces the velocity off a surface with normal n when the body
// is moving into it.
func (b *body) reflect(n core.Vec2) {
	vn := b.vel.Dot(n)
	if vn >= 0 {
		return
	}
	b.vel = b.vel.Sub(n.Scale((1 + b.def.Restitution) * vn))
}

// circleBox tests a circle at p with radius r against box. It returns the
// separating normal (box toward circle), penetration depth and the closest
// point on the box.
func circleBox(p core.Vec2, r float64, box core.Box) (core.Vec2, float64, core.Vec2, bool) {
	q := core.V(
		core.ClampF(p.X, box.X, box.Right()),
		core.ClampF(p.Y, box.Y, box.Bottom()),
	)
	d := p.Sub(q)
	if dist := d.Len(); dist > 0 {
		if dist >= r-touchEps {
			return core.Vec2{}, 0, core.Vec2{}, false
		}
		return d.Scale(1 / dist), r - dist, q, true
	}

	// centre inside the box: leave through the nearest face
	faces := []struct {
		depth  float64
		normal core.Vec2
		point  core.Vec2
	}{
		{p.X - box.X, core.V(-1, 0), core.V(box.X, p.Y)},
		{box.Right() - p.X, core.V(1, 0), core.V(box.Right(), p.Y)},
		{p.Y - box.Y, core.V(0, -1), core.V(p.X, box.Y)},
		{box.Bottom() - p.Y, core.V(0, 1), core.V(p.X, box.Bottom())},
	}
	best := faces[0]
	for _, f := range faces[1:] {
		if f.depth < best.depth {
			best = f
		}
	}
	return best.normal, best.depth + r, best.point, true
}
