// Package entity keeps the scene's game objects in a slot table addressed
// by generation-checked handles, plus a command queue that defers
// mutations to a single point in the frame.
package entity

import "github.com/vovakirdan/brickbreaker/internal/core"

// Kind tags what an entity is.
type Kind uint8

const (
	KindNone Kind = iota
	KindBall
	KindPaddle
	KindBrick
	KindBorder
	KindLabel
	KindButton
)

func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindBrick:
		return "brick"
	case KindBorder:
		return "border"
	case KindLabel:
		return "label"
	case KindButton:
		return "button"
	}
	return "none"
}

// Handle identifies an entity. A handle goes stale once its entity is
// removed; the zero Handle is never valid.
type Handle struct {
	ID      uint32
	Version uint32
}

// IsNil reports whether h is the zero handle.
func (h Handle) IsNil() bool { return h.Version == 0 }

// Align anchors label text on its position.
type Align uint8

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Entity is the render-side view of a game object. Pos is the centre of
// the body, or the text anchor of a label.
type Entity struct {
	Kind  Kind
	Pos   core.Vec2
	Size  core.Vec2
	Text  string
	Align Align
	Color core.Color
	Row   int
}

// Bounds returns the entity's box in world units.
func (e Entity) Bounds() core.Box {
	return core.BoxAt(e.Pos, e.Size.X, e.Size.Y)
}

type slot struct {
	ent     Entity
	version uint32
	alive   bool
}

// Table stores entities in reusable slots.
type Table struct {
	slots []slot
	free  []uint32
	live  int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// Reserve hands out a handle whose entity does not exist yet. Call Activate
// to bring it to life.
func (t *Table) Reserve() Handle {
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		return Handle{ID: id, Version: t.slots[id].version}
	}
	t.slots = append(t.slots, slot{version: 1})
	return Handle{ID: uint32(len(t.slots) - 1), Version: 1} //#nosec G115 -- slot count stays tiny
}

// Activate stores e under a reserved handle. It returns false when h does
// not match a reserved slot.
func (t *Table) Activate(h Handle, e Entity) bool {
	if !t.matches(h) || t.slots[h.ID].alive {
		return false
	}
	t.slots[h.ID].ent = e
	t.slots[h.ID].alive = true
	t.live++
	return true
}

// Create reserves and activates in one call.
func (t *Table) Create(e Entity) Handle {
	h := t.Reserve()
	t.Activate(h, e)
	return h
}

// Remove deletes the entity behind h. Stale handles are ignored.
func (t *Table) Remove(h Handle) bool {
	if !t.Alive(h) {
		return false
	}
	s := &t.slots[h.ID]
	s.alive = false
	s.ent = Entity{}
	s.version++
	t.free = append(t.free, h.ID)
	t.live--
	return true
}

func (t *Table) matches(h Handle) bool {
	return !h.IsNil() && int(h.ID) < len(t.slots) && t.slots[h.ID].version == h.Version
}

// Alive reports whether h refers to a live entity.
func (t *Table) Alive(h Handle) bool {
	return t.matches(h) && t.slots[h.ID].alive
}

// Get returns the entity behind h.
func (t *Table) Get(h Handle) (Entity, bool) {
	if !t.Alive(h) {
		return Entity{}, false
	}
	return t.slots[h.ID].ent, true
}

// Update applies fn to the entity behind h in place.
func (t *Table) Update(h Handle, fn func(*Entity)) bool {
	if !t.Alive(h) {
		return false
	}
	fn(&t.slots[h.ID].ent)
	return true
}

// Len returns the number of live entities.
func (t *Table) Len() int { return t.live }

// CountKind returns how many live entities have kind k.
func (t *Table) CountKind(k Kind) int {
	n := 0
	for i := range t.slots {
		if t.slots[i].alive && t.slots[i].ent.Kind == k {
			n++
		}
	}
	return n
}

// Each visits live entities in slot order. Returning false stops the walk.
func (t *Table) Each(fn func(Handle, Entity) bool) {
	for i := range t.slots {
		s := &t.slots[i]
		if !s.alive {
			continue
		}
		if !fn(Handle{ID: uint32(i), Version: s.version}, s.ent) { //#nosec G115
			return
		}
	}
}

// EachKind visits live entities of kind k in slot order.
func (t *Table) EachKind(k Kind, fn func(Handle, Entity)) {
	t.Each(func(h Handle, e Entity) bool {
		if e.Kind == k {
			fn(h, e)
		}
		return true
	})
}

// Clear removes every entity. All outstanding handles go stale.
func (t *Table) Clear() {
	t.free = t.free[:0]
	for i := len(t.slots) - 1; i >= 0; i-- {
		t.slots[i].alive = false
		t.slots[i].ent = Entity{}
		t.slots[i].version++
		t.free = append(t.free, uint32(i)) //#nosec G115
	}
	t.live = 0
}
