// Package physics defines the narrow boundary between gameplay code and a
// rigid-body engine, and ships World, a small arcade engine behind it.
//
// Units follow the screen: one unit is one terminal cell and y grows
// downward. Positions are body centres.
package physics

import (
	"errors"

	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/entity"
)

// Category is a collision category bit set.
type Category uint32

// Has reports whether any bit of o is set in c.
func (c Category) Has(o Category) bool { return c&o != 0 }

// ShapeKind selects the body geometry.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota + 1
	ShapeBox
)

// Shape describes body geometry around its centre.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // ShapeCircle
	W, H   float64 // ShapeBox
}

// Circle returns a circle shape of radius r.
func Circle(r float64) Shape { return Shape{Kind: ShapeCircle, Radius: r} }

// Rectangle returns a w×h box shape.
func Rectangle(w, h float64) Shape { return Shape{Kind: ShapeBox, W: w, H: h} }

// BodyDef describes a body to create.
//
// A dynamic body bounces off bodies whose Category intersects its
// CollideMask. A contact is reported when either body's ContactMask
// intersects the other's Category.
type BodyDef struct {
	Entity      entity.Handle
	Shape       Shape
	Position    core.Vec2
	Velocity    core.Vec2
	Dynamic     bool
	Category    Category
	CollideMask Category
	ContactMask Category
	Restitution float64 // dynamic bodies only; zero means 1
}

// BodyState is a body's kinematic state.
type BodyState struct {
	Position core.Vec2
	Velocity core.Vec2
	Dynamic  bool
}

// Contact describes the first touch of a pair of bodies. A is always the
// dynamic body. B is the zero handle for the edge loop. Normal points from
// B toward A.
type Contact struct {
	A, B      entity.Handle
	CategoryA Category
	CategoryB Category
	Point     core.Vec2
	Normal    core.Vec2
}

// ContactFunc receives contacts after a step has finished moving bodies.
type ContactFunc func(Contact)

var (
	ErrDuplicateBody    = errors.New("physics: body already exists for entity")
	ErrInvalidShape     = errors.New("physics: invalid shape")
	ErrUnsupportedShape = errors.New("physics: unsupported shape for body type")
)

// Port is what gameplay needs from a physics engine.
type Port interface {
	CreateBody(def BodyDef) error
	RemoveBody(h entity.Handle)
	SetVelocity(h entity.Handle, v core.Vec2)
	SetPosition(h entity.Handle, p core.Vec2)
	Body(h entity.Handle) (BodyState, bool)
	// SetEdgeLoop confines dynamic bodies to the inside of box.
	SetEdgeLoop(box core.Box, cat, contactMask Category)
	Step(dt float64)
	OnContact(fn ContactFunc)
	// Clear removes every body and the edge loop. The contact listener
	// stays registered.
	Clear()
}
