package physics

import "github.com/vovakirdan/brickbreaker/internal/entity"

// edge identifies a side of the edge loop in a pair key.
type edge int8

const (
	edgeNone edge = iota
	edgeLeft
	edgeRight
	edgeTop
	edgeBottom
)

type pairKey struct {
	a, b entity.Handle
	side edge
}

// contactTracker remembers which pairs are touching so a contact is
// reported once when a touch begins, not on every step it persists.
type contactTracker struct {
	active  map[pairKey]bool
	touched map[pairKey]bool
}

func newContactTracker() *contactTracker {
	return &contactTracker{
		active:  make(map[pairKey]bool),
		touched: make(map[pairKey]bool),
	}
}

// touch marks k as touching during the current step and reports whether
// the touch is new.
func (t *contactTracker) touch(k pairKey) bool {
	t.touched[k] = true
	if t.active[k] {
		return false
	}
	t.active[k] = true
	return true
}

// endStep forgets pairs that were not touched since the previous endStep.
func (t *contactTracker) endStep() {
	for k := range t.active {
		if !t.touched[k] {
			delete(t.active, k)
		}
	}
	clear(t.touched)
}

// forget drops every pair that involves h.
func (t *contactTracker) forget(h entity.Handle) {
	for k := range t.active {
		if k.a == h || k.b == h {
			delete(t.active, k)
		}
	}
	for k := range t.touched {
		if k.a == h || k.b == h {
			delete(t.touched, k)
		}
	}
}

func (t *contactTracker) reset() {
	clear(t.active)
	clear(t.touched)
}
