package entity

import (
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

func TestTableCreateGetRemove(t *testing.T) {
	tbl := NewTable()
	h := tbl.Create(Entity{Kind: KindBrick, Pos: core.V(3, 4)})

	e, ok := tbl.Get(h)
	if !ok || e.Kind != KindBrick || e.Pos != core.V(3, 4) {
		t.Fatalf("Get() = %+v, %v", e, ok)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", tbl.Len())
	}

	if !tbl.Remove(h) {
		t.Fatal("Remove() should succeed on a live handle")
	}
	if tbl.Remove(h) {
		t.Error("second Remove() should be a no-op")
	}
	if _, ok := tbl.Get(h); ok {
		t.Error("removed handle should be stale")
	}
	if tbl.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", tbl.Len())
	}
}

func TestTableSlotReuseKeepsOldHandlesStale(t *testing.T) {
	tbl := NewTable()
	old := tbl.Create(Entity{Kind: KindBall})
	tbl.Remove(old)

	fresh := tbl.Create(Entity{Kind: KindPaddle})
	if fresh.ID != old.ID {
		t.Fatalf("expected slot %d to be reused, got %d", old.ID, fresh.ID)
	}
	if tbl.Alive(old) {
		t.Error("old handle must not see the new occupant")
	}
	if e, _ := tbl.Get(fresh); e.Kind != KindPaddle {
		t.Errorf("fresh entity kind = %v", e.Kind)
	}
}

func TestTableZeroHandle(t *testing.T) {
	tbl := NewTable()
	tbl.Create(Entity{Kind: KindBall})

	var h Handle
	if !h.IsNil() || tbl.Alive(h) {
		t.Error("zero handle must never be alive")
	}
	if tbl.Update(h, func(*Entity) {}) {
		t.Error("Update() on zero handle should fail")
	}
}

func TestTableReserveActivate(t *testing.T) {
	tbl := NewTable()
	h := tbl.Reserve()
	if tbl.Alive(h) {
		t.Fatal("reserved handle should not be alive yet")
	}
	if !tbl.Activate(h, Entity{Kind: KindLabel, Text: "Score: 0"}) {
		t.Fatal("Activate() failed")
	}
	if tbl.Activate(h, Entity{}) {
		t.Error("double Activate() should fail")
	}
	tbl.Update(h, func(e *Entity) { e.Text = "Score: 1" })
	if e, _ := tbl.Get(h); e.Text != "Score: 1" {
		t.Errorf("Text = %q", e.Text)
	}
}

func TestTableCountAndClear(t *testing.T) {
	tbl := NewTable()
	var bricks []Handle
	for i := 0; i < 5; i++ {
		bricks = append(bricks, tbl.Create(Entity{Kind: KindBrick, Row: i}))
	}
	tbl.Create(Entity{Kind: KindBall})

	if n := tbl.CountKind(KindBrick); n != 5 {
		t.Errorf("CountKind(brick) = %d, expected 5", n)
	}

	var rows []int
	tbl.EachKind(KindBrick, func(_ Handle, e Entity) { rows = append(rows, e.Row) })
	for i, r := range rows {
		if r != i {
			t.Fatalf("EachKind order = %v, expected slot order", rows)
		}
	}

	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len() after Clear = %d", tbl.Len())
	}
	for _, h := range bricks {
		if tbl.Alive(h) {
			t.Fatal("handles must go stale after Clear")
		}
	}
	h := tbl.Create(Entity{Kind: KindBall})
	if h.ID != 0 {
		t.Errorf("first slot should be reused after Clear, got %d", h.ID)
	}
}

func TestQueueAppliesInOrder(t *testing.T) {
	tbl := NewTable()
	q := NewQueue(tbl)

	h := q.Create(Entity{Kind: KindBall})
	q.Move(h, core.V(1, 2))
	q.SetVelocity(h, core.V(3, -3))
	q.SetText(h, "x")

	var ops []Op
	q.Drain(func(c Command) {
		ops = append(ops, c.Op)
		if c.Op == OpCreate {
			tbl.Activate(c.Handle, c.Entity)
		}
	})

	want := []Op{OpCreate, OpMove, OpSetVelocity, OpSetText}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, expected %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops = %v, expected %v", ops, want)
		}
	}
	if !tbl.Alive(h) {
		t.Error("created handle should be alive after drain")
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after drain, Len() = %d", q.Len())
	}
}

func TestQueueDuplicateRemoval(t *testing.T) {
	tbl := NewTable()
	q := NewQueue(tbl)
	h := tbl.Create(Entity{Kind: KindBrick})

	q.Remove(h)
	q.Remove(h)
	q.Move(h, core.V(0, 0))

	if !q.PendingRemoval(h) {
		t.Error("handle should be pending removal")
	}

	removed := 0
	q.Drain(func(c Command) {
		switch c.Op {
		case OpRemove:
			removed++
			tbl.Remove(c.Handle)
		case OpMove:
			t.Error("move after removal should be dropped")
		}
	})
	if removed != 1 {
		t.Errorf("removed %d times, expected 1", removed)
	}
	if q.PendingRemoval(h) {
		t.Error("pending set should clear after drain")
	}
}

func TestQueueReset(t *testing.T) {
	q := NewQueue(NewTable())
	q.Create(Entity{Kind: KindBall})
	q.Reset()

	called := false
	q.Drain(func(Command) { called = true })
	if called {
		t.Error("Reset should drop queued commands")
	}
}
