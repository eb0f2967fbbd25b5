package entity

import "github.com/vovakirdan/brickbreaker/internal/core"

// Op is the kind of a queued mutation.
type Op uint8

const (
	OpCreate Op = iota + 1
	OpMove
	OpSetVelocity
	OpSetText
	OpRemove
)

// Command is one deferred mutation. Only the fields relevant to Op are set.
type Command struct {
	Op     Op
	Handle Handle
	Entity Entity    // OpCreate
	Vec    core.Vec2 // OpMove position, OpSetVelocity velocity
	Text   string    // OpSetText
}

// Queue collects mutations raised during a frame (mostly from contact
// callbacks, which must not touch the physics world) and hands them out
// in order once the step is over.
type Queue struct {
	table    *Table
	cmds     []Command
	removing map[Handle]bool
}

// NewQueue returns a queue that reserves handles from t.
func NewQueue(t *Table) *Queue {
	return &Queue{table: t, removing: make(map[Handle]bool)}
}

// Create queues e for creation and returns its handle right away. The
// handle is not Alive until the queue is drained.
func (q *Queue) Create(e Entity) Handle {
	h := q.table.Reserve()
	q.cmds = append(q.cmds, Command{Op: OpCreate, Handle: h, Entity: e})
	return h
}

// Move queues a position change.
func (q *Queue) Move(h Handle, pos core.Vec2) {
	q.push(Command{Op: OpMove, Handle: h, Vec: pos})
}

// SetVelocity queues a velocity change.
func (q *Queue) SetVelocity(h Handle, v core.Vec2) {
	q.push(Command{Op: OpSetVelocity, Handle: h, Vec: v})
}

// SetText queues a label text change.
func (q *Queue) SetText(h Handle, text string) {
	q.push(Command{Op: OpSetText, Handle: h, Text: text})
}

// Remove queues a removal. Removing the same handle twice in one frame
// queues it once.
func (q *Queue) Remove(h Handle) {
	if h.IsNil() || q.removing[h] {
		return
	}
	q.removing[h] = true
	q.cmds = append(q.cmds, Command{Op: OpRemove, Handle: h})
}

// PendingRemoval reports whether h is already queued for removal.
func (q *Queue) PendingRemoval(h Handle) bool {
	return q.removing[h]
}

func (q *Queue) push(c Command) {
	if c.Handle.IsNil() || q.removing[c.Handle] {
		return
	}
	q.cmds = append(q.cmds, c)
}

// Len returns the number of queued commands.
func (q *Queue) Len() int { return len(q.cmds) }

// Drain passes every queued command to apply in order and empties the
// queue. Commands queued by apply itself run in the same drain.
func (q *Queue) Drain(apply func(Command)) {
	for i := 0; i < len(q.cmds); i++ {
		apply(q.cmds[i])
	}
	q.cmds = q.cmds[:0]
	clear(q.removing)
}

// Reset drops everything queued without applying it.
func (q *Queue) Reset() {
	q.cmds = q.cmds[:0]
	clear(q.removing)
}
