package core

// Action is a semantic intent decoupled from the physical key that
// produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow: nudge paddle left
	ActionRight          // D, Right arrow: nudge paddle right
	ActionConfirm        // Enter, Space: press the focused button
	ActionRestart        // R: try again after game over
	ActionPause          // P: toggle pause
	ActionBack           // Esc, B: back to menu
	ActionQuit           // Q, Ctrl+C
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionConfirm: "Confirm",
	ActionRestart: "Restart",
	ActionPause:   "Pause",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// PointerKind distinguishes hover/drag motion from a press.
type PointerKind int

const (
	PointerMove PointerKind = iota
	PointerDown
)

// PointerEvent is a pointer position in world units.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// InputFrame collects everything the player did during one tick.
type InputFrame struct {
	Actions map[Action]bool
	Pointer []PointerEvent
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks a as triggered this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Move records a pointer motion to (x, y).
func (f *InputFrame) Move(x, y float64) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: PointerMove, X: x, Y: y})
}

// Press records a pointer press at (x, y).
func (f *InputFrame) Press(x, y float64) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: PointerDown, X: x, Y: y})
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Pointer) == 0 && len(f.Actions) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Pointer = f.Pointer[:0]
}
