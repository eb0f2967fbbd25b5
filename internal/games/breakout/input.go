package breakout

import "github.com/vovakirdan/brickbreaker/internal/core"

// inputTarget is the slice of the game the input handler drives.
type inputTarget interface {
	Phase() Phase
	PaddleX() float64
	MovePaddle(x float64)
	// TryAgain returns the bounds of the "Try Again" control while it is
	// shown.
	TryAgain() (core.Box, bool)
	Restart()
}

// InputHandler maps pointer and keyboard input onto the paddle and the
// game over control.
type InputHandler struct {
	target    inputTarget
	minX      float64
	maxX      float64
	nudge     float64
	restarted bool
}

// NewInputHandler creates a handler that keeps a paddle of width inside
// play. nudge is how far one key press moves the paddle.
func NewInputHandler(t inputTarget, play core.Box, width, nudge float64) *InputHandler {
	h := &InputHandler{target: t, nudge: nudge}
	h.SetBounds(play, width)
	return h
}

// SetBounds updates the play area and paddle width used for clamping.
func (h *InputHandler) SetBounds(play core.Box, width float64) {
	h.minX = play.X + width/2
	h.maxX = play.Right() - width/2
	if h.minX > h.maxX {
		mid := play.Center().X
		h.minX, h.maxX = mid, mid
	}
}

// ClampX returns the paddle centre nearest to x that keeps the paddle
// inside the play area.
func (h *InputHandler) ClampX(x float64) float64 {
	return core.ClampF(x, h.minX, h.maxX)
}

// OnPointerMove moves the paddle under the pointer.
func (h *InputHandler) OnPointerMove(x, _ float64) {
	h.target.MovePaddle(h.ClampX(x))
}

// OnPointerDown restarts the game when the press lands on the "Try Again"
// control after the game is over. Any other press does nothing.
func (h *InputHandler) OnPointerDown(x, y float64) bool {
	if h.target.Phase() != PhaseGameOver {
		return false
	}
	bounds, ok := h.target.TryAgain()
	if !ok || !bounds.Contains(core.V(x, y)) {
		return false
	}
	h.restart()
	return true
}

func (h *InputHandler) restart() {
	h.restarted = true
	h.target.Restart()
}

// Apply feeds one frame of input through the handler and reports whether
// it restarted the game. Input after a restart in the same frame is
// dropped.
func (h *InputHandler) Apply(in core.InputFrame) bool {
	h.restarted = false
	for _, p := range in.Pointer {
		switch p.Kind {
		case core.PointerMove:
			h.OnPointerMove(p.X, p.Y)
		case core.PointerDown:
			if h.OnPointerDown(p.X, p.Y) {
				return true
			}
		}
	}

	over := h.target.Phase() == PhaseGameOver
	if over && (in.Has(core.ActionRestart) || in.Has(core.ActionConfirm)) {
		h.restart()
		return true
	}

	dx := 0.0
	if in.Has(core.ActionLeft) {
		dx -= h.nudge
	}
	if in.Has(core.ActionRight) {
		dx += h.nudge
	}
	if dx != 0 {
		h.target.MovePaddle(h.ClampX(h.target.PaddleX() + dx))
	}
	return h.restarted
}
