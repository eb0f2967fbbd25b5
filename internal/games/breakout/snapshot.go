package breakout

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/entity"
)

// Snapshot captures the state that determines how a game continues.
type Snapshot struct {
	Tick      int
	Phase     Phase
	Outcome   Outcome
	Score     int
	BallsLost int
	Remaining int
	PaddleX   float64
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64
	// BrickData holds the slot ID and row of every live brick in slot order.
	BrickData []uint32
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick, PaddleX: g.paddleX}
	if g.ctrl != nil {
		snap.Phase = g.ctrl.Phase()
		snap.Outcome = g.ctrl.Outcome()
		snap.Score = g.ctrl.Score()
		snap.BallsLost = g.ctrl.BallsLost()
		snap.Remaining = g.ctrl.Remaining()
	}
	if st, ok := g.port.Body(g.ball); ok {
		snap.BallX, snap.BallY = st.Position.X, st.Position.Y
		snap.BallVX, snap.BallVY = st.Velocity.X, st.Velocity.Y
	}
	g.table.EachKind(entity.KindBrick, func(h entity.Handle, e entity.Entity) {
		snap.BrickData = append(snap.BrickData, h.ID, uint32(e.Row)) //#nosec G115 -- row is small
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallsLost) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)
	h = h*31 + uint64(snap.Outcome)

	for _, f := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallVX, snap.BallVY} {
		h = h*31 + math.Float64bits(f)
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v)
	}
	return h
}
