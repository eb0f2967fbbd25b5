package breakout

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

var (
	ErrEmptyField    = errors.New("breakout: field needs at least one row and column")
	ErrFieldTooLarge = errors.New("breakout: brick field does not fit the play area")
)

// FieldSpec describes a brick grid. A zero BrickW fits the widest whole
// brick into the area.
type FieldSpec struct {
	Rows, Cols int
	BrickW     float64
	BrickH     float64
	GapX, GapY float64
	Margin     float64
	Area       core.Box
}

// BrickSlot is one generated brick.
type BrickSlot struct {
	Row, Col int
	Box      core.Box
}

// GenerateField lays bricks out row-major in a grid centred horizontally
// in the area, starting Margin below its top. Bricks never overlap and
// never leave the area.
func GenerateField(spec FieldSpec) ([]BrickSlot, error) {
	if spec.Rows <= 0 || spec.Cols <= 0 {
		return nil, ErrEmptyField
	}
	cols := float64(spec.Cols)
	rows := float64(spec.Rows)
	usableW := spec.Area.W - 2*spec.Margin

	w := spec.BrickW
	if w <= 0 {
		w = math.Floor((usableW - spec.GapX*(cols-1)) / cols)
	}
	if w < 1 || spec.BrickH <= 0 {
		return nil, fmt.Errorf("%w: %d columns in %.0f cells", ErrFieldTooLarge, spec.Cols, spec.Area.W)
	}

	totalW := cols*w + (cols-1)*spec.GapX
	totalH := rows*spec.BrickH + (rows-1)*spec.GapY
	if totalW > usableW || spec.Margin+totalH > spec.Area.H {
		return nil, fmt.Errorf("%w: %.0fx%.0f grid in %.0fx%.0f area",
			ErrFieldTooLarge, totalW, totalH, spec.Area.W, spec.Area.H)
	}

	x0 := spec.Area.X + math.Floor((spec.Area.W-totalW)/2)
	y0 := spec.Area.Y + spec.Margin

	slots := make([]BrickSlot, 0, spec.Rows*spec.Cols)
	for r := 0; r < spec.Rows; r++ {
		for c := 0; c < spec.Cols; c++ {
			slots = append(slots, BrickSlot{
				Row: r,
				Col: c,
				Box: core.Box{
					X: x0 + float64(c)*(w+spec.GapX),
					Y: y0 + float64(r)*(spec.BrickH+spec.GapY),
					W: w,
					H: spec.BrickH,
				},
			})
		}
	}
	return slots, nil
}

// MinAreaFor returns the smallest area width and height that fits spec
// with one-cell bricks when BrickW is zero.
func MinAreaFor(spec FieldSpec) (w, h float64) {
	bw := spec.BrickW
	if bw <= 0 {
		bw = 1
	}
	cols := float64(max(spec.Cols, 1))
	rows := float64(max(spec.Rows, 1))
	w = cols*bw + (cols-1)*spec.GapX + 2*spec.Margin
	h = spec.Margin + rows*spec.BrickH + (rows-1)*spec.GapY
	return w, h
}
