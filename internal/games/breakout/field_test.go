package breakout

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

func TestGenerateField(t *testing.T) {
	tests := []struct {
		name string
		spec FieldSpec
	}{
		{"default 80 column grid", FieldSpec{Rows: 5, Cols: 20, BrickH: 1, GapX: 1, Margin: 1, Area: core.Box{X: 1, Y: 2, W: 78, H: 12}}},
		{"5 by 10 fixed width", FieldSpec{Rows: 5, Cols: 10, BrickW: 4, BrickH: 1, GapX: 1, GapY: 1, Margin: 1, Area: core.Box{X: 1, Y: 2, W: 78, H: 12}}},
		{"single brick", FieldSpec{Rows: 1, Cols: 1, BrickH: 2, Area: core.Box{X: 0, Y: 0, W: 7, H: 2}}},
		{"tight fit", FieldSpec{Rows: 2, Cols: 3, BrickW: 2, BrickH: 1, GapX: 1, GapY: 1, Area: core.Box{X: 5, Y: 5, W: 8, H: 3}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := GenerateField(tc.spec)
			if err != nil {
				t.Fatalf("GenerateField() error = %v", err)
			}
			if len(slots) != tc.spec.Rows*tc.spec.Cols {
				t.Fatalf("got %d bricks, expected %d", len(slots), tc.spec.Rows*tc.spec.Cols)
			}

			for i, s := range slots {
				if s.Row != i/tc.spec.Cols || s.Col != i%tc.spec.Cols {
					t.Errorf("slot %d is (%d, %d), expected row-major order", i, s.Row, s.Col)
				}
				if !tc.spec.Area.Inside(s.Box) {
					t.Errorf("brick %+v leaves the area %+v", s.Box, tc.spec.Area)
				}
				for _, o := range slots[i+1:] {
					if s.Box.Intersects(o.Box) {
						t.Errorf("bricks %+v and %+v overlap", s.Box, o.Box)
					}
				}
			}

			first, last := slots[0].Box, slots[len(slots)-1].Box
			left := first.X - tc.spec.Area.X
			right := tc.spec.Area.Right() - last.Right()
			if math.Abs(left-right) > 1 {
				t.Errorf("grid not centred: %.1f cells left, %.1f right", left, right)
			}
			if first.Y != tc.spec.Area.Y+tc.spec.Margin {
				t.Errorf("first row at y=%v, expected %v", first.Y, tc.spec.Area.Y+tc.spec.Margin)
			}
		})
	}
}

func TestGenerateFieldAutoWidth(t *testing.T) {
	slots, err := GenerateField(FieldSpec{Rows: 1, Cols: 20, BrickH: 1, GapX: 1, Margin: 1, Area: core.Box{X: 1, Y: 2, W: 78, H: 5}})
	if err != nil {
		t.Fatal(err)
	}
	if w := slots[0].Box.W; w != 2 {
		t.Errorf("auto brick width = %v, expected 2", w)
	}
}

func TestGenerateFieldErrors(t *testing.T) {
	tests := []struct {
		name string
		spec FieldSpec
		want error
	}{
		{"no rows", FieldSpec{Cols: 3, BrickH: 1, Area: core.Box{W: 10, H: 10}}, ErrEmptyField},
		{"too many columns", FieldSpec{Rows: 1, Cols: 40, BrickH: 1, GapX: 1, Area: core.Box{W: 30, H: 10}}, ErrFieldTooLarge},
		{"too wide bricks", FieldSpec{Rows: 1, Cols: 4, BrickW: 8, BrickH: 1, Area: core.Box{W: 30, H: 10}}, ErrFieldTooLarge},
		{"too many rows", FieldSpec{Rows: 12, Cols: 2, BrickH: 1, Margin: 1, Area: core.Box{W: 30, H: 10}}, ErrFieldTooLarge},
		{"zero height", FieldSpec{Rows: 1, Cols: 1, Area: core.Box{W: 30, H: 10}}, ErrFieldTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := GenerateField(tc.spec); !errors.Is(err, tc.want) {
				t.Errorf("error = %v, expected %v", err, tc.want)
			}
		})
	}
}

func TestGenerateFieldDeterministic(t *testing.T) {
	spec := FieldSpec{Rows: 5, Cols: 20, BrickH: 1, GapX: 1, Margin: 1, Area: core.Box{X: 1, Y: 2, W: 78, H: 12}}
	a, _ := GenerateField(spec)
	b, _ := GenerateField(spec)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d differs between runs", i)
		}
	}
}

func TestMinAreaFor(t *testing.T) {
	spec := FieldSpec{Rows: 5, Cols: 20, BrickH: 1, GapX: 1, Margin: 1}
	w, h := MinAreaFor(spec)
	if w != 41 || h != 6 {
		t.Errorf("MinAreaFor() = %vx%v, expected 41x6", w, h)
	}
	spec.Area = core.Box{W: w, H: h}
	if _, err := GenerateField(spec); err != nil {
		t.Errorf("minimum area should fit: %v", err)
	}
}
