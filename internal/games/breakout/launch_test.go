package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

func TestLaunchVelocity(t *testing.T) {
	tests := []struct {
		speed, limit, want float64
	}{
		{24, 40, 24},
		{50, 40, 40},
		{0, 40, 0},
	}
	for _, tc := range tests {
		v := LaunchVelocity(tc.speed, tc.limit)
		if math.Abs(v.Len()-tc.want) > 1e-9 {
			t.Errorf("LaunchVelocity(%v, %v) speed = %v, expected %v", tc.speed, tc.limit, v.Len(), tc.want)
		}
		if tc.want > 0 && (v.X <= 0 || v.Y >= 0) {
			t.Errorf("launch should go up and right, got %+v", v)
		}
	}
}

func TestLaunchPosition(t *testing.T) {
	if p := LaunchPosition(core.V(40, 20.5), 2); p != core.V(40, 18.5) {
		t.Errorf("LaunchPosition() = %+v", p)
	}
}

func TestClampSpeed(t *testing.T) {
	v := ClampSpeed(core.V(30, 40), 10)
	if math.Abs(v.Len()-10) > 1e-9 {
		t.Errorf("clamped speed = %v", v.Len())
	}
	if got := ClampSpeed(core.V(3, 4), 10); got != core.V(3, 4) {
		t.Errorf("slow velocity changed: %+v", got)
	}
}
