package breakout

import "github.com/vovakirdan/brickbreaker/internal/core"

// launchDir is the serve direction: up and to the right at 45°.
var launchDir = core.V(1, -1).Normalize()

// LaunchVelocity returns the serve velocity at speed, capped at limit.
func LaunchVelocity(speed, limit float64) core.Vec2 {
	return launchDir.Scale(min(speed, limit))
}

// LaunchPosition places the ball offset above the paddle centre.
func LaunchPosition(paddle core.Vec2, offset float64) core.Vec2 {
	return core.V(paddle.X, paddle.Y-offset)
}

// ClampSpeed caps the magnitude of v at limit.
func ClampSpeed(v core.Vec2, limit float64) core.Vec2 {
	return v.ClampLen(limit)
}
