package rooftop

import (
	"math"

	"github.com/vovakirdan/rooftop-run/internal/core"
)

// Body is the kinematic state shared by anything physics moves. Velocities
// are in world units per reference frame; callers pass dt already
// normalized against core.ReferenceFrameMs.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Rect returns the body's collision rectangle.
func (b *Body) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Bottom returns the y-coordinate of the body's bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// Right returns the x-coordinate of the body's right edge.
func (b *Body) Right() float64 {
	return b.X + b.W
}

// ApplyGravity integrates gravity into the vertical velocity over dt
// frames, clamped to terminal velocity. No other state is touched.
// Invalid inputs (NaN, negative dt) propagate; physics never errors.
func ApplyGravity(b *Body, gravity, terminalVelocity, dt float64) {
	b.VY += gravity * dt
	if b.VY > terminalVelocity {
		b.VY = terminalVelocity
	}
}

// Integrate advances the body's position by its velocity over dt frames.
func Integrate(b *Body, dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// SnapToGround resolves the body against a ground plane: if the bottom
// edge has passed groundY the body is snapped on top with vertical
// velocity zeroed. Reports whether the body rests on the ground.
func SnapToGround(b *Body, groundY float64) bool {
	if b.Bottom() > groundY {
		b.Y = groundY - b.H
		b.VY = 0
		return true
	}
	return false
}

// JumpVelocityFor returns the takeoff velocity needed to reach the given
// apex height under gravity. A tuning/design helper, not used per-frame.
func JumpVelocityFor(height, gravity float64) float64 {
	return -math.Sqrt(2 * gravity * height)
}
