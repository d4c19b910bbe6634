package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Bird is the player-controlled avatar. X is fixed; (X, Y) is the sprite center.
type Bird struct {
	X        float64
	Y        float64
	Velocity float64 // Positive = falling
}

// ApplyGravity accumulates gravity into the velocity. There is no terminal velocity.
func (b *Bird) ApplyGravity(gravity float64) {
	b.Velocity += gravity
}

// Integrate moves the bird by its current velocity.
func (b *Bird) Integrate() {
	b.Y += b.Velocity
}

// Flap overwrites the velocity with the upward impulse.
func (b *Bird) Flap(impulse float64) {
	b.Velocity = impulse
}

// Tilt returns the visual rotation in degrees; positive means nose up.
func (b Bird) Tilt(factor float64) float64 {
	return -b.Velocity * factor
}

// Hitbox returns the collision circle: centered on the sprite and shrunk by margin.
func (b Bird) Hitbox(size, margin float64) core.Circle {
	return core.Circle{
		X: b.X,
		Y: b.Y,
		R: size * margin / 2,
	}
}
