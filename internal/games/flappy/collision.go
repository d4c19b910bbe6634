package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Collides reports whether the hitbox touches any pipe or leaves the playfield.
// The test is stateless and uses only current positions.
func Collides(hitbox core.Circle, obstacles []Obstacle, pipeWidth, screenH int) bool {
	for _, o := range obstacles {
		if HitsObstacle(hitbox, o, pipeWidth, screenH) {
			return true
		}
	}
	return HitsBoundary(hitbox, screenH)
}

// HitsObstacle tests the circle's bounding box against both pipes of a pair.
// It is conservative near corners.
func HitsObstacle(hitbox core.Circle, o Obstacle, pipeWidth, screenH int) bool {
	box := hitbox.Bounds()
	return box.Intersects(o.TopRect(pipeWidth)) || box.Intersects(o.BottomRect(pipeWidth, screenH))
}

// HitsBoundary reports whether the circle touches the top or bottom edge.
func HitsBoundary(hitbox core.Circle, screenH int) bool {
	return hitbox.Top() <= 0 || hitbox.Bottom() >= float64(screenH)
}
