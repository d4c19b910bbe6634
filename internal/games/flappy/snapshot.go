package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// BirdPose is the avatar as a renderer sees it.
type BirdPose struct {
	X, Y     float64 // Sprite center
	Size     float64 // Sprite width and height
	Velocity float64
	Tilt     float64 // Degrees, positive = nose up; visual only
}

// PipeRects is one obstacle as a pair of rectangles. The renderer tiles the
// pipe texture along each rectangle and puts the cap on the gap-facing end.
type PipeRects struct {
	Top    core.RectF
	Bottom core.RectF
}

// Snapshot is the complete renderable state of one frame.
type Snapshot struct {
	State  core.GameState
	Tick   uint64
	Width  int // Playfield size in world units
	Height int
	Bird   BirdPose
	Hitbox core.Circle // Drawn only when State.Debug is set
	Pipes  []PipeRects // Oldest first
	Clouds []core.RectF
}

// Snapshot returns the current frame state.
func (g *Game) Snapshot() Snapshot {
	pipes := g.world.Pipes
	rects := make([]PipeRects, 0, len(pipes.Obstacles()))
	for _, o := range pipes.Obstacles() {
		rects = append(rects, PipeRects{
			Top:    o.TopRect(pipes.Width()),
			Bottom: o.BottomRect(pipes.Width(), g.cfg.Screen.Height),
		})
	}

	clouds := make([]core.RectF, 0, len(g.clouds.Clouds()))
	for _, c := range g.clouds.Clouds() {
		clouds = append(clouds, g.clouds.Rect(c))
	}

	bird := g.world.Bird
	return Snapshot{
		State:  g.State(),
		Tick:   g.clock.Ticks(),
		Width:  g.cfg.Screen.Width,
		Height: g.cfg.Screen.Height,
		Bird: BirdPose{
			X:        bird.X,
			Y:        bird.Y,
			Size:     g.cfg.Bird.Size,
			Velocity: bird.Velocity,
			Tilt:     bird.Tilt(g.cfg.Bird.TiltFactor),
		},
		Hitbox: g.hitbox(),
		Pipes:  rects,
		Clouds: clouds,
	}
}
