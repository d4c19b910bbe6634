package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair with a vertical gap.
// TopHeight + gap + BottomHeight always equals the screen height.
type Obstacle struct {
	GapCenterY   int
	TopHeight    int
	BottomHeight int
	X            float64 // Left edge
}

// TopRect returns the collision rectangle of the upper pipe.
func (o Obstacle) TopRect(width int) core.RectF {
	return core.NewRectF(o.X, 0, float64(width), float64(o.TopHeight))
}

// BottomRect returns the collision rectangle of the lower pipe.
func (o Obstacle) BottomRect(width, screenH int) core.RectF {
	top := float64(screenH - o.BottomHeight)
	return core.NewRectF(o.X, top, float64(width), float64(o.BottomHeight))
}

// Right returns the x-coordinate of the pipe's right edge.
func (o Obstacle) Right(width int) float64 {
	return o.X + float64(width)
}

// ObstacleManager spawns, moves and retires pipes. Pipes are kept oldest first.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       RNG
	screenW   int
	screenH   int
	pipes     config.PipeConfig
	speed     float64
	lastSpawn time.Duration
}

// NewObstacleManager creates an empty manager.
func NewObstacleManager(rng RNG, cfg *config.FlappyConfig) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		screenW:   cfg.Screen.Width,
		screenH:   cfg.Screen.Height,
		pipes:     cfg.Pipes,
		speed:     cfg.Physics.PipeSpeed,
	}
}

// Reset removes all pipes and restarts the spawn timer at now.
func (pm *ObstacleManager) Reset(now time.Duration) {
	pm.obstacles = pm.obstacles[:0]
	pm.lastSpawn = now
}

// Update spawns a pipe if the interval has elapsed since the last spawn.
// Spawning follows wall-clock time so it is unaffected by dropped frames.
func (pm *ObstacleManager) Update(now time.Duration) bool {
	if now-pm.lastSpawn <= pm.pipes.SpawnInterval() {
		return false
	}
	pm.Spawn()
	pm.lastSpawn = now
	return true
}

// Spawn appends a new pipe at the right edge with a random gap position.
func (pm *ObstacleManager) Spawn() Obstacle {
	lo, hi := pm.gapRange()
	gapY := intRange(pm.rng, lo, hi)

	top := gapY - pm.pipes.Gap/2
	o := Obstacle{
		GapCenterY:   gapY,
		TopHeight:    top,
		BottomHeight: pm.screenH - (top + pm.pipes.Gap),
		X:            float64(pm.screenW),
	}
	pm.obstacles = append(pm.obstacles, o)
	return o
}

// gapRange returns the allowed gap centers: [margin, height-margin] intersected
// with the centers that keep both pipe heights non-negative. When the margin
// leaves no room the feasible range is collapsed to its middle.
func (pm *ObstacleManager) gapRange() (int, int) {
	half := pm.pipes.Gap / 2
	minFeasible := half
	maxFeasible := pm.screenH - (pm.pipes.Gap - half)
	if maxFeasible < minFeasible {
		// Gap taller than the screen; config validation rejects this.
		maxFeasible = minFeasible
	}

	lo := core.Max(pm.pipes.Margin, minFeasible)
	hi := core.Min(pm.screenH-pm.pipes.Margin, maxFeasible)
	if lo > hi {
		mid := (minFeasible + maxFeasible) / 2
		return mid, mid
	}
	return lo, hi
}

// Advance moves every pipe left by the fixed per-tick speed.
func (pm *ObstacleManager) Advance() {
	for i := range pm.obstacles {
		pm.obstacles[i].X -= pm.speed
	}
}

// Retire drops pipes whose right edge has passed the left boundary and
// returns how many were dropped. Each pipe leaves the list exactly once, so
// each one is counted exactly once.
func (pm *ObstacleManager) Retire() int {
	cleared := 0
	kept := pm.obstacles[:0]
	for _, o := range pm.obstacles {
		if o.Right(pm.pipes.Width) >= 0 {
			kept = append(kept, o)
			continue
		}
		cleared++
	}
	// Zero the tail so dropped pipes don't linger in the backing array.
	for i := len(kept); i < len(pm.obstacles); i++ {
		pm.obstacles[i] = Obstacle{}
	}
	pm.obstacles = kept
	return cleared
}

// Obstacles returns the live pipes, oldest first.
func (pm *ObstacleManager) Obstacles() []Obstacle {
	return pm.obstacles
}

// Width returns the pipe width.
func (pm *ObstacleManager) Width() int {
	return pm.pipes.Width
}
