package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Cloud is a decorative background entity.
type Cloud struct {
	X         float64
	Y         int
	BaseSpeed float64
}

// CloudLayer keeps a minimum population of clouds drifting left.
type CloudLayer struct {
	clouds  []Cloud
	rng     RNG
	cfg     config.CloudConfig
	screenW int
	screenH int
}

// NewCloudLayer creates a layer already filled to its minimum population.
func NewCloudLayer(rng RNG, cfg *config.FlappyConfig) *CloudLayer {
	l := &CloudLayer{
		clouds:  make([]Cloud, 0, cfg.Clouds.Count),
		rng:     rng,
		cfg:     cfg.Clouds,
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
	}
	l.Replenish()
	return l
}

// Replenish spawns clouds at the right edge until the minimum count is reached.
func (l *CloudLayer) Replenish() {
	for len(l.clouds) < l.cfg.Count {
		l.clouds = append(l.clouds, Cloud{
			X:         float64(l.screenW),
			Y:         intRange(l.rng, 0, l.screenH/2),
			BaseSpeed: l.cfg.BaseSpeed * floatRange(l.rng, l.cfg.MinFactor, l.cfg.MaxFactor),
		})
	}
}

// Speed returns how far a cloud moves this tick.
func (l *CloudLayer) Speed(c Cloud, avatarVelocity float64, playing bool) float64 {
	speed := c.BaseSpeed + math.Abs(avatarVelocity)*l.cfg.VelocityFactor
	if playing {
		speed *= l.cfg.PlayingMultiplier
	}
	return speed
}

// Advance moves clouds left and drops those fully past the left edge.
func (l *CloudLayer) Advance(avatarVelocity float64, playing bool) {
	kept := l.clouds[:0]
	for _, c := range l.clouds {
		c.X -= l.Speed(c, avatarVelocity, playing)
		if c.X > -float64(l.cfg.Width) {
			kept = append(kept, c)
		}
	}
	l.clouds = kept
}

// Clouds returns the live clouds.
func (l *CloudLayer) Clouds() []Cloud {
	return l.clouds
}

// Rect returns the area a cloud covers.
func (l *CloudLayer) Rect(c Cloud) core.RectF {
	return core.NewRectF(c.X, float64(c.Y), float64(l.cfg.Width), float64(l.cfg.Height))
}
