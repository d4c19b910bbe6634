package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	PipeChar      = '█'
	PipeCapTop    = '▀' // Cap of a bottom pipe, facing up into the gap
	PipeCapBottom = '▄' // Cap of a top pipe, facing down into the gap
	CloudChar     = '░'
	BirdChar      = '●'
	HitboxChar    = '·'
)

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, s Snapshot) viewport {
	if s.Width <= 0 || s.Height <= 0 {
		return viewport{sx: 1, sy: 1}
	}
	return viewport{
		sx: float64(dst.Width()) / float64(s.Width),
		sy: float64(dst.Height()) / float64(s.Height),
	}
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y * v.sy))
}

func (v viewport) rect(r core.RectF) core.Rect {
	x0, y0 := v.point(r.Left(), r.Top())
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// RenderSnapshot draws a frame. It depends only on the snapshot, so any
// recorded frame can be redrawn.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	vp := newViewport(dst, s)

	for _, c := range s.Clouds {
		dst.DrawRect(vp.rect(c), CloudChar, core.ColorCloud)
	}

	if s.State.Phase == core.PhaseNotStarted {
		drawOverlay(dst, s, "Flappy Bird", "Press SPACE to start")
		return
	}

	for _, p := range s.Pipes {
		drawPipe(dst, vp, p)
	}
	drawBird(dst, vp, s.Bird)

	if s.State.Debug {
		drawDebug(dst, vp, s)
	}

	drawHUD(dst, s)

	if s.State.Phase == core.PhaseOver {
		drawOverlay(dst, s, "Game Over!", "Press SPACE to restart")
	}
}

func drawPipe(dst *core.Screen, vp viewport, p PipeRects) {
	top := vp.rect(p.Top)
	if top.H > 0 {
		dst.DrawRect(top, PipeChar, core.ColorPipe)
		dst.DrawHLine(top.X, top.Bottom()-1, top.W, PipeCapBottom, core.ColorPipeCap)
	}

	bottom := vp.rect(p.Bottom)
	if bottom.H > 0 {
		dst.DrawRect(bottom, PipeChar, core.ColorPipe)
		dst.DrawHLine(bottom.X, bottom.Y, bottom.W, PipeCapTop, core.ColorPipeCap)
	}
}

// drawBird draws the body with a beak whose shape follows the tilt.
func drawBird(dst *core.Screen, vp viewport, b BirdPose) {
	x, y := vp.point(b.X, b.Y)
	beak := '>'
	switch {
	case b.Tilt > 5:
		beak = '/'
	case b.Tilt < -5:
		beak = '\\'
	}
	dst.SetColored(x, y, BirdChar, core.ColorBird)
	dst.SetColored(x+1, y, beak, core.ColorBird)
}

func drawDebug(dst *core.Screen, vp viewport, s Snapshot) {
	for _, p := range s.Pipes {
		for _, r := range []core.RectF{p.Top, p.Bottom} {
			cells := vp.rect(r)
			if cells.W >= 2 && cells.H >= 2 {
				dst.DrawBox(cells, core.ColorDebug)
			}
		}
	}

	const steps = 24
	h := s.Hitbox
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		x, y := vp.point(h.X+h.R*math.Cos(a), h.Y+h.R*math.Sin(a))
		if dst.Get(x, y) == ' ' || dst.Get(x, y) == CloudChar {
			dst.SetColored(x, y, HitboxChar, core.ColorDebug)
		}
	}
}

func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf(" Score: %d ", s.State.Score), core.ColorText)
	dst.DrawText(1, 1, fmt.Sprintf(" High Score: %d ", s.State.HighScore), core.ColorMuted)
	if s.State.Debug {
		dst.DrawText(1, 2, fmt.Sprintf(" Attempts: %d  v=%.2f ", s.State.Attempts, s.Bird.Velocity), core.ColorDebug)
	}
}

// drawOverlay draws the start / game over box in the center of the screen.
func drawOverlay(dst *core.Screen, s Snapshot, title, action string) {
	lines := []string{
		title,
		action,
		"Press ESC to quit",
		fmt.Sprintf("Score: %d", s.State.Score),
		fmt.Sprintf("High Score: %d", s.State.HighScore),
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorText)
	for i, l := range lines {
		c := core.ColorText
		if i > 1 {
			c = core.ColorMuted
		}
		dst.DrawTextCentered(boxY+1+i, l, c)
	}
}
