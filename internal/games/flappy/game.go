// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must fly through the gaps of an endless
// stream of pipes. One point is scored for every pipe that leaves the screen.
package flappy

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

// ID is the identifier used for score storage.
const ID = "flappy"

// Title is the display name of the game.
const Title = "Flappy Bird"

// World holds the state of a single round.
type World struct {
	Bird  Bird
	Pipes *ObstacleManager
	Score int
}

// Game is the state machine that owns the world and drives it tick by tick.
type Game struct {
	cfg      config.FlappyConfig
	world    World
	clouds   *CloudLayer
	keeper   *highscore.Keeper
	logger   *log.Logger
	clock    core.Clock
	phase    core.Phase
	debug    bool
	quit     bool
	attempts int
}

// New creates a game in the NotStarted phase. The seed in rt makes the
// pipe and cloud sequence reproducible.
func New(cfg config.FlappyConfig, rt core.RuntimeConfig, keeper *highscore.Keeper, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if keeper == nil {
		keeper = highscore.NewKeeper(highscore.Nop{}, logger)
	}

	rng := newRNG(rt.Seed)
	g := &Game{
		cfg:    cfg,
		keeper: keeper,
		logger: logger,
		phase:  core.PhaseNotStarted,
		debug:  cfg.Debug,
	}
	g.world = World{
		Bird:  Bird{X: cfg.BirdX(), Y: float64(cfg.Screen.Height) / 2},
		Pipes: NewObstacleManager(rng, &g.cfg),
	}
	g.clouds = NewCloudLayer(rng, &g.cfg)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return Title
}

// Reset starts a new round: bird centered and at rest, no pipes, score zero.
func (g *Game) Reset() {
	g.world.Bird.Y = float64(g.cfg.Screen.Height) / 2
	g.world.Bird.Velocity = 0
	g.world.Pipes.Reset(g.clock.Now())
	g.world.Score = 0
	g.phase = core.PhasePlaying
	g.attempts++
	g.logger.Debug("round started", "attempt", g.attempts, "highscore", g.keeper.Best())
}

// Step advances the game by one tick. elapsed is the wall-clock time since the
// previous tick. It returns the state a renderer needs for this frame.
func (g *Game) Step(in core.InputFrame, elapsed time.Duration) Snapshot {
	g.clock.Advance(elapsed)

	if in.Has(core.ActionQuit) {
		g.quit = true
		return g.Snapshot()
	}
	if in.Has(core.ActionToggleDebug) {
		g.debug = !g.debug
	}

	started := false
	if in.Has(core.ActionPrimary) {
		switch g.phase {
		case core.PhaseNotStarted, core.PhaseOver:
			g.Reset()
			started = true
		case core.PhasePlaying:
			g.world.Bird.Flap(g.cfg.Physics.FlapImpulse)
		}
	}

	g.clouds.Advance(g.world.Bird.Velocity, g.phase == core.PhasePlaying)
	g.clouds.Replenish()

	// The tick that starts a round only resets it.
	if g.phase == core.PhasePlaying && !started {
		g.advance()
	}

	return g.Snapshot()
}

// advance runs one Playing tick: physics, spawn, pipe motion and scoring,
// then collision against the positions produced this same tick.
func (g *Game) advance() {
	bird := &g.world.Bird
	bird.ApplyGravity(g.cfg.Physics.Gravity)
	bird.Integrate()

	pipes := g.world.Pipes
	pipes.Update(g.clock.Now())
	pipes.Advance()
	for cleared := pipes.Retire(); cleared > 0; cleared-- {
		g.world.Score++
		g.keeper.Offer(g.world.Score)
	}

	if Collides(g.hitbox(), pipes.Obstacles(), pipes.Width(), g.cfg.Screen.Height) {
		g.gameOver()
	}
}

// gameOver freezes the round. No further scoring happens until the next Reset.
func (g *Game) gameOver() {
	g.phase = core.PhaseOver
	g.keeper.Offer(g.world.Score)
	g.logger.Info("round over", "score", g.world.Score, "highscore", g.keeper.Best(), "attempt", g.attempts)
}

func (g *Game) hitbox() core.Circle {
	return g.world.Bird.Hitbox(g.cfg.Bird.Size, g.cfg.Bird.CollisionMargin)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.world.Score,
		HighScore: g.keeper.Best(),
		Attempts:  g.attempts,
		Debug:     g.debug,
		Quit:      g.quit,
	}
}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}
