package flappy

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

const tick = time.Second / 60

// recordingStore is an in-memory highscore.Store that remembers every save.
type recordingStore struct {
	score int
	saves []int
}

func (s *recordingStore) Load() (int, error) { return s.score, nil }

func (s *recordingStore) Save(score int) error {
	s.score = score
	s.saves = append(s.saves, score)
	return nil
}

func newTestGame(t *testing.T, seed int64, store highscore.Store) *Game {
	t.Helper()
	if store == nil {
		store = highscore.Nop{}
	}
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
	return New(config.DefaultFlappyConfig(), rt, highscore.NewKeeper(store, nil), nil)
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// hover cancels gravity for the next tick so the bird holds its height.
func hover(g *Game) {
	g.world.Bird.Velocity = -g.cfg.Physics.Gravity
}

func TestStartTransition(t *testing.T) {
	g := newTestGame(t, 1, nil)

	state := g.State()
	if state.Phase != core.PhaseNotStarted || state.Score != 0 || state.HighScore != 0 {
		t.Fatalf("unexpected initial state %+v", state)
	}

	snap := g.Step(input(core.ActionPrimary), tick)

	if snap.State.Phase != core.PhasePlaying {
		t.Errorf("Phase = %v, expected Playing", snap.State.Phase)
	}
	if snap.Bird.Y != 300 || snap.Bird.Velocity != 0 {
		t.Errorf("bird = (y=%v, v=%v), expected centered at rest", snap.Bird.Y, snap.Bird.Velocity)
	}
	if len(snap.Pipes) != 0 {
		t.Errorf("expected no pipes after start, got %d", len(snap.Pipes))
	}
	if snap.State.Attempts != 1 {
		t.Errorf("Attempts = %d, expected 1", snap.State.Attempts)
	}
}

func TestIdleBeforeStart(t *testing.T) {
	g := newTestGame(t, 1, nil)

	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame(), tick)
	}

	snap := g.Snapshot()
	if snap.State.Phase != core.PhaseNotStarted {
		t.Errorf("Phase = %v, expected NotStarted without input", snap.State.Phase)
	}
	if snap.Bird.Y != 300 {
		t.Errorf("bird should not fall before the game starts, Y = %v", snap.Bird.Y)
	}
	if len(snap.Clouds) != 3 {
		t.Errorf("cloud layer should stay at 3 clouds, got %d", len(snap.Clouds))
	}
}

func TestPlayingTickPhysics(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.Step(input(core.ActionPrimary), tick)

	wantV, wantY := 0.0, 300.0
	for i := 0; i < 10; i++ {
		snap := g.Step(core.NewInputFrame(), tick)
		wantV += 0.25
		wantY += wantV
		if snap.Bird.Velocity != wantV || snap.Bird.Y != wantY {
			t.Fatalf("tick %d: bird = (y=%v, v=%v), expected (y=%v, v=%v)",
				i+1, snap.Bird.Y, snap.Bird.Velocity, wantY, wantV)
		}
	}
}

func TestFlapWhilePlaying(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.Step(input(core.ActionPrimary), tick)
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame(), tick)
	}

	before := g.Snapshot().Bird.Y
	snap := g.Step(input(core.ActionPrimary), tick)

	if snap.State.Phase != core.PhasePlaying {
		t.Fatalf("flap should not change phase, got %v", snap.State.Phase)
	}
	// Flap sets -7, then the same tick applies gravity once.
	if snap.Bird.Velocity != -6.75 {
		t.Errorf("Velocity = %v, expected -6.75", snap.Bird.Velocity)
	}
	if snap.Bird.Y != before-6.75 {
		t.Errorf("Y = %v, expected %v", snap.Bird.Y, before-6.75)
	}
	if snap.State.Attempts != 1 {
		t.Errorf("flap must not start a new round, Attempts = %d", snap.State.Attempts)
	}
}

func TestBoundaryCollisionEndsRound(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.Step(input(core.ActionPrimary), tick)

	// Fall without flapping until the bird hits the bottom edge.
	var snap Snapshot
	for i := 0; i < 200; i++ {
		snap = g.Step(core.NewInputFrame(), tick)
		if snap.State.Phase == core.PhaseOver {
			break
		}
	}
	if snap.State.Phase != core.PhaseOver {
		t.Fatal("bird should eventually hit the bottom boundary")
	}
	if snap.Hitbox.Bottom() < 600 {
		t.Errorf("round ended before the hitbox reached the bottom: %v", snap.Hitbox.Bottom())
	}

	// Motion is frozen while Over.
	frozen := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame(), tick)
	}
	after := g.Snapshot()
	if after.Bird != frozen.Bird {
		t.Errorf("bird moved after game over: %+v -> %+v", frozen.Bird, after.Bird)
	}
}

func TestObstacleCollisionEndsRound(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.Step(input(core.ActionPrimary), tick)

	// Gap centered at 100 (y in [25, 175]); the bird at y=300 overlaps the bottom pipe.
	g.world.Pipes.obstacles = append(g.world.Pipes.obstacles,
		Obstacle{GapCenterY: 100, TopHeight: 25, BottomHeight: 425, X: 100})
	hover(g)

	snap := g.Step(core.NewInputFrame(), tick)
	if snap.State.Phase != core.PhaseOver {
		t.Fatalf("Phase = %v, expected Over after hitting a pipe", snap.State.Phase)
	}

	// Obstacles stop moving and scoring stops.
	x := g.world.Pipes.Obstacles()[0].X
	g.world.Pipes.obstacles = append(g.world.Pipes.obstacles, Obstacle{X: -500})
	g.Step(core.NewInputFrame(), tick)

	if g.world.Pipes.Obstacles()[0].X != x {
		t.Error("obstacles should not move while Over")
	}
	if g.State().Score != 0 {
		t.Errorf("no scoring expected after game over, got %d", g.State().Score)
	}
}

func TestClearedObstacleScoresAndPersists(t *testing.T) {
	store := &recordingStore{}
	g := newTestGame(t, 1, store)
	g.Step(input(core.ActionPrimary), tick)

	// Right edge at 0; one more tick moves it past the left boundary.
	g.world.Pipes.obstacles = append(g.world.Pipes.obstacles, Obstacle{GapCenterY: 300, TopHeight: 225, BottomHeight: 225, X: -80})
	hover(g)
	snap := g.Step(core.NewInputFrame(), tick)

	if snap.State.Score != 1 || snap.State.HighScore != 1 {
		t.Errorf("score/high = %d/%d, expected 1/1", snap.State.Score, snap.State.HighScore)
	}
	if len(snap.Pipes) != 0 {
		t.Errorf("retired obstacle should be removed, got %d pipes", len(snap.Pipes))
	}

	g.world.Pipes.obstacles = append(g.world.Pipes.obstacles,
		Obstacle{X: -79},
		Obstacle{X: -79},
	)
	hover(g)
	snap = g.Step(core.NewInputFrame(), tick)

	if snap.State.Score != 3 {
		t.Errorf("Score = %d, expected 3 (two obstacles retired together)", snap.State.Score)
	}

	// Retired obstacles are gone and must not score again.
	for i := 0; i < 5; i++ {
		hover(g)
		snap = g.Step(core.NewInputFrame(), tick)
	}
	if snap.State.Score != 3 {
		t.Errorf("Score = %d after more ticks, expected 3", snap.State.Score)
	}
	if !reflect.DeepEqual(store.saves, []int{1, 2, 3}) {
		t.Errorf("saves = %v, expected [1 2 3]", store.saves)
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	store := &recordingStore{score: 5}
	g := newTestGame(t, 1, store)

	if g.State().HighScore != 5 {
		t.Fatalf("HighScore = %d, expected stored 5", g.State().HighScore)
	}

	g.Step(input(core.ActionPrimary), tick)
	g.world.Pipes.obstacles = append(g.world.Pipes.obstacles, Obstacle{X: -80})
	hover(g)
	g.Step(core.NewInputFrame(), tick)

	state := g.State()
	if state.Score != 1 || state.HighScore != 5 {
		t.Errorf("score/high = %d/%d, expected 1/5", state.Score, state.HighScore)
	}
	if len(store.saves) != 0 {
		t.Errorf("no save expected below the stored high score, got %v", store.saves)
	}

	// End the round and restart: high score survives, score resets.
	g.world.Bird.Y = 0
	g.Step(core.NewInputFrame(), tick)
	if g.State().Phase != core.PhaseOver {
		t.Fatalf("expected Over, got %v", g.State().Phase)
	}
	if g.State().HighScore < g.State().Score {
		t.Error("high score must be at least the finished round's score")
	}

	snap := g.Step(input(core.ActionPrimary), tick)
	if snap.State.Score != 0 || snap.State.HighScore != 5 {
		t.Errorf("after restart score/high = %d/%d, expected 0/5", snap.State.Score, snap.State.HighScore)
	}
}

func TestRestartFromGameOver(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.Step(input(core.ActionPrimary), tick)
	g.Step(core.NewInputFrame(), tick)
	g.world.Pipes.Spawn()
	g.world.Bird.Y = 595
	g.Step(core.NewInputFrame(), tick)
	if g.State().Phase != core.PhaseOver {
		t.Fatalf("expected Over, got %v", g.State().Phase)
	}

	snap := g.Step(input(core.ActionPrimary), tick)

	if snap.State.Phase != core.PhasePlaying {
		t.Errorf("Phase = %v, expected Playing", snap.State.Phase)
	}
	if snap.Bird.Y != 300 || snap.Bird.Velocity != 0 {
		t.Errorf("bird not reset: %+v", snap.Bird)
	}
	if len(snap.Pipes) != 0 {
		t.Errorf("pipes not cleared: %d", len(snap.Pipes))
	}
	if snap.State.Attempts != 2 {
		t.Errorf("Attempts = %d, expected 2", snap.State.Attempts)
	}
}

func TestPipesSpawnAfterIntervalOfGameTime(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		ticks   int // ticks after start at which the first pipe appears
	}{
		{"60 Hz", tick, 91},
		{"slow frames", 100 * time.Millisecond, 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, 1, nil)
			g.Step(input(core.ActionPrimary), tc.elapsed)

			for i := 1; i <= tc.ticks; i++ {
				hover(g)
				snap := g.Step(core.NewInputFrame(), tc.elapsed)
				if i < tc.ticks && len(snap.Pipes) != 0 {
					t.Fatalf("pipe spawned early at tick %d", i)
				}
				if i == tc.ticks && len(snap.Pipes) != 1 {
					t.Fatalf("expected first pipe at tick %d, got %d pipes", i, len(snap.Pipes))
				}
			}
		})
	}
}

func TestToggleDebugAndQuit(t *testing.T) {
	g := newTestGame(t, 1, nil)

	if g.State().Debug {
		t.Fatal("debug overlay should follow config default (off)")
	}
	snap := g.Step(input(core.ActionToggleDebug), tick)
	if !snap.State.Debug || snap.State.Phase != core.PhaseNotStarted {
		t.Errorf("toggle should enable debug without changing phase, got %+v", snap.State)
	}
	snap = g.Step(input(core.ActionToggleDebug), tick)
	if snap.State.Debug {
		t.Error("second toggle should disable debug")
	}

	snap = g.Step(input(core.ActionQuit, core.ActionPrimary), tick)
	if !snap.State.Quit {
		t.Error("quit action should set Quit")
	}
	if snap.State.Phase != core.PhaseNotStarted {
		t.Errorf("quit should take precedence over other actions, phase = %v", snap.State.Phase)
	}
}

func TestUnknownInputIgnored(t *testing.T) {
	g := newTestGame(t, 1, nil)
	before := g.State()

	in := core.NewInputFrame()
	in.Set(core.Action(42))
	g.Step(in, tick)

	if g.State() != before {
		t.Errorf("unrecognized action changed state: %+v -> %+v", before, g.State())
	}
}

// playScripted runs a start, then flaps every 55 ticks, which keeps the bird
// oscillating around its start height.
func playScripted(g *Game, ticks int) []Snapshot {
	snaps := make([]Snapshot, 0, ticks+1)
	snaps = append(snaps, g.Step(input(core.ActionPrimary), tick))
	for i := 1; i <= ticks; i++ {
		in := core.NewInputFrame()
		if i%55 == 1 {
			in.Set(core.ActionPrimary)
		}
		snaps = append(snaps, g.Step(in, tick))
	}
	return snaps
}

func TestGameDeterminism(t *testing.T) {
	run1 := playScripted(newTestGame(t, 12345, nil), 600)
	run2 := playScripted(newTestGame(t, 12345, nil), 600)

	if !reflect.DeepEqual(run1, run2) {
		for i := range run1 {
			if !reflect.DeepEqual(run1[i], run2[i]) {
				t.Fatalf("runs diverged at tick %d:\n%+v\n%+v", i, run1[i], run2[i])
			}
		}
	}
}

func TestRenderPhases(t *testing.T) {
	g := newTestGame(t, 1, nil)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Error("start overlay should be drawn before the first round")
	}

	g.Step(input(core.ActionPrimary), tick)
	g.world.Pipes.Spawn()
	g.world.Pipes.obstacles[0].X = 300
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score while playing")
	}
	if !strings.ContainsRune(out, PipeChar) {
		t.Error("pipe should be drawn while playing")
	}
	if !strings.ContainsRune(out, BirdChar) {
		t.Error("bird should be drawn while playing")
	}

	g.Step(input(core.ActionToggleDebug), tick)
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), '┌') {
		t.Error("debug overlay should outline pipe rectangles")
	}

	g.world.Bird.Y = 0
	g.Step(core.NewInputFrame(), tick)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over!") {
		t.Error("game over overlay should be drawn")
	}
}
