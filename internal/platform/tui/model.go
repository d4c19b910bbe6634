package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// RoundRecorder stores finished rounds. *storage.Store satisfies it.
type RoundRecorder interface {
	RecordRound(gameID string, score int) (int64, error)
}

// Model is the Bubble Tea model that hosts a flappy.Game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	rounds     RoundRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	lastTick   time.Time
	snapshot   flappy.Snapshot
	quitting   bool
	roundSaved bool // Whether the current game over has been recorded
}

// NewModel creates a Bubble Tea model for the given game. rounds may be nil.
func NewModel(game *flappy.Game, rounds RoundRecorder, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		rounds:     rounds,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		snapshot:   game.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers the key's action until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	m.keys.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleResize only changes the character grid; the playfield keeps its
// world size and is rescaled on render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the buffered input.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := core.TickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.snapshot = m.game.Step(m.inputFrame, elapsed)
	m.inputFrame.Clear()

	state := m.snapshot.State
	if state.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if state.GameOver() {
		if !m.roundSaved {
			m.recordRound(state.Score)
			m.roundSaved = true
		}
	} else {
		m.roundSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRound appends a finished round to the history. Failures are logged;
// the game continues regardless.
func (m Model) recordRound(score int) {
	if m.rounds == nil || score <= 0 {
		return
	}
	if _, err := m.rounds.RecordRound(m.game.ID(), score); err != nil {
		m.logger.Warn("could not record round", "score", score, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	flappy.RenderSnapshot(m.screen, m.snapshot)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the latest snapshot to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	flappy.RenderSnapshot(m.screen, m.snapshot)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *flappy.Game, rounds RoundRecorder, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, rounds, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
