package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/highscore"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// High score backends
const (
	backendFile   = "file"
	backendSQLite = "sqlite"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a play session. The high score survives restarts in the
configured backend; every finished round is added to the scores database.

Examples:
  flappy play
  flappy play --debug
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog := newLogger(flagLogFile, flagDebug)
	defer closeLog()

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}
	if flagDebug {
		cfg.Debug = true
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	// Round history is optional; the game still works without it.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	hs, err := highScoreStore(cfg, store, logger)
	if err != nil {
		logger.Warn("high score will not persist", "backend", flagHighScoreBackend, "error", err)
		hs = highscore.Nop{}
	}

	keeper := highscore.NewKeeper(hs, logger)
	game := flappy.New(cfg, rt, keeper, logger)
	logger.Info("session started", "seed", rt.Seed, "fps", flagFPS, "backend", flagHighScoreBackend, "highscore", keeper.Best())

	var rounds tui.RoundRecorder
	if store != nil {
		rounds = store
	}
	if err := tui.Run(game, rounds, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logSessionEnd(logger, game)
	return nil
}

// highScoreStore selects the persistence backend for the best score.
func highScoreStore(cfg config.FlappyConfig, store *storage.Store, logger *log.Logger) (highscore.Store, error) {
	switch flagHighScoreBackend {
	case backendSQLite:
		if store == nil {
			return nil, fmt.Errorf("scores database unavailable")
		}
		return store.ForGame(flappy.ID), nil
	default:
		path := cfg.Storage.HighScoreFile
		if flagHighScoreFile != "" {
			path = flagHighScoreFile
		}
		fs, err := highscore.NewFileStore(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("high score file", "path", fs.Path())
		return fs, nil
	}
}

func logSessionEnd(logger *log.Logger, game *flappy.Game) {
	state := game.State()
	logger.Info("session ended", "attempts", state.Attempts, "highscore", state.HighScore)
}
