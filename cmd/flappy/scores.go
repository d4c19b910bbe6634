package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the round history",
	Long: `Display the best finished rounds from the scores database.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --all
  flappy scores --tui
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded round (ignores --limit)")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the round history and the stored best score")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.Clear(flappy.ID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flappy.ID, flappy.Title, width, height)
	}

	limit := flagScoresLimit
	if flagScoresAll {
		limit = 0
	}
	return printScores(os.Stdout, store, limit)
}

// printScores writes the history table. A limit of 0 or less prints every round.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	var (
		scores []storage.Round
		err    error
	)
	if limit > 0 {
		scores, err = store.TopRounds(flappy.ID, limit)
	} else {
		scores, err = store.AllRounds(flappy.ID)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", flappy.Title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(w)
	best, err := store.BestRound(flappy.ID)
	if err != nil {
		return fmt.Errorf("retrieving best round: %w", err)
	}
	fmt.Fprintf(w, "Best round: %d\n", best)
	if stats, err := store.Stats(flappy.ID); err == nil {
		fmt.Fprintf(w, "Rounds: %d  Average: %.1f\n", stats.Rounds, stats.Average)
	}
	return nil
}
