package highscore

import (
	"io"

	"github.com/charmbracelet/log"
)

// Keeper holds the process-wide best score and writes it through to a Store
// whenever it improves. Storage errors are logged and never returned.
type Keeper struct {
	store  Store
	best   int
	logger *log.Logger
}

// NewKeeper loads the stored score once. A failed load counts as no prior score.
func NewKeeper(store Store, logger *log.Logger) *Keeper {
	if store == nil {
		store = Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	k := &Keeper{store: store, logger: logger}

	best, err := store.Load()
	if err != nil {
		logger.Warn("could not load high score, starting from zero", "error", err)
		best = 0
	}
	k.best = best
	logger.Debug("high score loaded", "score", best)
	return k
}

// Best returns the highest score seen by this process.
func (k *Keeper) Best() int {
	return k.best
}

// Offer records score if it beats the current best and persists it immediately.
// Returns true when the best score changed.
func (k *Keeper) Offer(score int) bool {
	if score <= k.best {
		return false
	}
	k.best = score
	if err := k.store.Save(score); err != nil {
		k.logger.Warn("could not save high score", "score", score, "error", err)
	}
	return true
}
