package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

// BestScore returns the persistent best for gameID, 0 if none was saved.
func (s *Store) BestScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM highscores WHERE game_id = ?", gameID).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// SetBestScore replaces the persistent best for gameID.
func (s *Store) SetBestScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO highscores (game_id, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// BestScores adapts the highscores row of one game to highscore.Store.
type BestScores struct {
	store  *Store
	gameID string
}

// ForGame returns the persistent best-score slot for gameID.
func (s *Store) ForGame(gameID string) *BestScores {
	return &BestScores{store: s, gameID: gameID}
}

// Load implements highscore.Store.
func (b *BestScores) Load() (int, error) {
	return b.store.BestScore(b.gameID)
}

// Save implements highscore.Store.
func (b *BestScores) Save(score int) error {
	return b.store.SetBestScore(b.gameID, score)
}

var _ highscore.Store = (*BestScores)(nil)
