package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// defaultRoundLimit applies when a non-positive limit is requested.
const defaultRoundLimit = 10

// Round is one finished round in the history.
type Round struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// Stats aggregates the round history of one game.
type Stats struct {
	GameID     string
	Rounds     int
	Best       int
	Average    float64
	Total      int64
	LastPlayed time.Time
}

// RecordRound appends a finished round and returns its row ID.
func (s *Store) RecordRound(gameID string, score int) (int64, error) {
	res, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRounds returns up to limit rounds, best first; ties keep insertion order.
func (s *Store) TopRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = defaultRoundLimit
	}
	return s.queryRounds(
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
}

// AllRounds returns the whole history, best first.
func (s *Store) AllRounds(gameID string) ([]Round, error) {
	return s.queryRounds(
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC`,
		gameID,
	)
}

func (s *Store) queryRounds(query string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var out []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan round: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// BestRound returns the highest recorded round, 0 for an empty history.
func (s *Store) BestRound(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query best round: %w", err)
	}
	return int(best.Int64), nil
}

// Stats aggregates the history of gameID. An empty history yields zero values.
func (s *Store) Stats(gameID string) (Stats, error) {
	st := Stats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&st.Rounds, &st.Best, &st.Average, &st.Total)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot aggregate rounds: %w", err)
	}

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&last)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return Stats{}, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		st.LastPlayed = parseTime(last)
	}

	return st, nil
}

// Clear deletes the round history and the persistent best of gameID.
func (s *Store) Clear(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear: %w", err)
	}
	for _, q := range []string{
		"DELETE FROM scores WHERE game_id = ?",
		"DELETE FROM highscores WHERE game_id = ?",
	} {
		if _, err := tx.Exec(q, gameID); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot clear: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot clear: %w", err)
	}
	return nil
}
