package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

type fakeScores struct {
	entries []storage.Round
	best    int
	err     error
}

func (f fakeScores) TopRounds(gameID string, limit int) ([]storage.Round, error) {
	return f.entries, f.err
}

func (f fakeScores) BestScore(gameID string) (int, error) {
	return f.best, f.err
}

func TestScoreboardRows(t *testing.T) {
	src := fakeScores{
		entries: []storage.Round{
			{ID: 1, GameID: "flappy", Score: 12, CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
			{ID: 2, GameID: "flappy", Score: 7, CreatedAt: time.Date(2026, 1, 3, 3, 4, 0, 0, time.UTC)},
		},
		best: 12,
	}

	m := NewScoreboardModel(src, "flappy", "Flappy Bird", 80, 24)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "12" || rows[0][2] != "Jan 02 03:04" {
		t.Errorf("first row = %v", rows[0])
	}

	view := ansiSeq.ReplaceAllString(m.View(), "")
	if !strings.Contains(view, "HIGH SCORES - Flappy Bird") || !strings.Contains(view, "Best: 12") {
		t.Errorf("view missing header: %q", view)
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	empty := NewScoreboardModel(fakeScores{}, "flappy", "Flappy Bird", 80, 24)
	if !strings.Contains(empty.View(), "No scores recorded yet.") {
		t.Error("empty history should show a placeholder")
	}

	broken := NewScoreboardModel(fakeScores{err: errors.New("locked")}, "flappy", "Flappy Bird", 80, 24)
	if !strings.Contains(broken.View(), "locked") {
		t.Error("load errors should be shown")
	}

	none := NewScoreboardModel(nil, "flappy", "Flappy Bird", 80, 24)
	if len(none.table.Rows()) != 0 {
		t.Error("nil source should produce no rows")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(fakeScores{}, "flappy", "Flappy Bird", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).quitting {
		t.Error("esc should quit the scoreboard")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
