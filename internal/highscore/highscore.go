// Package highscore persists the single best score of the game.
// Persistence is best-effort: callers log failures and keep playing.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrCorrupt is returned by Load when stored data cannot be interpreted.
var ErrCorrupt = errors.New("highscore: corrupt record")

// Store loads and saves the persisted high score.
type Store interface {
	// Load returns the stored score. Absent storage yields 0 and no error.
	Load() (int, error)
	// Save overwrites the stored score unconditionally.
	Save(score int) error
}

// record is the on-disk format: {"score": N}.
type record struct {
	Score int `json:"score"`
}

// FileStore keeps the high score in a small JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for the given path. A leading ~ is expanded
// to the user's home directory.
func NewFileStore(path string) (*FileStore, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return &FileStore{path: path}, nil
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored score.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if rec.Score < 0 {
		return 0, fmt.Errorf("%w: %s: negative score %d", ErrCorrupt, s.path, rec.Score)
	}
	return rec.Score, nil
}

// Save writes the score, creating parent directories as needed.
func (s *FileStore) Save(score int) error {
	data, err := json.Marshal(record{Score: score})
	if err != nil {
		return fmt.Errorf("highscore: cannot encode score: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", s.path, err)
	}
	return nil
}

// Nop is a Store that remembers nothing.
type Nop struct{}

// Load always returns 0.
func (Nop) Load() (int, error) { return 0, nil }

// Save discards the score.
func (Nop) Save(int) error { return nil }

var (
	_ Store = (*FileStore)(nil)
	_ Store = Nop{}
)
