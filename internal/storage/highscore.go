package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// DefaultHighScorePath is where the high score lives relative to the
// working directory.
const DefaultHighScorePath = "data/highscore.txt"

// ErrNoHighScore is returned when no high score has been saved yet.
var ErrNoHighScore = errors.New("storage: no high score saved")

// HighScoreFile keeps the best score as a single decimal integer in a text
// file. It is safe for concurrent use, so several SSH sessions can share one.
type HighScoreFile struct {
	path string

	mu   sync.Mutex
	best int
}

// NewHighScoreFile returns a store backed by the file at path.
// The file is not touched until Load or Save.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	if path == "" {
		path = DefaultHighScorePath
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: path}, nil
}

// Path returns the file location.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load reads the stored score. A missing file yields ErrNoHighScore and an
// unparsable one a parse error; both return 0.
func (f *HighScoreFile) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("%w at %s", ErrNoHighScore, f.path)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read high score: %w", err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: invalid high score in %s: %w", f.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("storage: negative high score in %s", f.path)
	}

	f.mu.Lock()
	f.best = max(f.best, score)
	f.mu.Unlock()
	return score, nil
}

// Save writes score if it beats everything this store has seen, creating
// the parent directory when needed. Lower scores from a concurrent session
// are ignored so they never overwrite a better one.
func (f *HighScoreFile) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if score <= f.best && f.best > 0 {
		return nil
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	f.best = score
	return nil
}

// MemoryHighScore is an in-process high score that never touches disk.
type MemoryHighScore struct {
	mu   sync.Mutex
	best int
}

// NewMemoryHighScore returns a store seeded with an initial score.
func NewMemoryHighScore(initial int) *MemoryHighScore {
	return &MemoryHighScore{best: max(initial, 0)}
}

// Load returns the current best.
func (m *MemoryHighScore) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// Save records score if it is higher than the current best.
func (m *MemoryHighScore) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = max(m.best, score)
	return nil
}
