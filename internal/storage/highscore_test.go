package storage

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestHighScoreFileMissing(t *testing.T) {
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "data", "highscore.txt"))
	if err != nil {
		t.Fatalf("NewHighScoreFile() failed: %v", err)
	}

	score, err := f.Load()
	if score != 0 {
		t.Errorf("Load() = %d, expected 0", score)
	}
	if !errors.Is(err, ErrNoHighScore) {
		t.Errorf("Load() error = %v, expected ErrNoHighScore", err)
	}
}

func TestHighScoreFileLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
		wantErr  bool
	}{
		{"plain", "42", 42, false},
		{"trailing newline", "42\n", 42, false},
		{"surrounding spaces", "  17 \n", 17, false},
		{"zero", "0", 0, false},
		{"garbage", "forty-two", 0, true},
		{"empty", "", 0, true},
		{"negative", "-5", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "highscore.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			f, _ := NewHighScoreFile(path)

			score, err := f.Load()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tc.wantErr)
			}
			if score != tc.expected {
				t.Errorf("Load() = %d, expected %d", score, tc.expected)
			}
		})
	}
}

func TestHighScoreFileSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "highscore.txt")
	f, _ := NewHighScoreFile(path)

	if err := f.Save(13); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("high score file not written: %v", err)
	}
	if string(data) != "13" {
		t.Errorf("file content = %q, expected %q", data, "13")
	}

	// A fresh store sees the persisted value.
	reopened, _ := NewHighScoreFile(path)
	score, err := reopened.Load()
	if err != nil || score != 13 {
		t.Errorf("reloaded score = %d, %v; expected 13", score, err)
	}
}

func TestHighScoreFileIgnoresLowerScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	f, _ := NewHighScoreFile(path)

	f.Save(20)
	f.Save(5)

	score, _ := f.Load()
	if score != 20 {
		t.Errorf("Load() = %d, expected lower save to be ignored", score)
	}
}

func TestHighScoreFileSaveError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	if err := os.WriteFile(blocker, []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}

	f, _ := NewHighScoreFile(filepath.Join(blocker, "highscore.txt"))
	if err := f.Save(1); err == nil {
		t.Error("expected an error when the parent path is a file")
	}
}

func TestHighScoreFileConcurrentSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	f, _ := NewHighScoreFile(path)

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			f.Save(score)
		}(i)
	}
	wg.Wait()

	score, err := f.Load()
	if err != nil || score != 50 {
		t.Errorf("Load() = %d, %v; expected the best of all sessions", score, err)
	}
}

func TestHighScoreFileDefaultPath(t *testing.T) {
	f, err := NewHighScoreFile("")
	if err != nil {
		t.Fatal(err)
	}
	if f.Path() != DefaultHighScorePath {
		t.Errorf("Path() = %q, expected %q", f.Path(), DefaultHighScorePath)
	}
}

func TestMemoryHighScore(t *testing.T) {
	m := NewMemoryHighScore(3)

	if score, err := m.Load(); score != 3 || err != nil {
		t.Fatalf("Load() = %d, %v; expected 3", score, err)
	}

	m.Save(1)
	if score, _ := m.Load(); score != 3 {
		t.Errorf("lower save changed best to %d", score)
	}

	m.Save(8)
	if score, _ := m.Load(); score != 8 {
		t.Errorf("Load() = %d, expected 8", score)
	}
}
