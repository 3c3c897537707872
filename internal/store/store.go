package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/jask/sudotui/internal/grid"
)

// Store reads and writes puzzle files, one flat text file per puzzle.
type Store struct {
	dir string
}

// Entry is a puzzle file listing row.
type Entry struct {
	Name    string
	ModTime time.Time
}

func New(dir string) *Store { return &Store{dir: dir} }

// Dir returns the puzzle directory.
func (s *Store) Dir() string { return s.dir }

// canonical resolves a user-supplied name to a path inside the puzzle
// directory, adding the .txt extension if missing. Absolute paths and
// paths with separators are used as given.
func (s *Store) canonical(name string) string {
	name = strings.TrimSpace(name)
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}
	if filepath.IsAbs(name) || strings.ContainsRune(name, os.PathSeparator) {
		return name
	}
	return filepath.Join(s.dir, name)
}

// Save writes the grid to the named file and returns the path written.
// The write goes through a temp file so a crash never truncates a
// previously saved puzzle.
func (s *Store) Save(name string, g grid.Grid) (string, error) {
	path := s.canonical(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("mkdir puzzle dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(g.String()), 0o644); err != nil {
		return "", fmt.Errorf("write puzzle: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("write puzzle: %w", err)
	}
	return path, nil
}

// Load reads and parses the named puzzle file.
func (s *Store) Load(name string) (grid.Grid, error) {
	path := s.canonical(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return grid.Grid{}, fmt.Errorf("read puzzle: %w", err)
	}
	return grid.Parse(string(data)), nil
}

// List returns the puzzle files in the store directory, newest first.
func (s *Store) List() ([]Entry, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list puzzles: %w", err)
	}
	var out []Entry
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{Name: e.Name(), ModTime: info.ModTime()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModTime.After(out[j].ModTime) })
	return out, nil
}

// Suggest returns the stored filename closest to name by edit
// distance, for "did you mean" prompts after a failed load. ok is
// false when the store is empty or nothing is plausibly close.
func (s *Store) Suggest(name string) (string, bool) {
	entries, err := s.List()
	if err != nil || len(entries) == 0 {
		return "", false
	}
	name = strings.TrimSpace(name)
	if !strings.HasSuffix(name, ".txt") {
		name += ".txt"
	}
	best, bestDist := "", -1
	for _, e := range entries {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(e.Name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = e.Name, d
		}
	}
	// a suggestion further away than half the name is noise
	if bestDist > len(name)/2 {
		return "", false
	}
	return best, true
}

// DefaultName returns a fresh puzzle filename for blank prompts.
func DefaultName() string {
	return "puzzle-" + uuid.NewString()[:8] + ".txt"
}
