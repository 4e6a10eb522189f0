package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/philint/philint/internal/types"
)

// Entry records one scanned file: its content hash and the violations that
// scan produced. Unlike a skip-only cache, storing the violations lets a
// repeat scan replay them so output stays byte-identical across runs.
type Entry struct {
	Hash       string            `json:"hash"`
	Violations []types.Violation `json:"violations,omitempty"`
}

// DB maps root-relative paths to cache entries.
type DB struct {
	Entries map[string]Entry `json:"entries"`
}

func defaultPath(root string) string {
	// Prefer storing cache under .git to avoid accidental commits.
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, "philintcache.json")
	}
	return filepath.Join(root, ".philintcache.json")
}

// Load reads the cache for root, returning an empty DB on any failure.
func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

// Save persists the cache for root.
func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0644)
}

// FileName is the cache file's base name under the repo root when no .git
// directory exists; the walker skips it as self-referential output.
const FileName = ".philintcache.json"
