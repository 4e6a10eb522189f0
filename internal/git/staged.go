package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// validateRoot validates and normalizes a git repository root path.
func validateRoot(root string) (string, error) {
	if strings.ContainsRune(root, 0) {
		return "", fmt.Errorf("invalid path: contains null byte")
	}
	abs, err := filepath.Abs(filepath.Clean(root))
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", root, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot access path %q: %w", root, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", root)
	}
	return abs, nil
}

// Staged returns the root-relative paths and contents of files staged for
// commit (added, copied, or modified). Used for pre-commit gating.
func Staged(root string) ([]string, [][]byte, error) {
	validRoot, err := validateRoot(root)
	if err != nil {
		return nil, nil, err
	}
	out, err := exec.Command("git", "-C", validRoot, "diff", "--cached", "--name-only", "--diff-filter=ACM").Output()
	if err != nil {
		return nil, nil, fmt.Errorf("git diff --cached: %w", err)
	}
	var paths []string
	var blobs [][]byte
	for _, p := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// Read the staged blob, not the working-tree file.
		blob, err := exec.Command("git", "-C", validRoot, "show", ":"+p).Output()
		if err != nil {
			continue
		}
		paths = append(paths, p)
		blobs = append(blobs, blob)
	}
	return paths, blobs, nil
}
