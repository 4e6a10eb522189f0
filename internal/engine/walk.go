package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/philint/philint/internal/ignore"
)

// Walk traverses the working tree under cfg.Root in lexical order and
// invokes handle for each eligible file's relative path and raw contents.
// Read failures skip the file rather than aborting the walk; the scan of
// remaining files continues.
func Walk(cfg Config, ign ignore.Matcher, handle func(rel string, data []byte)) error {
	exts := extensionSet(cfg.Extensions)
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && isDirExcluded(d.Name(), cfg.DefaultExcludes) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		if !eligible(rel, d.Name(), exts, cfg, ign) {
			return nil
		}
		info, _ := d.Info()
		if info != nil && cfg.MaxBytes > 0 && info.Size() > cfg.MaxBytes {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil
		}
		if looksBinary(b) {
			return nil
		}
		handle(rel, b)
		return nil
	})
}

// eligible applies the name-level selection shared by tree and staged scans:
// self-file skip, extension allow-list, include/exclude globs, ignore file.
func eligible(rel, base string, exts map[string]bool, cfg Config, ign ignore.Matcher) bool {
	if selfFiles[base] || (cfg.OutputFile != "" && base == filepath.Base(cfg.OutputFile)) {
		return false
	}
	if !exts[strings.ToLower(filepath.Ext(rel))] {
		return false
	}
	if !allowedByGlobs(rel, cfg) {
		return false
	}
	return !ign.Match(rel)
}

// looksBinary reports whether the content has a NUL byte in its prefix.
// Text with invalid UTF-8 is still scanned.
func looksBinary(b []byte) bool {
	n := len(b)
	if n > 800 {
		n = 800
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}
