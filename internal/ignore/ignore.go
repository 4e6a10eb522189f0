package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// Matcher answers whether a root-relative path is excluded by a
// .philintignore file. Patterns follow gitignore-ish semantics: blank lines
// and lines starting with '#' are skipped, a trailing '/' matches the whole
// directory subtree, and bare globs also match against the base name.
type Matcher struct {
	dirs  []string
	globs []string
}

// Load reads an ignore file. A missing file yields an empty matcher and no
// error; the caller treats ignores as optional.
func Load(path string) (Matcher, error) {
	var m Matcher
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return m, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, "/") {
			m.dirs = append(m.dirs, strings.TrimSuffix(line, "/"))
			continue
		}
		m.globs = append(m.globs, line)
	}
	return m, sc.Err()
}

// Match reports whether rel is excluded.
func (m Matcher) Match(rel string) bool {
	rp := strings.ReplaceAll(rel, "\\", "/")
	for _, d := range m.dirs {
		if rp == d || strings.HasPrefix(rp, d+"/") || strings.Contains(rp, "/"+d+"/") {
			return true
		}
	}
	for _, g := range m.globs {
		if ok, _ := doublestar.Match(g, rp); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(rp)); ok {
			return true
		}
	}
	return false
}
