package engine

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/philint/philint/internal/aggregate"
	"github.com/philint/philint/internal/cache"
	"github.com/philint/philint/internal/git"
	"github.com/philint/philint/internal/ignore"
	"github.com/philint/philint/internal/rules"
	"github.com/philint/philint/internal/scanner"
	"github.com/philint/philint/internal/types"
)

// Config controls scanning behavior including scope, performance, and filters.
type Config struct {
	Root              string
	IncludeGlobs      string
	ExcludeGlobs      string
	MaxBytes          int64
	Threads           int
	DisableCategories string // comma-separated category names
	Extensions        string // comma-separated override of the scanned extension set
	Staged            bool   // scan staged changes instead of the working tree
	NoCache           bool
	DefaultExcludes   bool
	OutputFile        string // report path, skipped by the walker
	Progress          func()
}

// Result contains the scan result and basic statistics.
type Result struct {
	Scan         types.ScanResult
	FilesScanned int
	Duration     time.Duration
}

type job struct {
	rel  string
	data []byte
}

// Scan runs a scan and returns only the ScanResult.
func Scan(cfg Config) (types.ScanResult, error) {
	res, err := ScanWithStats(cfg)
	if err != nil {
		return types.ScanResult{}, err
	}
	return res.Scan, nil
}

// ScanWithStats runs a scan and returns the result along with timing and
// counts. Files are scanned in parallel; each worker fills a private buffer
// and buffers are merged strictly in traversal order, so output ordering is
// deterministic regardless of scheduling.
func ScanWithStats(cfg Config) (Result, error) {
	var result Result

	if _, err := os.Stat(cfg.Root); err != nil {
		return result, fmt.Errorf("directory not found: %s", cfg.Root)
	}
	if cfg.Threads <= 0 {
		cfg.Threads = runtime.GOMAXPROCS(0)
	}
	disabled, err := parseDisabled(cfg.DisableCategories)
	if err != nil {
		return result, err
	}

	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".philintignore"))

	var db cache.DB
	if !cfg.NoCache && !cfg.Staged {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]cache.Entry{}
	}
	updated := map[string]cache.Entry{}
	var updatedMu sync.Mutex

	agg := aggregate.New()
	started := time.Now()

	batchSize := cfg.Threads * 4
	queue := make([]job, 0, batchSize)
	flush := func() {
		if len(queue) == 0 {
			return
		}
		buffers := make([][]types.Violation, len(queue))
		var wg sync.WaitGroup
		sem := make(chan struct{}, cfg.Threads)
		for i, j := range queue {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, j job) {
				defer wg.Done()
				defer func() { <-sem }()
				h := fastHash(j.data)
				if e, ok := db.Entries[j.rel]; ok && e.Hash == h && !cfg.NoCache && !cfg.Staged {
					buffers[i] = e.Violations
					return
				}
				vs := scanData(j.rel, j.data, disabled)
				buffers[i] = vs
				if !cfg.NoCache && !cfg.Staged {
					updatedMu.Lock()
					updated[j.rel] = cache.Entry{Hash: h, Violations: vs}
					updatedMu.Unlock()
				}
			}(i, j)
		}
		wg.Wait()
		for _, buf := range buffers {
			agg.AddAll(buf)
			result.FilesScanned++
			if cfg.Progress != nil {
				cfg.Progress()
			}
		}
		queue = queue[:0]
	}

	enqueue := func(rel string, data []byte) {
		queue = append(queue, job{rel: rel, data: data})
		if len(queue) >= batchSize {
			flush()
		}
	}

	if cfg.Staged {
		if err := feedStaged(cfg, ign, enqueue); err != nil {
			return result, err
		}
	} else {
		if err := Walk(cfg, ign, enqueue); err != nil {
			return result, err
		}
	}
	flush()

	result.Scan = agg.Finalize()
	result.Duration = time.Since(started)

	if !cfg.NoCache && !cfg.Staged && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]cache.Entry{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	return result, nil
}

// feedStaged enqueues staged blobs that pass the same name-level selection
// as the tree walk.
func feedStaged(cfg Config, ign ignore.Matcher, enqueue func(string, []byte)) error {
	paths, blobs, err := git.Staged(cfg.Root)
	if err != nil {
		return err
	}
	exts := extensionSet(cfg.Extensions)
	for i, p := range paths {
		if !eligible(p, filepath.Base(p), exts, cfg, ign) {
			continue
		}
		if cfg.MaxBytes > 0 && int64(len(blobs[i])) > cfg.MaxBytes {
			continue
		}
		if looksBinary(blobs[i]) {
			continue
		}
		enqueue(p, blobs[i])
	}
	return nil
}

// scanData runs the line scanner over each line of data. Line numbers are
// 1-based. Lines are split manually rather than through a fixed-size token
// scanner so a single oversized line (minified bundles) cannot truncate the
// scan of the rest of the file.
func scanData(rel string, data []byte, disabled map[types.Category]bool) []types.Violation {
	file := types.NewFileIdentity(rel)
	var out []types.Violation
	line := 0
	for len(data) > 0 {
		raw := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			raw, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		raw = bytes.TrimSuffix(raw, []byte{'\r'})
		line++
		out = append(out, scanner.ScanDisabled(file, line, string(raw), disabled)...)
	}
	return out
}

// CountTargets counts the files a scan would process, so the progress
// denominator matches what Walk hands to the workers. It mirrors Walk's
// selection including the binary sniff, reading only a short prefix of each
// candidate.
func CountTargets(cfg Config) (int, error) {
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ".philintignore"))
	if cfg.Staged {
		paths, blobs, err := git.Staged(cfg.Root)
		if err != nil {
			return 0, nil
		}
		exts := extensionSet(cfg.Extensions)
		n := 0
		for i, p := range paths {
			if !eligible(p, filepath.Base(p), exts, cfg, ign) {
				continue
			}
			if cfg.MaxBytes > 0 && int64(len(blobs[i])) > cfg.MaxBytes {
				continue
			}
			if looksBinary(blobs[i]) {
				continue
			}
			n++
		}
		return n, nil
	}
	exts := extensionSet(cfg.Extensions)
	n := 0
	_ = filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
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
		f, err := os.Open(p)
		if err != nil {
			return nil
		}
		head := make([]byte, 800)
		m, _ := f.Read(head)
		f.Close()
		if looksBinary(head[:m]) {
			return nil
		}
		n++
		return nil
	})
	return n, nil
}

func parseDisabled(csv string) (map[types.Category]bool, error) {
	if csv == "" {
		return nil, nil
	}
	out := map[types.Category]bool{}
	for _, name := range strings.Split(csv, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if !rules.Valid(name) {
			return nil, fmt.Errorf("unknown category: %s", name)
		}
		out[types.Category(name)] = true
	}
	return out, nil
}

func fastHash(b []byte) string {
	if len(b) == 0 {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

// allowedByGlobs returns true if the path passes the include/exclude glob
// configuration. Include globs, if provided, act as a positive filter;
// exclude globs are subtracted last. Matching uses forward-slash semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
