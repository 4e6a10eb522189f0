package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "philint.yml")
	body := `
include: "src/**"
exclude: "**/generated/**"
max_bytes: 2048
threads: 4
disable: "common_phi_terms"
extensions: ".kt,.java"
output: "report.txt"
no_cache: true
`
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))

	cfg, err := LoadFile(p)
	require.NoError(t, err)
	require.NotNil(t, cfg.Include)
	require.Equal(t, "src/**", *cfg.Include)
	require.Equal(t, int64(2048), *cfg.MaxBytes)
	require.Equal(t, 4, *cfg.Threads)
	require.Equal(t, "common_phi_terms", *cfg.Disable)
	require.Equal(t, ".kt,.java", *cfg.Extensions)
	require.Equal(t, "report.txt", *cfg.Output)
	require.True(t, *cfg.NoCache)
	require.Nil(t, cfg.NoColor) // absent key stays nil
}

func TestLoadLocalSearchOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".philint.yml"), []byte("threads: 2\n"), 0644))
	cfg, err := LoadLocal(dir)
	require.NoError(t, err)
	require.Equal(t, 2, *cfg.Threads)
}

func TestLoadLocalMissing(t *testing.T) {
	_, err := LoadLocal(t.TempDir())
	require.Error(t, err)
}

func TestLoadFileBadYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "philint.yml")
	require.NoError(t, os.WriteFile(p, []byte("threads: [nope"), 0644))
	_, err := LoadFile(p)
	require.Error(t, err)
}
