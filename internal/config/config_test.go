package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default("/data")
	assert.Equal(t, Config{
		DB:      "/data/emogo.db",
		Media:   "/data/media",
		Exports: "/data/exports",
	}, cfg)
}

func TestParse(t *testing.T) {
	cfg, err := Parse("emogo.cue", []byte(`
db:    "/var/lib/emogo/journal.db"
media: "clips"
`))
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/emogo/journal.db", cfg.DB)
	assert.Equal(t, "clips", cfg.Media)
	assert.Empty(t, cfg.Exports)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse("emogo.cue", []byte(`database: "x.db"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid emogo.cue")
}

func TestParse_EmptyPath(t *testing.T) {
	_, err := Parse("emogo.cue", []byte(`db: ""`))
	assert.Error(t, err)
}

func TestParse_WrongType(t *testing.T) {
	_, err := Parse("emogo.cue", []byte(`db: 42`))
	assert.Error(t, err)
}

func TestParse_Syntax(t *testing.T) {
	_, err := Parse("emogo.cue", []byte(`db: "unterminated`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse emogo.cue")
}

func TestLoad_ResolvesRelativePaths(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
db:      "journal.db"
exports: "/tmp/emogo-exports"
`)

	cfg, err := Load(path, Default("/data"), false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "journal.db"), cfg.DB)
	assert.Equal(t, "/data/media", cfg.Media)
	assert.Equal(t, "/tmp/emogo-exports", cfg.Exports)
}

func TestLoad_MissingOptional(t *testing.T) {
	base := Default("/data")
	cfg, err := Load(filepath.Join(t.TempDir(), FileName), base, true)
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName), Default("/data"), false)
	assert.Error(t, err)
}

func TestOverride(t *testing.T) {
	cfg := Default("/data").Override(Config{Media: "/mnt/clips"})
	assert.Equal(t, "/data/emogo.db", cfg.DB)
	assert.Equal(t, "/mnt/clips", cfg.Media)
}
