// Package config resolves where emogo keeps its database, clips and exports.
//
// Values come from three layers, later layers winning:
//
//  1. Defaults under $HOME/.emogo
//  2. An optional CUE file (emogo.cue) validated against the embedded #Config schema
//  3. Command-line flags (applied by the CLI)
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaCUE string

// FileName is the configuration file looked up in the data directory.
const FileName = "emogo.cue"

// Config holds resolved filesystem locations.
type Config struct {
	DB      string `json:"db"`
	Media   string `json:"media"`
	Exports string `json:"exports"`
}

// Default returns the configuration rooted at dataDir.
func Default(dataDir string) Config {
	return Config{
		DB:      filepath.Join(dataDir, "emogo.db"),
		Media:   filepath.Join(dataDir, "media"),
		Exports: filepath.Join(dataDir, "exports"),
	}
}

// DataDir returns $HOME/.emogo.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".emogo"), nil
}

// Load returns base overlaid with the values in the CUE file at path.
// If optional is set, a missing file leaves base unchanged.
func Load(path string, base Config, optional bool) (Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	file, err := Parse(path, src)
	if err != nil {
		return Config{}, err
	}

	dir := filepath.Dir(path)
	return merge(base, file.resolve(dir)), nil
}

// Parse validates src against #Config and decodes it. Unknown fields and
// empty paths are rejected. Paths are returned as written.
func Parse(filename string, src []byte) (Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return Config{}, fmt.Errorf("compile config schema: %w", err)
	}

	value := ctx.CompileBytes(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", filename, err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", filename, err)
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", filename, err)
	}
	return cfg, nil
}

// resolve makes relative paths absolute against dir. Empty fields stay empty.
func (c Config) resolve(dir string) Config {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	return Config{DB: abs(c.DB), Media: abs(c.Media), Exports: abs(c.Exports)}
}

// merge returns base with every non-empty field of over applied.
func merge(base, over Config) Config {
	if over.DB != "" {
		base.DB = over.DB
	}
	if over.Media != "" {
		base.Media = over.Media
	}
	if over.Exports != "" {
		base.Exports = over.Exports
	}
	return base
}

// Override applies non-empty values, used for flags given on the command line.
func (c Config) Override(over Config) Config {
	return merge(c, over)
}
