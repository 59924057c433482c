// Package media keeps vlog clips in a directory owned by the journal.
package media

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultExt is used when the source clip has no extension.
const DefaultExt = ".mov"

// Library copies clips into Dir and removes them again.
type Library struct {
	Dir string

	// NewID overrides the clip name generator (for testing).
	// If nil, defaults to UUIDv7.
	NewID func() (string, error)
}

// NewLibrary returns a Library rooted at dir.
func NewLibrary(dir string) *Library {
	return &Library{Dir: dir}
}

// Import copies the clip at src into the library and returns the absolute
// path of the copy. The source file is left untouched.
func (l *Library) Import(src string) (string, error) {
	if l.Dir == "" {
		return "", fmt.Errorf("import clip: library directory is not set")
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("import clip: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", fmt.Errorf("import clip: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("import clip: %s is a directory", src)
	}

	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return "", fmt.Errorf("import clip: create library: %w", err)
	}

	id, err := l.newID()
	if err != nil {
		return "", fmt.Errorf("import clip: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(src))
	if ext == "" {
		ext = DefaultExt
	}

	dst, err := filepath.Abs(filepath.Join(l.Dir, "vlog-"+id+ext))
	if err != nil {
		return "", fmt.Errorf("import clip: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("import clip: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("import clip: copy: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("import clip: %w", err)
	}

	return dst, nil
}

// Remove deletes the clip at path. A clip that is already gone is not an error.
func (l *Library) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove clip: %w", err)
	}
	return nil
}

func (l *Library) newID() (string, error) {
	if l.NewID != nil {
		return l.NewID()
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
