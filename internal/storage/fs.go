package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sniffgo/notes/internal/filename"
	"github.com/sniffgo/notes/internal/models"
)

// Extension is the file extension every note carries.
const Extension = ".txt"

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the notes directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// safePath resolves a bare note file name against the root and rejects
// anything that could reach outside it.
func (f *FS) safePath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) {
		return "", fmt.Errorf("storage: invalid note name: %q", name)
	}
	return filepath.Join(f.root, name), nil
}

// List enumerates the direct children of the notes directory, keeping
// regular files whose extension is exactly ".txt", sorted by path. The
// listing is recomputed from the directory on every call; nothing is cached.
func (f *FS) List() ([]models.Note, error) {
	entries, err := os.ReadDir(f.root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: list: %w", err)
	}
	var out []models.Note
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		// A file named exactly ".txt" is a dotfile with no stem, not a note.
		if filepath.Ext(e.Name()) != Extension || e.Name() == Extension {
			continue
		}
		out = append(out, models.Note{
			Name: e.Name(),
			Path: filepath.Join(f.root, e.Name()),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Allocate sanitizes title and returns the first unused file name among
// "base.txt", "base (1).txt", "base (2).txt", and so on. Best effort only:
// nothing guards against an external writer racing the caller.
func (f *FS) Allocate(title string) (string, error) {
	base := filename.Sanitize(title)
	name := base + Extension
	for n := 1; ; n++ {
		_, err := os.Stat(filepath.Join(f.root, name))
		if errors.Is(err, os.ErrNotExist) {
			return name, nil
		}
		if err != nil {
			return "", fmt.Errorf("storage: stat %s: %w", name, err)
		}
		name = fmt.Sprintf("%s (%d)%s", base, n, Extension)
	}
}

// Read returns the raw bytes of a note file.
func (f *FS) Read(name string) ([]byte, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", name, err)
	}
	return data, nil
}

// Write atomically writes content: tmp file → fsync → rename.
func (f *FS) Write(name string, content []byte) error {
	abs, err := f.safePath(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".sniffgo-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// Append writes content at the end of an existing note, preserving what is
// already there. The handle is closed before return on every path.
func (f *FS) Append(name string, content []byte) error {
	abs, err := f.safePath(name)
	if err != nil {
		return err
	}
	fh, err := os.OpenFile(abs, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("storage: open for append %s: %w", name, err)
	}
	if _, err := fh.Write(content); err != nil {
		_ = fh.Close()
		return fmt.Errorf("storage: append %s: %w", name, err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("storage: close %s: %w", name, err)
	}
	return nil
}

// Delete removes a note file.
func (f *FS) Delete(name string) error {
	abs, err := f.safePath(name)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		return fmt.Errorf("storage: delete %s: %w", name, err)
	}
	return nil
}
