package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// File keeps values in a flat TOML document. The whole file is rewritten on
// every Set, so a crash never leaves a half-applied change.
type File struct {
	path string

	mu     sync.RWMutex
	values map[string]any
}

// NewFile loads path, or starts empty when it does not exist yet.
func NewFile(path string) (*File, error) {
	f := &File{path: path, values: map[string]any{}}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if errors.Is(err, os.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &f.values); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for k, v := range f.values {
		if checkValue(v) != nil {
			delete(f.values, k)
		}
	}
	return f, nil
}

// Get returns the value for key or ErrNotFound.
func (f *File) Get(key string) (any, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// Set stores a bool or string value and rewrites the file.
func (f *File) Set(key string, value any) error {
	if err := checkValue(value); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.values[key]
	f.values[key] = value
	if err := f.save(); err != nil {
		if had {
			f.values[key] = prev
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

// Close is a no-op; every Set is already on disk.
func (f *File) Close() error {
	return nil
}

// save writes the document to a temp file next to path and renames it over
// the old one.
func (f *File) save() error {
	data, err := toml.Marshal(f.values)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}
