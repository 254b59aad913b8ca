// Package prefs provides the persistent key-value preferences behind a
// settings screen. Values are booleans or strings. Three backends are
// available: in-memory, a TOML file and a SQLite database.
package prefs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pkgz/lgr"
)

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend stores raw values. Get returns either a bool or a string and
// ErrNotFound for missing keys; Set accepts only bool and string values.
type Backend interface {
	Get(key string) (any, error)
	Set(key string, value any) error
	Close() error
}

// Store is the typed view used by settings screens.
type Store interface {
	Bool(key string, def bool) bool
	SetBool(key string, value bool) error
	String(key, def string) string
	SetString(key, value string) error
	Close() error
}

// Prefs implements Store on top of a Backend. Read failures fall back to the
// caller's default and are logged; write failures are returned.
type Prefs struct {
	backend Backend
	log     lgr.L
}

// New wraps b. A nil logger discards output.
func New(b Backend, l lgr.L) *Prefs {
	if l == nil {
		l = lgr.NoOp
	}
	return &Prefs{backend: b, log: l}
}

// Open picks a backend from uri: "" or ":memory:" keeps values in memory,
// a path ending in .toml uses a TOML file, anything else is a SQLite
// database path.
func Open(uri string, l lgr.L) (*Prefs, error) {
	switch {
	case uri == "" || uri == ":memory:":
		return New(NewMemory(), l), nil
	case strings.HasSuffix(strings.ToLower(uri), ".toml"):
		f, err := NewFile(uri)
		if err != nil {
			return nil, err
		}
		return New(f, l), nil
	default:
		db, err := NewSQLite(uri)
		if err != nil {
			return nil, err
		}
		return New(db, l), nil
	}
}

// Bool returns the boolean stored under key, or def when the key is missing
// or holds something that is not a boolean.
func (p *Prefs) Bool(key string, def bool) bool {
	v, err := p.backend.Get(key)
	if errors.Is(err, ErrNotFound) {
		return def
	}
	if err != nil {
		p.log.Logf("[WARN] read %q: %v", key, err)
		return def
	}
	switch val := v.(type) {
	case bool:
		return val
	case string:
		if b, perr := strconv.ParseBool(val); perr == nil {
			return b
		}
	}
	p.log.Logf("[WARN] %q holds %v, not a boolean", key, v)
	return def
}

// SetBool stores value under key.
func (p *Prefs) SetBool(key string, value bool) error {
	if err := p.backend.Set(key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	p.log.Logf("[DEBUG] pref %s=%v", key, value)
	return nil
}

// String returns the string stored under key, or def when the key is
// missing. Booleans are formatted as "true" or "false".
func (p *Prefs) String(key, def string) string {
	v, err := p.backend.Get(key)
	if errors.Is(err, ErrNotFound) {
		return def
	}
	if err != nil {
		p.log.Logf("[WARN] read %q: %v", key, err)
		return def
	}
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	}
	return def
}

// SetString stores value under key.
func (p *Prefs) SetString(key, value string) error {
	if err := p.backend.Set(key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	p.log.Logf("[DEBUG] pref %s=%q", key, value)
	return nil
}

// Close releases the backend.
func (p *Prefs) Close() error {
	return p.backend.Close()
}

// checkValue rejects values a backend cannot persist.
func checkValue(value any) error {
	switch value.(type) {
	case bool, string:
		return nil
	}
	return fmt.Errorf("unsupported value type %T", value)
}
