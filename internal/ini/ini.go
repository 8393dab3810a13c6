// Package ini reads the line-oriented section/key/value files that configure
// the stickman scene.
//
// A Store is built once by Load or Parse and is read-only afterwards, so it
// is safe to share between goroutines. Construction never returns an error;
// the outcome is recorded as a Status which callers must check before
// trusting any value read from the store.
package ini

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Status is the terminal outcome of building a Store.
type Status int

const (
	StatusOK Status = iota
	StatusFileNotFound
	StatusKeyValueOutsideSection
	StatusEmptyPathGiven
)

// Sentinel errors matching the non-OK statuses.
var (
	ErrFileNotFound           = errors.New("ini: file not found")
	ErrKeyValueOutsideSection = errors.New("ini: key/value pair outside of a section")
	ErrEmptyPath              = errors.New("ini: empty path given")
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "Ok"
	case StatusFileNotFound:
		return "FileNotFound"
	case StatusKeyValueOutsideSection:
		return "KeyValueOutsideSection"
	case StatusEmptyPathGiven:
		return "EmptyPathGiven"
	default:
		return "Unknown"
	}
}

// Err returns the sentinel error for a non-OK status, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusFileNotFound:
		return ErrFileNotFound
	case StatusKeyValueOutsideSection:
		return ErrKeyValueOutsideSection
	case StatusEmptyPathGiven:
		return ErrEmptyPath
	default:
		return errors.New("ini: unknown status")
	}
}

// Store holds the sections parsed from one file.
type Store struct {
	sections map[string]map[string]string
	status   Status
}

// Load opens path and parses it. The file is fully read and closed before
// Load returns.
func Load(path string) *Store {
	if path == "" {
		return &Store{sections: map[string]map[string]string{}, status: StatusEmptyPathGiven}
	}

	f, err := os.Open(path)
	if err != nil {
		return unreadable()
	}
	defer f.Close()

	// Directories open fine on some systems but cannot be read as a file.
	if info, err := f.Stat(); err != nil || info.IsDir() {
		return unreadable()
	}

	return Parse(f)
}

// Parse builds a Store from r. A read error other than io.EOF means the
// source cannot be read: the status is StatusFileNotFound and nothing read
// so far is kept.
func Parse(r io.Reader) *Store {
	p := newParser()

	br := bufio.NewReader(r)
	for p.state != stateFailed {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return unreadable()
		}
		if line != "" {
			p.feed(line)
		}
		if err != nil {
			break
		}
	}

	return p.store()
}

func unreadable() *Store {
	return &Store{sections: map[string]map[string]string{}, status: StatusFileNotFound}
}

// Status returns the outcome of construction.
func (s *Store) Status() Status {
	return s.status
}

// ReadString returns the stored value, or def when the section or key is missing.
func (s *Store) ReadString(section, key, def string) string {
	if v, ok := s.lookup(section, key); ok {
		return v
	}
	return def
}

// ReadInteger parses the stored value as a 32-bit integer literal. A 0x
// prefix means hexadecimal and a leading 0 means octal; anything else is
// decimal. Digit separators and the 0b and 0o prefixes are not accepted.
func (s *Store) ReadInteger(section, key string, def int) int {
	v, ok := s.lookup(section, key)
	if !ok || !plainInteger(v) {
		return def
	}
	n, err := strconv.ParseInt(v, 0, 32)
	if err != nil {
		return def
	}
	return int(n)
}

// plainInteger rejects the literal forms strconv accepts beyond C-style
// decimal, hex and octal.
func plainInteger(v string) bool {
	if strings.ContainsRune(v, '_') {
		return false
	}
	digits := strings.TrimLeft(v, "+-")
	if len(digits) >= 2 && digits[0] == '0' {
		switch digits[1] {
		case 'b', 'B', 'o', 'O':
			return false
		}
	}
	return true
}

// ReadBool accepts "true" and "false" in any case, then falls back to a
// decimal integer where nonzero means true.
func (s *Store) ReadBool(section, key string, def bool) bool {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	switch {
	case strings.EqualFold(v, "true"):
		return true
	case strings.EqualFold(v, "false"):
		return false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n != 0
}

// ReadReal parses the stored value as a floating-point literal.
func (s *Store) ReadReal(section, key string, def float64) float64 {
	v, ok := s.lookup(section, key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Sections returns the reachable section names in sorted order.
func (s *Store) Sections() []string {
	names := make([]string, 0, len(s.sections))
	for name := range s.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys returns the keys of a section in sorted order, or nil if the section
// does not exist.
func (s *Store) Keys(section string) []string {
	entries, ok := s.sections[section]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a deep copy of the section mapping.
func (s *Store) Snapshot() map[string]map[string]string {
	out := make(map[string]map[string]string, len(s.sections))
	for name, entries := range s.sections {
		cp := make(map[string]string, len(entries))
		for k, v := range entries {
			cp[k] = v
		}
		out[name] = cp
	}
	return out
}

func (s *Store) lookup(section, key string) (string, bool) {
	entries, ok := s.sections[section]
	if !ok {
		return "", false
	}
	v, ok := entries[key]
	return v, ok
}

// stripAllSpace removes every whitespace rune, including internal ones.
func stripAllSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
