// Package journal provides the entry schema, validation, and CSV persistence for the haven mood journal.
package journal

import (
	"os"
	"strings"
	"sync"
	"time"
)

// Store provides read/append access to the mood journal backed by a
// single CSV file. The file is the source of truth: Append re-reads it
// after writing, and Current serves the cached result of the last load.
//
// A single mutex serializes loads and appends. The store is safe for
// concurrent use within one process; it does not coordinate between
// processes.
type Store struct {
	path string
	now  func() time.Time

	mu      sync.Mutex
	entries []*Entry
	stats   *LoadStats
	loaded  bool
}

// NewStore creates a Store for the given file path.
// If clock is nil, uses time.Now.
func NewStore(path string, clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{path: path, now: clock}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// FileExists returns true if the store file exists.
func (s *Store) FileExists() bool {
	info, err := os.Stat(s.path)
	return err == nil && !info.IsDir()
}

// Load re-reads the store file from disk, initializing it first if
// needed, and replaces the cached view. Entries keep file order.
func (s *Store) Load() ([]*Entry, *LoadStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// loadLocked performs the load. Caller must hold s.mu.
func (s *Store) loadLocked() ([]*Entry, *LoadStats, error) {
	if err := EnsureFile(s.path); err != nil {
		return nil, nil, err
	}

	entries, stats, err := readFile(s.path)
	if err != nil {
		return nil, nil, err
	}

	s.entries = entries
	s.stats = stats
	s.loaded = true
	return entries, stats, nil
}

// Current returns the cached entries and load statistics, loading from
// disk on first use. The returned slice must not be modified.
func (s *Store) Current() ([]*Entry, *LoadStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return s.loadLocked()
	}
	return s.entries, s.stats, nil
}

// Append validates and writes a new entry, then refreshes the cached
// view from disk. The note is trimmed and the tags normalized; the
// timestamp is the current time at second precision.
// Returns the appended entry.
func (s *Store) Append(mood int, note string, tags []string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ValidateMood(mood); err != nil {
		return nil, err
	}

	entry := &Entry{
		Timestamp: s.now().Truncate(time.Second),
		Mood:      mood,
		Note:      strings.TrimSpace(note),
		Tags:      NormalizeTags(tags),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := EnsureFile(s.path); err != nil {
		return nil, err
	}
	if err := appendEntry(s.path, entry); err != nil {
		return nil, err
	}

	if _, _, err := s.loadLocked(); err != nil {
		return nil, err
	}

	return entry, nil
}
