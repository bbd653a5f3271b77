// Package records keeps the best finished runs in a YAML file.
package records

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// MaxEntries is how many runs the file keeps.
const MaxEntries = 10

type Entry struct {
	ID              string    `yaml:"id"`
	Score           int       `yaml:"score"`
	DurationSeconds float64   `yaml:"duration_seconds"`
	FinishedAt      time.Time `yaml:"finished_at"`
}

func (e Entry) Duration() time.Duration {
	return time.Duration(e.DurationSeconds * float64(time.Second))
}

type file struct {
	Records []Entry `yaml:"records"`
}

// Store is the records file at Path. Entries are kept sorted by score,
// highest first; ties go to the earlier run.
type Store struct {
	Path    string
	entries []Entry
	now     func() time.Time
}

// Open reads path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{Path: path, now: time.Now}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("records: read %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("records: unmarshal %s: %w", path, err)
	}
	s.entries = f.Records
	s.sortAndTrim()
	return s, nil
}

// Add records a finished run and saves the file. It returns the new entry.
func (s *Store) Add(score int, duration time.Duration) (Entry, error) {
	entry := Entry{
		ID:              uuid.NewString(),
		Score:           score,
		DurationSeconds: duration.Seconds(),
		FinishedAt:      s.now().UTC().Truncate(time.Second),
	}
	s.entries = append(s.entries, entry)
	s.sortAndTrim()
	if err := s.Save(); err != nil {
		return entry, err
	}
	return entry, nil
}

// Best returns the highest scoring run.
func (s *Store) Best() (Entry, bool) {
	if s == nil || len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[0], true
}

func (s *Store) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Save writes the file atomically through a temp file in the same directory.
func (s *Store) Save() error {
	if s.Path == "" {
		return nil
	}
	data, err := yaml.Marshal(file{Records: s.entries})
	if err != nil {
		return fmt.Errorf("records: marshal: %w", err)
	}
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, ".records-*.yaml")
	if err != nil {
		return fmt.Errorf("records: create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("records: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("records: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("records: rename: %w", err)
	}
	return nil
}

func (s *Store) sortAndTrim() {
	sort.SliceStable(s.entries, func(i, j int) bool {
		if s.entries[i].Score != s.entries[j].Score {
			return s.entries[i].Score > s.entries[j].Score
		}
		return s.entries[i].FinishedAt.Before(s.entries[j].FinishedAt)
	})
	if len(s.entries) > MaxEntries {
		s.entries = s.entries[:MaxEntries]
	}
}
