package phrases

import (
	"sync/atomic"
)

// Store keeps the current phrases snapshot. A reload swaps in a new collection and never
// mutates the previous one.
type Store struct {
	path    string
	current atomic.Pointer[Phrases]
}

func (s *Store) Phrases() Phrases {
	return *s.current.Load()
}

func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the phrases file. On a validation error the previous snapshot stays active.
func (s *Store) Reload() error {
	phrases, err := Load(s.path)
	if err != nil {
		return err
	}

	s.current.Store(&phrases)

	return nil
}

func NewStore(path string) (*Store, error) {
	s := &Store{
		path: path,
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}

	return s, nil
}
