// Package principles holds the immutable, ordered list of principles shown by the deck.
package principles

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a store would have no records.
	ErrEmpty = errors.New("principles: store must contain at least one record")
	// ErrNotFound is returned by ByID for an unknown id.
	ErrNotFound = errors.New("principles: not found")
)

// Principle is a single card of the deck.
type Principle struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
}

// Store is a read-only ordered sequence of principles. Ids are 1..N in order.
type Store struct {
	items []Principle
}

// NewStore copies records into a store. Ids must be 1..N in order.
func NewStore(records []Principle) (*Store, error) {
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	items := make([]Principle, len(records))
	for i, p := range records {
		if p.ID != i+1 {
			return nil, fmt.Errorf("principles: record %d has id %d, want %d", i, p.ID, i+1)
		}
		if p.Text == "" {
			return nil, fmt.Errorf("principles: record %d has empty text", p.ID)
		}
		items[i] = p
	}
	return &Store{items: items}, nil
}

// Default returns the store of built-in principles.
func Default() *Store {
	s, err := NewStore(Builtin)
	if err != nil {
		panic(err)
	}
	return s
}

// Len is N, the number of real cards.
func (s *Store) Len() int {
	return len(s.items)
}

// At returns the principle at a 0-based index.
func (s *Store) At(index int) (Principle, bool) {
	if index < 0 || index >= len(s.items) {
		return Principle{}, false
	}
	return s.items[index], true
}

// ByID looks up a principle by its 1-based id.
func (s *Store) ByID(id int) (Principle, error) {
	p, ok := s.At(id - 1)
	if !ok {
		return Principle{}, fmt.Errorf("%w: id %d (have 1..%d)", ErrNotFound, id, len(s.items))
	}
	return p, nil
}

// All returns a copy of every principle in order.
func (s *Store) All() []Principle {
	out := make([]Principle, len(s.items))
	copy(out, s.items)
	return out
}
