// Package headers stores the greeting phrases that open each weather message.
package headers

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/chris/morning/internal/dataset"
	"github.com/chris/morning/internal/pick"
)

// ErrEmptyStore is returned by Choice when no phrases are loaded.
var ErrEmptyStore = fmt.Errorf("header store is empty: %w", pick.ErrEmpty)

type rawHeaders struct {
	Headers []string `json:"weather_headers" yaml:"weather_headers" validate:"required,dive,required"`
}

// Store is an ordered, read-only list of phrases.
type Store struct {
	phrases []string
}

// New wraps an in-memory phrase list.
func New(phrases []string) *Store {
	return &Store{phrases: slices.Clone(phrases)}
}

// Load parses a {"weather_headers": [...]} document.
func Load(name string, raw []byte) (*Store, error) {
	var doc rawHeaders
	if err := dataset.Load(name, raw, &doc); err != nil {
		return nil, err
	}
	return &Store{phrases: doc.Headers}, nil
}

// LoadFile loads path, or the embedded dataset name when path is empty.
func LoadFile(path string, embedded fs.FS, name string) (*Store, error) {
	raw, src, err := dataset.Read(path, embedded, name)
	if err != nil {
		return nil, err
	}
	return Load(src, raw)
}

// Choice returns a uniformly chosen phrase.
func (s *Store) Choice(r pick.Rand) (string, error) {
	if s == nil {
		return "", ErrEmptyStore
	}
	h, err := pick.One(r, s.phrases)
	if errors.Is(err, pick.ErrEmpty) {
		return "", ErrEmptyStore
	}
	return h, err
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.phrases)
}

// All returns a copy of the phrases in load order.
func (s *Store) All() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.phrases)
}
