package catalog

import (
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"sync/atomic"

	"github.com/chris/morning/internal/condition"
	"github.com/chris/morning/internal/dataset"
)

type rawItem struct {
	Name      string   `json:"name" yaml:"name" validate:"required"`
	Icons     []string `json:"icons" yaml:"icons" validate:"required,min=1,dive,required"`
	Code      *int     `json:"code,omitempty" yaml:"code,omitempty"`
	Condition *string  `json:"condition,omitempty" yaml:"condition,omitempty"`
	Level     []int    `json:"level,omitempty" yaml:"level,omitempty"`
}

type rawCategory struct {
	ID    int       `json:"id" yaml:"id" validate:"required"`
	Name  string    `json:"name" yaml:"name" validate:"required"`
	Match string    `json:"match" yaml:"match" validate:"required,oneof=code level condition"`
	Items []rawItem `json:"items" yaml:"items" validate:"required,dive"`
}

type rawDataset struct {
	Categories map[string]rawCategory `json:"weather_categories" yaml:"weather_categories" validate:"required,dive"`
}

// indexes is an immutable snapshot of everything derived from one load.
type indexes struct {
	byKey  map[string]*Category
	byCode map[int]*Item
	byID   map[int]*Category
	byName map[string][]*Item
}

// Store is the in-memory category catalog. Loads build a complete new set
// of indexes and swap it in; readers see either the old set or the new one.
type Store struct {
	idx atomic.Pointer[indexes]
}

// New returns an empty store.
func New() *Store {
	s := &Store{}
	s.idx.Store(&indexes{
		byKey:  map[string]*Category{},
		byCode: map[int]*Item{},
		byID:   map[int]*Category{},
		byName: map[string][]*Item{},
	})
	return s
}

// Load parses a dataset and replaces the store's contents. On error the
// previous contents stay visible.
func (s *Store) Load(name string, raw []byte) error {
	var ds rawDataset
	if err := dataset.Load(name, raw, &ds); err != nil {
		return err
	}
	next, err := build(name, ds)
	if err != nil {
		return err
	}
	s.idx.Store(next)
	return nil
}

// LoadFile loads path, or the embedded dataset name when path is empty.
func (s *Store) LoadFile(path string, embedded fs.FS, name string) error {
	raw, src, err := dataset.Read(path, embedded, name)
	if err != nil {
		return err
	}
	return s.Load(src, raw)
}

// LookupCode returns the item registered under code. When several items
// share a code the one from the last category key (in sorted order) wins.
func (s *Store) LookupCode(code int) (*Item, bool) {
	item, ok := s.idx.Load().byCode[code]
	return item, ok
}

// CategoryByID returns the category with the given id.
func (s *Store) CategoryByID(id int) (*Category, bool) {
	c, ok := s.idx.Load().byID[id]
	return c, ok
}

// ItemsByName returns every item named name, empty if none.
func (s *Store) ItemsByName(name string) []*Item {
	return slices.Clone(s.idx.Load().byName[name])
}

// Category returns the category stored under its dataset key.
func (s *Store) Category(key string) (*Category, bool) {
	c, ok := s.idx.Load().byKey[key]
	return c, ok
}

// Keys lists the dataset keys in sorted order.
func (s *Store) Keys() []string {
	return slices.Sorted(maps.Keys(s.idx.Load().byKey))
}

func build(name string, ds rawDataset) (*indexes, error) {
	next := &indexes{
		byKey:  make(map[string]*Category, len(ds.Categories)),
		byCode: make(map[int]*Item),
		byID:   make(map[int]*Category, len(ds.Categories)),
		byName: make(map[string][]*Item),
	}
	for _, key := range slices.Sorted(maps.Keys(ds.Categories)) {
		rc := ds.Categories[key]
		cat, err := newCategory(rc)
		if err != nil {
			return nil, &dataset.DataFormatError{Source: name, Field: "weather_categories." + key, Err: err}
		}
		if prev, dup := next.byID[cat.ID]; dup {
			return nil, &dataset.DataFormatError{
				Source: name,
				Field:  "weather_categories." + key,
				Err:    fmt.Errorf("duplicate category id %d (also %q)", cat.ID, prev.Name),
			}
		}
		next.byKey[key] = cat
		next.byID[cat.ID] = cat
		for _, item := range cat.Items {
			if item.Code != nil {
				next.byCode[*item.Code] = item
			}
			next.byName[item.Name] = append(next.byName[item.Name], item)
		}
	}
	return next, nil
}

func newCategory(rc rawCategory) (*Category, error) {
	cat := &Category{
		ID:    rc.ID,
		Name:  rc.Name,
		Match: MatchMode(rc.Match),
		Items: make([]*Item, 0, len(rc.Items)),
	}
	for idx, ri := range rc.Items {
		item := &Item{
			Name:  ri.Name,
			Icons: slices.Clone(ri.Icons),
			Level: slices.Clone(ri.Level),
		}
		if ri.Code != nil {
			code := *ri.Code
			item.Code = &code
		}
		if ri.Condition != nil {
			p, err := condition.Parse(*ri.Condition)
			if err != nil {
				return nil, fmt.Errorf("item %d (%s): %w", idx, ri.Name, err)
			}
			item.Condition = &p
		}
		cat.Items = append(cat.Items, item)
	}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}
