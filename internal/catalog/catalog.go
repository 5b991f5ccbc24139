// Package catalog holds the weather category catalog: named groups of items
// that map numeric observations to a display label and icon.
//
// Every category declares how its items match an observation (by exact
// code, by level membership or by a comparison predicate). Items are kept in
// declaration order and the first matching item wins.
package catalog

import (
	"fmt"
	"math"
	"slices"

	"github.com/chris/morning/internal/condition"
	"github.com/chris/morning/internal/pick"
)

// MatchMode selects how a category's items are tested against a value.
type MatchMode string

const (
	MatchCode      MatchMode = "code"
	MatchLevel     MatchMode = "level"
	MatchCondition MatchMode = "condition"
)

// Item is one interpretation inside a category.
type Item struct {
	Name      string
	Icons     []string
	Code      *int
	Condition *condition.Predicate
	Level     []int
}

// Icon returns one of the item's icons, chosen anew on every call.
func (i *Item) Icon(r pick.Rand) string {
	icon, err := pick.One(r, i.Icons)
	if err != nil {
		return ""
	}
	return icon
}

// Label is a resolved name and icon pair.
type Label struct {
	Name string
	Icon string
}

// Category is an ordered group of items sharing one match mode.
type Category struct {
	ID    int
	Name  string
	Match MatchMode
	Items []*Item
}

// Find returns the first item, in declaration order, that matches value.
func (c *Category) Find(value float64) (*Item, bool) {
	for _, item := range c.Items {
		if item.matches(c.Match, value) {
			return item, true
		}
	}
	return nil, false
}

// Resolve is Find followed by an icon pick; fallback is returned on a miss.
func (c *Category) Resolve(value float64, r pick.Rand, fallback Label) Label {
	if c == nil {
		return fallback
	}
	item, ok := c.Find(value)
	if !ok {
		return fallback
	}
	return Label{Name: item.Name, Icon: item.Icon(r)}
}

func (i *Item) matches(mode MatchMode, value float64) bool {
	switch mode {
	case MatchCode:
		return i.Code != nil && float64(*i.Code) == value
	case MatchLevel:
		return value == math.Trunc(value) && slices.Contains(i.Level, int(value))
	case MatchCondition:
		return i.Condition != nil && i.Condition.Eval(value)
	}
	return false
}

// validate checks that every item carries the field its category matches on.
func (c *Category) validate() error {
	switch c.Match {
	case MatchCode, MatchLevel, MatchCondition:
	default:
		return fmt.Errorf("category %d: unknown match mode %q", c.ID, c.Match)
	}
	for idx, item := range c.Items {
		var ok bool
		switch c.Match {
		case MatchCode:
			ok = item.Code != nil
		case MatchLevel:
			ok = len(item.Level) > 0
		case MatchCondition:
			ok = item.Condition != nil
		}
		if !ok {
			return fmt.Errorf("category %d item %d (%s): missing %s", c.ID, idx, item.Name, c.Match)
		}
	}
	return nil
}
