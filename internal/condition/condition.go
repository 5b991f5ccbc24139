// Package condition parses and evaluates comparison predicates such as
// ">=35" used by weather categories to classify numeric observations.
package condition

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidFormat = errors.New("invalid condition format")
	ErrInvalidValue  = errors.New("invalid condition value")
)

// Operator is a comparison operator token.
type Operator string

const (
	GreaterThan    Operator = ">"
	GreaterOrEqual Operator = ">="
	LessThan       Operator = "<"
	LessOrEqual    Operator = "<="
	Equal          Operator = "=="
	NotEqual       Operator = "!="
)

// Two-character tokens come first so ">" never shadows ">=".
var operators = []Operator{GreaterOrEqual, LessOrEqual, NotEqual, Equal, GreaterThan, LessThan}

// Predicate is an immutable operator and threshold pair.
type Predicate struct {
	op        Operator
	threshold float64
}

// Parse reads a predicate of the form <operator><number>.
func Parse(text string) (Predicate, error) {
	for _, op := range operators {
		rest, ok := strings.CutPrefix(text, string(op))
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return Predicate{}, fmt.Errorf("%w: %q", ErrInvalidValue, rest)
		}
		return Predicate{op: op, threshold: v}, nil
	}
	return Predicate{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
}

// MustParse is Parse for predicates known at compile time.
func MustParse(text string) Predicate {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Predicate) Operator() Operator  { return p.op }
func (p Predicate) Threshold() float64 { return p.threshold }

func (p Predicate) String() string {
	return string(p.op) + strconv.FormatFloat(p.threshold, 'f', -1, 64)
}

// Eval reports whether value satisfies the predicate. The zero Predicate
// matches nothing.
func (p Predicate) Eval(value float64) bool {
	switch p.op {
	case GreaterThan:
		return value > p.threshold
	case GreaterOrEqual:
		return value >= p.threshold
	case LessThan:
		return value < p.threshold
	case LessOrEqual:
		return value <= p.threshold
	case Equal:
		return value == p.threshold
	case NotEqual:
		return value != p.threshold
	}
	return false
}

// Evaluate is Eval in function form.
func Evaluate(value float64, p Predicate) bool { return p.Eval(value) }
