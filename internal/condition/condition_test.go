package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input     string
		op        Operator
		threshold float64
	}{
		{">=35", GreaterOrEqual, 35},
		{"<=10.5", LessOrEqual, 10.5},
		{"!=0", NotEqual, 0},
		{"==7", Equal, 7},
		{">80", GreaterThan, 80},
		{"<-5", LessThan, -5},
		{">= 20", GreaterOrEqual, 20},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.op, p.Operator())
			assert.Equal(t, tt.threshold, p.Threshold())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"35", ErrInvalidFormat},
		{"", ErrInvalidFormat},
		{"=>35", ErrInvalidFormat},
		{">=abc", ErrInvalidValue},
		{">", ErrInvalidValue},
		{"<=", ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		value float64
		cond  string
		want  bool
	}{
		{80, ">=35", true},
		{35, ">=35", true},
		{34.9, ">=35", false},
		{10, "<5", false},
		{4, "<5", true},
		{5, "<=5", true},
		{6, ">5", true},
		{5, ">5", false},
		{7, "==7", true},
		{7, "!=7", false},
		{8, "!=7", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Evaluate(tt.value, MustParse(tt.cond)), "%v %s", tt.value, tt.cond)
	}
}

func TestZeroPredicateMatchesNothing(t *testing.T) {
	var p Predicate
	assert.False(t, p.Eval(0))
	assert.False(t, p.Eval(100))
}

func TestString_RoundTrips(t *testing.T) {
	for _, in := range []string{">=35", "<5", "==0.5", "!=-2"} {
		p := MustParse(in)
		assert.Equal(t, in, p.String())
	}
}
