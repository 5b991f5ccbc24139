package weather

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {
	v, ok := Number(" 72 ")
	require.True(t, ok)
	assert.Equal(t, 72.0, v)

	_, ok = Number("")
	assert.False(t, ok)
	_, ok = Number("n/a")
	assert.False(t, ok)
}

func TestScale(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1-3", 3, true},
		{"4", 4, true},
		{"6-7", 7, true},
		{"", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got, ok := Scale(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestRecord_DecodesUpstreamNames(t *testing.T) {
	raw := `{"fxDate":"2025-04-12","tempMax":"26","tempMin":"16","vis":"24","uvIndex":"6","moonPhaseIcon":"803"}`
	var r Record
	require.NoError(t, json.Unmarshal([]byte(raw), &r))
	assert.Equal(t, "2025-04-12", r.Date)
	assert.Equal(t, "24", r.Visibility)
	assert.Equal(t, "803", r.MoonPhaseIcon)
	assert.Empty(t, r.Sunrise)
}
