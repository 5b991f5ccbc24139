package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOne_EmptyPool(t *testing.T) {
	_, err := One[string](New(1), nil)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = One(New(1), []int{})
	require.ErrorIs(t, err, ErrEmpty)
}

func TestOne_ReachesEveryElement(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}
	seen := make(map[string]bool)
	r := New(42)
	for i := 0; i < 500; i++ {
		v, err := One(r, pool)
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, len(pool))
}

func TestOne_SeededIsDeterministic(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	a, b := New(7), New(7)
	for i := 0; i < 20; i++ {
		x, _ := One(a, pool)
		y, _ := One(b, pool)
		require.Equal(t, x, y)
	}
}

func TestOne_NilSourceFallsBackToDefault(t *testing.T) {
	v, err := One(nil, []string{"only"})
	require.NoError(t, err)
	assert.Equal(t, "only", v)
}
