package random_test

import (
	"testing"

	"github.com/gnames/scnet/pkg/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeed(t *testing.T) {
	r := random.New(42)
	assert.Equal(t, int64(42), r.Seed())

	r = random.New(0)
	assert.NotZero(t, r.Seed(), "zero seed is replaced")
}

func TestDeterminism(t *testing.T) {
	a := random.New(7)
	b := random.New(7)
	for range 100 {
		assert.Equal(t, a.Float(-1, 1), b.Float(-1, 1))
		assert.Equal(t, a.Int(2, 8), b.Int(2, 8))
		assert.Equal(t, a.Sample(10, 3), b.Sample(10, 3))
	}
}

func TestFloat(t *testing.T) {
	r := random.New(1)
	for range 1000 {
		f := r.Float(-33, -3)
		assert.GreaterOrEqual(t, f, -33.0)
		assert.LessOrEqual(t, f, -3.0)

		f = r.Float(-3, -33)
		assert.GreaterOrEqual(t, f, -33.0)
		assert.LessOrEqual(t, f, -3.0)
	}
	assert.Equal(t, 5.0, r.Float(5, 5))
}

func TestInt(t *testing.T) {
	r := random.New(2)
	seen := make(map[int]int)
	for range 2000 {
		i := r.Int(0, 3)
		require.GreaterOrEqual(t, i, 0)
		require.LessOrEqual(t, i, 3)
		seen[i]++
	}
	assert.Len(t, seen, 4, "both ends are included")
	assert.Equal(t, 4, r.Int(4, 4))
}

func TestChoice(t *testing.T) {
	r := random.New(3)
	for range 500 {
		i := r.Choice(5)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 5)
	}
}

func TestSample(t *testing.T) {
	r := random.New(4)

	t.Run("distinct indices", func(t *testing.T) {
		for range 200 {
			res := r.Sample(10, 4)
			require.Len(t, res, 4)
			set := make(map[int]struct{})
			for _, v := range res {
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, 10)
				set[v] = struct{}{}
			}
			assert.Len(t, set, 4)
		}
	})

	t.Run("whole population", func(t *testing.T) {
		res := r.Sample(5, 5)
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, res)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, r.Sample(0, 0))
		assert.Empty(t, r.Sample(3, 0))
	})

	t.Run("too many", func(t *testing.T) {
		assert.Panics(t, func() { r.Sample(2, 3) })
	})
}
