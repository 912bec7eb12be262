package pseudorng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorReproducible(t *testing.T) {
	a, err := NewGenerator(42)
	require.NoError(t, err)
	b, err := NewGenerator(42)
	require.NoError(t, err)

	x, err := a.GetBytes(64)
	require.NoError(t, err)
	y, err := b.GetBytes(64)
	require.NoError(t, err)
	assert.Equal(t, x, y)

	c, err := NewGenerator(43)
	require.NoError(t, err)
	z, err := c.GetBytes(64)
	require.NoError(t, err)
	assert.NotEqual(t, x, z)
}

func TestExactBits(t *testing.T) {
	g, err := NewGenerator(7)
	require.NoError(t, err)
	for n := 0; n <= 40; n++ {
		for _, read := range []func(int) ([]byte, error){g.GetExactBits, System{}.GetExactBits} {
			buf, err := read(n)
			require.NoError(t, err)
			require.Len(t, buf, (n+7)/8)
			if extra := 8*len(buf) - n; extra > 0 {
				assert.Zero(t, buf[len(buf)-1]>>(8-extra), "n=%d", n)
			}
		}
	}
}

func TestNegative(t *testing.T) {
	g, err := NewGenerator(0)
	require.NoError(t, err)
	_, err = g.GetBits(-1)
	assert.Error(t, err)
	_, err = System{}.GetExactBits(-1)
	assert.Error(t, err)

	var nilGen *Generator
	_, err = nilGen.GetBytes(1)
	assert.Error(t, err)
}

func TestHugeRequest(t *testing.T) {
	g, err := NewGenerator(1)
	require.NoError(t, err)
	for _, read := range []func(int) ([]byte, error){g.GetBytes, g.GetExactBits, System{}.GetBytes, System{}.GetExactBits} {
		_, err := read(math.MaxInt)
		assert.ErrorIs(t, err, errTooLarge)
	}
	_, err = g.GetBytes(MaxBytes + 1)
	assert.ErrorIs(t, err, errTooLarge)
}
