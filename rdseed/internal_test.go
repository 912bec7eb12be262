package rdseed

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteLen(t *testing.T) {
	for bits, want := range map[int]int{0: 0, 1: 1, 7: 1, 8: 1, 9: 2, 256: 32, 257: 33} {
		assert.Equal(t, want, byteLen(bits), "bits=%d", bits)
	}
	assert.Equal(t, math.MaxInt/8+1, byteLen(math.MaxInt))
}

func TestWordCount(t *testing.T) {
	for _, tt := range []struct{ n, ws, want int }{
		{1, 8, 1}, {8, 8, 1}, {9, 8, 2}, {32, 8, 4}, {5, 4, 2}, {3, 1, 3},
	} {
		got, err := wordCount(tt.n, tt.ws)
		require.NoError(t, err)
		assert.EqualValues(t, tt.want, got, "n=%d ws=%d", tt.n, tt.ws)
	}
	got, err := wordCount(math.MaxInt, 8)
	require.NoError(t, err)
	assert.EqualValues(t, uint64(math.MaxInt)/8+1, got)
}

func TestMaskTail(t *testing.T) {
	for _, tt := range []struct {
		bits int
		in   []byte
		want []byte
	}{
		{1, []byte{0xFF}, []byte{0x01}},
		{7, []byte{0xFF}, []byte{0x7F}},
		{8, []byte{0xFF}, []byte{0xFF}},
		{12, []byte{0xFF, 0xFF}, []byte{0xFF, 0x0F}},
		{0, []byte{}, []byte{}},
	} {
		buf := bytes.Clone(tt.in)
		maskTail(buf, tt.bits)
		assert.Equal(t, tt.want, buf, "bits=%d", tt.bits)
	}
}
