package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thiagojm/rdseed_go/rdseed"
	"github.com/Thiagojm/rdseed_go/rdseed/rdseedtest"
)

func TestDump(t *testing.T) {
	p := rdseedtest.NewPrimitive(0x0807060504030201)
	src, err := rdseed.New(rdseed.WithPrimitive(p))
	require.NoError(t, err)

	const size = chunkSize + 13
	var out bytes.Buffer
	bar := progressbar.NewOptions64(size, progressbar.OptionSetWriter(io.Discard))
	require.NoError(t, dump(&out, src, size, bar))
	assert.Equal(t, size, out.Len())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, out.Bytes()[:8])
	assert.Equal(t, byte(5), out.Bytes()[size-1])
}

func TestParseSize(t *testing.T) {
	n, err := parseSize("1MiB")
	require.NoError(t, err)
	assert.Equal(t, int64(1<<20), n)

	n, err = parseSize("4096")
	require.NoError(t, err)
	assert.Equal(t, int64(4096), n)

	_, err = parseSize("18446744073709551615")
	assert.Error(t, err)
	_, err = parseSize("10EiB")
	assert.Error(t, err)
	_, err = parseSize("lots")
	assert.Error(t, err)
}
