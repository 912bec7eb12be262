package source

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thiagojm/rdseed_go/naming"
	"github.com/Thiagojm/rdseed_go/pseudorng"
	"github.com/Thiagojm/rdseed_go/rdseed"
	"github.com/Thiagojm/rdseed_go/rdseed/rdseedtest"
)

func TestOpen(t *testing.T) {
	src, err := Open(naming.DeviceRDSEED, rdseed.WithPrimitive(rdseedtest.NewPrimitive(0xFF)))
	require.NoError(t, err)
	b, err := src.GetExactBits(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x07}, b)

	src, err = Open(naming.DevicePseudo)
	require.NoError(t, err)
	assert.IsType(t, pseudorng.System{}, src)

	_, err = Open("bitb")
	assert.Error(t, err)
}

func TestPseudo(t *testing.T) {
	src, err := Pseudo(0)
	require.NoError(t, err)
	assert.IsType(t, pseudorng.System{}, src)

	a, err := Pseudo(99)
	require.NoError(t, err)
	b, err := Pseudo(99)
	require.NoError(t, err)
	x, err := a.GetExactBits(100)
	require.NoError(t, err)
	y, err := b.GetExactBits(100)
	require.NoError(t, err)
	assert.Equal(t, x, y)
	assert.Len(t, x, 13)
}

func TestPreferHardware(t *testing.T) {
	src, dev, err := PreferHardware(rdseed.WithPrimitive(rdseedtest.NewPrimitive(1)))
	require.NoError(t, err)
	assert.Equal(t, naming.DeviceRDSEED, dev)
	assert.IsType(t, &rdseed.Source{}, src)

	src, dev, err = PreferHardware(rdseed.WithPrimitive(&rdseedtest.Primitive{Unsupported: true}))
	require.NoError(t, err)
	assert.Equal(t, naming.DevicePseudo, dev)
	assert.NotNil(t, src)

	src, _, err = PreferHardware(rdseed.WithBinding(rdseedtest.FailingBinding()))
	assert.Nil(t, src)
	assert.ErrorIs(t, err, rdseed.ErrLibraryUnavailable)
}

func TestCollectBitsAtInterval(t *testing.T) {
	p := rdseedtest.NewPrimitive(0xFFFF)
	src, err := rdseed.New(rdseed.WithPrimitive(p))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var batches [][]byte
	err = CollectBitsAtInterval(ctx, src, 12, time.Millisecond, func(b []byte) {
		batches = append(batches, b)
		if len(batches) == 3 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, batches, 3)
	for _, b := range batches {
		assert.Equal(t, []byte{0xFF, 0x0F}, b)
	}
}

func TestCollectBitsAtIntervalReadError(t *testing.T) {
	p := rdseedtest.NewPrimitive(1)
	src, err := rdseed.New(rdseed.WithPrimitive(p), rdseed.WithRetries(2))
	require.NoError(t, err)
	p.Failures = 2

	err = CollectBitsAtInterval(context.Background(), src, 8, time.Millisecond, func([]byte) {})
	assert.ErrorIs(t, err, rdseed.ErrRetriesExhausted)
}

func TestCollectBitsAtIntervalArguments(t *testing.T) {
	ctx := context.Background()
	noop := func([]byte) {}
	assert.Error(t, CollectBitsAtInterval(ctx, nil, 8, time.Second, noop))
	assert.Error(t, CollectBitsAtInterval(ctx, pseudorng.System{}, 0, time.Second, noop))
	assert.Error(t, CollectBitsAtInterval(ctx, pseudorng.System{}, 8, 0, noop))
	assert.Error(t, CollectBitsAtInterval(ctx, pseudorng.System{}, 8, time.Second, nil))
}
