package naming

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPaths(t *testing.T) {
	r := Run{
		Start:    time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local),
		Device:   DeviceRDSEED,
		Bits:     2048,
		Interval: 2 * time.Second,
	}
	bin, csv, err := r.Paths("data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("data", "20250304T050607_rdseed_s2048_i2.bin"), bin)
	assert.Equal(t, filepath.Join("data", "20250304T050607_rdseed_s2048_i2.csv"), csv)

	bin, _, err = r.Paths("")
	require.NoError(t, err)
	assert.Equal(t, "20250304T050607_rdseed_s2048_i2.bin", bin)
}

func TestRunValidation(t *testing.T) {
	base := Run{Device: DevicePseudo, Bits: 8, Interval: time.Second}
	for name, r := range map[string]Run{
		"device":          {Device: "trng", Bits: 8, Interval: time.Second},
		"bits":            {Device: DevicePseudo, Interval: time.Second},
		"interval":        {Device: DevicePseudo, Bits: 8},
		"partial seconds": {Device: DevicePseudo, Bits: 8, Interval: 1500 * time.Millisecond},
	} {
		_, err := r.BaseName()
		assert.Error(t, err, name)
	}
	_, err := base.BaseName()
	assert.NoError(t, err)
}

func TestParseBaseName(t *testing.T) {
	r, err := ParseBaseName("/tmp/out/20250304T050607_pseudo_s13_i5.csv")
	require.NoError(t, err)
	assert.Equal(t, DevicePseudo, r.Device)
	assert.Equal(t, 13, r.Bits)
	assert.Equal(t, 5*time.Second, r.Interval)
	assert.Equal(t, 2025, r.Start.Year())

	_, err = ParseBaseName("samples.bin")
	assert.Error(t, err)
	_, err = ParseBaseName("20250304T050607_pseudo_s0_i5.bin")
	assert.Error(t, err)
}

func TestParseDevice(t *testing.T) {
	d, err := ParseDevice(" RDSEED ")
	require.NoError(t, err)
	assert.Equal(t, DeviceRDSEED, d)

	_, err = ParseDevice("bitb")
	assert.Error(t, err)
}
