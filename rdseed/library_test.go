//go:build (linux || darwin) && amd64 && cgo

package rdseed_test

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thiagojm/rdseed_go/rdseed"
)

// buildLibrary compiles lib/rdseed.c into a temporary directory.
func buildLibrary(t *testing.T) string {
	t.Helper()
	cc, err := exec.LookPath("cc")
	if err != nil {
		t.Skip("no C compiler")
	}
	out := filepath.Join(t.TempDir(), rdseed.SharedLibrary().DefaultPath())
	cmd := exec.Command(cc, "-O2", "-shared", "-fPIC", "-mrdseed", "-o", out, filepath.Join("..", "lib", "rdseed.c"), "-lpthread")
	msg, err := cmd.CombinedOutput()
	require.NoError(t, err, "%s", msg)
	return out
}

func TestSharedLibrary(t *testing.T) {
	path := buildLibrary(t)

	a, err := rdseed.Probe(rdseed.WithLibraryPath(path))
	require.NoError(t, err)
	assert.Contains(t, []rdseed.Availability{rdseed.Available, rdseed.UnsupportedCPU}, a)
	if a != rdseed.Available {
		t.Skip("RDSEED not available on this machine")
	}

	s, err := rdseed.New(rdseed.WithLibraryPath(path))
	require.NoError(t, err)
	assert.Equal(t, 8, s.WordSize())

	b, err := s.GetExactBits(13)
	require.NoError(t, err)
	assert.Len(t, b, 2)
	assert.Zero(t, b[1]&0xE0)

	b, err = s.GetBytes(33)
	require.NoError(t, err)
	assert.Len(t, b, 33)
}
