//go:build !windows && !((linux || darwin) && cgo)

package dl

import (
	"runtime"

	"github.com/pkg/errors"
)

// Library is never produced on this platform.
type Library struct{}

// Open always fails: loading needs cgo on linux and darwin, and is not
// implemented elsewhere.
func Open(path string) (*Library, error) {
	return nil, errors.Errorf("cannot load %s: shared libraries unsupported in this build (%s, cgo required)", path, runtime.GOOS)
}

func (*Library) WordSize() int               { return 0 }
func (*Library) Supported() bool             { return false }
func (*Library) TrySeedWord() (uint64, bool) { return 0, false }
