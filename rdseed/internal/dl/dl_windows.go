//go:build windows

package dl

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"
	"golang.org/x/sys/windows"
)

// Library is a rdseed.dll loaded with LoadLibrary. It is never released.
type Library struct {
	step      *windows.Proc
	wide      bool
	supported *windows.Proc
}

// Open loads the DLL at path and resolves its step function.
func Open(path string) (*Library, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	l := &Library{}
	if proc, err := dll.FindProc("rdseed64_step"); err == nil {
		l.step, l.wide = proc, true
	} else if proc, err := dll.FindProc("rdseed32_step"); err == nil {
		l.step = proc
	} else {
		_ = dll.Release()
		return nil, errors.Errorf("%s exports neither rdseed64_step nor rdseed32_step", path)
	}
	if proc, err := dll.FindProc("rdseed_supported"); err == nil {
		l.supported = proc
	}
	return l, nil
}

func (l *Library) WordSize() int {
	if l.wide {
		return 8
	}
	return 4
}

func (l *Library) Supported() bool {
	if !cpu.X86.HasRDSEED {
		return false
	}
	if l.supported != nil {
		r, _, _ := l.supported.Call()
		return uint32(r) != 0
	}
	return true
}

func (l *Library) TrySeedWord() (uint64, bool) {
	// Only the low 32 bits of r carry the C int return value.
	if l.wide {
		var v uint64
		r, _, _ := l.step.Call(uintptr(unsafe.Pointer(&v)))
		if uint32(r) != 1 {
			return 0, false
		}
		return v, true
	}
	var v uint32
	r, _, _ := l.step.Call(uintptr(unsafe.Pointer(&v)))
	if uint32(r) != 1 {
		return 0, false
	}
	return uint64(v), true
}
