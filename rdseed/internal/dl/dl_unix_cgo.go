//go:build (linux || darwin) && cgo

package dl

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>

typedef int (*rdseed64_fn)(unsigned long long *);
typedef int (*rdseed32_fn)(unsigned int *);
typedef int (*supported_fn)(void);

static int call_rdseed64(void *fn, unsigned long long *out) { return ((rdseed64_fn)fn)(out); }
static int call_rdseed32(void *fn, unsigned int *out) { return ((rdseed32_fn)fn)(out); }
static int call_supported(void *fn) { return ((supported_fn)fn)(); }
*/
import "C"

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/cpu"
)

// Library is a librdseed opened with dlopen. The handle is never closed.
type Library struct {
	step      unsafe.Pointer
	wide      bool
	supported unsafe.Pointer
}

// Open loads the library at path and resolves its step function.
func Open(path string) (*Library, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	h := C.dlopen(cpath, C.RTLD_NOW|C.RTLD_LOCAL)
	if h == nil {
		return nil, errors.Errorf("dlopen %s: %s", path, C.GoString(C.dlerror()))
	}
	l := &Library{}
	if fn := dlsym(h, "rdseed64_step"); fn != nil {
		l.step, l.wide = fn, true
	} else if fn := dlsym(h, "rdseed32_step"); fn != nil {
		l.step = fn
	} else {
		C.dlclose(h)
		return nil, errors.Errorf("%s exports neither rdseed64_step nor rdseed32_step", path)
	}
	l.supported = dlsym(h, "rdseed_supported")
	return l, nil
}

func dlsym(h unsafe.Pointer, name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.dlsym(h, cname)
}

func (l *Library) WordSize() int {
	if l.wide {
		return 8
	}
	return 4
}

// Supported requires both the Go runtime's CPUID view and, when exported,
// the library's own check.
func (l *Library) Supported() bool {
	if !cpu.X86.HasRDSEED {
		return false
	}
	if l.supported != nil {
		return C.call_supported(l.supported) != 0
	}
	return true
}

func (l *Library) TrySeedWord() (uint64, bool) {
	if l.wide {
		var v C.ulonglong
		if C.call_rdseed64(l.step, &v) != 1 {
			return 0, false
		}
		return uint64(v), true
	}
	var v C.uint
	if C.call_rdseed32(l.step, &v) != 1 {
		return 0, false
	}
	return uint64(v), true
}
