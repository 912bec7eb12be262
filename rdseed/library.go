package rdseed

import (
	"sync"

	"github.com/Thiagojm/rdseed_go/rdseed/internal/dl"
)

// libraries holds every shared library loaded by this process, keyed by the
// path it was loaded from. Handles are never closed.
var libraries = &libraryCache{loaded: make(map[string]Primitive)}

type libraryCache struct {
	mu     sync.Mutex
	loaded map[string]Primitive
}

func (c *libraryCache) load(path string) (Primitive, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.loaded[path]; ok {
		return p, nil
	}
	p, err := openLibrary(path)
	if err != nil {
		return nil, err
	}
	c.loaded[path] = p
	return p, nil
}

func openLibrary(path string) (Primitive, error) {
	lib, err := dl.Open(path)
	if err != nil {
		return nil, err
	}
	return lib, nil
}
