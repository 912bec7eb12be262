// Package rdseedtest provides scripted primitives and bindings for testing
// code built on package rdseed without RDSEED hardware.
package rdseedtest

import (
	"errors"
	"sync"

	"github.com/Thiagojm/rdseed_go/rdseed"
)

// Primitive replays a fixed word stream. Each word is preceded by Failures
// unsuccessful calls. Once Words is exhausted it repeats the last word, or
// returns zero if Words is empty.
type Primitive struct {
	Words []uint64
	// Size is the word size in bytes; 0 means 8.
	Size int
	// Failures is the number of failed calls before every word.
	Failures int
	// Unsupported makes Supported report false.
	Unsupported bool

	mu     sync.Mutex
	calls  int
	served int
	failed int
}

// NewPrimitive returns a supported 64-bit primitive yielding words in order.
func NewPrimitive(words ...uint64) *Primitive {
	return &Primitive{Words: words}
}

func (p *Primitive) WordSize() int {
	if p.Size == 0 {
		return 8
	}
	return p.Size
}

func (p *Primitive) Supported() bool { return !p.Unsupported }

func (p *Primitive) TrySeedWord() (uint64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.failed < p.Failures {
		p.failed++
		return 0, false
	}
	p.failed = 0
	var w uint64
	switch {
	case p.served < len(p.Words):
		w = p.Words[p.served]
	case len(p.Words) > 0:
		w = p.Words[len(p.Words)-1]
	}
	p.served++
	if size := p.WordSize(); size < 8 {
		w &= 1<<(8*size) - 1
	}
	return w, true
}

// Calls is the total number of TrySeedWord calls, failed ones included.
func (p *Primitive) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// Served is the number of words successfully returned.
func (p *Primitive) Served() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.served
}

// Reset rewinds the word stream and clears the counters.
func (p *Primitive) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls, p.served, p.failed = 0, 0, 0
}

// ErrLoad is returned by a Binding built with FailingBinding.
var ErrLoad = errors.New("rdseedtest: library not found")

// Binding is an rdseed.Binding returning a fixed primitive or error.
type Binding struct {
	Prim rdseed.Primitive
	Err  error
	// Paths records every path Load was called with.
	Paths []string
}

// FailingBinding returns a Binding whose Load always fails with ErrLoad.
func FailingBinding() *Binding { return &Binding{Err: ErrLoad} }

func (b *Binding) DefaultPath() string { return "librdseed-test.so" }

func (b *Binding) Load(path string) (rdseed.Primitive, error) {
	b.Paths = append(b.Paths, path)
	if b.Err != nil {
		return nil, b.Err
	}
	return b.Prim, nil
}
