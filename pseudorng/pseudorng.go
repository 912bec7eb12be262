// Package pseudorng is the software fallback used when RDSEED is not
// available. It follows the same size and masking rules as package rdseed:
// ceil(bits/8) bytes, with the unused high-order bits of the final byte
// cleared by GetExactBits.
package pseudorng

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"sync"
)

// MaxBytes bounds a single request, as rdseed.DefaultMaxBytes does.
const MaxBytes = 1 << 30

var (
	errNegative = errors.New("pseudorng: negative count")
	errTooLarge = errors.New("pseudorng: request exceeds MaxBytes")
)

func checkSize(n int) error {
	switch {
	case n < 0:
		return errNegative
	case n > MaxBytes:
		return errTooLarge
	}
	return nil
}

// Generator produces pseudorandom bytes from a ChaCha8 stream. A Generator
// built with a non-zero seed is reproducible; it is safe for concurrent use.
type Generator struct {
	mu sync.Mutex
	c  *rand.ChaCha8
}

// NewGenerator creates a generator. If seed is zero, the seed is drawn from
// crypto/rand.
func NewGenerator(seed uint64) (*Generator, error) {
	var key [32]byte
	if seed == 0 {
		if _, err := crand.Read(key[:]); err != nil {
			return nil, err
		}
	} else {
		binary.LittleEndian.PutUint64(key[:], seed)
	}
	return &Generator{c: rand.NewChaCha8(key)}, nil
}

// GetBytes returns n pseudorandom bytes.
func (g *Generator) GetBytes(n int) ([]byte, error) {
	if g == nil || g.c == nil {
		return nil, errors.New("generator is nil")
	}
	if err := checkSize(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	g.mu.Lock()
	_, _ = g.c.Read(buf)
	g.mu.Unlock()
	return buf, nil
}

// GetBits returns ceil(n/8) bytes without masking the final byte.
func (g *Generator) GetBits(n int) ([]byte, error) {
	if n < 0 {
		return nil, errNegative
	}
	return g.GetBytes(byteLen(n))
}

// GetExactBits returns ceil(n/8) bytes with only the n low-order bits set
// from the stream.
func (g *Generator) GetExactBits(n int) ([]byte, error) {
	buf, err := g.GetBits(n)
	if err != nil {
		return nil, err
	}
	maskTail(buf, n)
	return buf, nil
}

// System reads from crypto/rand with the same contract as Generator.
type System struct{}

func (System) GetBytes(n int) ([]byte, error) {
	if err := checkSize(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := crand.Read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s System) GetBits(n int) ([]byte, error) {
	if n < 0 {
		return nil, errNegative
	}
	return s.GetBytes(byteLen(n))
}

func (s System) GetExactBits(n int) ([]byte, error) {
	buf, err := s.GetBits(n)
	if err != nil {
		return nil, err
	}
	maskTail(buf, n)
	return buf, nil
}

// byteLen is ceil(bits/8) without overflowing near math.MaxInt.
func byteLen(bits int) int {
	n := bits / 8
	if bits%8 != 0 {
		n++
	}
	return n
}

// maskTail zeroes the bits of the last byte above bitCount.
func maskTail(buf []byte, bitCount int) {
	if extra := 8*len(buf) - bitCount; extra > 0 {
		buf[len(buf)-1] &= 0xFF >> extra
	}
}
