package rdseed

import (
	"encoding/binary"
	"math/bits"
	"sync"
)

// Source reads entropy through a probed primitive. It is safe for
// concurrent use.
type Source struct {
	prim     Primitive
	retries  int
	maxBytes int
}

// New probes the binding selected by opts and returns a Source, or an error
// with cause CauseUnsupportedCPU or CauseLibraryUnavailable.
func New(opts ...Option) (*Source, error) {
	o := buildOptions(opts)
	p, a, err := probe(o)
	if err != nil {
		return nil, err
	}
	if a != Available {
		return nil, newError(CauseUnsupportedCPU, nil, "RDSEED not usable on this processor")
	}
	return &Source{prim: p, retries: o.retries, maxBytes: o.maxBytes}, nil
}

// WordSize is the number of bytes produced per primitive call.
func (s *Source) WordSize() int { return s.prim.WordSize() }

// GetBytes returns exactly n bytes of raw entropy.
func (s *Source) GetBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, newError(CauseInvalidRequest, nil, "negative byte count %d", n)
	}
	if n > s.maxBytes {
		return nil, newError(CauseInvalidRequest, nil, "%d bytes exceeds limit of %d", n, s.maxBytes)
	}
	buf := make([]byte, n)
	if err := s.fill(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// GetBits returns ceil(n/8) bytes holding at least n bits of entropy. The
// high-order bits of the final byte beyond n are not cleared and carry no
// guarantee.
func (s *Source) GetBits(n int) ([]byte, error) {
	if n < 0 {
		return nil, newError(CauseInvalidRequest, nil, "negative bit count %d", n)
	}
	return s.GetBytes(byteLen(n))
}

// GetExactBits returns ceil(n/8) bytes in which exactly the n low-order bits
// come from the hardware. The unused high-order bits of the final byte are
// zero.
func (s *Source) GetExactBits(n int) ([]byte, error) {
	buf, err := s.GetBits(n)
	if err != nil {
		return nil, err
	}
	maskTail(buf, n)
	return buf, nil
}

// Read fills p with entropy. It never returns a short read without an error.
func (s *Source) Read(p []byte) (int, error) {
	if err := s.fill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// fill writes len(dst) bytes into dst, one little-endian word at a time.
// Bytes of the last word beyond len(dst) are dropped.
func (s *Source) fill(dst []byte) error {
	n := len(dst)
	if n == 0 {
		return nil
	}
	if n > s.maxBytes {
		return newError(CauseInvalidRequest, nil, "%d bytes exceeds limit of %d", n, s.maxBytes)
	}
	ws := s.prim.WordSize()
	words, err := wordCount(n, ws)
	if err != nil {
		return err
	}

	var scratch [8]byte
	defer clear(scratch[:])
	off := 0
	for i := uint64(0); i < words; i++ {
		w, err := s.nextWord()
		if err != nil {
			clear(dst)
			return err
		}
		binary.LittleEndian.PutUint64(scratch[:], w)
		off += copy(dst[off:], scratch[:ws])
	}
	return nil
}

// nextWord calls the primitive until it succeeds or the ceiling is reached.
func (s *Source) nextWord() (uint64, error) {
	for attempt := 0; attempt < s.retries; attempt++ {
		if w, ok := s.prim.TrySeedWord(); ok {
			return w, nil
		}
	}
	return 0, newError(CauseRetriesExhausted, nil, "no word after %d attempts", s.retries)
}

// wordCount returns ceil(n/ws) with an overflow check on n+ws-1.
func wordCount(n, ws int) (uint64, error) {
	sum, carry := bits.Add64(uint64(n), uint64(ws-1), 0)
	if carry != 0 {
		return 0, newError(CauseInvalidRequest, nil, "request of %d bytes overflows", n)
	}
	return sum / uint64(ws), nil
}

func byteLen(nbits int) int {
	n := nbits / 8
	if nbits%8 != 0 {
		n++
	}
	return n
}

// maskTail clears the high-order bits of the last byte that lie beyond nbits.
func maskTail(buf []byte, nbits int) {
	extra := 8*len(buf) - nbits
	if extra > 0 && extra < 8 {
		buf[len(buf)-1] &= 0xFF >> extra
	}
}

var defaultSource = sync.OnceValues(func() (*Source, error) { return New() })

// Default returns the process-wide Source using the builtin binding. The
// probe runs once; its outcome, including any error, is reused.
func Default() (*Source, error) { return defaultSource() }

// GetBytes reads n bytes from the default Source.
func GetBytes(n int) ([]byte, error) {
	return withDefault(n, (*Source).GetBytes)
}

// GetBits reads n bits from the default Source without masking.
func GetBits(n int) ([]byte, error) {
	return withDefault(n, (*Source).GetBits)
}

// GetExactBits reads exactly n bits from the default Source.
func GetExactBits(n int) ([]byte, error) {
	return withDefault(n, (*Source).GetExactBits)
}

// withDefault rejects bad sizes and answers empty requests before the
// default Source is probed.
func withDefault(n int, read func(*Source, int) ([]byte, error)) ([]byte, error) {
	if n < 0 {
		return nil, newError(CauseInvalidRequest, nil, "negative count %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	s, err := Default()
	if err != nil {
		return nil, err
	}
	return read(s, n)
}
