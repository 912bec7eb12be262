// Package source selects an entropy source by device name and runs periodic
// collections from it.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Thiagojm/rdseed_go/naming"
	"github.com/Thiagojm/rdseed_go/pseudorng"
	"github.com/Thiagojm/rdseed_go/rdseed"
)

// Bits is implemented by *rdseed.Source and the pseudorng generators.
type Bits interface {
	GetBytes(n int) ([]byte, error)
	GetBits(n int) ([]byte, error)
	GetExactBits(n int) ([]byte, error)
}

// Open returns the source for device. opts are passed to rdseed.New.
func Open(device naming.Device, opts ...rdseed.Option) (Bits, error) {
	switch device {
	case naming.DeviceRDSEED:
		src, err := rdseed.New(opts...)
		if err != nil {
			return nil, err
		}
		return src, nil
	case naming.DevicePseudo:
		return pseudorng.System{}, nil
	}
	return nil, device.Validate()
}

// Pseudo returns the software source. A zero seed reads from crypto/rand;
// any other seed gives a reproducible ChaCha8 stream.
func Pseudo(seed uint64) (Bits, error) {
	if seed == 0 {
		return pseudorng.System{}, nil
	}
	g, err := pseudorng.NewGenerator(seed)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// PreferHardware returns RDSEED when the processor supports it and the
// crypto/rand fallback otherwise. A broken library installation is returned
// as an error rather than silently falling back.
func PreferHardware(opts ...rdseed.Option) (Bits, naming.Device, error) {
	src, err := rdseed.New(opts...)
	switch {
	case err == nil:
		return src, naming.DeviceRDSEED, nil
	case errors.Is(err, rdseed.ErrUnsupportedCPU):
		log.WithError(err).Warn("RDSEED unavailable, falling back to software generator")
		return pseudorng.System{}, naming.DevicePseudo, nil
	}
	return nil, "", err
}

// CollectBitsAtInterval reads bitCount exact bits from src immediately and
// then once per interval, passing each batch to onBatch. It runs until ctx
// is cancelled or a read fails and returns that error.
func CollectBitsAtInterval(ctx context.Context, src Bits, bitCount int, interval time.Duration, onBatch func([]byte)) error {
	if src == nil {
		return errors.New("source must not be nil")
	}
	if bitCount <= 0 {
		return errors.New("bitCount must be positive")
	}
	if interval <= 0 {
		return errors.New("interval must be positive")
	}
	if onBatch == nil {
		return errors.New("onBatch callback must not be nil")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		b, err := src.GetExactBits(bitCount)
		if err != nil {
			return fmt.Errorf("reading %d bits: %w", bitCount, err)
		}
		onBatch(b)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
