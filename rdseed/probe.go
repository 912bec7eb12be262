package rdseed

import (
	"github.com/sirupsen/logrus"
)

// Availability is the verdict of a probe.
type Availability int

const (
	Available Availability = iota
	UnsupportedCPU
	LibraryUnavailable
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case UnsupportedCPU:
		return "unsupported cpu"
	case LibraryUnavailable:
		return "library unavailable"
	}
	return "unknown"
}

// Probe loads the binding and makes a smoke call. A binding that fails to
// load yields LibraryUnavailable together with an ErrLibraryUnavailable
// error. A processor without RDSEED yields UnsupportedCPU and a nil error.
func Probe(opts ...Option) (Availability, error) {
	o := buildOptions(opts)
	_, a, err := probe(o)
	return a, err
}

// IsAvailable reports whether RDSEED can be used. Unsupported hardware is
// reported as false; a broken installation is returned as an error.
func IsAvailable(opts ...Option) (bool, error) {
	a, err := Probe(opts...)
	if err != nil {
		return false, err
	}
	return a == Available, nil
}

func probe(o options) (Primitive, Availability, error) {
	path := o.path
	if path == "" {
		path = o.binding.DefaultPath()
	}
	log := o.log.WithField("path", path)

	p, err := o.binding.Load(path)
	if err != nil {
		log.WithError(err).Debug("rdseed binding failed to load")
		return nil, LibraryUnavailable, newError(CauseLibraryUnavailable, err, "loading binding")
	}
	if ws := p.WordSize(); ws < 1 || ws > 8 {
		return nil, LibraryUnavailable, newError(CauseLibraryUnavailable, nil, "word size %d out of range", ws)
	}
	if !p.Supported() {
		log.Debug("rdseed not advertised by cpu")
		return p, UnsupportedCPU, nil
	}
	// A single underflow is normal, so the smoke call gets the same
	// ceiling as a read.
	for i := 0; i < o.retries; i++ {
		if _, ok := p.TrySeedWord(); ok {
			log.WithFields(logrus.Fields{"word_size": p.WordSize(), "attempts": i + 1}).Debug("rdseed available")
			return p, Available, nil
		}
	}
	log.WithField("attempts", o.retries).Debug("rdseed smoke call never succeeded")
	return p, UnsupportedCPU, nil
}
