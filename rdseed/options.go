package rdseed

import "github.com/sirupsen/logrus"

const (
	// DefaultRetries is the number of attempts made for each word before a
	// read fails with ErrRetriesExhausted.
	DefaultRetries = 20
	// DefaultMaxBytes bounds a single request.
	DefaultMaxBytes = 1 << 30
)

type options struct {
	binding  Binding
	path     string
	retries  int
	maxBytes int
	log      logrus.FieldLogger
}

// Option configures Probe, IsAvailable and New.
type Option func(*options)

// WithLibraryPath loads the shared library at path instead of using the
// builtin instruction.
func WithLibraryPath(path string) Option {
	return func(o *options) {
		o.binding = SharedLibrary()
		o.path = path
	}
}

// WithBinding selects the binding. The binding's default path is used unless
// WithLibraryPath is also given after it.
func WithBinding(b Binding) Option {
	return func(o *options) { o.binding = b }
}

// WithPrimitive uses p directly, bypassing any library loading.
func WithPrimitive(p Primitive) Option {
	return func(o *options) { o.binding = primitiveBinding{p} }
}

// WithRetries sets the number of attempts per word. Values below 1 are
// ignored.
func WithRetries(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.retries = n
		}
	}
}

// WithMaxBytes sets the largest request accepted, in bytes.
func WithMaxBytes(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBytes = n
		}
	}
}

// WithLogger sets the logger used for probe diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		binding:  Builtin(),
		retries:  DefaultRetries,
		maxBytes: DefaultMaxBytes,
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
