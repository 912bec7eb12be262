package rdseed

// Primitive is one raw RDSEED call. TrySeedWord returns ok=false when the
// hardware entropy pool is momentarily empty; that is expected and retried.
// Only the low WordSize()*8 bits of the word are meaningful.
type Primitive interface {
	TrySeedWord() (word uint64, ok bool)
	WordSize() int
	// Supported reports whether the processor advertises the instruction.
	// TrySeedWord must not be called when it returns false.
	Supported() bool
}

// Binding resolves a Primitive. Implementations are chosen at build time,
// one per operating system.
type Binding interface {
	// DefaultPath is the location used when no explicit path is given.
	DefaultPath() string
	Load(path string) (Primitive, error)
}

// Builtin returns the binding compiled into the binary. It needs no library
// file and ignores the path passed to Load.
func Builtin() Binding { return builtinBinding{} }

type builtinBinding struct{}

func (builtinBinding) DefaultPath() string { return "" }

func (builtinBinding) Load(string) (Primitive, error) { return builtinPrimitive{}, nil }

// SharedLibrary returns the binding that loads librdseed from disk.
func SharedLibrary() Binding { return sharedLibrary{} }

type sharedLibrary struct{}

func (sharedLibrary) DefaultPath() string { return defaultLibraryName }

func (sharedLibrary) Load(path string) (Primitive, error) {
	if path == "" {
		path = defaultLibraryName
	}
	return libraries.load(path)
}

// primitiveBinding adapts a caller-supplied Primitive.
type primitiveBinding struct{ p Primitive }

func (primitiveBinding) DefaultPath() string { return "" }

func (b primitiveBinding) Load(string) (Primitive, error) { return b.p, nil }
