//go:build !amd64

package rdseed

// builtinPrimitive has no instruction to execute on this architecture.
type builtinPrimitive struct{}

func (builtinPrimitive) WordSize() int { return 8 }

func (builtinPrimitive) Supported() bool { return false }

func (builtinPrimitive) TrySeedWord() (uint64, bool) { return 0, false }
