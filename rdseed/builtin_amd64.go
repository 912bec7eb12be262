package rdseed

import "golang.org/x/sys/cpu"

// rdseed64 executes RDSEED on a 64-bit register. ok is the carry flag.
//
//go:noescape
func rdseed64() (word uint64, ok bool)

type builtinPrimitive struct{}

func (builtinPrimitive) WordSize() int { return 8 }

func (builtinPrimitive) Supported() bool { return cpu.X86.HasRDSEED }

func (builtinPrimitive) TrySeedWord() (uint64, bool) {
	if !cpu.X86.HasRDSEED {
		return 0, false
	}
	return rdseed64()
}
