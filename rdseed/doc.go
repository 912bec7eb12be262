// Package rdseed reads raw entropy from the x86 RDSEED instruction and
// returns it as byte slices of any requested length, including bit counts
// that are not a multiple of eight.
//
// The instruction is reached through a Binding. The builtin binding executes
// RDSEED from Go assembly on amd64 after checking the CPUID feature flag. The
// shared-library binding loads librdseed (.so, .dylib or .dll depending on the
// operating system) and calls its rdseed64_step or rdseed32_step export.
//
// Words are packed little-endian in the order the hardware produced them.
// GetExactBits clears the unused high-order bits of the final byte; GetBits
// leaves them as they came from the hardware.
//
// Typical use prefers hardware and falls back to a software generator:
//
//	ok, err := rdseed.IsAvailable()
//	if err != nil {
//		return err // broken installation, not missing hardware
//	}
//	if !ok {
//		// use a software RNG
//	}
//	buf, err := rdseed.GetExactBits(12)
//
// The package delivers raw samples only. No whitening or conditioning is
// applied.
package rdseed
