// Package dl opens librdseed at run time and calls its exported steps.
//
// It is kept apart from package rdseed because the builtin binding there is
// written in Go assembly, which cannot share a package with cgo.
//
// A Library exports rdseed64_step or rdseed32_step, each
//
//	int step(T *out) // 1 on success, 0 when no entropy was ready
//
// and optionally int rdseed_supported(void).
package dl
