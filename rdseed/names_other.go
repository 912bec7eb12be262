//go:build !linux && !darwin && !windows

package rdseed

const defaultLibraryName = "librdseed.so"
