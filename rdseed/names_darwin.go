package rdseed

const defaultLibraryName = "librdseed.dylib"
