package rdseed

const defaultLibraryName = "librdseed.so"
