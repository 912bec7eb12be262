package rdseed

const defaultLibraryName = "rdseed.dll"
