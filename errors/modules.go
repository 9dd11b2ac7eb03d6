package errors

// Each package that registers error codes reserves a block of 100 starting
// at its MinPkg constant, the same convention the archive engine's upstream
// sibling packages use to avoid code collisions across the module.
const (
	MinPkgContainer  CodeError = iota*100 + 100
	MinPkgCompress
	MinPkgDigest
	MinPkgPathutil
	MinPkgPool
	MinPkgWriter
	MinPkgReader
	MinPkgExtractor
	MinPkgRemover
	MinPkgVerifier
	MinPkgLogger
	MinPkgConfig

	MinAvailable
)
