package remover

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgRemover = liberr.MinPkgRemover

const (
	ErrorNothingToRemove liberr.CodeError = iota + MinPkgRemover
	ErrorIoFailure
	ErrorDecompressionFailed
	ErrorCompressionFailed
)

func init() {
	if liberr.ExistInMapMessage(ErrorNothingToRemove) {
		panic("error code collision in przm/archive/remover")
	}
	liberr.RegisterIdFctMessage(ErrorNothingToRemove, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorNothingToRemove:
		return "no entry matched the removal selection"
	case ErrorIoFailure:
		return "input/output failure while rewriting the archive"
	case ErrorDecompressionFailed:
		return "decompression failed while materializing a solid member"
	case ErrorCompressionFailed:
		return "compression failed while materializing a solid member"
	default:
		return liberr.NullMessage
	}
}
