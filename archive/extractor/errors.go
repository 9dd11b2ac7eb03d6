package extractor

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgExtractor = liberr.MinPkgExtractor

const (
	ErrorSizeMismatch liberr.CodeError = iota + MinPkgExtractor
	ErrorIoFailure
	ErrorDecompressionFailed
)

func init() {
	if liberr.ExistInMapMessage(ErrorSizeMismatch) {
		panic("error code collision in przm/archive/extractor")
	}
	liberr.RegisterIdFctMessage(ErrorSizeMismatch, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorSizeMismatch:
		return "decompressed size did not match the recorded uncompressed size"
	case ErrorIoFailure:
		return "input/output failure while extracting"
	case ErrorDecompressionFailed:
		return "decompression failed while extracting"
	default:
		return liberr.NullMessage
	}
}
