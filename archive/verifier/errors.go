package verifier

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgVerifier = liberr.MinPkgVerifier

const (
	ErrorIoFailure liberr.CodeError = iota + MinPkgVerifier
	ErrorDecompressionFailed
)

func init() {
	if liberr.ExistInMapMessage(ErrorIoFailure) {
		panic("error code collision in przm/archive/verifier")
	}
	liberr.RegisterIdFctMessage(ErrorIoFailure, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorIoFailure:
		return "input/output failure while verifying"
	case ErrorDecompressionFailed:
		return "decompression failed while verifying"
	default:
		return liberr.NullMessage
	}
}
