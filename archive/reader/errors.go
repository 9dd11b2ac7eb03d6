package reader

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgReader = liberr.MinPkgReader

const (
	ErrorOpenFailed liberr.CodeError = iota + MinPkgReader
)

func init() {
	if liberr.ExistInMapMessage(ErrorOpenFailed) {
		panic("error code collision in przm/archive/reader")
	}
	liberr.RegisterIdFctMessage(ErrorOpenFailed, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorOpenFailed:
		return "could not open archive for reading"
	default:
		return liberr.NullMessage
	}
}
