package pathutil

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgPathutil = liberr.MinPkgPathutil

const (
	ErrorInvalidPattern liberr.CodeError = iota + MinPkgPathutil
	ErrorWalkFailed
)

func init() {
	if liberr.ExistInMapMessage(ErrorInvalidPattern) {
		panic("error code collision in przm/archive/pathutil")
	}
	liberr.RegisterIdFctMessage(ErrorInvalidPattern, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorInvalidPattern:
		return "invalid exclusion pattern"
	case ErrorWalkFailed:
		return "directory walk failed"
	default:
		return liberr.NullMessage
	}
}
