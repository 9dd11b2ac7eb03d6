package container

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgContainer = liberr.MinPkgContainer

const (
	ErrorCorruptHeader liberr.CodeError = iota + MinPkgContainer
	ErrorCorruptStream
	ErrorUnsupportedVersion
	ErrorDuplicatePath
)

func init() {
	if liberr.ExistInMapMessage(ErrorCorruptHeader) {
		panic("error code collision in przm/archive/container")
	}
	liberr.RegisterIdFctMessage(ErrorCorruptHeader, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorCorruptHeader:
		return "corrupt or truncated container header"
	case ErrorCorruptStream:
		return "corrupt container stream: neither a lone entry nor a solid block"
	case ErrorUnsupportedVersion:
		return "unsupported container format version"
	case ErrorDuplicatePath:
		return "duplicate entry path in container"
	default:
		return liberr.NullMessage
	}
}
