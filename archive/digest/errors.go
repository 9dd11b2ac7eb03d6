package digest

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgDigest = liberr.MinPkgDigest

const (
	ErrorUnknownDigest liberr.CodeError = iota + MinPkgDigest
	ErrorHashFailed
	ErrorUnsupportedDigest
)

func init() {
	if liberr.ExistInMapMessage(ErrorUnknownDigest) {
		panic("error code collision in przm/archive/digest")
	}
	liberr.RegisterIdFctMessage(ErrorUnknownDigest, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorUnknownDigest:
		return "unrecognized digest identifier"
	case ErrorHashFailed:
		return "digest computation failed"
	case ErrorUnsupportedDigest:
		return "digest has no implementation available in this build"
	default:
		return liberr.NullMessage
	}
}
