package writer

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgWriter = liberr.MinPkgWriter

const (
	ErrorCannotCreateArchive liberr.CodeError = iota + MinPkgWriter
	ErrorPathNotFound
	ErrorIoFailure
	ErrorPermissionDenied
	ErrorDuplicatePath
	ErrorCompressionFailed
	ErrorDiskFull
)

func init() {
	if liberr.ExistInMapMessage(ErrorCannotCreateArchive) {
		panic("error code collision in przm/archive/writer")
	}
	liberr.RegisterIdFctMessage(ErrorCannotCreateArchive, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorCannotCreateArchive:
		return "could not create or open archive for writing"
	case ErrorPathNotFound:
		return "input path not found"
	case ErrorIoFailure:
		return "input/output failure while building archive"
	case ErrorPermissionDenied:
		return "permission denied reading input"
	case ErrorDuplicatePath:
		return "duplicate entry path"
	case ErrorCompressionFailed:
		return "compression failed while building archive"
	case ErrorDiskFull:
		return "insufficient free space reported by the disk estimator"
	default:
		return liberr.NullMessage
	}
}
