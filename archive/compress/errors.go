package compress

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgCompress = liberr.MinPkgCompress

const (
	ErrorUnknownCodec liberr.CodeError = iota + MinPkgCompress
	ErrorCompressionFailed
	ErrorDecompressionFailed
	ErrorUnsupportedCodec
)

func init() {
	if liberr.ExistInMapMessage(ErrorUnknownCodec) {
		panic("error code collision in przm/archive/compress")
	}
	liberr.RegisterIdFctMessage(ErrorUnknownCodec, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorUnknownCodec:
		return "unrecognized codec identifier"
	case ErrorCompressionFailed:
		return "compression failed"
	case ErrorDecompressionFailed:
		return "decompression failed"
	case ErrorUnsupportedCodec:
		return "codec has no encoder/decoder available in this build"
	default:
		return liberr.NullMessage
	}
}
