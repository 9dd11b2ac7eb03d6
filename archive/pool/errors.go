package pool

import (
	liberr "github.com/sabouaram/przm/errors"
)

const MinPkgPool = liberr.MinPkgPool

const (
	ErrorPoolClosed liberr.CodeError = iota + MinPkgPool
)

func init() {
	if liberr.ExistInMapMessage(ErrorPoolClosed) {
		panic("error code collision in przm/archive/pool")
	}
	liberr.RegisterIdFctMessage(ErrorPoolClosed, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case ErrorPoolClosed:
		return "worker pool is shutting down, task rejected"
	default:
		return liberr.NullMessage
	}
}
