package errors

import (
	"runtime"
	"strings"
)

// Error extends the standard error with a numeric code, a parent chain and
// the call site where it was created.
type Error interface {
	error

	Code() uint16
	IsCodeError(code CodeError) bool
	HasCodeError(code CodeError) bool

	Add(parent ...error)
	Unwrap() []error

	GetTrace() string
}

type ers struct {
	c CodeError
	m string
	p []Error
	f runtime.Frame
}

// New builds an Error with the given code, message and optional parents.
func New(code CodeError, message string, parent ...error) Error {
	return &ers{
		c: code,
		m: message,
		p: wrapParents(parent),
		f: callerFrame(),
	}
}

func wrapParents(parent []error) []Error {
	p := make([]Error, 0, len(parent))
	for _, e := range parent {
		if e == nil {
			continue
		}
		if er, ok := e.(Error); ok {
			p = append(p, er)
		} else {
			p = append(p, &ers{m: e.Error(), f: callerFrame()})
		}
	}
	return p
}

func callerFrame() runtime.Frame {
	var pcs [1]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return runtime.Frame{}
	}
	frames := runtime.CallersFrames(pcs[:n])
	f, _ := frames.Next()
	return f
}

func (e *ers) Error() string {
	if e.m == "" && e.c != UnknownError {
		return e.c.Message()
	}
	return e.m
}

func (e *ers) Code() uint16 { return e.c.Uint16() }

func (e *ers) IsCodeError(code CodeError) bool {
	return e.c == code
}

func (e *ers) HasCodeError(code CodeError) bool {
	if e.IsCodeError(code) {
		return true
	}
	for _, p := range e.p {
		if p.HasCodeError(code) {
			return true
		}
	}
	return false
}

func (e *ers) Add(parent ...error) {
	e.p = append(e.p, wrapParents(parent)...)
}

func (e *ers) Unwrap() []error {
	res := make([]error, 0, len(e.p))
	for _, p := range e.p {
		res = append(res, p)
	}
	return res
}

func (e *ers) GetTrace() string {
	if e.f.File == "" {
		return ""
	}
	return strings.Join([]string{e.f.Function, e.f.File, itoa(e.f.Line)}, ":")
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var b [20]byte
	pos := len(b)
	for i > 0 {
		pos--
		b[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		b[pos] = '-'
	}
	return string(b[pos:])
}

// Is reports whether err carries the given code, matching at any level of
// the parent chain.
func Is(err error, code CodeError) bool {
	if e, ok := err.(Error); ok {
		return e.HasCodeError(code)
	}
	return false
}

// Get returns err as an Error, wrapping it with code 0 if it is a plain
// error.
func Get(err error) Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		return e
	}
	return &ers{m: err.Error(), f: callerFrame()}
}
