/*
 * Package errors provides the archive engine's error-code registry: numeric
 * codes with registered messages, stack-frame capture and parent chaining.
 * It backs the error taxonomy in the archive engine's design notes
 * (PathNotFound, CorruptHeader, NothingToRemove, ...): each owning package
 * registers one CodeError per failure kind it reports. Hash mismatches
 * are counted in reports and have no CodeError.
 */
package errors

import (
	"sort"
	"strconv"
)

// CodeError is a numeric error classification, one per failure kind named
// in the archive engine's error taxonomy.
type CodeError uint16

const (
	UnknownError CodeError = 0
	UnknownMessage         = "unknown error"
	NullMessage            = ""
)

// Message builds the text for a registered CodeError.
type Message func(code CodeError) string

var idMsgFct = make(map[CodeError]Message)

func (c CodeError) Uint16() uint16 { return uint16(c) }
func (c CodeError) Int() int       { return int(c) }
func (c CodeError) String() string { return strconv.Itoa(c.Int()) }

// Message returns the registered human text for c, or UnknownMessage.
func (c CodeError) Message() string {
	if c == UnknownError {
		return UnknownMessage
	}
	if f, ok := idMsgFct[findCodeErrorInMapMessage(c)]; ok {
		if m := f(c); m != NullMessage {
			return m
		}
	}
	return UnknownMessage
}

// Error builds a new Error value carrying this code, optionally wrapping
// parent errors.
func (c CodeError) Error(parent ...error) Error {
	return New(c, c.Message(), parent...)
}

// ErrorParent is a shorthand for Error when the caller only has one parent.
func (c CodeError) ErrorParent(parent error) Error {
	return New(c, c.Message(), parent)
}

// RegisterIdFctMessage registers the message function for every code at or
// above minCode until the next registered block. Packages call this once
// from an init(), panicking on collision via ExistInMapMessage first.
func RegisterIdFctMessage(minCode CodeError, fct Message) {
	idMsgFct[minCode] = fct
	orderMapMessage()
}

// ExistInMapMessage reports whether code already resolves to a registered,
// non-empty message -- used by package init() functions to detect a code
// collision before registering their own block.
func ExistInMapMessage(code CodeError) bool {
	if f, ok := idMsgFct[findCodeErrorInMapMessage(code)]; ok {
		return f(code) != NullMessage
	}
	return false
}

func getMapMessageKey() []CodeError {
	keys := make([]int, 0, len(idMsgFct))
	for k := range idMsgFct {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)

	res := make([]CodeError, 0, len(keys))
	for _, k := range keys {
		res = append(res, CodeError(k))
	}
	return res
}

func orderMapMessage() {
	res := make(map[CodeError]Message, len(idMsgFct))
	for _, k := range getMapMessageKey() {
		res[k] = idMsgFct[k]
	}
	idMsgFct = res
}

// findCodeErrorInMapMessage finds the highest registered block boundary at
// or below code, so that e.g. code 107 resolves to the block registered at
// 100.
func findCodeErrorInMapMessage(code CodeError) CodeError {
	var res CodeError
	for _, k := range getMapMessageKey() {
		if k <= code && k > res {
			res = k
		}
	}
	return res
}
