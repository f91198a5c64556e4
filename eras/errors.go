package eras

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ERA_ERR_UNSUPPORTED ErrorCode = "ERA_ERR_UNSUPPORTED"
	FIELD_ERR_MALFORMED ErrorCode = "FIELD_ERR_MALFORMED"
	FIELD_ERR_MISSING   ErrorCode = "FIELD_ERR_MISSING"
	RLP_ERR_MALFORMED   ErrorCode = "RLP_ERR_MALFORMED"
	HASH_ERR_MISMATCH   ErrorCode = "HASH_ERR_MISMATCH"
	CHAIN_ERR_LINKAGE   ErrorCode = "CHAIN_ERR_LINKAGE"
)

// Sentinels for errors.Is. They match any *Error carrying the same code.
var (
	ErrUnsupportedEra = &Error{Code: ERA_ERR_UNSUPPORTED}
	ErrMalformedField = &Error{Code: FIELD_ERR_MALFORMED}
	ErrMissingField   = &Error{Code: FIELD_ERR_MISSING}
	ErrMalformedRLP   = &Error{Code: RLP_ERR_MALFORMED}
	ErrHashMismatch   = &Error{Code: HASH_ERR_MISMATCH}
	ErrLinkage        = &Error{Code: CHAIN_ERR_LINKAGE}
)

type Error struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Msg == "" && e.Err == nil:
		return string(e.Code)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	case e.Msg == "":
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Code == e.Code && t.Msg == "" && t.Err == nil
}

// NewError builds an *Error; it is exported for the verifier's hash and
// linkage failures.
func NewError(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}

func eraerr(code ErrorCode, msg string) error {
	return &Error{Code: code, Msg: msg}
}

func wraperr(code ErrorCode, msg string, err error) error {
	return &Error{Code: code, Msg: msg, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
