package world

import (
	"errors"
	"fmt"
)

// ErrorKind classifies engine failures so callers can render them differently.
type ErrorKind uint8

const (
	// KindValidation marks bad arguments: empty names, unknown spaces,
	// non-positive damage, duplicate players.
	KindValidation ErrorKind = iota + 1

	// KindFormat marks a world specification token of the wrong type.
	KindFormat

	// KindMissingData marks a world specification that ends early.
	KindMissingData

	// KindState marks an operation that is legal in isolation but not now.
	KindState
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindFormat:
		return "format"
	case KindMissingData:
		return "missing data"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is the failure returned by every world operation.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Kind.String() + " error"
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is matches sentinel errors by kind, so errors.Is(err, ErrState) holds for
// every state error regardless of its code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code == "" {
		return t.Kind == e.Kind
	}
	return t.Kind == e.Kind && t.Code == e.Code
}

var (
	// ErrValidation matches every validation error.
	ErrValidation = &Error{Kind: KindValidation}
	// ErrFormat matches every format error.
	ErrFormat = &Error{Kind: KindFormat}
	// ErrMissingData matches every missing-data error.
	ErrMissingData = &Error{Kind: KindMissingData}
	// ErrState matches every state error.
	ErrState = &Error{Kind: KindState}
)

// KindOf returns the kind of a world error, or 0 for anything else.
func KindOf(err error) ErrorKind {
	var we *Error
	if errors.As(err, &we) {
		return we.Kind
	}
	return 0
}

// CodeOf returns the code of a world error, or "" for anything else.
func CodeOf(err error) string {
	var we *Error
	if errors.As(err, &we) {
		return we.Code
	}
	return ""
}

func validationErr(code, format string, args ...any) error {
	return &Error{Kind: KindValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

func stateErr(code, format string, args ...any) error {
	return &Error{Kind: KindState, Code: code, Message: fmt.Sprintf(format, args...)}
}

func formatErr(format string, args ...any) error {
	return &Error{Kind: KindFormat, Code: "BAD_NUMBER", Message: fmt.Sprintf(format, args...)}
}

func missingErr(format string, args ...any) error {
	return &Error{Kind: KindMissingData, Code: "UNEXPECTED_EOF", Message: fmt.Sprintf(format, args...)}
}
