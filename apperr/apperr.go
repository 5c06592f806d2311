// Package apperr defines the stable error taxonomy surfaced to API callers.
// Every failure carries a Kind so handlers can map it to an HTTP status and
// clients can decide whether a retry makes sense.
package apperr

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound           Kind = "not_found"            // referenced entity id does not resolve
	KindInvalidArgument    Kind = "invalid_argument"     // caller-supplied value outside the accepted set
	KindInvalidState       Kind = "invalid_state"        // unknown lifecycle state
	KindInvalidTransition  Kind = "invalid_transition"   // transition out of a terminal or wrong state
	KindPaymentNotVerified Kind = "payment_not_verified" // provider reports a non-settled session
	KindProvider           Kind = "payment_provider_error"
	KindConflict           Kind = "conflict"    // conditional update lost a race
	KindUnavailable        Kind = "unavailable" // store or upstream call failed or timed out; retryable
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of err, or "" if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
