package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the request boundary. Handlers map kinds to
// HTTP status codes; business code never imports net/http.
type Kind int

const (
	KindValidation  Kind = iota // malformed or missing input
	KindAuth                    // no/invalid session
	KindForbidden               // authenticated but lacking capability
	KindNotFound                // resource does not exist
	KindConflict                // duplicate resource
	KindPersistence             // storage layer failure
)

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }
func Auth(msg string) error       { return &Error{Kind: KindAuth, Msg: msg} }
func Forbidden(msg string) error  { return &Error{Kind: KindForbidden, Msg: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Msg: msg} }

// Persistence wraps a storage failure so the driver error stays available for
// logging while the client sees only msg.
func Persistence(msg string, err error) error {
	return &Error{Kind: KindPersistence, Msg: msg, Err: err}
}

// KindOf reports the kind of err, or KindPersistence if err is not an *Error.
// Unknown failures are treated as storage-level: surfaced as 500, never as a
// client mistake.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// Message returns the client-safe message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal error"
}

func Is(err error, k Kind) bool { return err != nil && KindOf(err) == k }
