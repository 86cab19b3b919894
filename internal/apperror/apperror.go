// Package apperror tags errors with the kind of failure so callers can pick
// a distinct reaction (block, refresh, retry) without parsing messages.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// Unknown is any error that was never tagged.
	Unknown Kind = iota
	// Validation is malformed input. Not retried.
	Validation
	// Domain is a state machine rule violation. Not retried.
	Domain
	// NotFound is a referenced record that no longer exists.
	NotFound
	// PermissionDenied is an actor acting outside their role.
	PermissionDenied
	// Conflict is a concurrent modification detected by the store.
	Conflict
	// ExternalIO is a store, auth or broker failure.
	ExternalIO
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Domain:
		return "domain"
	case NotFound:
		return "not_found"
	case PermissionDenied:
		return "permission_denied"
	case Conflict:
		return "conflict"
	case ExternalIO:
		return "external_io"
	}
	return "unknown"
}

// Error is a tagged error. Msg is safe to show to users.
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

// Is matches any *Error of the same kind and message, so sentinel values
// declared with New work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Msg == e.Msg
}

// New returns a tagged error with a fixed message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf returns a tagged error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind. A nil err stays nil.
func Wrap(kind Kind, msg string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the kind of the outermost tagged error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Message returns the user-facing message of the outermost tagged error,
// or err.Error() when the chain has none.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return err.Error()
}

// IsKind reports whether err is tagged with kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Validationf, Domainf and NotFoundf are shorthands for the most common kinds.
func Validationf(format string, args ...any) *Error { return Newf(Validation, format, args...) }

func Domainf(format string, args ...any) *Error { return Newf(Domain, format, args...) }

func NotFoundf(format string, args ...any) *Error { return Newf(NotFound, format, args...) }
