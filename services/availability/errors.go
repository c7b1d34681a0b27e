package availability

import (
	"errors"
	"fmt"
)

// Kind classifies an availability failure so callers can tell "ask the person
// to re-authenticate" apart from "try again later".
type Kind string

const (
	KindValidation         Kind = "validation"
	KindCredentialNotFound Kind = "credential_not_found"
	KindCredentialExpired  Kind = "credential_expired"
	KindCredentialRevoked  Kind = "credential_revoked"
	KindProvider           Kind = "provider"
	KindUnreachable        Kind = "unreachable"
)

// Error is the typed failure surfaced by the availability service and the
// upstream fetch layer. The Kind is preserved end to end.
type Error struct {
	Kind    Kind
	Message string
	Status  int // upstream HTTP status when Kind is KindProvider
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a typed error without an underlying cause.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapError builds a typed error wrapping an underlying cause.
func WrapError(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err, or the empty Kind for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
