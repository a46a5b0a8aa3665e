package apperror

import (
	"errors"
	"fmt"
)

// Kind identifies the class of failure so the transport layer can map it to
// a status code without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindSessionBusy
	KindSessionArchived
	KindNotReady
	KindStorageUnavailable
	KindModelUnavailable
	KindModelTimeout
	KindModelRateLimited
)

// Sentinel errors for the generation collaborator. Providers wrap their
// transport failures into one of these so the composer can degrade uniformly.
var (
	ErrModelUnavailable = &Error{Kind: KindModelUnavailable, Message: "generation model unavailable"}
	ErrModelTimeout     = &Error{Kind: KindModelTimeout, Message: "generation model timed out"}
	ErrModelRateLimited = &Error{Kind: KindModelRateLimited, Message: "generation model rate limited"}
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match on Kind so wrapped provider errors still compare
// equal to the sentinels above.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Message: what + " not found"}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func SessionBusy(message string) *Error {
	return &Error{Kind: KindSessionBusy, Message: message}
}

func SessionArchived(message string) *Error {
	return &Error{Kind: KindSessionArchived, Message: message}
}

func NotReady(message string) *Error {
	return &Error{Kind: KindNotReady, Message: message}
}

func StorageUnavailable(err error) *Error {
	return &Error{Kind: KindStorageUnavailable, Message: "storage unavailable", Err: err}
}

// KindOf extracts the Kind from an error chain, KindUnknown if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsModelFailure reports whether the error is one of the generation
// collaborator failures that must be absorbed into a degraded exchange.
func IsModelFailure(err error) bool {
	switch KindOf(err) {
	case KindModelUnavailable, KindModelTimeout, KindModelRateLimited:
		return true
	}
	return false
}
