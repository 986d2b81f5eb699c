package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidFormat  = errors.New("invalid format")
	ErrOutOfRange     = errors.New("out of range")
	ErrInvalidDomain  = errors.New("invalid domain")
	ErrInvalidRequest = errors.New("invalid request")
)

// ErrorKind is a coarse-grained categorization for calculation failures.
type ErrorKind string

const (
	KindInvalidFormat  ErrorKind = "invalid_format"
	KindOutOfRange     ErrorKind = "out_of_range"
	KindInvalidDomain  ErrorKind = "invalid_domain"
	KindInvalidRequest ErrorKind = "invalid_request"
)

// FinanceError is returned by the validator, the calculator and the term
// comparison. Msg is the caller-facing message and is returned verbatim by Error.
type FinanceError struct {
	Op    string
	Kind  ErrorKind
	Field string // Optional: the input field that failed
	Msg   string
	Err   error
}

func (e *FinanceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Msg != "" {
		return e.Msg
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		base += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *FinanceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *FinanceError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrInvalidFormat:
		return e.Kind == KindInvalidFormat
	case ErrOutOfRange:
		return e.Kind == KindOutOfRange
	case ErrInvalidDomain:
		return e.Kind == KindInvalidDomain
	case ErrInvalidRequest:
		return e.Kind == KindInvalidRequest
	}
	return false
}

// IsKind helps callers classify errors without depending on the layer that raised them.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// KindOf returns the kind of the first FinanceError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var fe *FinanceError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
