package httperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the transport can pick a status code.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindForbidden
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	// Entity names the missing record for KindNotFound.
	Entity string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrNotFound(entity, code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message, Entity: entity}
}

func ErrValidation(code, message string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// TransientError wraps a failed store or network call. Callers may retry it.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

func Transient(op string, err error) error {
	if err == nil {
		return nil
	}
	var be BusinessError
	if errors.As(err, &be) {
		return err
	}
	return &TransientError{Op: op, Err: err}
}

func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	var te *TransientError
	if errors.As(err, &te) {
		return KindTransient
	}
	return KindUnknown
}
