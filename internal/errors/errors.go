package errors

import (
	"errors"
	"fmt"
)

const (
	ErrNotFound        ErrorType = "Resource Not Found"
	ErrInvalidArgument ErrorType = "Invalid Argument"
	ErrOutOfRange      ErrorType = "Out Of Range"
	ErrFailedPrecond   ErrorType = "Failed Precondition"
	ErrInternalError   ErrorType = "Internal Error"
)

type ErrorType string

func (e ErrorType) String() string {
	return string(e)
}

type DomainError struct {
	ErrorType  ErrorType
	Entity     string
	Message    string
	WrappedErr error
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("%s for entity %s: %s", e.ErrorType, e.Entity, e.Message)
	if e.WrappedErr != nil {
		return msg + ": " + e.WrappedErr.Error()
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.WrappedErr
}

func (e *DomainError) DebugString() string {
	var wrappedError string
	if e.WrappedErr != nil {
		wrappedError = e.WrappedErr.Error()
	}

	return fmt.Sprintf("%v for %v: %v (%s)", e.ErrorType, e.Entity, e.Message, wrappedError)
}

func NewError(errType ErrorType, entity, msg string) *DomainError {
	return &DomainError{
		ErrorType: errType,
		Entity:    entity,
		Message:   msg,
	}
}

func InvalidArgument(entity, msg string) *DomainError {
	return NewError(ErrInvalidArgument, entity, msg)
}

// OutOfRange is returned when a numeric or duration parameter is outside of its domain.
func OutOfRange(entity, msg string) *DomainError {
	return NewError(ErrOutOfRange, entity, msg)
}

func NotFound(entity, msg string) *DomainError {
	return NewError(ErrNotFound, entity, msg)
}

func FailedPrecondition(entity, msg string) *DomainError {
	return NewError(ErrFailedPrecond, entity, msg)
}

func InternalError(entity, msg string, err error) *DomainError {
	return &DomainError{
		ErrorType:  ErrInternalError,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

func Wrap(entity, msg string, err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return &DomainError{
			ErrorType:  de.ErrorType,
			Entity:     entity,
			Message:    msg,
			WrappedErr: err,
		}
	}

	return InternalError(entity, msg, err)
}

// AddErrContext keeps the error type of err, replacing entity and message.
func AddErrContext(err error, entity, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(entity, msg, err)
}

func IsErrorType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType == errType
	}
	return false
}

func New(msg string) error {
	return errors.New(msg)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}
