package errors

import (
	"errors"
	"fmt"

	derrors "github.com/goto/chronoset/internal/errors"
)

const (
	ExitCodeDefault         = 1
	ExitCodeWarn            = 10
	ExitCodeValidationError = 30
	ExitCodeNotFound        = 40
)

// CmdError carries the exit code a command failure should end the process with
type CmdError struct {
	Cause error
	Code  int
}

func (e *CmdError) Error() string { return e.Cause.Error() }

func (e *CmdError) Unwrap() error { return e.Cause }

func NewCmdError(cause error, code int) *CmdError {
	return &CmdError{
		Cause: cause,
		Code:  code,
	}
}

func NewWarnErrorf(format string, args ...any) *CmdError {
	return NewCmdError(fmt.Errorf(format, args...), ExitCodeWarn)
}

func NewValidationErrorf(format string, args ...any) *CmdError {
	return NewCmdError(fmt.Errorf(format, args...), ExitCodeValidationError)
}

// ExitCodeOf returns the code of a CmdError, otherwise derives one from the domain error type.
func ExitCodeOf(err error) int {
	var cmdErr *CmdError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}

	var de *derrors.DomainError
	if !errors.As(err, &de) {
		return ExitCodeDefault
	}
	switch de.ErrorType {
	case derrors.ErrInvalidArgument, derrors.ErrOutOfRange, derrors.ErrFailedPrecond:
		return ExitCodeValidationError
	case derrors.ErrNotFound:
		return ExitCodeNotFound
	default:
		return ExitCodeDefault
	}
}
