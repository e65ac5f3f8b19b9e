package errors

import (
	"strings"
)

type MultiError struct {
	msg    string
	Errors []error
}

func NewMultiError(msg string) *MultiError {
	return &MultiError{msg: msg}
}

func (m *MultiError) Append(err error) {
	if err == nil {
		return
	}

	if me, ok := err.(*MultiError); ok {
		m.Errors = append(m.Errors, me.Errors...)
		return
	}
	m.Errors = append(m.Errors, err)
}

func (m *MultiError) Error() string {
	var s strings.Builder
	s.WriteString(m.msg)
	s.WriteString(":")
	for _, err := range m.Errors {
		s.WriteString("\n ")
		s.WriteString(err.Error())
	}
	return s.String()
}

func (m *MultiError) Unwrap() []error {
	return m.Errors
}

func (m *MultiError) ToErr() error {
	if m == nil || len(m.Errors) == 0 {
		return nil
	}
	return m
}

// MultiToError returns the single wrapped error as is, nil when empty.
func MultiToError(e error) error {
	var me *MultiError
	if !As(e, &me) {
		return e
	}

	switch len(me.Errors) {
	case 0:
		return nil
	case 1:
		return me.Errors[0]
	default:
		return me
	}
}
