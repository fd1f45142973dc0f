package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// CorruptStateError reports a persisted document that could not be deserialized.
// The unreadable bytes are kept aside at BackupPath for manual recovery.
type CorruptStateError struct {
	Path       string
	BackupPath string
	Err        error
}

func (err CorruptStateError) Error() string {
	return fmt.Sprintf("corrupt state document %s: %v", err.Path, err.Err)
}

func (err CorruptStateError) Unwrap() error { return err.Err }

// ImportFormatError reports a rejected backup or roster import, carrying the
// underlying parse failure so it can be surfaced to the user verbatim.
type ImportFormatError struct {
	Err error
}

func NewImportFormatError(err error) error {
	return &ImportFormatError{Err: err}
}

func (err ImportFormatError) Error() string {
	return fmt.Sprintf("invalid data format: %v", err.Err)
}

func (err ImportFormatError) Unwrap() error { return err.Err }

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
