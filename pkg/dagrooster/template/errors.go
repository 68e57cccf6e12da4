package template

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the template could not be fetched or opened.
var ErrNotFound = errors.New("template not found")

// ErrInvalidFormat indicates the template is not a valid xlsx package.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// Error represents a failure to make the template available.
type Error struct {
	Source string
	Kind   error // ErrNotFound or ErrInvalidFormat
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Source, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
