package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the value file does not exist.
	ErrFileNotFound = errors.New("dataset: file does not exist")

	// ErrMalformed indicates a token that is not an unsigned 64-bit integer.
	ErrMalformed = errors.New("dataset: malformed value")
)

// ParseError locates a malformed token.
type ParseError struct {
	Path    string
	Line    int
	Token   string
	Wrapped error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %q: %v", e.Path, e.Line, e.Token, e.Wrapped)
}

// Unwrap exposes both ErrMalformed and the strconv error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformed, e.Wrapped}
}
