package encoding

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidInput is matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input provided")

// CharError reports one character outside the {'0', '1', ' '} alphabet.
type CharError struct {
	Pos  int
	Char rune
}

func (e *CharError) Error() string {
	return fmt.Sprintf("position %d: unsupported character %q", e.Pos, e.Char)
}

// InvalidInputError is returned by Encode when the input cannot be encoded.
// It lists every offending character, not only the first.
type InvalidInputError struct {
	Input string
	Chars []CharError
	// Got is the number of symbols produced before validation.
	Got int

	merr *multierror.Error
}

func newInvalidInputError(input string, got int, chars []CharError) *InvalidInputError {
	e := &InvalidInputError{Input: input, Chars: chars, Got: got}
	for i := range chars {
		e.merr = multierror.Append(e.merr, &chars[i])
	}
	if len(chars) == 0 && got != len([]rune(input)) {
		e.merr = multierror.Append(e.merr, fmt.Errorf("produced %d symbols for %d characters", got, len([]rune(input))))
	}
	if e.merr != nil {
		e.merr.ErrorFormat = listFormat
	}
	return e
}

func (e *InvalidInputError) Error() string {
	if e.merr == nil {
		return ErrInvalidInput.Error()
	}
	return ErrInvalidInput.Error() + ": " + e.merr.Error()
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *InvalidInputError) Unwrap() error {
	return e.merr.ErrorOrNil()
}

func listFormat(errs []error) string {
	s := ""
	for i, err := range errs {
		if i > 0 {
			s += "; "
		}
		s += err.Error()
	}
	return s
}
