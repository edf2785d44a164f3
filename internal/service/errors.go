package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks bad or missing required fields. Handlers map it to
// a 400 response with the field-level message.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials covers both unknown users and password
// mismatches; the two are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

// ErrNotFound means the record does not exist or belongs to another user.
var ErrNotFound = errors.New("record not found")

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
