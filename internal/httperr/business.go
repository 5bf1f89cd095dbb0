package httperr

import "errors"

// Domain failures come in two recoverable kinds; anything else is treated
// as internal by the transport layer.

type NotFoundError struct {
	Code string
}

func (e NotFoundError) Error() string {
	return e.Code
}

func ErrNotFound(code string) error {
	return NotFoundError{Code: code}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

type ValidationError struct {
	Code string
}

func (e ValidationError) Error() string {
	return e.Code
}

func ErrValidation(code string) error {
	return ValidationError{Code: code}
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
