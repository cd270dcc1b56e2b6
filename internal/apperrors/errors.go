package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConstraint = errors.New("constraint violated")
)

func NewNotFound(format string, a ...interface{}) error {
	return fmt.Errorf(format+": %w", append(a, ErrNotFound)...)
}

func NewValidation(format string, a ...interface{}) error {
	return fmt.Errorf(format+": %w", append(a, ErrValidation)...)
}

func NewConstraint(format string, a ...interface{}) error {
	return fmt.Errorf(format+": %w", append(a, ErrConstraint)...)
}

func NewInternal(format string, a ...interface{}) error {
	return fmt.Errorf("internal: "+format, a...)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}
