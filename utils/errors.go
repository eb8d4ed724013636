package utils

import (
	"github.com/pkg/errors"
)

// NewUnexpectedTypeError reports a decoded value whose dynamic type differs from the one a caller asserted.
func NewUnexpectedTypeError(expected, actual interface{}) error {
	return errors.Errorf("expected %T but got %T", expected, actual)
}
