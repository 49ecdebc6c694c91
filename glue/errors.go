package glue

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every argument error reported by this
// package. Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrEmptyEnumValue is returned when an enum is parsed from an empty or nil string.
	ErrEmptyEnumValue = fmt.Errorf("%w: enum value cannot be empty", ErrInvalidArgument)
	// ErrUnknownEnumValue is returned when a string matches no enum member.
	ErrUnknownEnumValue = fmt.Errorf("%w: unknown enum value", ErrInvalidArgument)
	// ErrUnknownEnum is returned by ParseEnum for an enumeration that is not modeled.
	ErrUnknownEnum = fmt.Errorf("%w: unknown enumeration", ErrInvalidArgument)
	// ErrDuplicateKey is returned by the Add...Entry methods when the key is already present.
	ErrDuplicateKey = fmt.Errorf("%w: duplicate map key", ErrInvalidArgument)
	// ErrUnknownOperation is returned by Invoke for an operation that is not modeled.
	ErrUnknownOperation = fmt.Errorf("%w: unknown operation", ErrInvalidArgument)
	// ErrInputType is returned by Invoke when the input is not the operation's input structure.
	ErrInputType = fmt.Errorf("%w: wrong input type", ErrInvalidArgument)
)

func duplicateKeyError(field, key string) error {
	return fmt.Errorf("%s: %w %q", field, ErrDuplicateKey, key)
}

func unknownEnumError(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownEnum, name)
}

func unknownOperationError(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownOperation, name)
}

func inputTypeError(operation, want string, got Shape) error {
	have := "nil"
	if got != nil {
		have = got.ShapeName()
	}
	return fmt.Errorf("%s: %w: want %s, got %s", operation, ErrInputType, want, have)
}
