// Package kclutil provides checked access to KCL plugin method arguments.
//
// The raw [plugin.MethodArgs] accessors panic on missing or mistyped
// arguments; build-script calls need a diagnostic instead, so every
// accessor here returns an error or falls back to a default.
package kclutil

import (
	"errors"
	"fmt"

	"kcl-lang.io/kcl-go/pkg/plugin"
)

var (
	// ErrInvalidArgumentCount indicates a call with the wrong number of
	// positional arguments.
	ErrInvalidArgumentCount = errors.New("invalid argument count")

	// ErrInvalidArgumentType indicates a positional argument of the wrong
	// type.
	ErrInvalidArgumentType = errors.New("invalid argument type")
)

type SafeMethodArgs struct {
	Args *plugin.MethodArgs
}

// NArgs returns the number of positional arguments.
func (sma *SafeMethodArgs) NArgs() int {
	return len(sma.Args.Args)
}

// StrArg returns positional argument i as a string.
func (sma *SafeMethodArgs) StrArg(i int) (string, error) {
	if i >= len(sma.Args.Args) {
		return "", fmt.Errorf("%w: missing argument %d", ErrInvalidArgumentCount, i+1)
	}

	s, ok := sma.Args.Args[i].(string)
	if !ok {
		return "", fmt.Errorf("%w: argument %d must be a string, got %T",
			ErrInvalidArgumentType, i+1, sma.Args.Args[i])
	}

	return s, nil
}

// ListStrArg returns positional argument i as a list of strings.
func (sma *SafeMethodArgs) ListStrArg(i int) ([]string, error) {
	if i >= len(sma.Args.Args) {
		return nil, fmt.Errorf("%w: missing argument %d", ErrInvalidArgumentCount, i+1)
	}

	list, ok := sma.Args.Args[i].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: argument %d must be a list of strings, got %T",
			ErrInvalidArgumentType, i+1, sma.Args.Args[i])
	}

	strs := make([]string, 0, len(list))

	for j, v := range list {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: argument %d element %d must be a string, got %T",
				ErrInvalidArgumentType, i+1, j, v)
		}

		strs = append(strs, s)
	}

	return strs, nil
}

// Exists reports whether the named keyword argument was supplied.
func (sma *SafeMethodArgs) Exists(name string) bool {
	_, ok := sma.Args.KwArgs[name]

	return ok
}

// StrKwArg returns the named keyword argument, or defaultValue when it was
// not supplied.
func (sma *SafeMethodArgs) StrKwArg(name, defaultValue string) string {
	if sma.Exists(name) {
		return sma.Args.StrKwArg(name)
	}

	return defaultValue
}

// BoolKwArg returns the named keyword argument, or defaultValue when it was
// not supplied.
func (sma *SafeMethodArgs) BoolKwArg(name string, defaultValue bool) bool {
	if sma.Exists(name) {
		return sma.Args.BoolKwArg(name)
	}

	return defaultValue
}
