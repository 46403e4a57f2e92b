package core

import "errors"

// Dispatch errors.
var (
	// ErrNoCandidateTypes is returned when a command is resolved against an empty set of types.
	ErrNoCandidateTypes = errors.New("no candidate types")

	// ErrNoMatchingMethod is returned when no registered method matches the command.
	ErrNoMatchingMethod = errors.New("no matching method")

	// ErrAmbiguousOverload is returned when several overloads fit the options equally well.
	ErrAmbiguousOverload = errors.New("ambiguous overload")

	// ErrMissingArgument is returned when a required parameter is not bound by any option.
	ErrMissingArgument = errors.New("missing argument")

	// ErrNoConstructor is returned when an instance method has no usable constructor.
	ErrNoConstructor = errors.New("no suitable constructor")
)
