package command

import "errors"

// Parsing errors.
var (
	// ErrMissingCommand is returned when no command token is supplied.
	ErrMissingCommand = errors.New("missing command")

	// ErrMalformedCommand is returned when the command token is not TypeName.MethodName or MethodName.
	ErrMalformedCommand = errors.New("malformed command")

	// ErrInvalidLine is returned when a command line cannot be split into arguments.
	ErrInvalidLine = errors.New("invalid command line")
)
