package routing

import "errors"

// Registration errors.
var (
	// ErrInvalidName is returned when a type, command, parameter or property name is not an identifier.
	ErrInvalidName = errors.New("invalid name")

	// ErrMethodNotFound is returned when a registered method does not exist on the type.
	ErrMethodNotFound = errors.New("method not found")

	// ErrNotAFunction is returned when a static method or constructor is not a function.
	ErrNotAFunction = errors.New("not a function")

	// ErrVariadicFunction is returned when a registered function is variadic.
	ErrVariadicFunction = errors.New("variadic functions are not supported")

	// ErrParamCountMismatch is returned when the declared parameters do not match the Go signature.
	ErrParamCountMismatch = errors.New("declared parameters do not match signature")

	// ErrDuplicateParam is returned when two parameters or properties share a name or alias.
	ErrDuplicateParam = errors.New("duplicate parameter")

	// ErrInvalidConstructor is returned when a constructor does not return the type's pointer.
	ErrInvalidConstructor = errors.New("invalid constructor")

	// ErrMethodAlreadyDefined is returned when a method with the same name and parameters is registered twice.
	ErrMethodAlreadyDefined = errors.New("method has already defined")

	// ErrTypeAlreadyDefined is returned when two types in a registry share a name.
	ErrTypeAlreadyDefined = errors.New("type has already defined")

	// ErrNilType is returned when a nil type is added to a registry.
	ErrNilType = errors.New("nil type")
)
