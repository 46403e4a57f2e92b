package types

// Checker is an interface that can be implemented by argument types that can check themselves
// after they have been decoded from an option value.
type Checker interface {
	Check() error
}

// Validator is an interface that can be implemented by argument types that can validate themselves.
// Messages generated by protoc-gen-validate satisfy it.
type Validator interface {
	Validate() error
}
