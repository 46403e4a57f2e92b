package routing

import (
	"reflect"
	"strings"
)

// Method is a candidate method: a command exposed by a registered type.
type Method struct {
	Name        string  // Declared name; the Go method name unless overridden with Named.
	Alias       string  // Explicit command name; when set it replaces Name for matching.
	Description string  // Short help text.
	Static      bool    // Static methods are called without an instance.
	Params      []Param // Declared parameters in call order.

	owner   *Type
	fn      reflect.Value // Static function, or method expression taking the receiver first.
	context bool          // The first non-receiver input is a context.Context.
}

// MethodOption configures a Method at registration.
type MethodOption func(m *Method)

// Named overrides the declared name of a method. Go has no overloading, so
// overloads of one command are registered as differently named Go methods
// that share a declared name.
func Named(name string) MethodOption {
	return func(m *Method) {
		m.Name = name
	}
}

// Alias sets the explicit command name of a method.
func Alias(alias string) MethodOption {
	return func(m *Method) {
		m.Alias = alias
	}
}

// Describe sets the help text of a method.
func Describe(description string) MethodOption {
	return func(m *Method) {
		m.Description = description
	}
}

// Params declares the parameters of a method in call order.
func Params(params ...Param) MethodOption {
	return func(m *Method) {
		m.Params = params
	}
}

// Owner returns the type the method is registered on.
func (m *Method) Owner() *Type {
	return m.owner
}

// CommandName returns the name the method is invoked by: its alias if declared, otherwise its name.
func (m *Method) CommandName() string {
	if m.Alias != "" {
		return m.Alias
	}
	return m.Name
}

// Func returns the function called for the method.
func (m *Method) Func() reflect.Value {
	return m.fn
}

// AcceptsContext reports whether the method receives the dispatch context.
func (m *Method) AcceptsContext() bool {
	return m.context
}

// String returns a usage line for the method, e.g. "ExampleType.Foo(Count int)".
func (m *Method) String() string {
	params := make([]string, len(m.Params))
	for i, p := range m.Params {
		params[i] = p.String()
	}

	var owner string
	if m.owner != nil {
		owner = m.owner.Name() + "."
	}

	return owner + m.CommandName() + "(" + strings.Join(params, ", ") + ")"
}

// signature is the identity of a method for duplicate detection.
func (m *Method) signature() string {
	keys := make([]string, 0, len(m.Params)+1)
	keys = append(keys, Key(m.CommandName()))
	for _, p := range m.Params {
		keys = append(keys, Key(p.Name))
	}
	return strings.Join(keys, ",")
}
