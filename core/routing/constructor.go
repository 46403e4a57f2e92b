package routing

import "reflect"

// Constructor builds an instance of a registered type.
type Constructor struct {
	Params []Param // Declared parameters, bound from options like method parameters.

	fn reflect.Value // Returns *T or (*T, error).
}

// Func returns the constructor function.
func (c *Constructor) Func() reflect.Value {
	return c.fn
}

// IsDefault reports whether the constructor takes no parameters.
func (c *Constructor) IsDefault() bool {
	return len(c.Params) == 0
}
