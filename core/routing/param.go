package routing

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/commandline/core/stringsx"
)

// Param describes a declared parameter of a command or constructor.
type Param struct {
	Name     string       // Declared parameter name, matched against option names.
	Alias    string       // Optional alternative option name.
	Optional bool         // Unbound optional parameters take Default or the zero value.
	Default  string       // Option text coerced when an optional parameter is not bound.
	Type     reflect.Type // Go type of the parameter, filled at registration.
}

// Matches reports whether the option name refers to the parameter by name or alias.
func (p Param) Matches(option string) bool {
	return SameName(option, p.Name) || SameName(option, p.Alias)
}

// Required reports whether the parameter must be bound by an option.
func (p Param) Required() bool {
	return !p.Optional
}

// String returns the parameter as it appears in usage text.
func (p Param) String() string {
	s := p.Name
	if p.Alias != "" {
		s += "|" + p.Alias
	}
	if p.Type != nil {
		s += " " + p.Type.String()
	}
	if p.Optional {
		s = "[" + s + "]"
	}
	return s
}

// bindParamTypes validates params against the inputs of fnType starting at offset and
// returns a copy with the Go types filled in.
func bindParamTypes(fnType reflect.Type, offset int, params []Param) ([]Param, error) {
	if fnType.IsVariadic() {
		return nil, fmt.Errorf("%w: %s", ErrVariadicFunction, fnType)
	}

	if got := fnType.NumIn() - offset; got != len(params) {
		return nil, fmt.Errorf("%w: %s takes %d parameters, %d declared",
			ErrParamCountMismatch, fnType, got, len(params))
	}

	bound := make([]Param, len(params))
	seen := make(map[string]int, len(params)*2)
	for i, p := range params {
		if !stringsx.IsIdentifier(p.Name) {
			return nil, fmt.Errorf("%w: parameter %d: '%s'", ErrInvalidName, i, p.Name)
		}
		if p.Alias != "" && !stringsx.IsIdentifier(p.Alias) {
			return nil, fmt.Errorf("%w: parameter %s alias: '%s'", ErrInvalidName, p.Name, p.Alias)
		}

		for _, name := range []string{p.Name, p.Alias} {
			if name == "" {
				continue
			}
			if j, ok := seen[Key(name)]; ok && j != i {
				return nil, fmt.Errorf("%w: '%s' of %s and %s", ErrDuplicateParam, name, params[j].Name, p.Name)
			}
			seen[Key(name)] = i
		}

		p.Type = fnType.In(i + offset)
		bound[i] = p
	}

	return bound, nil
}
