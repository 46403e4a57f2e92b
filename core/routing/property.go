package routing

import "reflect"

// Property is a settable field of a registered type bound from options before a
// parameterless method runs.
type Property struct {
	Field string       // Exported struct field name.
	Alias string       // Optional option alias.
	Type  reflect.Type // Go type of the field, filled at registration.
}

// Matches reports whether the option name refers to the property by field name or alias.
func (p Property) Matches(option string) bool {
	return SameName(option, p.Field) || SameName(option, p.Alias)
}
