package command

import (
	"github.com/anoideaopen/commandline/core/stringsx"
)

// Option is a single option token of a command.
type Option struct {
	Raw      string // Token as supplied.
	Name     string // Option name; empty for positional tokens.
	Value    string // Text after the separator, or the whole token for positional tokens.
	HasValue bool   // False for flags such as /Verbose.
}

// IsPositional reports whether the token is a bare value rather than a named option.
func (o Option) IsPositional() bool {
	return o.Name == ""
}

// IsFlag reports whether the token is a named option without a value.
func (o Option) IsFlag() bool {
	return o.Name != "" && !o.HasValue
}

// ParseOption parses a token with the given syntax. Tokens that do not start with a
// prefix followed by an identifier are positional, so "/tmp/file" is a value.
func ParseOption(token string, syntax Syntax) Option {
	syntax = syntax.orDefault()

	positional := Option{Raw: token, Value: token, HasValue: true}

	prefix, ok := stringsx.LongestPrefix(token, syntax.Prefixes...)
	if !ok {
		return positional
	}

	name, value, hasValue := stringsx.CutFirst(token[len(prefix):], syntax.Separators...)
	if !stringsx.IsIdentifier(name) {
		return positional
	}

	return Option{
		Raw:      token,
		Name:     name,
		Value:    value,
		HasValue: hasValue,
	}
}
