package command

import (
	"fmt"
	"strings"

	"github.com/anoideaopen/commandline/core/stringsx"
	"github.com/mattn/go-shellwords"
)

// Command is a parsed command descriptor: an optional qualifying type name, the
// command name and the option tokens in order. It is immutable after parsing.
type Command struct {
	typeName string
	name     string
	options  []Option
}

// FromArguments parses the raw argument sequence with DefaultSyntax. The first
// argument is TypeName.MethodName or MethodName; the rest are option tokens.
func FromArguments(args ...string) (*Command, error) {
	return Parse(args, DefaultSyntax)
}

// FromLine splits line into arguments using shell quoting rules and parses them
// with the given syntax.
func FromLine(line string, syntax Syntax) (*Command, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLine, err)
	}

	return Parse(args, syntax)
}

// Parse parses the raw argument sequence with the given syntax.
func Parse(args []string, syntax Syntax) (*Command, error) {
	syntax = syntax.orDefault()

	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return nil, ErrMissingCommand
	}

	typeName, name, err := splitCommand(strings.TrimSpace(args[0]), syntax)
	if err != nil {
		return nil, err
	}

	options := make([]Option, 0, len(args)-1)
	for _, token := range args[1:] {
		options = append(options, ParseOption(token, syntax))
	}

	return &Command{
		typeName: typeName,
		name:     name,
		options:  options,
	}, nil
}

// splitCommand splits the command token on its last dot. The qualifier may itself be dotted.
func splitCommand(token string, syntax Syntax) (typeName, name string, err error) {
	if _, ok := stringsx.LongestPrefix(token, syntax.Prefixes...); ok {
		return "", "", fmt.Errorf("%w: '%s' is an option, not a command", ErrMalformedCommand, token)
	}

	name = token
	if i := strings.LastIndex(token, "."); i >= 0 {
		typeName, name = token[:i], token[i+1:]
		for _, part := range strings.Split(typeName, ".") {
			if !stringsx.IsIdentifier(part) {
				return "", "", fmt.Errorf("%w: '%s': invalid type name", ErrMalformedCommand, token)
			}
		}
	}

	if !stringsx.IsIdentifier(name) {
		return "", "", fmt.Errorf("%w: '%s': invalid command name", ErrMalformedCommand, token)
	}

	return typeName, name, nil
}

// TypeName returns the qualifying type name, or an empty string for a bare command.
func (c *Command) TypeName() string {
	return c.typeName
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.name
}

// Options returns a copy of the option tokens.
func (c *Command) Options() []Option {
	return append(make([]Option, 0, len(c.options)), c.options...)
}

// String returns the command token, e.g. "ExampleType.Foo".
func (c *Command) String() string {
	if c.typeName == "" {
		return c.name
	}
	return c.typeName + "." + c.name
}
