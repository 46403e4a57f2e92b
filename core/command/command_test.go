package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromArguments(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		typeName string
		command  string
		options  []Option
		err      error
	}{
		{
			name:     "qualified command",
			args:     []string{"ExampleCommandType.ExampleCommand"},
			typeName: "ExampleCommandType",
			command:  "ExampleCommand",
			options:  []Option{},
		},
		{
			name:    "bare command with named option",
			args:    []string{"NamedCommand", "/I:12"},
			command: "NamedCommand",
			options: []Option{{Raw: "/I:12", Name: "I", Value: "12", HasValue: true}},
		},
		{
			name:    "flag option",
			args:    []string{"TestTheConstructor", "/tp"},
			command: "TestTheConstructor",
			options: []Option{{Raw: "/tp", Name: "tp"}},
		},
		{
			name:    "value keeps later separators",
			args:    []string{"Fetch", "/Url:http://localhost:8080"},
			command: "Fetch",
			options: []Option{{Raw: "/Url:http://localhost:8080", Name: "Url", Value: "http://localhost:8080", HasValue: true}},
		},
		{
			name:    "positional tokens",
			args:    []string{"Copy", "source.txt", "/tmp/target"},
			command: "Copy",
			options: []Option{
				{Raw: "source.txt", Value: "source.txt", HasValue: true},
				{Raw: "/tmp/target", Value: "/tmp/target", HasValue: true},
			},
		},
		{
			name:     "dotted qualifier",
			args:     []string{"pkg.ExampleType.Foo", "/Count:3"},
			typeName: "pkg.ExampleType",
			command:  "Foo",
			options:  []Option{{Raw: "/Count:3", Name: "Count", Value: "3", HasValue: true}},
		},
		{
			name: "no arguments",
			args: nil,
			err:  ErrMissingCommand,
		},
		{
			name: "blank command",
			args: []string{"  "},
			err:  ErrMissingCommand,
		},
		{
			name: "option instead of command",
			args: []string{"/Count:3"},
			err:  ErrMalformedCommand,
		},
		{
			name: "empty method name",
			args: []string{"ExampleType."},
			err:  ErrMalformedCommand,
		},
		{
			name: "empty type name",
			args: []string{".Foo"},
			err:  ErrMalformedCommand,
		},
		{
			name: "invalid characters",
			args: []string{"Foo(bar)"},
			err:  ErrMalformedCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := FromArguments(tt.args...)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.Nil(t, cmd)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.typeName, cmd.TypeName())
			require.Equal(t, tt.command, cmd.Name())
			require.Equal(t, tt.options, cmd.Options())
		})
	}
}

func TestParseWithSyntax(t *testing.T) {
	syntax := Syntax{
		Prefixes:   []string{"/", "-", "--"},
		Separators: []string{":", "="},
	}

	cmd, err := Parse([]string{"Deploy", "--env=prod", "-v", "/Region:eu", "-5"}, syntax)
	require.NoError(t, err)
	require.Equal(t, []Option{
		{Raw: "--env=prod", Name: "env", Value: "prod", HasValue: true},
		{Raw: "-v", Name: "v"},
		{Raw: "/Region:eu", Name: "Region", Value: "eu", HasValue: true},
		{Raw: "-5", Value: "-5", HasValue: true},
	}, cmd.Options())
}

func TestFromLine(t *testing.T) {
	cmd, err := FromLine(`Greeter.Hello /Name:"Ada Lovelace" '/Note:two words'`, DefaultSyntax)
	require.NoError(t, err)
	require.Equal(t, "Greeter", cmd.TypeName())
	require.Equal(t, "Hello", cmd.Name())

	options := cmd.Options()
	require.Len(t, options, 2)
	require.Equal(t, "Ada Lovelace", options[0].Value)
	require.Equal(t, "two words", options[1].Value)

	_, err = FromLine(`Greeter.Hello "unterminated`, DefaultSyntax)
	require.ErrorIs(t, err, ErrInvalidLine)

	_, err = FromLine("", DefaultSyntax)
	require.ErrorIs(t, err, ErrMissingCommand)
}

func TestOptionsAreCopied(t *testing.T) {
	cmd, err := FromArguments("Foo", "/Count:3")
	require.NoError(t, err)

	options := cmd.Options()
	options[0].Value = "4"

	require.Equal(t, "3", cmd.Options()[0].Value)
	require.Equal(t, "Foo", cmd.String())
}

func TestOptionsWithoutTokens(t *testing.T) {
	cmd, err := FromArguments("ExampleType.Foo")
	require.NoError(t, err)
	require.NotNil(t, cmd.Options())
	require.Empty(t, cmd.Options())
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		token      string
		positional bool
		flag       bool
	}{
		{token: "/Verbose", flag: true},
		{token: "/Count:3"},
		{token: "/Name:", positional: false},
		{token: "/", positional: true},
		{token: "/:value", positional: true},
		{token: "value", positional: true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			opt := ParseOption(tt.token, DefaultSyntax)
			require.Equal(t, tt.positional, opt.IsPositional())
			require.Equal(t, tt.flag, opt.IsFlag())
			require.Equal(t, tt.token, opt.Raw)
		})
	}
}
