package core_test

import (
	"testing"

	"github.com/anoideaopen/commandline/core"
	"github.com/anoideaopen/commandline/core/command"
	"github.com/anoideaopen/commandline/mock"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *command.Command {
	t.Helper()

	cmd, err := command.FromArguments(args...)
	require.NoError(t, err)

	return cmd
}

func TestCommandCanFindNamedMethods(t *testing.T) {
	rec := &mock.Recorder{}
	cmd := parse(t, "ExampleCommandType.ExampleCommand")

	methods, err := core.FindSuitableMethods(cmd, mock.NewExampleType(rec))
	require.NoError(t, err)
	require.Len(t, methods, 2)
	for _, m := range methods {
		require.Equal(t, "ExampleCommand", m.Name)
	}

	_, err = core.FindSuitableMethods(cmd)
	require.ErrorIs(t, err, core.ErrNoCandidateTypes)
}

func TestCommandCanRun(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "ExampleCommandType.ExampleCommand"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.ExampleCommandRan)
	require.False(t, rec.ExampleCommandWithOptionsRan)
}

func TestCommandWithOptionsCanRun(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "ExampleCommandType.ExampleCommand", "/options"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.ExampleCommandWithOptionsRan)
	require.False(t, rec.ExampleCommandRan)
}

func TestStaticCommandCanRun(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "ExampleCommandType.StaticCommand"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.StaticCommandRan)
	require.False(t, rec.StaticCommandWithOptionsRan)
}

func TestStaticCommandWithOptionsCanRun(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "ExampleCommandType.StaticCommand", "/options"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.StaticCommandWithOptionsRan)
	require.False(t, rec.StaticCommandRan)
}

func TestCommandWithNameCanRun(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "NamedCommand", "/I:12"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.CommandWithNameRan)
}

func TestThePropertyCanRun(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "TestTheProperty", "/TP:12"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.TestThePropertyRan)
}

func TestTheConstructorCanRun(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "TestTheConstructor", "/tp"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.TestTheConstructorRan)
}

func TestTheConstructorIgnoresNonBooleanValue(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "TestTheConstructor", "/TP:12"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, rec.TestTheConstructorRan)
}

func TestCommandWithOptionsWinsOverProperty(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "ExampleCommandType.ExampleCommand", "/options", "/TP:12"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.ExampleCommandWithOptionsRan)
	require.False(t, rec.ExampleCommandRan)
}

func TestCommandWithOptionsWinsWithConstructorFlag(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "ExampleCommandType.ExampleCommand", "/tp", "/options"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.ExampleCommandWithOptionsRan)
	require.False(t, rec.ExampleCommandRan)
}

func TestPropertyStillBindsWithoutOptions(t *testing.T) {
	rec := &mock.Recorder{}

	ok, err := core.Run(parse(t, "ExampleCommandType.ExampleCommand", "/TP:12"), mock.NewExampleType(rec))
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, rec.ExampleCommandRan)
	require.False(t, rec.ExampleCommandWithOptionsRan)
}
