package reflect

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type counter struct {
	Count  int
	Label  string
	hidden bool //nolint:unused
}

func (c *counter) Add(n int) int {
	c.Count += n
	return c.Count
}

func (c *counter) Fail() error {
	return errors.New("failed")
}

func (c *counter) WithContext(_ context.Context, n int) (bool, error) {
	return n > 0, nil
}

func TestCall(t *testing.T) {
	c := &counter{Count: 1}

	output, err := Call(reflect.ValueOf((*counter).Add), []reflect.Value{
		reflect.ValueOf(c),
		reflect.ValueOf(2),
	})
	require.NoError(t, err)
	require.Equal(t, []any{3}, output)
	require.Equal(t, 3, c.Count)
}

func TestCallErrors(t *testing.T) {
	_, err := Call(reflect.ValueOf(42), nil)
	require.ErrorIs(t, err, ErrNotAFunction)

	_, err = Call(reflect.Value{}, nil)
	require.ErrorIs(t, err, ErrNotAFunction)

	_, err = Call(reflect.ValueOf((*counter).Add), []reflect.Value{reflect.ValueOf(&counter{})})
	require.ErrorIs(t, err, ErrIncorrectArgumentCount)

	_, err = Call(reflect.ValueOf((*counter).Add), []reflect.Value{
		reflect.ValueOf(&counter{}),
		reflect.ValueOf("2"),
	})
	require.ErrorIs(t, err, ErrIncorrectArgumentType)
}

func TestSplitError(t *testing.T) {
	fail := reflect.ValueOf((*counter).Fail)
	output, err := Call(fail, []reflect.Value{reflect.ValueOf(&counter{})})
	require.NoError(t, err)

	rest, err := SplitError(fail.Type(), output)
	require.EqualError(t, err, "failed")
	require.Empty(t, rest)

	withContext := reflect.ValueOf((*counter).WithContext)
	output, err = Call(withContext, []reflect.Value{
		reflect.ValueOf(&counter{}),
		ContextValue(context.Background()),
		reflect.ValueOf(1),
	})
	require.NoError(t, err)

	rest, err = SplitError(withContext.Type(), output)
	require.NoError(t, err)
	require.Equal(t, []any{true}, rest)

	add := reflect.ValueOf((*counter).Add)
	rest, err = SplitError(add.Type(), []any{5})
	require.NoError(t, err)
	require.Equal(t, []any{5}, rest)
}

func TestFunctionInspection(t *testing.T) {
	withContext := reflect.TypeOf((*counter).WithContext)

	require.True(t, AcceptsContext(withContext, 1))
	require.False(t, AcceptsContext(withContext, 2))
	require.False(t, AcceptsContext(withContext, 5))
	require.False(t, AcceptsContext(reflect.TypeOf(0), 0))
	require.True(t, ReturnsError(withContext))
	require.False(t, ReturnsError(reflect.TypeOf((*counter).Add)))

	require.Equal(t, []string{"Add", "Fail", "WithContext"}, Methods(&counter{}))
	require.Empty(t, Methods(nil))

	value, ok := LeadingBool([]any{true, 1})
	require.True(t, ok)
	require.True(t, value)

	_, ok = LeadingBool([]any{"true"})
	require.False(t, ok)

	require.True(t, IsBool(reflect.TypeOf(false)))
	require.True(t, IsBool(reflect.TypeOf((*bool)(nil))))
	require.False(t, IsBool(reflect.TypeOf("")))

	ctx := ContextValue(nil) //nolint:staticcheck
	require.Equal(t, reflect.Interface, ctx.Kind())
	require.NotNil(t, ctx.Interface())
}

func TestFields(t *testing.T) {
	ptrType := reflect.TypeOf((*counter)(nil))

	fieldType, err := FieldType(ptrType, "Count")
	require.NoError(t, err)
	require.Equal(t, reflect.TypeOf(0), fieldType)

	_, err = FieldType(ptrType, "Missing")
	require.ErrorIs(t, err, ErrFieldNotFound)

	_, err = FieldType(ptrType, "hidden")
	require.ErrorIs(t, err, ErrFieldNotSettable)

	_, err = FieldType(reflect.TypeOf(counter{}), "Count")
	require.ErrorIs(t, err, ErrFieldNotFound)

	c := &counter{}
	require.NoError(t, SetField(reflect.ValueOf(c), "Label", reflect.ValueOf("ready")))
	require.Equal(t, "ready", c.Label)

	err = SetField(reflect.ValueOf(c), "Label", reflect.ValueOf(1))
	require.ErrorIs(t, err, ErrIncorrectArgumentType)

	err = SetField(reflect.ValueOf(c), "Missing", reflect.ValueOf(1))
	require.ErrorIs(t, err, ErrFieldNotFound)

	err = SetField(reflect.ValueOf(c), "hidden", reflect.ValueOf(true))
	require.ErrorIs(t, err, ErrFieldNotSettable)

	err = SetField(reflect.ValueOf((*counter)(nil)), "Label", reflect.ValueOf("x"))
	require.ErrorIs(t, err, ErrFieldNotSettable)
}
