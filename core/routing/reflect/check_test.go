package reflect

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type port int

func (p *port) Check() error {
	if *p <= 0 || *p > 65535 {
		return errors.New("port out of range")
	}
	return nil
}

type nickname string

func (n nickname) Validate() error {
	if n == "" {
		return errors.New("empty name")
	}
	return nil
}

func TestParseArgument(t *testing.T) {
	value, err := ParseArgument("8080", reflect.TypeOf(port(0)))
	require.NoError(t, err)
	require.Equal(t, port(8080), value.Interface())

	_, err = ParseArgument("70000", reflect.TypeOf(port(0)))
	require.ErrorIs(t, err, ErrInvalidArgumentValue)
	require.ErrorContains(t, err, "port out of range")

	_, err = ParseArgument("http", reflect.TypeOf(port(0)))
	require.ErrorIs(t, err, ErrInvalidArgumentValue)

	value, err = ParseArgument("ada", reflect.TypeOf(nickname("")))
	require.NoError(t, err)
	require.Equal(t, nickname("ada"), value.Interface())

	_, err = ParseArgument("", reflect.TypeOf(nickname("")))
	require.ErrorIs(t, err, ErrInvalidArgumentValue)
}

func TestCheckInvalidValue(t *testing.T) {
	require.NoError(t, Check(reflect.Value{}, ""))
	require.NoError(t, Check(reflect.ValueOf(3), "3"))
}
