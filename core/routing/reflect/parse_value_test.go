package reflect

import (
	"errors"
	"math"
	"math/big"
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

type hexBytes []byte

func (h *hexBytes) DecodeFromBytes(b []byte) error {
	if len(b)%2 != 0 {
		return errors.New("odd length")
	}
	*h = append((*h)[:0], b[:len(b)/2]...)
	return nil
}

type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name   string
		arg    string
		t      reflect.Type
		want   any
		errIs  error
		errAny bool
	}{
		{name: "string", arg: "hello", t: reflect.TypeOf(""), want: "hello"},
		{name: "int", arg: "42", t: reflect.TypeOf(0), want: 42},
		{name: "negative int8", arg: "-8", t: reflect.TypeOf(int8(0)), want: int8(-8)},
		{name: "int8 overflow", arg: "300", t: reflect.TypeOf(int8(0)), errIs: ErrInvalidArgumentValue},
		{name: "uint", arg: "7", t: reflect.TypeOf(uint(0)), want: uint(7)},
		{name: "negative uint", arg: "-7", t: reflect.TypeOf(uint(0)), errIs: ErrInvalidArgumentValue},
		{name: "float", arg: "2.5", t: reflect.TypeOf(0.0), want: 2.5},
		{name: "not a number", arg: "twelve", t: reflect.TypeOf(0), errIs: ErrInvalidArgumentValue},
		{name: "bool true", arg: "true", t: reflect.TypeOf(false), want: true},
		{name: "bool yes", arg: "Yes", t: reflect.TypeOf(false), want: true},
		{name: "bool off", arg: "off", t: reflect.TypeOf(false), want: false},
		{name: "bool invalid", arg: "12", t: reflect.TypeOf(false), errIs: ErrInvalidArgumentValue},
		{name: "pointer to int", arg: "5", t: reflect.TypeOf((*int)(nil)), want: func() *int { n := 5; return &n }()},
		{name: "empty interface", arg: "raw", t: reflect.TypeOf((*any)(nil)).Elem(), want: "raw"},
		{name: "string list", arg: "a, b,c", t: reflect.TypeOf([]string(nil)), want: []string{"a", "b", "c"}},
		{name: "string list json", arg: `["a,b","c"]`, t: reflect.TypeOf([]string(nil)), want: []string{"a,b", "c"}},
		{name: "json struct", arg: `{"x":1,"y":2}`, t: reflect.TypeOf(point{}), want: point{X: 1, Y: 2}},
		{name: "json int slice", arg: `[1,2,3]`, t: reflect.TypeOf([]int(nil)), want: []int{1, 2, 3}},
		{name: "big int", arg: "123456789012345678901234567890", t: reflect.TypeOf((*big.Int)(nil)),
			want: func() *big.Int { n, _ := new(big.Int).SetString("123456789012345678901234567890", 10); return n }()},
		{name: "text unmarshaler", arg: "127.0.0.1", t: reflect.TypeOf(net.IP{}), want: net.ParseIP("127.0.0.1")},
		{name: "bytes decoder", arg: "abcd", t: reflect.TypeOf(hexBytes{}), want: hexBytes("ab")},
		{name: "bytes decoder error", arg: "abc", t: reflect.TypeOf(hexBytes{}), errIs: ErrInvalidArgumentValue},
		{name: "duration", arg: "1h30m", t: reflect.TypeOf(time.Duration(0)), want: 90 * time.Minute},
		{name: "duration in days", arg: "12", t: reflect.TypeOf(time.Duration(0)), want: 12 * 24 * time.Hour},
		{name: "duration invalid", arg: "soon", t: reflect.TypeOf(time.Duration(0)), errIs: ErrInvalidArgumentValue},
		{name: "unsupported", arg: "x", t: reflect.TypeOf(make(chan int)), errIs: ErrInvalidArgumentValue},
		{name: "invalid json", arg: `{"x":"one"}`, t: reflect.TypeOf(point{}), errAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseValue(tt.arg, tt.t)
			switch {
			case tt.errIs != nil:
				require.ErrorIs(t, err, tt.errIs)
				return
			case tt.errAny:
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.t, value.Type())
			require.Equal(t, tt.want, value.Interface())
		})
	}
}

func TestParseValueProto(t *testing.T) {
	value, err := ParseValue(`{"name":"ada","age":36}`, reflect.TypeOf((*structpb.Struct)(nil)))
	require.NoError(t, err)

	s, ok := value.Interface().(*structpb.Struct)
	require.True(t, ok)
	require.Equal(t, "ada", s.GetFields()["name"].GetStringValue())
	require.InDelta(t, 36, s.GetFields()["age"].GetNumberValue(), 0)

	_, err = ParseValue(`{"name":`, reflect.TypeOf((*structpb.Struct)(nil)))
	require.ErrorIs(t, err, ErrInvalidArgumentValue)
}

func TestParseTimeSpan(t *testing.T) {
	tests := []struct {
		arg  string
		want time.Duration
		err  bool
	}{
		{arg: "0", want: 0},
		{arg: "1", want: 24 * time.Hour},
		{arg: "-2", want: -48 * time.Hour},
		{arg: "01:30", want: 90 * time.Minute},
		{arg: "1.02:03:04", want: 26*time.Hour + 3*time.Minute + 4*time.Second},
		{arg: "00:00:01.5", want: 1500 * time.Millisecond},
		{arg: "-00:00:00.000000001", want: -time.Nanosecond},
		{arg: "250ms", want: 250 * time.Millisecond},
		{arg: " 2h ", want: 2 * time.Hour},
		{arg: "24:00", err: true},
		{arg: "00:60", err: true},
		{arg: "1.2.3", err: true},
		{arg: "", err: true},
		{arg: "99999999999", err: true},
		{arg: "106751", want: 106751 * 24 * time.Hour},
		{arg: "106751.23:47:16.854775807", want: math.MaxInt64},
		{arg: "-106751.23:47:16.854775807", want: -math.MaxInt64},
		{arg: "106751.23:47:16.854775808", err: true},
		{arg: "106751.23:47:17", err: true},
		{arg: "106751.23:59:59", err: true},
		{arg: "-106751.23:59:59", err: true},
		{arg: "106752", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			d, err := ParseTimeSpan(tt.arg)
			if tt.err {
				require.ErrorIs(t, err, ErrInvalidTimeSpan)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, d)
		})
	}
}

func TestValueError(t *testing.T) {
	cause := errors.New("boom")
	err := NewValueError("x", reflect.TypeOf(0), cause)

	require.ErrorIs(t, err, ErrInvalidArgumentValue)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "invalid argument value: 'x': for type 'int': 'boom'", err.Error())

	err = NewValueError("y", reflect.TypeOf(""), nil)
	require.Equal(t, "invalid argument value: 'y': for type 'string'", err.Error())
}
