package reflect

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/anoideaopen/commandline/core/stringsx"
	"github.com/anoideaopen/commandline/core/types"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// Value parsing errors.
var (
	ErrInvalidArgumentValue = errors.New("invalid argument value")
	ErrInvalidTimeSpan      = errors.New("invalid time span")
)

var (
	durationType    = reflect.TypeOf(time.Duration(0))
	stringSliceType = reflect.TypeOf([]string(nil))
)

// ParseValue converts the text of an option to a reflect.Value of the specified type.
// The function follows these steps:
//  1. time.Duration is parsed with ParseTimeSpan.
//  2. types.BytesDecoder implementations decode the raw bytes themselves.
//  3. proto.Message implementations are unmarshaled with protojson.
//  4. Strings, booleans, integers, unsigned integers, floats, empty interfaces and
//     non-JSON string slices (comma separated) are parsed directly.
//  5. Valid JSON is unmarshaled into the target.
//  6. encoding.TextUnmarshaler and encoding.BinaryUnmarshaler are tried in that order.
//  7. A ValueError is returned if none of the above succeed.
//
// Pointer types are handled by parsing into a newly allocated element.
func ParseValue(s string, t reflect.Type) (reflect.Value, error) {
	argRaw := []byte(s)
	argPointer := t.Kind() == reflect.Pointer

	var (
		argValue reflect.Value
		outValue reflect.Value
	)
	if argPointer {
		argValue = reflect.New(t.Elem())
		outValue = argValue
	} else {
		argValue = reflect.New(t)
		outValue = argValue.Elem()
	}

	target := argValue.Elem()
	if target.Type() == durationType {
		d, err := ParseTimeSpan(s)
		if err != nil {
			return outValue, NewValueError(s, t, err)
		}

		target.SetInt(int64(d))
		return outValue, nil
	}

	argInterface := argValue.Interface()

	if decoder, ok := argInterface.(types.BytesDecoder); ok {
		if err := decoder.DecodeFromBytes(argRaw); err != nil {
			return outValue, NewValueError(s, t, err)
		}

		return outValue, nil
	}

	if message, ok := argInterface.(proto.Message); ok {
		if err := protojson.Unmarshal(argRaw, message); err != nil {
			return outValue, NewValueError(s, t, err)
		}

		return outValue, nil
	}

	if handled, err := parseScalar(s, target); handled {
		if err != nil {
			return outValue, NewValueError(s, t, err)
		}

		return outValue, nil
	}

	if json.Valid(argRaw) {
		if err := json.Unmarshal(argRaw, argInterface); err != nil {
			return outValue, NewValueError(s, t, err)
		}

		return outValue, nil
	}

	if unmarshaler, ok := argInterface.(encoding.TextUnmarshaler); ok && utf8.ValidString(s) {
		if err := unmarshaler.UnmarshalText(argRaw); err != nil {
			return outValue, NewValueError(s, t, err)
		}

		return outValue, nil
	}

	if unmarshaler, ok := argInterface.(encoding.BinaryUnmarshaler); ok {
		if err := unmarshaler.UnmarshalBinary(argRaw); err != nil {
			return outValue, NewValueError(s, t, err)
		}

		return outValue, nil
	}

	return outValue, NewValueError(s, t, nil)
}

// parseScalar sets v from s when v has a kind that is parsed from plain text.
// It reports false when the kind is not handled here.
func parseScalar(s string, v reflect.Value) (bool, error) {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := ParseBool(s)
		if err != nil {
			return true, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, v.Type().Bits())
		if err != nil {
			return true, err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, v.Type().Bits())
		if err != nil {
			return true, err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), v.Type().Bits())
		if err != nil {
			return true, err
		}
		v.SetFloat(f)
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return false, nil
		}
		v.Set(reflect.ValueOf(s))
	case reflect.Slice:
		if v.Type() != stringSliceType || json.Valid([]byte(s)) {
			return false, nil
		}
		parts := strings.Split(s, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		v.Set(reflect.ValueOf(parts))
	default:
		return false, nil
	}

	return true, nil
}

// ParseBool parses a boolean option value. In addition to the forms accepted by
// strconv.ParseBool it understands yes/no and on/off, case-insensitively.
func ParseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	switch {
	case stringsx.OneOf(s, "yes", "y", "on"):
		return true, nil
	case stringsx.OneOf(s, "no", "n", "off"):
		return false, nil
	}

	return strconv.ParseBool(strings.ToLower(s))
}

// timeSpanPattern matches [-]d, or [-][d.]hh:mm[:ss[.fraction]].
var timeSpanPattern = regexp.MustCompile(
	`^(-)?(?:(\d+)|(?:(\d+)\.)?(\d{1,2}):(\d{1,2})(?::(\d{1,2})(?:\.(\d{1,9}))?)?)$`,
)

const maxTimeSpanDays = int64(math.MaxInt64) / int64(24*time.Hour)

// ParseTimeSpan parses a duration option value. Go duration strings such as
// "1h30m" are accepted first. Otherwise the value is read in time-span notation,
// where a bare integer is a number of days ("12" is twelve days) and
// "1.02:03:04.5" is one day, two hours, three minutes and 4.5 seconds.
func ParseTimeSpan(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	m := timeSpanPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeSpan, s)
	}

	days := m[2]
	if days == "" {
		days = m[3]
	}

	var (
		d   time.Duration
		err error
	)
	if d, err = addUnits(d, days, maxTimeSpanDays, 24*time.Hour); err != nil {
		return 0, fmt.Errorf("%w: %q: days: %v", ErrInvalidTimeSpan, s, err)
	}
	if d, err = addUnits(d, m[4], 23, time.Hour); err != nil {
		return 0, fmt.Errorf("%w: %q: hours: %v", ErrInvalidTimeSpan, s, err)
	}
	if d, err = addUnits(d, m[5], 59, time.Minute); err != nil {
		return 0, fmt.Errorf("%w: %q: minutes: %v", ErrInvalidTimeSpan, s, err)
	}
	if d, err = addUnits(d, m[6], 59, time.Second); err != nil {
		return 0, fmt.Errorf("%w: %q: seconds: %v", ErrInvalidTimeSpan, s, err)
	}
	if fraction := m[7]; fraction != "" {
		ns, _ := strconv.ParseInt(fraction+strings.Repeat("0", 9-len(fraction)), 10, 64)
		if ns > int64(math.MaxInt64-d) {
			return 0, fmt.Errorf("%w: %q: out of range", ErrInvalidTimeSpan, s)
		}
		d += time.Duration(ns)
	}

	if m[1] == "-" {
		d = -d
	}

	return d, nil
}

func addUnits(d time.Duration, digits string, limit int64, unit time.Duration) (time.Duration, error) {
	if digits == "" {
		return d, nil
	}

	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return d, err
	}
	if n > limit || n > int64((math.MaxInt64-d)/unit) {
		return d, fmt.Errorf("%d is out of range", n)
	}

	return d + time.Duration(n)*unit, nil
}

// ValueError is a custom error type that wraps both external and internal errors,
// providing additional context about the argument and the target type involved in the error.
type ValueError struct {
	external error
	internal error
	arg, t   string
}

// Error returns a formatted error message indicating the conversion failure.
func (e ValueError) Error() string {
	if e.external == nil {
		return fmt.Sprintf("%v: '%s': for type '%s'", e.internal, e.arg, e.t)
	}

	return fmt.Sprintf("%v: '%s': for type '%s': '%v'", e.internal, e.arg, e.t, e.external)
}

// Is checks if the target error matches the internal error.
func (e ValueError) Is(target error) bool {
	return e.internal == target
}

// Unwrap returns the external error, if any.
func (e ValueError) Unwrap() error {
	return e.external
}

// NewValueError constructs an error message for invalid argument value conversions.
func NewValueError(arg string, t reflect.Type, errOrNil error) error {
	return ValueError{
		external: errOrNil,
		internal: ErrInvalidArgumentValue,
		arg:      arg,
		t:        t.String(),
	}
}
