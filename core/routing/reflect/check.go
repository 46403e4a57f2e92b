package reflect

import (
	"fmt"
	"reflect"

	"github.com/anoideaopen/commandline/core/types"
)

// Check runs the self-validation of a parsed argument value. If the value implements
// types.Checker or types.Validator, its method is called and a failure is reported as
// ErrInvalidArgumentValue, keeping the raw option text for context.
func Check(value reflect.Value, arg string) error {
	if !value.IsValid() || !value.CanInterface() {
		return nil
	}

	iface := value.Interface()
	if value.Kind() != reflect.Pointer && value.CanAddr() {
		iface = value.Addr().Interface()
	}

	if checker, ok := iface.(types.Checker); ok {
		if err := checker.Check(); err != nil {
			return fmt.Errorf("%w: '%s': validation failed: '%v'", ErrInvalidArgumentValue, arg, err)
		}
	}

	if validator, ok := iface.(types.Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("%w: '%s': validation failed: '%v'", ErrInvalidArgumentValue, arg, err)
		}
	}

	return nil
}

// ParseArgument parses s into a value of type t and checks it.
func ParseArgument(s string, t reflect.Type) (reflect.Value, error) {
	value, err := ParseValue(s, t)
	if err != nil {
		return value, err
	}

	if err = Check(value, s); err != nil {
		return value, err
	}

	return value, nil
}
