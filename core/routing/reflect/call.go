package reflect

import (
	"errors"
	"fmt"
	"reflect"
)

// Error types.
var (
	ErrIncorrectArgumentCount = errors.New("incorrect number of arguments")
	ErrIncorrectArgumentType  = errors.New("incorrect argument type")
	ErrNotAFunction           = errors.New("not a function")
)

// Call invokes fn with the prepared input values using reflection. It checks that fn is a
// function, that the number of inputs matches the function's expected input parameters and
// that every input is assignable to the corresponding parameter.
//
// The function returns a slice of any type representing the output from the called function.
// Panics raised by fn are not recovered.
//
// Example:
//
//	type MyType struct {
//	    Data string
//	}
//
//	func (m *MyType) Update(data string) string {
//	    m.Data = data
//	    return fmt.Sprintf("Updated data to: %s", m.Data)
//	}
//
//	func main() {
//	    update := reflect.ValueOf((*MyType).Update)
//	    output, err := Call(update, []reflect.Value{
//	        reflect.ValueOf(&MyType{}),
//	        reflect.ValueOf("New data"),
//	    })
//	    if err != nil {
//	        log.Fatalf("Error invoking method: %v", err)
//	    }
//	    fmt.Println(output[0]) // Output: Updated data to: New data
//	}
func Call(fn reflect.Value, in []reflect.Value) ([]any, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, ErrNotAFunction
	}

	fnType := fn.Type()
	if fnType.NumIn() != len(in) {
		return nil, fmt.Errorf(
			"%w: found %d but expected %d: call %s",
			ErrIncorrectArgumentCount,
			len(in),
			fnType.NumIn(),
			fnType,
		)
	}

	for i, arg := range in {
		if !arg.IsValid() || !arg.Type().AssignableTo(fnType.In(i)) {
			return nil, fmt.Errorf("%w: call %s, argument %d", ErrIncorrectArgumentType, fnType, i)
		}
	}

	output := make([]any, fnType.NumOut())
	for i, res := range fn.Call(in) {
		output[i] = res.Interface()
	}

	return output, nil
}

// SplitError separates a trailing error result from the outputs of a function of type fnType.
// The error is returned unchanged. If the function does not return an error the outputs are
// returned as they are.
func SplitError(fnType reflect.Type, output []any) ([]any, error) {
	if !ReturnsError(fnType) || len(output) == 0 {
		return output, nil
	}

	last := output[len(output)-1]
	output = output[:len(output)-1]
	if last == nil {
		return output, nil
	}

	return output, last.(error) //nolint:forcetypeassert
}
