package reflect

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// Field errors.
var (
	ErrFieldNotFound    = errors.New("field not found")
	ErrFieldNotSettable = errors.New("field is not settable")
)

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
	boolType    = reflect.TypeOf(false)
)

// Methods inspects the type of the given value 'v' using reflection and returns a sorted slice of
// strings containing the names of all methods that are defined on its type. Only exported methods
// are visible to reflection.
func Methods(v any) []string {
	methodNames := make([]string, 0)

	t := reflect.TypeOf(v)
	if t == nil {
		return methodNames
	}

	for i := 0; i < t.NumMethod(); i++ {
		methodNames = append(methodNames, t.Method(i).Name)
	}

	sort.Strings(methodNames)

	return methodNames
}

// IsArgOfType checks if the i-th input parameter of the function type fnType is of type argType.
func IsArgOfType(fnType reflect.Type, i int, argType reflect.Type) bool {
	if fnType == nil || fnType.Kind() != reflect.Func {
		return false
	}

	if i < 0 || i >= fnType.NumIn() {
		return false
	}

	return fnType.In(i) == argType
}

// AcceptsContext checks if the i-th input parameter of fnType is a context.Context.
func AcceptsContext(fnType reflect.Type, i int) bool {
	return IsArgOfType(fnType, i, contextType)
}

// ContextValue wraps ctx as an input value for a context.Context parameter.
func ContextValue(ctx context.Context) reflect.Value {
	if ctx == nil {
		ctx = context.Background()
	}

	return reflect.ValueOf(&ctx).Elem()
}

// ReturnsError checks if the last return value of the function type fnType is of type error.
func ReturnsError(fnType reflect.Type) bool {
	if fnType == nil || fnType.Kind() != reflect.Func {
		return false
	}

	numOut := fnType.NumOut()
	if numOut == 0 {
		return false
	}

	return fnType.Out(numOut-1) == errorType
}

// LeadingBool returns the first output when it is a bool.
func LeadingBool(output []any) (value bool, ok bool) {
	if len(output) == 0 {
		return false, false
	}

	value, ok = output[0].(bool)
	return value, ok
}

// IsBool reports whether t is bool or a pointer to bool.
func IsBool(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t == boolType
}

// FieldType returns the type of the exported, settable field name of the struct pointed to by ptrType.
func FieldType(ptrType reflect.Type, name string) (reflect.Type, error) {
	if ptrType.Kind() != reflect.Pointer || ptrType.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s: %s is not a pointer to struct", ErrFieldNotFound, name, ptrType)
	}

	field, ok := ptrType.Elem().FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, ptrType.Elem(), name)
	}

	if !field.IsExported() {
		return nil, fmt.Errorf("%w: %s.%s is unexported", ErrFieldNotSettable, ptrType.Elem(), name)
	}

	return field.Type, nil
}

// SetField assigns value to the field name of the struct the pointer target points to.
func SetField(target reflect.Value, name string, value reflect.Value) error {
	if target.Kind() != reflect.Pointer || target.IsNil() || target.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s: target is not a pointer to struct", ErrFieldNotSettable, name)
	}

	field := target.Elem().FieldByName(name)
	if !field.IsValid() {
		return fmt.Errorf("%w: %s.%s", ErrFieldNotFound, target.Elem().Type(), name)
	}

	if !field.CanSet() {
		return fmt.Errorf("%w: %s.%s", ErrFieldNotSettable, target.Elem().Type(), name)
	}

	if !value.Type().AssignableTo(field.Type()) {
		return fmt.Errorf("%w: %s.%s: %s", ErrIncorrectArgumentType, target.Elem().Type(), name, value.Type())
	}

	field.Set(value)

	return nil
}
