package routing

import (
	"fmt"
	"reflect"
	"strings"

	corereflect "github.com/anoideaopen/commandline/core/routing/reflect"
	"github.com/anoideaopen/commandline/core/stringsx"
)

// Type is a candidate type: a named search scope for commands together with the
// constructors, methods and properties registered on it.
//
// A Type is built with NewType and the chained registration methods. Registration
// problems do not panic; the first one is kept and reported by Err, by NewRegistry
// and by the dispatcher.
type Type struct {
	name         string
	ptrType      reflect.Type
	defaultCtor  *Constructor
	constructors []*Constructor
	methods      []*Method
	properties   []Property
	err          error
}

// NewType creates a candidate type for T named name. An empty name uses the Go type name.
// The default constructor is new(T) until a parameterless constructor is registered.
func NewType[T any](name string) *Type {
	ptrType := reflect.TypeOf((*T)(nil))
	if name == "" {
		name = ptrType.Elem().Name()
	}

	t := &Type{
		name:    name,
		ptrType: ptrType,
		defaultCtor: &Constructor{
			fn: reflect.ValueOf(func() *T { return new(T) }),
		},
	}

	if !stringsx.IsIdentifier(name) {
		t.fail(fmt.Errorf("%w: type '%s'", ErrInvalidName, name))
	}

	return t
}

// Name returns the qualifying name of the type.
func (t *Type) Name() string {
	return t.name
}

// Err returns the first registration error, if any.
func (t *Type) Err() error {
	return t.err
}

// Methods returns the registered methods in registration order.
func (t *Type) Methods() []*Method {
	return append([]*Method(nil), t.methods...)
}

// Constructors returns the registered constructors that take parameters, in registration order.
func (t *Type) Constructors() []*Constructor {
	return append([]*Constructor(nil), t.constructors...)
}

// DefaultConstructor returns the parameterless constructor, or nil if it was removed.
func (t *Type) DefaultConstructor() *Constructor {
	return t.defaultCtor
}

// Properties returns the registered properties.
func (t *Type) Properties() []Property {
	return append([]Property(nil), t.properties...)
}

// Constructor registers a constructor. fn must return *T or (*T, error) and take
// exactly the declared params. A constructor without params replaces the default one.
func (t *Type) Constructor(fn any, params ...Param) *Type {
	if t.err != nil {
		return t
	}

	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		return t.fail(fmt.Errorf("%w: constructor of %s: %T", ErrNotAFunction, t.name, fn))
	}

	fnType := fnValue.Type()
	if !returnsInstance(fnType, t.ptrType) {
		return t.fail(fmt.Errorf("%w: %s: %s must return %s or (%s, error)",
			ErrInvalidConstructor, t.name, fnType, t.ptrType, t.ptrType))
	}

	bound, err := bindParamTypes(fnType, 0, params)
	if err != nil {
		return t.fail(fmt.Errorf("constructor of %s: %w", t.name, err))
	}

	ctor := &Constructor{Params: bound, fn: fnValue}
	if ctor.IsDefault() {
		t.defaultCtor = ctor
		return t
	}

	t.constructors = append(t.constructors, ctor)
	return t
}

// NoDefaultConstructor removes the default constructor. Instance methods then run
// only when one of the registered constructors matches the supplied options.
func (t *Type) NoDefaultConstructor() *Type {
	t.defaultCtor = nil
	return t
}

// Method registers the exported method goName of *T as a command. A first parameter
// of type context.Context receives the dispatch context and is not declared.
func (t *Type) Method(goName string, opts ...MethodOption) *Type {
	if t.err != nil {
		return t
	}

	goMethod, ok := t.ptrType.MethodByName(goName)
	if !ok {
		available := corereflect.Methods(reflect.Zero(t.ptrType).Interface())
		return t.fail(fmt.Errorf("%w: %s.%s (exported: %s)",
			ErrMethodNotFound, t.name, goName, strings.Join(available, ", ")))
	}

	return t.add(goName, goMethod.Func, false, 1, opts)
}

// Static registers fn as a static command of the type named name.
func (t *Type) Static(name string, fn any, opts ...MethodOption) *Type {
	if t.err != nil {
		return t
	}

	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		return t.fail(fmt.Errorf("%w: static %s.%s: %T", ErrNotAFunction, t.name, name, fn))
	}

	return t.add(name, fnValue, true, 0, opts)
}

// Property registers the exported field of T as a property bound from the option
// named like the field or like alias.
func (t *Type) Property(field, alias string) *Type {
	if t.err != nil {
		return t
	}

	if alias != "" && !stringsx.IsIdentifier(alias) {
		return t.fail(fmt.Errorf("%w: property %s.%s alias '%s'", ErrInvalidName, t.name, field, alias))
	}

	fieldType, err := corereflect.FieldType(t.ptrType, field)
	if err != nil {
		return t.fail(fmt.Errorf("property of %s: %w", t.name, err))
	}

	prop := Property{Field: field, Alias: alias, Type: fieldType}
	for _, other := range t.properties {
		for _, name := range []string{prop.Field, prop.Alias} {
			if name != "" && other.Matches(name) {
				return t.fail(fmt.Errorf("%w: property '%s' of %s", ErrDuplicateParam, name, t.name))
			}
		}
	}

	t.properties = append(t.properties, prop)
	return t
}

func (t *Type) add(name string, fn reflect.Value, static bool, offset int, opts []MethodOption) *Type {
	m := &Method{
		Name:   name,
		Static: static,
		owner:  t,
		fn:     fn,
	}
	for _, opt := range opts {
		opt(m)
	}

	if !stringsx.IsIdentifier(m.Name) {
		return t.fail(fmt.Errorf("%w: method '%s' of %s", ErrInvalidName, m.Name, t.name))
	}
	if m.Alias != "" && !stringsx.IsIdentifier(m.Alias) {
		return t.fail(fmt.Errorf("%w: alias '%s' of %s.%s", ErrInvalidName, m.Alias, t.name, m.Name))
	}

	fnType := fn.Type()
	if corereflect.AcceptsContext(fnType, offset) {
		m.context = true
		offset++
	}

	bound, err := bindParamTypes(fnType, offset, m.Params)
	if err != nil {
		return t.fail(fmt.Errorf("method %s.%s: %w", t.name, m.Name, err))
	}
	m.Params = bound

	for _, other := range t.methods {
		if other.signature() == m.signature() {
			return t.fail(fmt.Errorf("%w: %s", ErrMethodAlreadyDefined, m))
		}
	}

	t.methods = append(t.methods, m)
	return t
}

func (t *Type) fail(err error) *Type {
	if t.err == nil {
		t.err = err
	}
	return t
}

func returnsInstance(fnType reflect.Type, ptrType reflect.Type) bool {
	switch fnType.NumOut() {
	case 1:
		return fnType.Out(0) == ptrType
	case 2:
		return fnType.Out(0) == ptrType && corereflect.ReturnsError(fnType)
	default:
		return false
	}
}
