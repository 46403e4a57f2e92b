package core

import (
	"context"
	"fmt"
	"reflect"

	corereflect "github.com/anoideaopen/commandline/core/routing/reflect"
)

// invoke calls the bound method. An error returned by the constructor or by the
// method itself is passed through unchanged.
func invoke(ctx context.Context, b *binding) ([]any, bool, error) {
	fn := b.method.Func()

	in := make([]reflect.Value, 0, len(b.args)+2)
	if !b.method.Static {
		instance, err := b.construct()
		if err != nil {
			return nil, false, err
		}
		in = append(in, instance)
	}
	if b.method.AcceptsContext() {
		in = append(in, corereflect.ContextValue(ctx))
	}
	in = append(in, b.args...)

	output, err := corereflect.Call(fn, in)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", b.method, err)
	}

	output, err = corereflect.SplitError(fn.Type(), output)
	if err != nil {
		return output, false, err
	}

	success, ok := corereflect.LeadingBool(output)
	if !ok {
		success = true
	}

	return output, success, nil
}

// construct creates the receiver with the selected constructor and applies the bound properties.
func (b *binding) construct() (reflect.Value, error) {
	fn := b.ctor.Func()

	output, err := corereflect.Call(fn, b.ctorArgs)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("constructor of %s: %w", b.method.Owner().Name(), err)
	}

	if output, err = corereflect.SplitError(fn.Type(), output); err != nil {
		return reflect.Value{}, err
	}

	instance := reflect.ValueOf(output[0])
	if instance.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: constructor of %s returned nil", ErrNoConstructor, b.method.Owner().Name())
	}

	for i, bp := range b.props {
		if err = corereflect.SetField(instance, bp.property.Field, b.propValues[i]); err != nil {
			return reflect.Value{}, fmt.Errorf("%s: %w", b.method.Owner().Name(), err)
		}
	}

	return instance, nil
}
