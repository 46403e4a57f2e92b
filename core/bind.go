package core

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/anoideaopen/commandline/core/command"
	"github.com/anoideaopen/commandline/core/routing"
	corereflect "github.com/anoideaopen/commandline/core/routing/reflect"
)

// optionSet indexes the option tokens of a command for binding.
type optionSet struct {
	options    []command.Option
	named      map[string]int // option key -> index of its last occurrence
	positional []int
}

func newOptionSet(options []command.Option) *optionSet {
	s := &optionSet{
		options: options,
		named:   make(map[string]int, len(options)),
	}

	for i, opt := range options {
		if opt.IsPositional() {
			s.positional = append(s.positional, i)
			continue
		}
		s.named[routing.Key(opt.Name)] = i
	}

	return s
}

// lookup returns the index of the last option called by any of names that is not used yet.
func (s *optionSet) lookup(used map[int]bool, names ...string) (int, bool) {
	found := -1
	for _, name := range names {
		if name == "" {
			continue
		}
		if i, ok := s.named[routing.Key(name)]; ok && !used[i] && i > found {
			found = i
		}
	}

	return found, found >= 0
}

// text returns the text of option i to be coerced to t. A flag reads as "true"
// for boolean targets and as an empty string otherwise.
func (s *optionSet) text(i int, t reflect.Type) string {
	opt := s.options[i]
	if !opt.IsFlag() {
		return opt.Value
	}
	if corereflect.IsBool(t) {
		return "true"
	}
	return ""
}

type boundParam struct {
	param routing.Param
	token int // -1 when no option is bound
}

type boundProperty struct {
	property routing.Property
	token    int
}

// binding is the plan for calling one candidate method with the options of a command.
type binding struct {
	method   *routing.Method
	ctor     *routing.Constructor
	ctorArgs []reflect.Value
	params   []boundParam
	props    []boundProperty
	consumed int // tokens bound to the constructor and parameters

	args       []reflect.Value
	propValues []reflect.Value
}

// bind selects the overload that fits the options best and coerces its arguments.
func bind(methods []*routing.Method, options []command.Option) (*binding, error) {
	s := newOptionSet(options)

	b, err := selectOverload(methods, s)
	if err != nil {
		return nil, err
	}

	if err = b.coerce(s); err != nil {
		return nil, err
	}

	return b, nil
}

func selectOverload(methods []*routing.Method, s *optionSet) (*binding, error) {
	var (
		plans    = make([]*binding, 0, len(methods))
		rejected = make([]error, 0)
	)
	for _, m := range methods {
		b, err := plan(m, s)
		if err != nil {
			rejected = append(rejected, err)
			continue
		}
		plans = append(plans, b)
	}

	if len(plans) == 0 {
		for _, err := range rejected {
			if !errors.Is(err, ErrMissingArgument) {
				return nil, err
			}
		}
		if len(rejected) == 1 {
			return nil, fmt.Errorf("%w: %w", ErrNoMatchingMethod, rejected[0])
		}
		return nil, fmt.Errorf("%w: %w (and %d more overloads)", ErrNoMatchingMethod, rejected[0], len(rejected)-1)
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].better(plans[j])
	})

	best := plans[0]
	tied := []string{best.method.String()}
	for _, other := range plans[1:] {
		if best.better(other) {
			break
		}
		tied = append(tied, other.method.String())
	}
	if len(tied) > 1 {
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousOverload, strings.Join(tied, ", "))
	}

	return best, nil
}

// better reports whether b binds more option tokens to its constructor and parameters than
// other, or as many with fewer parameters.
func (b *binding) better(other *binding) bool {
	if b.consumed != other.consumed {
		return b.consumed > other.consumed
	}
	return len(b.method.Params) < len(other.method.Params)
}

// plan matches the options of a command to the constructor, parameters and properties of m
// without coercing method arguments. It fails with ErrMissingArgument when a required
// parameter stays unbound.
func plan(m *routing.Method, s *optionSet) (*binding, error) {
	b := &binding{method: m}
	used := make(map[int]bool)

	if !m.Static {
		if err := b.selectConstructor(m.Owner(), s, used); err != nil {
			return nil, err
		}
	}

	b.params = make([]boundParam, len(m.Params))
	unbound := make([]int, 0, len(m.Params))
	for i, p := range m.Params {
		b.params[i] = boundParam{param: p, token: -1}
		if token, ok := s.lookup(used, p.Alias, p.Name); ok {
			b.params[i].token = token
			used[token] = true
			continue
		}
		unbound = append(unbound, i)
	}

	positional := s.positional
	for _, i := range unbound {
		if len(positional) == 0 {
			break
		}
		b.params[i].token = positional[0]
		used[positional[0]] = true
		positional = positional[1:]
	}

	for _, bp := range b.params {
		if bp.token < 0 && bp.param.Required() {
			return nil, fmt.Errorf("%w: %s: parameter '%s'", ErrMissingArgument, m, bp.param.Name)
		}
	}

	// Property tokens do not rank overloads: only parameterless methods bind them.
	b.consumed = len(used)

	if !m.Static && len(m.Params) == 0 {
		for _, prop := range m.Owner().Properties() {
			if token, ok := s.lookup(used, prop.Alias, prop.Field); ok {
				b.props = append(b.props, boundProperty{property: prop, token: token})
				used[token] = true
			}
		}
	}

	return b, nil
}

// selectConstructor picks the registered constructor whose parameters are all bound and
// coerce, preferring the one that binds the most options. The default constructor is used
// when none applies.
func (b *binding) selectConstructor(t *routing.Type, s *optionSet, used map[int]bool) error {
	var (
		best       *routing.Constructor
		bestArgs   []reflect.Value
		bestTokens []int
	)
	for _, ctor := range t.Constructors() {
		args, tokens, ok := bindConstructor(ctor, s, used)
		if !ok {
			continue
		}
		if len(tokens) == 0 && t.DefaultConstructor() != nil {
			continue
		}
		if best == nil || len(tokens) > len(bestTokens) {
			best, bestArgs, bestTokens = ctor, args, tokens
		}
	}

	if best == nil {
		best = t.DefaultConstructor()
		if best == nil {
			return fmt.Errorf("%w: %s accepts none of the options", ErrNoConstructor, t.Name())
		}
	}

	b.ctor, b.ctorArgs = best, bestArgs
	for _, token := range bestTokens {
		used[token] = true
	}

	return nil
}

func bindConstructor(ctor *routing.Constructor, s *optionSet, used map[int]bool) ([]reflect.Value, []int, bool) {
	args := make([]reflect.Value, len(ctor.Params))
	tokens := make([]int, 0, len(ctor.Params))
	for i, p := range ctor.Params {
		token, ok := s.lookup(used, p.Alias, p.Name)
		if !ok {
			if p.Required() {
				return nil, nil, false
			}
			value, err := defaultValue(p)
			if err != nil {
				return nil, nil, false
			}
			args[i] = value
			continue
		}

		value, err := corereflect.ParseArgument(s.text(token, p.Type), p.Type)
		if err != nil {
			return nil, nil, false
		}
		args[i] = value
		tokens = append(tokens, token)
	}

	return args, tokens, true
}

// coerce converts the bound options of the selected plan to argument and property values.
// A failure is returned as is; other overloads are not tried.
func (b *binding) coerce(s *optionSet) error {
	b.args = make([]reflect.Value, len(b.params))
	for i, bp := range b.params {
		if bp.token < 0 {
			value, err := defaultValue(bp.param)
			if err != nil {
				return fmt.Errorf("%s: %w", b.method, err)
			}
			b.args[i] = value
			continue
		}

		value, err := corereflect.ParseArgument(s.text(bp.token, bp.param.Type), bp.param.Type)
		if err != nil {
			return fmt.Errorf("%s: parameter '%s': %w", b.method, bp.param.Name, err)
		}
		b.args[i] = value
	}

	b.propValues = make([]reflect.Value, len(b.props))
	for i, bp := range b.props {
		value, err := corereflect.ParseArgument(s.text(bp.token, bp.property.Type), bp.property.Type)
		if err != nil {
			return fmt.Errorf("%s: property '%s': %w", b.method.Owner().Name(), bp.property.Field, err)
		}
		b.propValues[i] = value
	}

	return nil
}

func defaultValue(p routing.Param) (reflect.Value, error) {
	if p.Default == "" {
		return reflect.Zero(p.Type), nil
	}

	value, err := corereflect.ParseArgument(p.Default, p.Type)
	if err != nil {
		return value, fmt.Errorf("default of parameter '%s': %w", p.Name, err)
	}

	return value, nil
}
