package routing

import "fmt"

// Registry is a read-only set of candidate types with unique names.
type Registry struct {
	types  []*Type
	byName map[string]*Type
}

// NewRegistry creates a Registry from the given types. It returns the first
// registration error carried by a type, ErrNilType for a nil type and
// ErrTypeAlreadyDefined when two types share a name.
func NewRegistry(types ...*Type) (*Registry, error) {
	r := &Registry{
		types:  make([]*Type, 0, len(types)),
		byName: make(map[string]*Type, len(types)),
	}

	for i, t := range types {
		if t == nil {
			return nil, fmt.Errorf("%w: position %d", ErrNilType, i)
		}

		if err := t.Err(); err != nil {
			return nil, err
		}

		key := Key(t.Name())
		if _, ok := r.byName[key]; ok {
			return nil, fmt.Errorf("%w, type: '%s'", ErrTypeAlreadyDefined, t.Name())
		}

		r.byName[key] = t
		r.types = append(r.types, t)
	}

	return r, nil
}

// MustNewRegistry creates a new Registry with the given types and panics if
// an error occurs.
func MustNewRegistry(types ...*Type) *Registry {
	r, err := NewRegistry(types...)
	if err != nil {
		panic(err)
	}

	return r
}

// Types returns the registered types in registration order.
func (r *Registry) Types() []*Type {
	if r == nil {
		return nil
	}
	return append([]*Type(nil), r.types...)
}

// Lookup returns the type with the given name, ignoring case.
func (r *Registry) Lookup(name string) (*Type, bool) {
	if r == nil {
		return nil, false
	}
	t, ok := r.byName[Key(name)]
	return t, ok
}
