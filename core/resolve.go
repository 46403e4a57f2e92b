package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anoideaopen/commandline/core/command"
	"github.com/anoideaopen/commandline/core/routing"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSuggestions = 3

// FindSuitableMethods returns the methods of types that the command may refer to.
//
// If the command is qualified, only the type with that name is searched. Methods
// declaring an alias are matched by the alias alone. Methods without an alias are
// matched by name, and only when no alias matched. Several results are overloads
// of one command; the binder picks one of them.
func FindSuitableMethods(cmd *command.Command, types ...*routing.Type) ([]*routing.Method, error) {
	if len(types) == 0 {
		return nil, ErrNoCandidateTypes
	}
	if cmd == nil {
		return nil, command.ErrMissingCommand
	}

	for i, t := range types {
		if t == nil {
			return nil, fmt.Errorf("%w: position %d", routing.ErrNilType, i)
		}
		if err := t.Err(); err != nil {
			return nil, err
		}
	}

	scope := types
	if cmd.TypeName() != "" {
		scope = nil
		for _, t := range types {
			if routing.SameName(t.Name(), cmd.TypeName()) {
				scope = append(scope, t)
			}
		}
		if len(scope) == 0 {
			return nil, unknownType(cmd)
		}
	}

	var aliased, named []*routing.Method
	for _, t := range scope {
		for _, m := range t.Methods() {
			switch {
			case m.Alias != "":
				if routing.SameName(m.Alias, cmd.Name()) {
					aliased = append(aliased, m)
				}
			case routing.SameName(m.Name, cmd.Name()):
				named = append(named, m)
			}
		}
	}

	if len(aliased) > 0 {
		return aliased, nil
	}
	if len(named) > 0 {
		return named, nil
	}

	return nil, noMatchingMethod(cmd, scope)
}

func unknownType(cmd *command.Command) error {
	return fmt.Errorf("%w: %s: type '%s' is not registered", ErrNoMatchingMethod, cmd, cmd.TypeName())
}

func noMatchingMethod(cmd *command.Command, scope []*routing.Type) error {
	suggestions := suggest(cmd.Name(), scope)
	if len(suggestions) == 0 {
		return fmt.Errorf("%w: %s", ErrNoMatchingMethod, cmd)
	}

	return fmt.Errorf("%w: %s, did you mean %s?",
		ErrNoMatchingMethod, cmd, strings.Join(suggestions, ", "))
}

// suggest returns the qualified names of the registered commands closest to name.
func suggest(name string, scope []*routing.Type) []string {
	var (
		seen      = make(map[string]struct{})
		names     = make([]string, 0)
		qualified = make([]string, 0)
	)
	for _, t := range scope {
		for _, m := range t.Methods() {
			q := t.Name() + "." + m.CommandName()
			if _, ok := seen[q]; ok {
				continue
			}
			seen[q] = struct{}{}
			names = append(names, m.CommandName())
			qualified = append(qualified, q)
		}
	}

	ranks := fuzzy.RankFindFold(name, names)
	sort.Sort(ranks)

	suggestions := make([]string, 0, maxSuggestions)
	for _, rank := range ranks {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, qualified[rank.OriginalIndex])
	}

	return suggestions
}
