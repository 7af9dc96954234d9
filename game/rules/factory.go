package rules

import (
	"errors"
	"fmt"
	"sort"
)

// Registry names for the built-in rules. Puzzle configuration files refer
// to rules by these names.
const (
	RuleRowSum    = "RowSumRule"
	RuleColumnSum = "ColumnSumRule"
)

var ErrUnknownRule = errors.New("unknown rule")

var registry = map[string]func() Rule{
	RuleRowSum:    func() Rule { return NewRowSumRule() },
	RuleColumnSum: func() Rule { return NewColumnSumRule() },
}

// NewRuleByName resolves a configured rule name to a ready-to-use rule
// instance. Unresolved names return ErrUnknownRule.
func NewRuleByName(name string) (Rule, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return ctor(), nil
}

// NewGameRulesByNames resolves a list of configured rule names into a
// GameRules set, preserving order. The first unresolved name aborts the
// whole set.
func NewGameRulesByNames(names []string) (*GameRules, error) {
	resolved := make([]Rule, 0, len(names))
	for _, name := range names {
		r, err := NewRuleByName(name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	return NewGameRules(resolved...), nil
}

// KnownRules returns the sorted names of all registered rules.
func KnownRules() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnownRule reports whether a rule name resolves to an implementation.
func IsKnownRule(name string) bool {
	_, ok := registry[name]
	return ok
}
