package engine

import (
	"fmt"

	"github.com/alexanderramin/intake/internal/domain"
)

// predicate is a single named clause evaluated against a profile snapshot.
type predicate func(domain.ProfileMap) bool

// Applies reports whether a question's condition holds against the given
// profile snapshot. Pure: no side effects, total for any well-formed
// condition. Clause precedence is fixed:
//
//	always            -> true, short-circuits everything
//	channelsAny       -> AND-gate, early reject
//	typeAny           -> AND-gate, early reject
//	integrationsAny   -> AND-gate over field checks
//	any               -> OR-override: when present, the final result is the
//	                     OR over its checks even if every gate passed
//
// A condition with no recognized clause is permissive and evaluates true.
func Applies(cond domain.Condition, profile domain.ProfileMap) bool {
	if cond.Always {
		return true
	}

	gates := allOf(
		channelsAnyGate(cond.ChannelsAny),
		typeAnyGate(cond.TypeAny),
		fieldChecksGate(cond.IntegrationsAny),
	)
	if !gates(profile) {
		return false
	}

	if len(cond.Any) > 0 {
		return anyOf(cond.Any)(profile)
	}
	return true
}

// allOf combines predicates into a single AND-gate.
func allOf(preds ...predicate) predicate {
	return func(p domain.ProfileMap) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// anyOf builds the OR-override over a condition's `any` checks.
func anyOf(checks []domain.FieldCheck) predicate {
	return func(p domain.ProfileMap) bool {
		for _, c := range checks {
			if fieldCheckHolds(c, p) {
				return true
			}
		}
		return false
	}
}

func channelsAnyGate(channels []string) predicate {
	return func(p domain.ProfileMap) bool {
		if len(channels) == 0 {
			return true
		}
		return intersects(p.Channels(), channels)
	}
}

func typeAnyGate(types []string) predicate {
	return func(p domain.ProfileMap) bool {
		if len(types) == 0 {
			return true
		}
		return contains(types, p.PrimaryType())
	}
}

func fieldChecksGate(checks []domain.FieldCheck) predicate {
	return func(p domain.ProfileMap) bool {
		for _, c := range checks {
			if !fieldCheckHolds(c, p) {
				return false
			}
		}
		return true
	}
}

// fieldCheckHolds evaluates one equals/in comparison against the profile.
func fieldCheckHolds(c domain.FieldCheck, p domain.ProfileMap) bool {
	value := p[c.Field]
	if c.Equals != nil && !looseEqual(value, c.Equals) {
		return false
	}
	if len(c.In) > 0 && !valueIn(value, c.In) {
		return false
	}
	return true
}

// looseEqual compares profile values the way answers are stored: strings
// and bools directly, numbers across int/float encodings.
func looseEqual(a, b any) bool {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf
		}
		return false
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// valueIn reports whether a stored value (string or string slice) hits the
// allowed set.
func valueIn(value any, allowed []string) bool {
	switch v := value.(type) {
	case string:
		return contains(allowed, v)
	case []string:
		return intersects(v, allowed)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && contains(allowed, s) {
				return true
			}
		}
	case fmt.Stringer:
		return contains(allowed, v.String())
	}
	return false
}

func contains(list []string, s string) bool {
	if s == "" {
		return false
	}
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
