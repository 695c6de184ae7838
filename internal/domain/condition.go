package domain

// FieldCheck compares a single profile value. Exactly one of Equals or In
// is normally set; a check with neither matches nothing.
type FieldCheck struct {
	Field  string
	Equals any
	In     []string
}

// Condition decides whether a question is currently relevant. Clauses are
// evaluated in a fixed priority order (see engine.Applies):
//
//  1. Always short-circuits to true.
//  2. ChannelsAny must intersect the profile's channel set.
//  3. TypeAny must contain the profile's primary business type.
//  4. IntegrationsAny checks must all hold.
//  5. Any, when present, overrides the fallthrough: the final result is the
//     OR over its checks.
//
// A condition with no clauses at all is permissive: the question applies.
type Condition struct {
	Always          bool
	ChannelsAny     []string
	TypeAny         []string
	IntegrationsAny []FieldCheck
	Any             []FieldCheck
}

// IsEmpty reports whether no clause is set (the permissive default).
func (c Condition) IsEmpty() bool {
	return !c.Always &&
		len(c.ChannelsAny) == 0 &&
		len(c.TypeAny) == 0 &&
		len(c.IntegrationsAny) == 0 &&
		len(c.Any) == 0
}
