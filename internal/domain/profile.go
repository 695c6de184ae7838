package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyStorePath indicates an answer write against a question with no
// store path. Reads tolerate missing paths; writes must be strict.
var ErrEmptyStorePath = errors.New("question has empty store path")

// ProfileMap is the flat business profile: dot-path keys mapping to
// string, []string, number or bool values. Every known business attribute
// and every prior answer lives here; there is no nested object identity
// beyond the path string itself.
type ProfileMap map[string]any

// Clone returns a shallow copy of the profile. Values are whole-value
// overwritten on answer, so sharing them between copies is safe.
func (p ProfileMap) Clone() ProfileMap {
	cp := make(ProfileMap, len(p))
	for k, v := range p {
		cp[k] = v
	}
	return cp
}

// String returns the profile value at path as a string, or "" when the
// path is unset or holds a non-string value.
func (p ProfileMap) String(path string) string {
	if s, ok := p[path].(string); ok {
		return s
	}
	return ""
}

// Strings returns the profile value at path as a string slice. A single
// string value is treated as a one-element slice; anything else is nil.
func (p ProfileMap) Strings(path string) []string {
	switch v := p[path].(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		// JSON-decoded profiles store slices as []any.
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}

// PrimaryType returns the business's primary type id, if recorded.
func (p ProfileMap) PrimaryType() string {
	return p.String(PathBusinessType)
}

// Channels returns the business's sales channel set, if recorded.
func (p ProfileMap) Channels() []string {
	return p.Strings(PathChannels)
}

// HasMeaningfulValue reports whether v counts as an answer for precision
// scoring. nil, empty strings and empty slices do not.
func HasMeaningfulValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case []string:
		return len(val) > 0
	case []any:
		return len(val) > 0
	}
	return true
}

// RecordAnswer writes value at the question's store path and returns a new
// profile; the input profile is never mutated. Multi-select answers replace
// the whole slice. An empty store path is rejected.
func RecordAnswer(p ProfileMap, q Question, value any) (ProfileMap, error) {
	if q.StorePath == "" {
		return nil, fmt.Errorf("recording answer for %q: %w", q.ID, ErrEmptyStorePath)
	}
	next := p.Clone()
	next[q.StorePath] = value
	return next, nil
}
