package engine

import (
	"fmt"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/domain"
)

// WarnFunc receives non-fatal composition warnings (unknown flow ids,
// unknown verticals) in slog key/value style. Nil means silent.
type WarnFunc func(msg string, args ...any)

// Engine resolves the ordered list of currently-applicable questions and
// the precision score for a business profile. It holds only immutable
// catalog state; every call computes from the profile snapshot it is given.
type Engine struct {
	registry *catalog.Registry
	warn     WarnFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithWarnFunc routes composition warnings to fn.
func WithWarnFunc(fn WarnFunc) Option {
	return func(e *Engine) { e.warn = fn }
}

// New creates an Engine over the given registry.
func New(registry *catalog.Registry, opts ...Option) *Engine {
	e := &Engine{registry: registry}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsApplicable reports whether a single question should currently be shown:
// mode gating first (never bypassed by a true condition), then the
// business-type allow-list, then the condition itself.
func IsApplicable(q domain.Question, profile domain.ProfileMap, mode domain.Mode) bool {
	if !q.Mode.Matches(mode) {
		return false
	}
	if len(q.BusinessTypes) > 0 && !contains(q.BusinessTypes, profile.PrimaryType()) {
		return false
	}
	return Applies(q.Condition, profile)
}

// ActiveQuestions returns the ordered, filtered question list for the
// given mode, profile snapshot and business category. Order is the curated
// flow order (or catalog declaration order); it is never re-sorted by
// weight. Unknown categories degrade to the default vertical; unknown flow
// ids are skipped with a warning. Only an unrecognized mode is an error.
func (e *Engine) ActiveQuestions(mode domain.Mode, profile domain.ProfileMap, category string) ([]domain.Question, error) {
	if !domain.ValidRequestModes[mode] {
		return nil, fmt.Errorf("request mode %q: %w", mode, ErrInvalidArgument)
	}

	cat, found := e.registry.Resolve(category)
	if cat == nil {
		return nil, fmt.Errorf("no catalog for category %q and no default vertical registered: %w",
			category, ErrInvalidArgument)
	}
	if !found {
		e.warnf("falling back to default vertical", "category", category, "default", cat.Vertical)
	}

	var active []domain.Question
	switch cat.Flow.Kind {
	case domain.FlowOrdered:
		active = e.composeOrdered(cat, mode, profile)
	default:
		active = e.composeCatalogOrder(cat, mode, profile)
	}

	active = e.applySuppression(active, profile.PrimaryType())

	country := profile.String(catalog.PathCountry)
	for i, q := range active {
		active[i] = e.resolveOptions(q, country)
	}
	return active, nil
}

// composeOrdered walks the curated id lists: quick order always, full-mode
// additions appended when requested. Ids missing from the catalog are
// tolerated so a question can be retired without touching every flow list.
func (e *Engine) composeOrdered(cat *catalog.Catalog, mode domain.Mode, profile domain.ProfileMap) []domain.Question {
	ids := cat.Flow.QuickOrder
	if mode == domain.ModeFull {
		ids = append(append([]string{}, ids...), cat.Flow.FullAdditionalOrder...)
	}

	var active []domain.Question
	for _, id := range ids {
		q, ok := cat.Get(id)
		if !ok {
			e.warnf("question id in flow order but not in catalog, skipping",
				"question_id", id, "vertical", cat.Vertical)
			continue
		}
		if IsApplicable(q, profile, mode) {
			active = append(active, q)
		}
	}
	return active
}

// composeCatalogOrder walks the catalog in declaration order and splices
// each follow-up directly after its parent once the parent's recorded
// answer matches the follow-up's option set.
func (e *Engine) composeCatalogOrder(cat *catalog.Catalog, mode domain.Mode, profile domain.ProfileMap) []domain.Question {
	var active []domain.Question
	for _, q := range cat.Questions() {
		if !IsApplicable(q, profile, mode) {
			continue
		}
		active = append(active, q)

		if q.FollowUp == nil {
			continue
		}
		answer := profile[q.StorePath]
		if !valueIn(answer, q.FollowUp.WhenOptionIDs) {
			continue
		}
		if IsApplicable(q.FollowUp.Question, profile, mode) {
			active = append(active, q.FollowUp.Question)
		}
	}
	return active
}

// resolveOptions swaps in country-pack options for questions that source
// their option list dynamically. The question is copied; catalogs stay
// immutable.
func (e *Engine) resolveOptions(q domain.Question, country string) domain.Question {
	if q.Input.SourceKey == "" {
		return q
	}
	resolver := e.registry.Resolver()
	if resolver == nil {
		return q
	}
	opts := resolver.ResolveOptions(q.Input.SourceKey, country)
	if len(opts) == 0 {
		return q
	}
	q.Input.Options = opts
	return q
}

func (e *Engine) warnf(msg string, args ...any) {
	if e.warn != nil {
		e.warn(msg, args...)
	}
}
