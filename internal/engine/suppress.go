package engine

import "github.com/alexanderramin/intake/internal/domain"

// applySuppression runs the business-type denylist/option-filter layer over
// an already-composed list. It may remove questions the condition evaluator
// approved: suppression is a correctness backstop for narrow sub-types and
// always takes precedence. Questions with narrowed options are copies.
func (e *Engine) applySuppression(questions []domain.Question, businessType string) []domain.Question {
	rule, ok := e.registry.Suppression(businessType)
	if !ok {
		return questions
	}

	out := questions[:0]
	for _, q := range questions {
		if rule.Suppresses(q) {
			continue
		}
		if allowed := rule.FilterOptions(q.ID); len(allowed) > 0 {
			q.Input.Options = filterOptions(q.Input.Options, allowed)
		}
		out = append(out, q)
	}
	return out
}

func filterOptions(options []domain.Option, allowed []string) []domain.Option {
	kept := make([]domain.Option, 0, len(options))
	for _, o := range options {
		if contains(allowed, o.ID) {
			kept = append(kept, o)
		}
	}
	return kept
}
