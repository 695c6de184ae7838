package domain

// SuppressionRule is a per-business-type override applied after condition
// evaluation. It removes questions whose id or score area is denylisted,
// and narrows option lists for specific questions. Suppression is a
// correctness backstop for narrow sub-types (never ask seating capacity of
// a delivery-only dark kitchen) and always wins over a true condition.
type SuppressionRule struct {
	BusinessType        string
	SuppressedIDs       map[string]bool
	SuppressedAreas     map[string]bool
	// OptionFilters maps question id to the allowed option id subset.
	OptionFilters map[string][]string
}

// Suppresses reports whether the rule removes the given question outright.
func (r SuppressionRule) Suppresses(q Question) bool {
	if r.SuppressedIDs[q.ID] {
		return true
	}
	return q.ScoreArea != "" && r.SuppressedAreas[q.ScoreArea]
}

// FilterOptions returns the allowed option id set for a question, or nil
// when the rule leaves its options untouched.
func (r SuppressionRule) FilterOptions(questionID string) []string {
	return r.OptionFilters[questionID]
}
