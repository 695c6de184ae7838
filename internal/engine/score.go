package engine

import (
	"math"

	"github.com/alexanderramin/intake/internal/domain"
)

// PrecisionScore derives the profile completeness percentage for the given
// mode and category: round(100 * answered / applicable), 0 when nothing is
// applicable. The denominator uses the same evaluator as ActiveQuestions,
// so the score always agrees with what the caller is shown.
func (e *Engine) PrecisionScore(mode domain.Mode, profile domain.ProfileMap, category string) (int, error) {
	active, err := e.ActiveQuestions(mode, profile, category)
	if err != nil {
		return 0, err
	}

	answered := 0
	for _, q := range active {
		if domain.HasMeaningfulValue(profile[q.StorePath]) {
			answered++
		}
	}
	return Score(len(active), answered), nil
}

// Score is the bare precision formula. Defined as 0 for an empty
// applicable set; never NaN, never out of [0,100].
func Score(total, answered int) int {
	if total <= 0 {
		return 0
	}
	if answered < 0 {
		answered = 0
	}
	if answered > total {
		answered = total
	}
	return int(math.Round(100 * float64(answered) / float64(total)))
}
