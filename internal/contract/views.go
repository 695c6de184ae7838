// Package contract defines the request and response types exchanged
// between the CLI and the service layer. Views carry localized text so
// presentation code never touches the raw label maps.
package contract

import (
	"github.com/alexanderramin/intake/internal/domain"
)

// OptionView is one selectable choice with its label resolved for a
// single language.
type OptionView struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// InputView describes how a question is answered.
type InputView struct {
	Kind    domain.InputKind `json:"kind"`
	Options []OptionView     `json:"options,omitempty"`
	Min     int              `json:"min,omitempty"`
	Max     int              `json:"max,omitempty"`
	Step    int              `json:"step,omitempty"`
	Unit    string           `json:"unit,omitempty"`
}

// QuestionView is a question with all text resolved for one language.
type QuestionView struct {
	ID        string    `json:"id"`
	Step      string    `json:"step"`
	ScoreArea string    `json:"score_area"`
	StorePath string    `json:"store_path"`
	Title     string    `json:"title"`
	Help      string    `json:"help,omitempty"`
	Input     InputView `json:"input"`
	Answered  bool      `json:"answered"`
}

// NewQuestionView resolves a domain question for the given language.
// Answered reflects whether the profile already holds a meaningful
// value at the question's store path.
func NewQuestionView(q *domain.Question, lang string, profile domain.ProfileMap) QuestionView {
	text := q.Localize(lang)
	view := QuestionView{
		ID:        q.ID,
		Step:      q.Step,
		ScoreArea: q.ScoreArea,
		StorePath: q.StorePath,
		Title:     text.Title,
		Help:      text.Help,
		Input: InputView{
			Kind: q.Input.Kind,
			Min:  q.Input.Min,
			Max:  q.Input.Max,
			Step: q.Input.Step,
			Unit: q.Input.Unit,
		},
		Answered: domain.HasMeaningfulValue(profile[q.StorePath]),
	}
	for _, opt := range q.Input.Options {
		view.Input.Options = append(view.Input.Options, OptionView{
			ID:    opt.ID,
			Label: domain.LocalizeOption(opt, lang),
		})
	}
	return view
}

// BusinessView is the presentation shape of a stored business.
type BusinessView struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Category       string      `json:"category"`
	PreferredMode  domain.Mode `json:"preferred_mode"`
	PrecisionScore int         `json:"precision_score"`
}

func NewBusinessView(b *domain.Business) BusinessView {
	return BusinessView{
		ID:             b.ID,
		Name:           b.Name,
		Category:       b.Category,
		PreferredMode:  b.PreferredMode,
		PrecisionScore: b.PrecisionScore,
	}
}
