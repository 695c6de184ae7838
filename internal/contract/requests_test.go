package contract

import (
	"testing"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewActiveQuestionsRequest_SetsDefaults(t *testing.T) {
	req := NewActiveQuestionsRequest("biz-1")

	assert.Equal(t, "biz-1", req.BusinessID)
	assert.Equal(t, "en", req.Lang)
	// Empty mode means "use the business's preferred mode".
	assert.Empty(t, req.Mode)
}

func TestNewRecordAnswerRequest_SetsDefaults(t *testing.T) {
	req := NewRecordAnswerRequest("biz-1", "G01_CHANNELS", []string{"dine_in"})

	assert.Equal(t, "G01_CHANNELS", req.QuestionID)
	assert.Equal(t, []string{"dine_in"}, req.Value)
	assert.Equal(t, "en", req.Lang)
}

func TestServiceError_ErrorString(t *testing.T) {
	err := NewServiceError(ErrInvalidMode, "mode %q not requestable", "both")
	assert.Equal(t, `INVALID_MODE: mode "both" not requestable`, err.Error())
}

func TestNewQuestionView_LocalizesAndMarksAnswered(t *testing.T) {
	q := &domain.Question{
		ID:        "G01_CHANNELS",
		Step:      "basics",
		ScoreArea: "channels",
		StorePath: "business.channels",
		Text: map[string]domain.UIText{
			"en": {Title: "Which channels do you sell through?"},
			"hu": {Title: "Milyen csatornákon értékesítesz?"},
		},
		Input: domain.InputSpec{
			Kind: domain.InputMultiChoice,
			Options: []domain.Option{
				{ID: "dine_in", Labels: map[string]string{"en": "Dine-in", "hu": "Helyben fogyasztás"}},
				{ID: "takeaway", Labels: map[string]string{"en": "Takeaway"}},
			},
		},
	}
	profile := domain.ProfileMap{"business.channels": []string{"dine_in"}}

	view := NewQuestionView(q, "hu", profile)
	assert.Equal(t, "Milyen csatornákon értékesítesz?", view.Title)
	assert.True(t, view.Answered)
	assert.Equal(t, "Helyben fogyasztás", view.Input.Options[0].Label)
	// Missing translations fall back to English.
	assert.Equal(t, "Takeaway", view.Input.Options[1].Label)

	empty := NewQuestionView(q, "en", domain.ProfileMap{})
	assert.False(t, empty.Answered)
}
