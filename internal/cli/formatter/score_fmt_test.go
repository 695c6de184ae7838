package formatter

import (
	"testing"

	"github.com/alexanderramin/intake/internal/contract"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatScore(t *testing.T) {
	resp := &contract.ScoreResponse{
		Business: contract.BusinessView{ID: "abc", Name: "Corner Cafe"},
		Mode:     domain.ModeFull,
		Answered: 3,
		Total:    9,
		Score:    33,
		Areas: []contract.ScoreBreakdownArea{
			{Area: "channels", Answered: 2, Total: 3},
			{Area: "operations", Answered: 1, Total: 6},
		},
	}

	got := FormatScore(resp)
	assert.Contains(t, got, "Precision score:")
	assert.Contains(t, got, "33")
	assert.Contains(t, got, "FULL")
	assert.Contains(t, got, "3 of 9 answered")
	assert.Contains(t, got, "BY AREA")
	assert.Contains(t, got, "channels")
	assert.Contains(t, got, "2/3")
	assert.Contains(t, got, "1/6")
}

func TestFormatScoreWithoutAreas(t *testing.T) {
	resp := &contract.ScoreResponse{
		Business: contract.BusinessView{Name: "Empty"},
		Mode:     domain.ModeQuick,
	}

	got := FormatScore(resp)
	assert.Contains(t, got, "Precision score:")
	assert.NotContains(t, got, "BY AREA")
}
