package formatter

import (
	"testing"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatBusinessList(t *testing.T) {
	businesses := []*domain.Business{
		{ID: "a1b2c3d4-0000", Name: "Corner Cafe", Category: "gastro", PreferredMode: domain.ModeQuick, PrecisionScore: 40},
		{ID: "e5f6a7b8-0000", Name: "Iron Gym", Category: "fitness", PreferredMode: domain.ModeFull, PrecisionScore: 85},
	}

	got := FormatBusinessList(businesses)
	assert.Contains(t, got, "BUSINESSES")
	assert.Contains(t, got, "Corner Cafe")
	assert.Contains(t, got, "Iron Gym")
	assert.Contains(t, got, "a1b2c3d4")
	assert.Contains(t, got, "Gastro")
	assert.Contains(t, got, "85")
}

func TestFormatBusinessInspect(t *testing.T) {
	b := &domain.Business{
		ID:             "a1b2c3d4-0000",
		Name:           "Corner Cafe",
		Category:       "gastro",
		PreferredMode:  domain.ModeQuick,
		PrecisionScore: 40,
	}
	profile := domain.ProfileMap{
		"business.channels": []string{"dine_in"},
		"business.country":  "HU",
	}

	got := FormatBusinessInspect(b, profile)
	assert.Contains(t, got, "Corner Cafe")
	assert.Contains(t, got, "QUICK")
	assert.Contains(t, got, "PROFILE")
	assert.Contains(t, got, "business.channels:")
	assert.Contains(t, got, "business.country:")
}

func TestFormatBusinessInspectEmptyProfile(t *testing.T) {
	b := &domain.Business{ID: "a1b2c3d4", Name: "Fresh", Category: "gastro", PreferredMode: domain.ModeQuick}

	got := FormatBusinessInspect(b, domain.ProfileMap{})
	assert.Contains(t, got, "Fresh")
	assert.NotContains(t, got, "PROFILE")
}
