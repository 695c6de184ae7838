package formatter

import (
	"testing"

	"github.com/alexanderramin/intake/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestModeBadge(t *testing.T) {
	tests := []struct {
		mode     domain.Mode
		contains string
	}{
		{domain.ModeQuick, "QUICK"},
		{domain.ModeFull, "FULL"},
		{domain.Mode("weird"), "WEIRD"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got := ModeBadge(tt.mode)
			assert.Contains(t, got, tt.contains)
			assert.Contains(t, got, "◆")
		})
	}
}

func TestAnsweredPill(t *testing.T) {
	assert.Contains(t, AnsweredPill(true), "answered")
	assert.Contains(t, AnsweredPill(false), "open")
}

func TestInputBadge(t *testing.T) {
	tests := []struct {
		kind     domain.InputKind
		contains string
	}{
		{domain.InputSingleChoice, "choice"},
		{domain.InputMultiChoice, "multi"},
		{domain.InputNumber, "number"},
		{domain.InputScale, "scale"},
		{domain.InputYesNo, "yes/no"},
		{domain.InputText, "text"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Contains(t, InputBadge(tt.kind), tt.contains)
		})
	}
}

func TestCategoryBadge(t *testing.T) {
	got := CategoryBadge("gastro")
	assert.Contains(t, got, "Gastro")

	got = CategoryBadge("personal_services")
	assert.Contains(t, got, "Personal services")

	got = CategoryBadge("")
	assert.Contains(t, got, "--")
}

func TestTruncID(t *testing.T) {
	id := "a1b2c3d4-e5f6-7890-abcd-ef1234567890"
	got := TruncID(id)
	assert.Contains(t, got, "a1b2c3d4")
	assert.NotContains(t, got, "e5f6")

	// Short IDs should be returned as-is (dimmed)
	got = TruncID("short")
	assert.Contains(t, got, "short")
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	// Should contain rounded border characters
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}
