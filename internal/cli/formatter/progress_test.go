package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		want  string
	}{
		{"0%", 0.0, 10, "  0%"},
		{"50%", 0.5, 10, " 50%"},
		{"100%", 1.0, 10, "100%"},
		{"over 100% clamps", 1.5, 10, "100%"},
		{"negative clamps", -0.5, 10, "  0%"},
		{"tiny width clamps to 2", 0.5, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "]")
		})
	}
}

func TestRenderProgressBlocks(t *testing.T) {
	assert.Contains(t, RenderProgress(0.0, 4), emptyBlock)
	assert.Contains(t, RenderProgress(1.0, 4), filledBlock)
	assert.NotContains(t, RenderProgress(1.0, 4), emptyBlock)
}
