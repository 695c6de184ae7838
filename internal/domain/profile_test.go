package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAnswer_DoesNotMutateInput(t *testing.T) {
	q := Question{ID: "G01_CHANNELS", StorePath: PathChannels}
	original := ProfileMap{"business.name": "Cafe Luna"}

	next, err := RecordAnswer(original, q, []string{"dine_in"})
	require.NoError(t, err)

	assert.Equal(t, []string{"dine_in"}, next[PathChannels])
	_, ok := original[PathChannels]
	assert.False(t, ok, "input profile must stay untouched")
	assert.Equal(t, "Cafe Luna", next["business.name"])
}

func TestRecordAnswer_OverwritesWholeValue(t *testing.T) {
	q := Question{ID: "G01_CHANNELS", StorePath: PathChannels}
	p := ProfileMap{PathChannels: []string{"dine_in", "takeaway"}}

	next, err := RecordAnswer(p, q, []string{"delivery_apps"})
	require.NoError(t, err)
	assert.Equal(t, []string{"delivery_apps"}, next[PathChannels])
}

func TestRecordAnswer_EmptyStorePathRejected(t *testing.T) {
	q := Question{ID: "BROKEN"}
	_, err := RecordAnswer(ProfileMap{}, q, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyStorePath)
}

func TestHasMeaningfulValue(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"string", "cash_register", true},
		{"empty slice", []string{}, false},
		{"slice", []string{"dine_in"}, true},
		{"empty any slice", []any{}, false},
		{"zero number", 0, true},
		{"number", 42, true},
		{"false bool", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMeaningfulValue(tt.v))
		})
	}
}

func TestProfileMap_Strings(t *testing.T) {
	p := ProfileMap{
		PathChannels:    []string{"dine_in"},
		"ops.main_area": "retail",
		"ops.empty":     "",
	}
	assert.Equal(t, []string{"dine_in"}, p.Strings(PathChannels))
	assert.Equal(t, []string{"retail"}, p.Strings("ops.main_area"))
	assert.Nil(t, p.Strings("ops.empty"))
	assert.Nil(t, p.Strings("missing"))
}

func TestProfileMap_Clone(t *testing.T) {
	p := ProfileMap{"a": 1}
	cp := p.Clone()
	cp["b"] = 2
	_, ok := p["b"]
	assert.False(t, ok)
}
