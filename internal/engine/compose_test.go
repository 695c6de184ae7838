package engine

import (
	"testing"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(catalog.Default())
}

func questionIDs(questions []domain.Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

func TestActiveQuestions_EmptyProfileQuickGastro(t *testing.T) {
	e := newTestEngine(t)

	active, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{}, catalog.VerticalGastro)
	require.NoError(t, err)

	ids := questionIDs(active)
	assert.Contains(t, ids, "SI01_GOOGLE_CHOICE")
	assert.Contains(t, ids, "SI02_MODE")
	assert.Contains(t, ids, "G01_CHANNELS")
	assert.Contains(t, ids, "G50_SALES_TRACKING_METHOD")
	assert.NotContains(t, ids, "G30_SEATING_CAPACITY")
}

func TestActiveQuestions_DineInUnlocksSeating(t *testing.T) {
	e := newTestEngine(t)
	base, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{}, catalog.VerticalGastro)
	require.NoError(t, err)

	withDineIn, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{
		domain.PathChannels: []string{"dine_in"},
	}, catalog.VerticalGastro)
	require.NoError(t, err)

	assert.Contains(t, questionIDs(withDineIn), "G30_SEATING_CAPACITY")
	assert.Len(t, withDineIn, len(base)+1, "exactly one question unlocks")
}

func TestActiveQuestions_MonotonicUnlocking(t *testing.T) {
	e := newTestEngine(t)
	base, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{}, catalog.VerticalGastro)
	require.NoError(t, err)

	unlocked, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{
		domain.PathChannels: []string{"dine_in"},
	}, catalog.VerticalGastro)
	require.NoError(t, err)

	unlockedIDs := questionIDs(unlocked)
	for _, id := range questionIDs(base) {
		assert.Contains(t, unlockedIDs, id,
			"adding a channel must never remove channel-independent questions")
	}
}

func TestActiveQuestions_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	profile := domain.ProfileMap{
		domain.PathChannels:      []string{"dine_in", "delivery_apps"},
		"finance.sales_tracking": "pos_system",
	}

	first, err := e.ActiveQuestions(domain.ModeFull, profile, catalog.VerticalGastro)
	require.NoError(t, err)
	second, err := e.ActiveQuestions(domain.ModeFull, profile, catalog.VerticalGastro)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestActiveQuestions_FullModeAppendsDeliveryQuestions(t *testing.T) {
	e := newTestEngine(t)
	profile := domain.ProfileMap{domain.PathChannels: []string{"delivery_apps"}}

	full, err := e.ActiveQuestions(domain.ModeFull, profile, catalog.VerticalGastro)
	require.NoError(t, err)
	fullIDs := questionIDs(full)
	assert.Contains(t, fullIDs, "G40_DELIVERY_PLATFORMS", "both-mode delivery question")
	assert.Contains(t, fullIDs, "G41_DELIVERY_COMMISSION", "full-only delivery question")

	quick, err := e.ActiveQuestions(domain.ModeQuick, profile, catalog.VerticalGastro)
	require.NoError(t, err)
	quickIDs := questionIDs(quick)
	assert.Contains(t, quickIDs, "G40_DELIVERY_PLATFORMS")
	assert.NotContains(t, quickIDs, "G41_DELIVERY_COMMISSION")
}

func TestActiveQuestions_OrderFollowsFlowNotWeight(t *testing.T) {
	e := newTestEngine(t)
	active, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{}, catalog.VerticalGastro)
	require.NoError(t, err)

	cat, _ := catalog.Default().Resolve(catalog.VerticalGastro)
	pos := make(map[string]int, len(cat.Flow.QuickOrder))
	for i, id := range cat.Flow.QuickOrder {
		pos[id] = i
	}
	last := -1
	for _, q := range active {
		p, ok := pos[q.ID]
		require.True(t, ok)
		assert.Greater(t, p, last, "curated order must be preserved")
		last = p
	}
}

func TestActiveQuestions_AnyOverrideUnlocksPOSQuestion(t *testing.T) {
	e := newTestEngine(t)

	base, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{}, catalog.VerticalGastro)
	require.NoError(t, err)
	assert.NotContains(t, questionIDs(base), "G51_POS_SYSTEM")

	withPOS, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{
		"finance.sales_tracking": "pos_system",
	}, catalog.VerticalGastro)
	require.NoError(t, err)
	assert.Contains(t, questionIDs(withPOS), "G51_POS_SYSTEM")
}

func TestActiveQuestions_InvalidModeRejected(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.ActiveQuestions("exhaustive", domain.ProfileMap{}, catalog.VerticalGastro)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = e.ActiveQuestions(domain.ModeBoth, domain.ProfileMap{}, catalog.VerticalGastro)
	assert.ErrorIs(t, err, ErrInvalidArgument, "both is a declaration mode, not a request mode")
}

func TestActiveQuestions_UnknownCategoryFallsBackWithWarning(t *testing.T) {
	var warnings []string
	e := New(catalog.Default(), WithWarnFunc(func(msg string, args ...any) {
		warnings = append(warnings, msg)
	}))

	active, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{}, "submarine_tours")
	require.NoError(t, err)
	assert.NotEmpty(t, active, "default vertical keeps onboarding alive")
	assert.NotEmpty(t, warnings)
}

func TestActiveQuestions_DanglingFlowIDSkippedSilently(t *testing.T) {
	cat := catalog.New("toy", catalog.Flow{
		Kind:       domain.FlowOrdered,
		QuickOrder: []string{"T01", "T99_RETIRED", "T02"},
	},
		domain.Question{ID: "T01", Mode: domain.ModeBoth, StorePath: "t.one", Condition: domain.Condition{Always: true}},
		domain.Question{ID: "T02", Mode: domain.ModeBoth, StorePath: "t.two", Condition: domain.Condition{Always: true}},
	)
	var warned int
	e := New(catalog.NewRegistry([]*catalog.Catalog{cat}, nil),
		WithWarnFunc(func(string, ...any) { warned++ }))

	active, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{}, "toy")
	require.NoError(t, err)
	assert.Equal(t, []string{"T01", "T02"}, questionIDs(active))
	assert.Equal(t, 1, warned)
}

func TestActiveQuestions_FollowUpSplicedAfterParent(t *testing.T) {
	e := newTestEngine(t)

	base, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{}, catalog.VerticalGym)
	require.NoError(t, err)
	assert.NotContains(t, questionIDs(base), "Y03F_CLASS_TYPES")

	answered, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{
		"gym.classes": "yes",
	}, catalog.VerticalGym)
	require.NoError(t, err)

	ids := questionIDs(answered)
	require.Contains(t, ids, "Y03F_CLASS_TYPES")
	for i, id := range ids {
		if id == "Y03_CLASSES" {
			require.Less(t, i+1, len(ids))
			assert.Equal(t, "Y03F_CLASS_TYPES", ids[i+1], "follow-up sits directly after its parent")
		}
	}
}

func TestActiveQuestions_FollowUpMultiSelectParent(t *testing.T) {
	e := newTestEngine(t)
	active, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{
		"practice.session_formats": []string{"in_person", "online"},
	}, catalog.VerticalPsychology)
	require.NoError(t, err)
	assert.Contains(t, questionIDs(active), "S01F_ONLINE_PLATFORM")
}

func TestActiveQuestions_FollowUpRespectsModeGating(t *testing.T) {
	cat := catalog.New("toy", catalog.Flow{Kind: domain.FlowCatalogOrder},
		domain.Question{
			ID: "T01", Mode: domain.ModeBoth, StorePath: "t.parent",
			Condition: domain.Condition{Always: true},
			FollowUp: &domain.FollowUp{
				WhenOptionIDs: []string{"deep"},
				Question:      domain.Question{ID: "T01F", Mode: domain.ModeFull, StorePath: "t.child"},
			},
		},
	)
	e := New(catalog.NewRegistry([]*catalog.Catalog{cat}, nil))
	profile := domain.ProfileMap{"t.parent": "deep"}

	quick, err := e.ActiveQuestions(domain.ModeQuick, profile, "toy")
	require.NoError(t, err)
	assert.NotContains(t, questionIDs(quick), "T01F")

	full, err := e.ActiveQuestions(domain.ModeFull, profile, "toy")
	require.NoError(t, err)
	assert.Contains(t, questionIDs(full), "T01F")
}

func TestActiveQuestions_SuppressionOverridesCondition(t *testing.T) {
	e := newTestEngine(t)
	profile := domain.ProfileMap{
		domain.PathBusinessType: "dark_kitchen",
		domain.PathChannels:     []string{"dine_in"},
	}

	active, err := e.ActiveQuestions(domain.ModeFull, profile, catalog.VerticalGastro)
	require.NoError(t, err)

	ids := questionIDs(active)
	assert.NotContains(t, ids, "G30_SEATING_CAPACITY")
	assert.NotContains(t, ids, "G31_TABLE_RESERVATIONS")
	assert.NotContains(t, ids, "G32_OUTDOOR_SEATING")
}

func TestActiveQuestions_SuppressionFiltersOptions(t *testing.T) {
	e := newTestEngine(t)
	active, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{
		domain.PathBusinessType: "dark_kitchen",
	}, catalog.VerticalGastro)
	require.NoError(t, err)

	for _, q := range active {
		if q.ID != "G01_CHANNELS" {
			continue
		}
		for _, o := range q.Input.Options {
			assert.NotEqual(t, "dine_in", o.ID, "dark kitchens never see the dine-in option")
		}
		return
	}
	t.Fatal("G01_CHANNELS missing from active list")
}

func TestActiveQuestions_SuppressionDoesNotMutateCatalog(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.ActiveQuestions(domain.ModeQuick, domain.ProfileMap{
		domain.PathBusinessType: "dark_kitchen",
	}, catalog.VerticalGastro)
	require.NoError(t, err)

	cat, _ := catalog.Default().Resolve(catalog.VerticalGastro)
	q, ok := cat.Get("G01_CHANNELS")
	require.True(t, ok)
	assert.Len(t, q.Input.Options, 5, "catalog data must stay untouched")
}

func TestActiveQuestions_BusinessTypeAllowListQuestion(t *testing.T) {
	e := newTestEngine(t)

	cafe, err := e.ActiveQuestions(domain.ModeFull, domain.ProfileMap{
		domain.PathBusinessType: "cafe",
	}, catalog.VerticalGastro)
	require.NoError(t, err)
	assert.NotContains(t, questionIDs(cafe), "G43_BAKERY_PREORDERS")

	bakery, err := e.ActiveQuestions(domain.ModeFull, domain.ProfileMap{
		domain.PathBusinessType: "bakery",
	}, catalog.VerticalGastro)
	require.NoError(t, err)
	assert.Contains(t, questionIDs(bakery), "G43_BAKERY_PREORDERS")
}

func TestActiveQuestions_CountryOptionPackResolution(t *testing.T) {
	e := newTestEngine(t)
	profile := domain.ProfileMap{
		domain.PathChannels: []string{"delivery_apps"},
		catalog.PathCountry: "hu",
	}

	active, err := e.ActiveQuestions(domain.ModeQuick, profile, catalog.VerticalGastro)
	require.NoError(t, err)

	for _, q := range active {
		if q.ID != "G40_DELIVERY_PLATFORMS" {
			continue
		}
		ids := make([]string, 0, len(q.Input.Options))
		for _, o := range q.Input.Options {
			ids = append(ids, o.ID)
		}
		assert.Equal(t, []string{"wolt", "foodora", "falatozz"}, ids)
		return
	}
	t.Fatal("G40_DELIVERY_PLATFORMS missing from active list")
}

func TestActiveQuestions_NilProfileTreatedAsEmpty(t *testing.T) {
	e := newTestEngine(t)
	active, err := e.ActiveQuestions(domain.ModeQuick, nil, catalog.VerticalGastro)
	require.NoError(t, err)
	assert.NotEmpty(t, active)
}
