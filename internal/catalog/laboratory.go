package catalog

import "github.com/alexanderramin/intake/internal/domain"

// Laboratory / diagnostics vertical, catalog declaration order.
func Laboratory() *Catalog {
	return New(VerticalLaboratory, Flow{Kind: domain.FlowCatalogOrder},
		domain.Question{
			ID:        "L01_TEST_CATEGORIES",
			Step:      "L01",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: "lab.test_categories",
			Text:      enText("Which test categories do you run?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("blood", "Blood panels"),
				opt("imaging", "Imaging"),
				opt("allergy", "Allergy"),
				opt("genetic", "Genetic"),
			}},
		},
		domain.Question{
			ID:        "L02_REFERRAL_SOURCES",
			Step:      "L02",
			Mode:      domain.ModeBoth,
			ScoreArea: areaMarketing,
			StorePath: "lab.referral_sources",
			Text:      enText("Where do patients come from?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("gp_referral", "GP referrals"),
				opt("walk_in", "Walk-ins"),
				opt("corporate", "Corporate screening"),
				opt("online", "Online booking"),
			}},
		},
		domain.Question{
			ID:        "L10_RESULT_TURNAROUND",
			Step:      "L10",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			StorePath: "lab.result_turnaround_hours",
			Text:      enText("Typical result turnaround?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 336, Unit: "hours"},
		},
		domain.Question{
			ID:        "L20_HOME_SAMPLING",
			Step:      "L20",
			Mode:      domain.ModeFull,
			ScoreArea: areaOperations,
			StorePath: "lab.home_sampling",
			Text:      enText("Do you offer home sampling?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
	)
}
