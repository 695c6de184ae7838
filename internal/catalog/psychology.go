package catalog

import "github.com/alexanderramin/intake/internal/domain"

// Psychology practice vertical, catalog declaration order.
func Psychology() *Catalog {
	return New(VerticalPsychology, Flow{Kind: domain.FlowCatalogOrder},
		domain.Question{
			ID:        "S01_SESSION_FORMATS",
			Step:      "S01",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: "practice.session_formats",
			Text:      enText("How do you see clients?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("in_person", "In person"),
				opt("online", "Online"),
				opt("home_visit", "Home visits"),
			}},
			FollowUp: &domain.FollowUp{
				WhenOptionIDs: []string{"online"},
				Question: domain.Question{
					ID:        "S01F_ONLINE_PLATFORM",
					Step:      "S01a",
					Mode:      domain.ModeBoth,
					ScoreArea: areaOperations,
					StorePath: "practice.online_platform",
					Text:      enText("Which platform do you use for online sessions?", ""),
					Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
						opt("zoom", "Zoom"),
						opt("meet", "Google Meet"),
						opt("dedicated", "Dedicated therapy platform"),
						opt("other", "Other"),
					}},
				},
			},
		},
		domain.Question{
			ID:        "S02_SPECIALTIES",
			Step:      "S02",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			StorePath: "practice.specialties",
			Text:      enText("What do you specialize in?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("individual", "Individual therapy"),
				opt("couples", "Couples"),
				opt("child", "Child & adolescent"),
				opt("coaching", "Coaching"),
			}},
		},
		domain.Question{
			ID:        "S10_SESSION_PRICE",
			Step:      "S10",
			Mode:      domain.ModeBoth,
			ScoreArea: areaFinance,
			StorePath: "practice.session_price",
			Text:      enText("What does a session cost?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 100000},
		},
		domain.Question{
			ID:        "S20_WEEKLY_CAPACITY",
			Step:      "S20",
			Mode:      domain.ModeFull,
			ScoreArea: areaOperations,
			StorePath: "practice.weekly_capacity",
			Text:      enText("How many sessions can you take per week?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 80},
		},
		domain.Question{
			ID:        "S30_INSURANCE",
			Step:      "S30",
			Mode:      domain.ModeFull,
			ScoreArea: areaFinance,
			StorePath: "practice.insurance_accepted",
			Text:      enText("Do you accept health insurance?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
	)
}
