package catalog

import "github.com/alexanderramin/intake/internal/domain"

// Gym uses catalog declaration order with a class-type follow-up.
func Gym() *Catalog {
	return New(VerticalGym, Flow{Kind: domain.FlowCatalogOrder},
		domain.Question{
			ID:        "Y01_MEMBERSHIP_MODEL",
			Step:      "Y01",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: "gym.membership_model",
			Text:      enText("How do members pay?", ""),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("monthly", "Monthly membership"),
				opt("passes", "Punch cards / passes"),
				opt("drop_in", "Drop-in only"),
				opt("mixed", "Mixed"),
			}},
		},
		domain.Question{
			ID:        "Y02_AREA_SQM",
			Step:      "Y02",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			StorePath: "gym.area_sqm",
			Text:      enText("How big is the training floor?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 20, Max: 10000, Unit: "m²"},
		},
		domain.Question{
			ID:        "Y03_CLASSES",
			Step:      "Y03",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			StorePath: "gym.classes",
			Text:      enText("Do you run group classes?", ""),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("yes", "Yes, scheduled classes"),
				opt("no", "No, open floor only"),
			}},
			FollowUp: &domain.FollowUp{
				WhenOptionIDs: []string{"yes"},
				Question: domain.Question{
					ID:        "Y03F_CLASS_TYPES",
					Step:      "Y03a",
					Mode:      domain.ModeBoth,
					ScoreArea: areaOperations,
					StorePath: "gym.class_types",
					Text:      enText("Which class types?", ""),
					Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
						opt("spinning", "Spinning"),
						opt("crossfit", "Functional / CrossFit"),
						opt("yoga", "Yoga / pilates"),
						opt("combat", "Combat sports"),
					}},
				},
			},
		},
		domain.Question{
			ID:        "Y10_TRAINERS_COUNT",
			Step:      "Y10",
			Mode:      domain.ModeFull,
			ScoreArea: areaTeam,
			StorePath: "gym.trainers_count",
			Text:      enText("How many personal trainers work with you?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 0, Max: 100},
		},
		domain.Question{
			ID:        "Y20_ACCESS_CONTROL",
			Step:      "Y20",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			StorePath: "gym.access_control",
			Text:      enText("How do members get in?", ""),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("front_desk", "Front desk"),
				opt("card", "Card / fob"),
				opt("app", "App / QR"),
				opt("open", "Open access"),
			}},
		},
		domain.Question{
			ID:        "Y30_PEAK_HOURS",
			Step:      "Y30",
			Mode:      domain.ModeFull,
			ScoreArea: areaOperations,
			StorePath: "gym.peak_hours",
			Text:      enText("When are you busiest?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("early", "Early morning"),
				opt("lunch", "Lunchtime"),
				opt("evening", "Evening"),
				opt("weekend", "Weekend"),
			}},
		},
	)
}
