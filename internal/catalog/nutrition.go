package catalog

import "github.com/alexanderramin/intake/internal/domain"

// Nutrition counseling vertical, catalog declaration order.
func Nutrition() *Catalog {
	return New(VerticalNutrition, Flow{Kind: domain.FlowCatalogOrder},
		domain.Question{
			ID:        "N01_CLIENT_GOALS",
			Step:      "N01",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: "nutrition.client_goals",
			Text:      enText("What do clients mostly come for?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("weight_loss", "Weight management"),
				opt("sports", "Sports nutrition"),
				opt("medical", "Medical diets"),
				opt("habits", "General habit change"),
			}},
		},
		domain.Question{
			ID:        "N02_PLAN_DELIVERY",
			Step:      "N02",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			StorePath: "nutrition.plan_delivery",
			Text:      enText("How do clients receive their plans?", ""),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("app", "Through an app"),
				opt("pdf", "PDF / email"),
				opt("paper", "Printed"),
			}},
		},
		domain.Question{
			ID:        "N10_FOLLOWUP_CADENCE",
			Step:      "N10",
			Mode:      domain.ModeFull,
			ScoreArea: areaOperations,
			StorePath: "nutrition.followup_cadence",
			Text:      enText("How often do you follow up with a client?", ""),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("weekly", "Weekly"),
				opt("biweekly", "Every two weeks"),
				opt("monthly", "Monthly"),
				opt("on_demand", "On demand"),
			}},
		},
		domain.Question{
			ID:        "N20_PACKAGE_PRICING",
			Step:      "N20",
			Mode:      domain.ModeBoth,
			ScoreArea: areaFinance,
			StorePath: "nutrition.package_pricing",
			Text:      enText("Do you sell multi-session packages?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
	)
}
