package catalog

import "github.com/alexanderramin/intake/internal/domain"

// Electronics retail vertical, catalog declaration order with a repair
// follow-up.
func Electronics() *Catalog {
	return New(VerticalElectronics, Flow{Kind: domain.FlowCatalogOrder},
		domain.Question{
			ID:        "E01_PRODUCT_LINES",
			Step:      "E01",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: "electronics.product_lines",
			Text:      enText("What do you sell?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("phones", "Phones & tablets"),
				opt("computers", "Computers"),
				opt("appliances", "Home appliances"),
				opt("accessories", "Accessories"),
				opt("used", "Refurbished / used"),
			}},
		},
		domain.Question{
			ID:        "E02_SERVICES",
			Step:      "E02",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			StorePath: "electronics.services",
			Text:      enText("Which services do you offer?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("repair", "Repair"),
				opt("tradein", "Trade-in"),
				opt("installation", "Installation"),
				opt("none", "Sales only"),
			}},
			FollowUp: &domain.FollowUp{
				WhenOptionIDs: []string{"repair"},
				Question: domain.Question{
					ID:        "E02F_REPAIR_TURNAROUND",
					Step:      "E02a",
					Mode:      domain.ModeBoth,
					ScoreArea: areaOperations,
					StorePath: "electronics.repair_turnaround_days",
					Text:      enText("Typical repair turnaround?", ""),
					Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 60, Unit: "days"},
				},
			},
		},
		domain.Question{
			ID:        "E10_ONLINE_STORE",
			Step:      "E10",
			Mode:      domain.ModeBoth,
			ScoreArea: areaChannels,
			StorePath: "electronics.online_store",
			Text:      enText("Do you also sell online?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
		domain.Question{
			ID:        "E11_MARKETPLACES",
			Step:      "E11",
			Mode:      domain.ModeFull,
			ScoreArea: areaChannels,
			Condition: domain.Condition{Any: []domain.FieldCheck{
				{Field: "electronics.online_store", Equals: true},
			}},
			StorePath: "electronics.marketplaces",
			Text:      enText("Which marketplaces are you on?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("own_site", "Own webshop"),
				opt("amazon", "Amazon"),
				opt("ebay", "eBay"),
				opt("local", "Local marketplace"),
			}},
		},
		domain.Question{
			ID:        "E20_WARRANTY_HANDLING",
			Step:      "E20",
			Mode:      domain.ModeFull,
			ScoreArea: areaOperations,
			StorePath: "electronics.warranty_handling",
			Text:      enText("How do you handle warranty cases?", ""),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("in_house", "In house"),
				opt("manufacturer", "Forward to manufacturer"),
				opt("partner", "Service partner"),
			}},
		},
	)
}
