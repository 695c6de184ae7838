package catalog

import "github.com/alexanderramin/intake/internal/domain"

// Score areas used across the gastro catalog.
const (
	areaSetup      = "setup"
	areaChannels   = "channels"
	areaOperations = "operations"
	areaDineIn     = "dine_in"
	areaDelivery   = "delivery"
	areaFinance    = "finance"
	areaTeam       = "team"
	areaMarketing  = "marketing"
)

// Gastro is the primary vertical and the only one using curated flow
// orders: quick order always runs; the full additions are appended in
// full mode only.
func Gastro() *Catalog {
	flow := Flow{
		Kind: domain.FlowOrdered,
		QuickOrder: []string{
			"SI01_GOOGLE_CHOICE",
			"SI02_MODE",
			"G01_CHANNELS",
			"G02_BUSINESS_TYPE",
			"G10_OPENING_HOURS",
			"G20_STAFF_COUNT",
			"G30_SEATING_CAPACITY",
			"G40_DELIVERY_PLATFORMS",
			"G50_SALES_TRACKING_METHOD",
			"G51_POS_SYSTEM",
			"G60_MONTHLY_REVENUE_BAND",
			"G70_GOOGLE_PROFILE_LINKED",
		},
		FullAdditionalOrder: []string{
			"G31_TABLE_RESERVATIONS",
			"G32_OUTDOOR_SEATING",
			"G41_DELIVERY_COMMISSION",
			"G42_OWN_DELIVERY_RADIUS",
			"G43_BAKERY_PREORDERS",
			"G52_POS_SYNC_ISSUES",
			"G61_AVG_TICKET",
			"G62_FOOD_COST_PCT",
			"G71_MARKETING_CHANNELS",
			"G80_WASTE_TRACKING",
		},
	}

	return New(VerticalGastro, flow,
		domain.Question{
			ID:        "SI01_GOOGLE_CHOICE",
			Step:      "SI01",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: "setup.google_profile_choice",
			Text: biText("How should we pull in your basics?",
				"Connecting your Google Business Profile pre-fills most answers.",
				"Honnan töltsük be az alapadatokat?"),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				optHU("connect_google", "Connect Google Business Profile", "Google cégprofil összekötése"),
				optHU("manual", "I'll answer manually", "Kézzel töltöm ki"),
				optHU("skip", "Skip for now", "Kihagyom"),
			}},
			ImpactScore: 8,
		},
		domain.Question{
			ID:        "SI02_MODE",
			Step:      "SI02",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: "setup.mode",
			Text: enText("How thorough do you want to be today?",
				"Quick gets you running in minutes; full builds a complete profile."),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("quick", "Quick setup"),
				opt("full", "Full profile"),
			}},
		},
		domain.Question{
			ID:        "G01_CHANNELS",
			Step:      "G01",
			Mode:      domain.ModeBoth,
			ScoreArea: areaChannels,
			Condition: domain.Condition{Always: true},
			StorePath: domain.PathChannels,
			Text: biText("Where do you sell?",
				"Pick every channel you actively serve.",
				"Hol értékesítesz?"),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				optHU("dine_in", "Dine-in", "Helyben fogyasztás"),
				optHU("takeaway", "Takeaway", "Elvitel"),
				optHU("delivery_apps", "Delivery apps", "Ételrendelő appok"),
				optHU("own_delivery", "Own delivery", "Saját kiszállítás"),
				optHU("catering", "Catering / events", "Catering / rendezvények"),
			}},
			ImpactScore: 10,
		},
		domain.Question{
			ID:        "G02_BUSINESS_TYPE",
			Step:      "G02",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: domain.PathBusinessType,
			Text:      enText("What kind of place is it?", ""),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("restaurant", "Restaurant"),
				opt("cafe", "Café"),
				opt("bar", "Bar / pub"),
				opt("bakery", "Bakery"),
				opt("food_truck", "Food truck"),
				opt("dark_kitchen", "Dark kitchen"),
			}},
			ImpactScore: 9,
		},
		domain.Question{
			ID:        "G10_OPENING_HOURS",
			Step:      "G10",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			Condition: domain.Condition{Always: true},
			StorePath: "ops.opening_hours",
			Text:      enText("What are your opening hours?", "Rough pattern is fine, e.g. Tue-Sun 11-22."),
			Input:     domain.InputSpec{Kind: domain.InputText},
		},
		domain.Question{
			ID:        "G20_STAFF_COUNT",
			Step:      "G20",
			Mode:      domain.ModeBoth,
			ScoreArea: areaTeam,
			Condition: domain.Condition{Always: true},
			StorePath: "team.staff_count",
			Text:      enText("How many people work here?", "Include yourself and part-timers."),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 500},
		},
		domain.Question{
			ID:        "G30_SEATING_CAPACITY",
			Step:      "G30",
			Mode:      domain.ModeBoth,
			ScoreArea: areaDineIn,
			Condition: domain.Condition{ChannelsAny: []string{"dine_in"}},
			StorePath: "ops.dine_in.capacity",
			Text:      enText("How many guests can you seat?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 1000, Unit: "seats"},
			ImpactScore: 6,
		},
		domain.Question{
			ID:        "G40_DELIVERY_PLATFORMS",
			Step:      "G40",
			Mode:      domain.ModeBoth,
			ScoreArea: areaDelivery,
			Condition: domain.Condition{ChannelsAny: []string{"delivery_apps"}},
			StorePath: "sales.delivery.platforms",
			Text:      enText("Which delivery apps are you on?", ""),
			Input: domain.InputSpec{
				Kind:      domain.InputMultiChoice,
				SourceKey: SourceDeliveryPlatforms,
				Options: []domain.Option{
					opt("uber_eats", "Uber Eats"),
					opt("wolt", "Wolt"),
					opt("other", "Other"),
				},
			},
		},
		domain.Question{
			ID:        "G50_SALES_TRACKING_METHOD",
			Step:      "G50",
			Mode:      domain.ModeBoth,
			ScoreArea: areaFinance,
			Condition: domain.Condition{Always: true},
			StorePath: "finance.sales_tracking",
			Text: enText("How do you track daily sales?",
				"This decides which finance questions are worth asking at all."),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("pos_system", "POS system"),
				opt("spreadsheet", "Spreadsheet"),
				opt("notebook", "Paper / notebook"),
				opt("none", "I don't track it"),
			}},
			ImpactScore: 7,
		},
		domain.Question{
			ID:        "G51_POS_SYSTEM",
			Step:      "G51",
			Mode:      domain.ModeBoth,
			ScoreArea: areaFinance,
			Condition: domain.Condition{Any: []domain.FieldCheck{
				{Field: "finance.sales_tracking", Equals: "pos_system"},
			}},
			StorePath: "finance.pos_system",
			Text:      enText("Which POS do you use?", ""),
			Input: domain.InputSpec{
				Kind:      domain.InputSingleChoice,
				SourceKey: SourcePOSSystems,
				Options: []domain.Option{
					opt("square", "Square"),
					opt("lightspeed", "Lightspeed"),
					opt("other", "Other"),
				},
			},
		},
		domain.Question{
			ID:        "G60_MONTHLY_REVENUE_BAND",
			Step:      "G60",
			Mode:      domain.ModeBoth,
			ScoreArea: areaFinance,
			Condition: domain.Condition{Always: true},
			StorePath: "finance.monthly_revenue_band",
			Text:      enText("Roughly, what's your monthly revenue?", "A band is enough; we never need exact figures."),
			Input: domain.InputSpec{Kind: domain.InputSingleChoice, Options: []domain.Option{
				opt("band_0_10k", "Under 10k"),
				opt("band_10_50k", "10k – 50k"),
				opt("band_50_200k", "50k – 200k"),
				opt("band_200k_plus", "Over 200k"),
			}},
		},
		domain.Question{
			ID:        "G70_GOOGLE_PROFILE_LINKED",
			Step:      "G70",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Any: []domain.FieldCheck{
				{Field: "setup.google_profile_choice", Equals: "connect_google"},
			}},
			StorePath: "setup.google_profile_linked",
			Text:      enText("Did the Google profile link succeed?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},

		// Full-mode additions below. Mode still matters: the ordered flow
		// gates which list runs, mode gates each question inside it.
		domain.Question{
			ID:        "G31_TABLE_RESERVATIONS",
			Step:      "G31",
			Mode:      domain.ModeBoth,
			ScoreArea: areaDineIn,
			Condition: domain.Condition{ChannelsAny: []string{"dine_in"}},
			StorePath: "ops.dine_in.reservations",
			Text:      enText("Do you take table reservations?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
		domain.Question{
			ID:        "G32_OUTDOOR_SEATING",
			Step:      "G32",
			Mode:      domain.ModeFull,
			ScoreArea: areaDineIn,
			Condition: domain.Condition{ChannelsAny: []string{"dine_in"}},
			StorePath: "ops.dine_in.outdoor",
			Text:      enText("Do you have outdoor seating?", "Terrace season changes capacity planning."),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
		domain.Question{
			ID:        "G41_DELIVERY_COMMISSION",
			Step:      "G41",
			Mode:      domain.ModeFull,
			ScoreArea: areaDelivery,
			Condition: domain.Condition{ChannelsAny: []string{"delivery_apps"}},
			StorePath: "sales.delivery.commission_pct",
			Text:      enText("What commission do the apps charge you?", "Your blended average is fine."),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 0, Max: 60, Unit: "%"},
		},
		domain.Question{
			ID:        "G42_OWN_DELIVERY_RADIUS",
			Step:      "G42",
			Mode:      domain.ModeFull,
			ScoreArea: areaDelivery,
			Condition: domain.Condition{ChannelsAny: []string{"own_delivery"}},
			StorePath: "sales.own_delivery.radius_km",
			Text:      enText("How far does your own delivery go?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 50, Unit: "km"},
		},
		domain.Question{
			ID:            "G43_BAKERY_PREORDERS",
			Step:          "G43",
			Mode:          domain.ModeFull,
			ScoreArea:     areaOperations,
			StorePath:     "sales.preorders",
			BusinessTypes: []string{"bakery"},
			Text:          enText("Do you take pre-orders for cakes or batches?", ""),
			Input:         domain.InputSpec{Kind: domain.InputYesNo},
		},
		domain.Question{
			ID:        "G52_POS_SYNC_ISSUES",
			Step:      "G52",
			Mode:      domain.ModeFull,
			ScoreArea: areaFinance,
			Condition: domain.Condition{IntegrationsAny: []domain.FieldCheck{
				{Field: "finance.pos_system", In: []string{"square", "lightspeed", "toast"}},
			}},
			StorePath: "finance.pos_sync_issues",
			Text:      enText("Does your POS data ever fail to sync?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
		domain.Question{
			ID:        "G61_AVG_TICKET",
			Step:      "G61",
			Mode:      domain.ModeComplete,
			ScoreArea: areaFinance,
			StorePath: "finance.avg_ticket",
			Text:      enText("What does an average guest spend?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 100000},
		},
		domain.Question{
			ID:        "G62_FOOD_COST_PCT",
			Step:      "G62",
			Mode:      domain.ModeFull,
			ScoreArea: areaFinance,
			StorePath: "finance.food_cost_pct",
			Text:      enText("What share of revenue goes to ingredients?", "Estimate is fine; 25-35% is typical."),
			Input:     domain.InputSpec{Kind: domain.InputScale, Min: 0, Max: 100, Step: 5, Unit: "%"},
		},
		domain.Question{
			ID:        "G71_MARKETING_CHANNELS",
			Step:      "G71",
			Mode:      domain.ModeFull,
			ScoreArea: areaMarketing,
			StorePath: "marketing.channels",
			Text:      enText("Where do you promote the place?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("social", "Social media"),
				opt("google", "Google ads / profile"),
				opt("flyers", "Flyers / local press"),
				opt("none", "Nowhere yet"),
			}},
		},
		domain.Question{
			ID:        "G80_WASTE_TRACKING",
			Step:      "G80",
			Mode:      domain.ModeFull,
			ScoreArea: areaOperations,
			StorePath: "ops.waste_tracking",
			Text:      enText("Do you track food waste?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
	)
}
