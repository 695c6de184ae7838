package catalog

import "github.com/alexanderramin/intake/internal/domain"

// PetShop uses catalog declaration order with a grooming follow-up.
func PetShop() *Catalog {
	return New(VerticalPetShop, Flow{Kind: domain.FlowCatalogOrder},
		domain.Question{
			ID:        "P01_PET_TYPES",
			Step:      "P01",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: "petshop.pet_types",
			Text:      enText("Which animals do you cater to?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("dogs", "Dogs"),
				opt("cats", "Cats"),
				opt("birds", "Birds"),
				opt("aquarium", "Aquarium / fish"),
				opt("small_mammals", "Small mammals"),
				opt("reptiles", "Reptiles"),
			}},
		},
		domain.Question{
			ID:        "P02_SERVICES",
			Step:      "P02",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			Condition: domain.Condition{Always: true},
			StorePath: "petshop.services",
			Text:      enText("What do you offer beyond retail?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("grooming", "Grooming"),
				opt("boarding", "Boarding"),
				opt("vet_partner", "Vet partnership"),
				opt("training", "Training classes"),
				opt("none", "Retail only"),
			}},
			FollowUp: &domain.FollowUp{
				WhenOptionIDs: []string{"grooming"},
				Question: domain.Question{
					ID:        "P02F_GROOMING_STATIONS",
					Step:      "P02a",
					Mode:      domain.ModeBoth,
					ScoreArea: areaOperations,
					StorePath: "petshop.grooming.stations",
					Text:      enText("How many grooming stations do you run?", ""),
					Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 20},
				},
			},
		},
		domain.Question{
			ID:        "P10_LIVE_ANIMALS",
			Step:      "P10",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			StorePath: "petshop.live_animals",
			Text:      enText("Do you sell live animals?", "Licensing questions only appear if you do."),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
		domain.Question{
			ID:        "P11_ANIMAL_LICENSE",
			Step:      "P11",
			Mode:      domain.ModeFull,
			ScoreArea: areaOperations,
			Condition: domain.Condition{Any: []domain.FieldCheck{
				{Field: "petshop.live_animals", Equals: true},
			}},
			StorePath: "petshop.license_id",
			Text:      enText("What's your animal trade license number?", ""),
			Input:     domain.InputSpec{Kind: domain.InputText},
		},
		domain.Question{
			ID:        "P20_SUPPLIER_COUNT",
			Step:      "P20",
			Mode:      domain.ModeFull,
			ScoreArea: areaFinance,
			StorePath: "petshop.supplier_count",
			Text:      enText("How many feed/supply wholesalers do you buy from?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 1, Max: 50},
		},
		domain.Question{
			ID:        "P30_LOYALTY_PROGRAM",
			Step:      "P30",
			Mode:      domain.ModeBoth,
			ScoreArea: areaMarketing,
			StorePath: "petshop.loyalty",
			Text:      enText("Do you run a loyalty program?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
	)
}
