package catalog

import "github.com/alexanderramin/intake/internal/domain"

// Kinesiology / physiotherapy vertical, catalog declaration order.
func Kinesiology() *Catalog {
	return New(VerticalKinesiology, Flow{Kind: domain.FlowCatalogOrder},
		domain.Question{
			ID:        "K01_TREATMENT_TYPES",
			Step:      "K01",
			Mode:      domain.ModeBoth,
			ScoreArea: areaSetup,
			Condition: domain.Condition{Always: true},
			StorePath: "kinesiology.treatment_types",
			Text:      enText("What treatments do you offer?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("sports_rehab", "Sports rehabilitation"),
				opt("posture", "Posture correction"),
				opt("massage", "Therapeutic massage"),
				opt("prevention", "Prevention / screening"),
			}},
		},
		domain.Question{
			ID:        "K02_SESSION_LENGTH",
			Step:      "K02",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			StorePath: "kinesiology.session_length_min",
			Text:      enText("How long is a standard session?", ""),
			Input:     domain.InputSpec{Kind: domain.InputNumber, Min: 15, Max: 180, Unit: "min"},
		},
		domain.Question{
			ID:        "K10_EQUIPMENT",
			Step:      "K10",
			Mode:      domain.ModeFull,
			ScoreArea: areaOperations,
			StorePath: "kinesiology.equipment",
			Text:      enText("What equipment do you work with?", ""),
			Input: domain.InputSpec{Kind: domain.InputMultiChoice, Options: []domain.Option{
				opt("treatment_table", "Treatment tables"),
				opt("machines", "Training machines"),
				opt("shockwave", "Shockwave / ultrasound"),
				opt("minimal", "Minimal equipment"),
			}},
		},
		domain.Question{
			ID:        "K20_REFERRAL_REQUIRED",
			Step:      "K20",
			Mode:      domain.ModeBoth,
			ScoreArea: areaOperations,
			StorePath: "kinesiology.referral_required",
			Text:      enText("Do clients need a medical referral?", ""),
			Input:     domain.InputSpec{Kind: domain.InputYesNo},
		},
	)
}
