package catalog

import "github.com/alexanderramin/intake/internal/domain"

// OptionResolver supplies dynamic option lists for questions that declare
// an input SourceKey, keyed by country. Implementations must be pure
// lookups; the engine calls them during composition.
type OptionResolver interface {
	ResolveOptions(sourceKey, country string) []domain.Option
}

// Source keys recognized by the built-in country packs.
const (
	SourceDeliveryPlatforms = "delivery_platforms"
	SourcePOSSystems        = "pos_systems"
)

type countryOptionResolver struct {
	packs map[string]map[string][]domain.Option
}

// CountryOptions returns the built-in per-country option packs. Countries
// without a dedicated pack fall back to the "" (international) entry.
func CountryOptions() OptionResolver {
	return &countryOptionResolver{packs: map[string]map[string][]domain.Option{
		SourceDeliveryPlatforms: {
			"hu": {
				opt("wolt", "Wolt"),
				opt("foodora", "Foodora"),
				opt("falatozz", "Falatozz"),
			},
			"de": {
				opt("lieferando", "Lieferando"),
				opt("wolt", "Wolt"),
				opt("uber_eats", "Uber Eats"),
			},
			"": {
				opt("uber_eats", "Uber Eats"),
				opt("wolt", "Wolt"),
				opt("deliveroo", "Deliveroo"),
				opt("other", "Other"),
			},
		},
		SourcePOSSystems: {
			"hu": {
				opt("ntak_pos", "NTAK-connected POS"),
				opt("square", "Square"),
				opt("other", "Other"),
			},
			"": {
				opt("square", "Square"),
				opt("lightspeed", "Lightspeed"),
				opt("toast", "Toast"),
				opt("other", "Other"),
			},
		},
	}}
}

func (r *countryOptionResolver) ResolveOptions(sourceKey, country string) []domain.Option {
	pack, ok := r.packs[sourceKey]
	if !ok {
		return nil
	}
	if opts, ok := pack[country]; ok {
		return opts
	}
	return pack[""]
}

// opt builds an english-labelled option; used by the data tables.
func opt(id, label string) domain.Option {
	return domain.Option{ID: id, Labels: map[string]string{"en": label}}
}

// optHU builds an option with english and hungarian labels.
func optHU(id, en, hu string) domain.Option {
	return domain.Option{ID: id, Labels: map[string]string{"en": en, "hu": hu}}
}
