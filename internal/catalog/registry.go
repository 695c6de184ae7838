package catalog

import "github.com/alexanderramin/intake/internal/domain"

// Vertical ids known to the sector registry.
const (
	VerticalGastro      = "gastro"
	VerticalPetShop     = "pet_shop"
	VerticalGym         = "gym"
	VerticalPsychology  = "psychology"
	VerticalNutrition   = "nutrition"
	VerticalLaboratory  = "laboratory"
	VerticalKinesiology = "kinesiology"
	VerticalElectronics = "electronics_retail"
)

// DefaultVertical is the documented fallback for unknown business
// categories, so onboarding never dead-ends on a lookup miss.
const DefaultVertical = VerticalGastro

// Registry maps business categories to their catalogs and holds the
// suppression rules and the injected option resolver. Immutable after
// construction.
type Registry struct {
	catalogs     map[string]*Catalog
	suppressions map[string]domain.SuppressionRule
	resolver     OptionResolver
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithOptionResolver injects the per-country option pack resolver.
func WithOptionResolver(r OptionResolver) RegistryOption {
	return func(reg *Registry) { reg.resolver = r }
}

// NewRegistry builds a registry over explicit catalogs and suppression
// rules. Mostly used by tests; production code uses Default.
func NewRegistry(catalogs []*Catalog, rules []domain.SuppressionRule, opts ...RegistryOption) *Registry {
	reg := &Registry{
		catalogs:     make(map[string]*Catalog, len(catalogs)),
		suppressions: make(map[string]domain.SuppressionRule, len(rules)),
	}
	for _, c := range catalogs {
		reg.catalogs[c.Vertical] = c
	}
	for _, r := range rules {
		reg.suppressions[r.BusinessType] = r
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Default builds the full production registry: every vertical catalog,
// the standard suppression rules and the built-in country option packs.
func Default() *Registry {
	return NewRegistry(
		[]*Catalog{
			Gastro(),
			PetShop(),
			Gym(),
			Psychology(),
			Nutrition(),
			Laboratory(),
			Kinesiology(),
			Electronics(),
		},
		SuppressionRules(),
		WithOptionResolver(CountryOptions()),
	)
}

// Resolve returns the catalog for a business category. Unknown categories
// degrade to the default vertical; the second return value reports whether
// the lookup hit directly.
func (r *Registry) Resolve(category string) (*Catalog, bool) {
	if c, ok := r.catalogs[category]; ok {
		return c, true
	}
	return r.catalogs[DefaultVertical], false
}

// Suppression returns the suppression rule for a business type, if any.
func (r *Registry) Suppression(businessType string) (domain.SuppressionRule, bool) {
	rule, ok := r.suppressions[businessType]
	return rule, ok
}

// Resolver returns the injected option resolver, or nil.
func (r *Registry) Resolver() OptionResolver {
	return r.resolver
}

// Verticals lists the registered vertical ids.
func (r *Registry) Verticals() []string {
	out := make([]string, 0, len(r.catalogs))
	for v := range r.catalogs {
		out = append(out, v)
	}
	return out
}
