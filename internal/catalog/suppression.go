package catalog

import "github.com/alexanderramin/intake/internal/domain"

// SuppressionRules returns the standard business-type overrides. These
// remove questions whose base condition would otherwise pass: a dark
// kitchen can have "dine_in" in its channel set (pickup counters exist)
// and still must never be asked about seating.
func SuppressionRules() []domain.SuppressionRule {
	return []domain.SuppressionRule{
		{
			BusinessType:    "dark_kitchen",
			SuppressedAreas: map[string]bool{areaDineIn: true},
			OptionFilters: map[string][]string{
				"G01_CHANNELS": {"takeaway", "delivery_apps", "own_delivery"},
			},
		},
		{
			BusinessType: "food_truck",
			SuppressedIDs: map[string]bool{
				"G31_TABLE_RESERVATIONS": true,
				"G32_OUTDOOR_SEATING":    true,
			},
		},
		{
			BusinessType: "online_coach",
			SuppressedIDs: map[string]bool{
				"Y02_AREA_SQM":       true,
				"Y20_ACCESS_CONTROL": true,
			},
			OptionFilters: map[string][]string{
				"Y01_MEMBERSHIP_MODEL": {"monthly", "passes"},
			},
		},
	}
}
