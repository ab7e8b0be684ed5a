package billing

// Plan is a catalog entry of the pricing page. The catalog is fixed;
// there is no per-seller plan storage yet beyond the checkout flow.
type Plan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	PriceMonthly float64  `json:"price_monthly"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Popular      bool     `json:"popular"`
}

var plans = []Plan{
	{
		ID:           "free",
		Name:         "Free",
		PriceMonthly: 0,
		Description:  "Parfait pour commencer",
		Features: []string{
			"1 boutique",
			"Produits illimités",
			"100 commandes/mois",
			"Calendrier RDV",
			"Support email",
		},
	},
	{
		ID:           "pro",
		Name:         "Pro",
		PriceMonthly: 29,
		Description:  "Pour les vendeurs sérieux",
		Features: []string{
			"3 boutiques",
			"Tout du Free +",
			"Commandes illimitées",
			"Analytics avancés",
			"Support prioritaire",
			"Export données",
		},
		Popular: true,
	},
	{
		ID:           "enterprise",
		Name:         "Enterprise",
		PriceMonthly: 99,
		Description:  "Pour les gros volumes",
		Features: []string{
			"Boutiques illimitées",
			"Tout du Pro +",
			"API dédiée",
			"Webhooks personnalisés",
			"Account manager",
			"SLA garanti",
		},
	},
}

func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

func PlanByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
