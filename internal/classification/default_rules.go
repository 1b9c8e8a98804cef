package classification

import "github.com/Veraticus/txnrisk/internal/model"

// DefaultThresholds returns the thresholds used for transactions that match no rule.
func DefaultThresholds() model.Thresholds {
	return model.Thresholds{Low: 100, Medium: 500, High: 1000}
}

// DefaultRules returns the built-in rule table. Order matters: the first rule
// with a keyword hit wins.
func DefaultRules() []model.ClassificationRule {
	return []model.ClassificationRule{
		{
			Category: model.CategoryTravel,
			Keywords: []string{
				"flight", "hotel", "airline", "booking", "reservation", "trip",
				"vacation", "travel", "transport", "uber", "lyft", "taxi",
			},
			Thresholds: model.Thresholds{Low: 100, Medium: 500, High: 1000},
		},
		{
			Category: model.CategoryEcommerce,
			Keywords: []string{
				"amazon", "ebay", "shop", "store", "online", "purchase",
				"order", "buy", "retail", "marketplace",
			},
			Thresholds: model.Thresholds{Low: 50, Medium: 200, High: 500},
		},
		{
			Category: model.CategoryFood,
			Keywords: []string{
				"restaurant", "cafe", "food", "dining", "meal", "lunch",
				"dinner", "breakfast", "groceries", "supermarket", "takeout",
			},
			Thresholds: model.Thresholds{Low: 25, Medium: 75, High: 150},
		},
		{
			Category: model.CategoryEntertainment,
			Keywords: []string{
				"movie", "theater", "concert", "show", "game", "entertainment",
				"ticket", "event", "festival", "cinema",
			},
			Thresholds: model.Thresholds{Low: 30, Medium: 100, High: 300},
		},
		{
			Category: model.CategoryUtilities,
			Keywords: []string{
				"bill", "electricity", "water", "gas", "internet", "phone",
				"utility", "service", "subscription", "payment",
			},
			Thresholds: model.Thresholds{Low: 50, Medium: 150, High: 400},
		},
	}
}
