package domain

// BudgetLine is one slice of the budget pie.
type BudgetLine struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// Fixed allocation used by every revision of the planner. Order matters:
// the chart renders slices in this order.
var budgetWeights = []struct {
	category string
	weight   float64
}{
	{"Travel", 0.30},
	{"Stay", 0.25},
	{"Food", 0.20},
	{"Activities", 0.15},
	{"Misc", 0.10},
}

// SplitBudget allocates total across the five fixed categories. Pure and
// total; the amounts sum back to total up to floating-point rounding.
func SplitBudget(total float64) []BudgetLine {
	out := make([]BudgetLine, len(budgetWeights))
	for i, w := range budgetWeights {
		out[i] = BudgetLine{Category: w.category, Amount: total * w.weight}
	}
	return out
}
