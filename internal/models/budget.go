package models

import "github.com/shopspring/decimal"

// Budget status tiers, first match wins in this order.
const (
	BudgetTierExceeded = "exceeded"
	BudgetTierWarning  = "warning"
	BudgetTierOnTrack  = "on_track"
	BudgetTierNone     = "no_budget"
)

// BudgetEvent is emitted when spending crosses a budget threshold. At most one
// event is produced per evaluation; deduplication across repeated evaluations
// belongs to the caller.
type BudgetEvent struct {
	Tier           string          `json:"tier"`
	Category       string          `json:"category,omitempty"`
	PercentSpent   int             `json:"percent_spent"`
	ExceededAmount decimal.Decimal `json:"exceeded_amount"`
}

// BudgetStatus is the whole-budget view for the current month plus the
// per-category breakdown for every configured category limit.
type BudgetStatus struct {
	Limit        decimal.Decimal  `json:"limit"`
	Spent        decimal.Decimal  `json:"spent"`
	PercentSpent int              `json:"percent_spent"`
	Remaining    decimal.Decimal  `json:"remaining"`
	Tier         string           `json:"tier"`
	Categories   []CategoryBudget `json:"categories"`
}

// CategoryBudget is the derived view of one category's configured limit against
// spend-to-date. It is computed, never persisted.
type CategoryBudget struct {
	Category   string          `json:"category"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Percentage float64         `json:"percentage"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// NewCategoryBudget derives the percentage and remaining amount from a limit
// and the spend-to-date. Percentage is clamped to [0,100] and is 0 when no
// limit is configured; remaining never goes negative.
func NewCategoryBudget(category string, limit, spent decimal.Decimal) CategoryBudget {
	cb := CategoryBudget{
		Category:  category,
		Limit:     limit,
		Spent:     spent,
		Remaining: decimal.Zero,
	}

	if limit.GreaterThan(decimal.Zero) {
		pct, _ := spent.Div(limit).Mul(decimal.NewFromInt(100)).Float64()
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		cb.Percentage = pct
	}

	if remaining := limit.Sub(spent); remaining.GreaterThan(decimal.Zero) {
		cb.Remaining = remaining
	}

	return cb
}
