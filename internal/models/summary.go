package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategorySummary contains the summed expense amount for one category.
type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SeriesPoint is one calendar-aligned bucket of a weekly or monthly time
// series. Start and End are the inclusive bucket boundaries.
type SeriesPoint struct {
	Label   string          `json:"label"`
	Start   time.Time       `json:"start"`
	End     time.Time       `json:"end"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthSummary aggregates one calendar month of ledger activity.
type MonthSummary struct {
	Start        time.Time         `json:"start"`
	End          time.Time         `json:"end"`
	TotalIncome  decimal.Decimal   `json:"total_income"`
	TotalExpense decimal.Decimal   `json:"total_expense"`
	NetBalance   decimal.Decimal   `json:"net_balance"`
	ByCategory   []CategorySummary `json:"by_category"`
}
