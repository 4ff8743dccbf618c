package services

import (
	"time"

	"pocketledger/internal/models"

	"github.com/shopspring/decimal"
)

// AnalyticsServiceInterface defines the contract for ledger aggregation
type AnalyticsServiceInterface interface {
	TotalIncome(start, end time.Time) decimal.Decimal
	TotalExpense(start, end time.Time) decimal.Decimal
	ExpensesByCategory(start, end time.Time) []models.CategorySummary
	MonthSummary(now time.Time) models.MonthSummary
	WeeklySeries(n int, now time.Time) []models.SeriesPoint
	MonthlySeries(n int, now time.Time) []models.SeriesPoint
}

// BudgetServiceInterface defines the contract for budget evaluation
type BudgetServiceInterface interface {
	CheckMonthlyBudget(now time.Time) *models.BudgetEvent
	CheckCategoryBudgets(now time.Time) []models.BudgetEvent
	MonthlyStatus(now time.Time) models.BudgetStatus
}

// ExportServiceInterface defines the contract for CSV export
type ExportServiceInterface interface {
	ToCSV(transactions []models.Transaction) string
	FileName(prefix string, now time.Time) string
	WriteFile(dir, prefix string, transactions []models.Transaction, now time.Time) (string, error)
}

// MetricsRecorderInterface defines the contract for recording operational metrics
type MetricsRecorderInterface interface {
	RecordLedgerWrite(operation string, duration time.Duration)
	RecordBudgetAlert(tier, scope string)
	RecordExport()
}
