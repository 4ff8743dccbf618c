package services

import (
	"log/slog"
	"strings"
	"time"

	"pocketledger/internal/models"
	"pocketledger/internal/notify"
	"pocketledger/internal/prefs"

	"github.com/shopspring/decimal"
)

const (
	budgetScopeMonthly  = "monthly"
	budgetScopeCategory = "category"
)

// budgetService evaluates spending against configured limits and pushes
// threshold events to the notifier. Evaluation itself is stateless; repeated
// checks emit repeated events and deduplication stays with the notifier side.
type budgetService struct {
	analytics AnalyticsServiceInterface
	config    prefs.BudgetConfig
	notifier  notify.Notifier
	metrics   MetricsRecorderInterface
}

// NewBudgetService creates a new budget service.
func NewBudgetService(
	analytics AnalyticsServiceInterface,
	config prefs.BudgetConfig,
	notifier notify.Notifier,
	metrics MetricsRecorderInterface,
) BudgetServiceInterface {
	return &budgetService{
		analytics: analytics,
		config:    config,
		notifier:  notifier,
		metrics:   metrics,
	}
}

// Evaluate is the pure three-tier rule from (expense, budget) to at most one
// event. A budget of zero means unset: no event. Tiers in order, first match
// wins: exceeded when expense > budget, warning when percent spent reaches the
// threshold but stays under 100, otherwise nothing.
func Evaluate(expense, budget decimal.Decimal, warningThreshold int) *models.BudgetEvent {
	if budget.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	percent := percentSpent(expense, budget)

	if expense.GreaterThan(budget) {
		return &models.BudgetEvent{
			Tier:           models.BudgetTierExceeded,
			PercentSpent:   percent,
			ExceededAmount: expense.Sub(budget),
		}
	}

	if percent >= warningThreshold && percent < 100 {
		return &models.BudgetEvent{
			Tier:           models.BudgetTierWarning,
			PercentSpent:   percent,
			ExceededAmount: decimal.Zero,
		}
	}

	return nil
}

// CheckMonthlyBudget evaluates the current month's total expense against the
// monthly limit and notifies on a threshold event.
func (s *budgetService) CheckMonthlyBudget(now time.Time) *models.BudgetEvent {
	start, end := MonthRange(now)
	expense := s.analytics.TotalExpense(start, end)
	budget := s.config.MonthlyBudget()

	event := Evaluate(expense, budget, s.config.WarningThreshold())
	if event == nil {
		return nil
	}

	s.emit(*event, budgetScopeMonthly)
	return event
}

// CheckCategoryBudgets applies the identical three-tier rule independently to
// every configured category limit.
func (s *budgetService) CheckCategoryBudgets(now time.Time) []models.BudgetEvent {
	start, end := MonthRange(now)
	threshold := s.config.WarningThreshold()
	spent := s.categorySpend(start, end)

	events := make([]models.BudgetEvent, 0)
	for category, limit := range s.config.CategoryBudgets() {
		event := Evaluate(spent(category), limit, threshold)
		if event == nil {
			continue
		}
		event.Category = category
		s.emit(*event, budgetScopeCategory)
		events = append(events, *event)
	}

	return events
}

// MonthlyStatus builds the whole-budget view for the current month along with
// the derived per-category breakdown.
func (s *budgetService) MonthlyStatus(now time.Time) models.BudgetStatus {
	start, end := MonthRange(now)
	expense := s.analytics.TotalExpense(start, end)
	budget := s.config.MonthlyBudget()
	spent := s.categorySpend(start, end)

	status := models.BudgetStatus{
		Limit:      budget,
		Spent:      expense,
		Remaining:  decimal.Zero,
		Tier:       models.BudgetTierNone,
		Categories: make([]models.CategoryBudget, 0),
	}

	if budget.GreaterThan(decimal.Zero) {
		status.PercentSpent = percentSpent(expense, budget)
		if remaining := budget.Sub(expense); remaining.GreaterThan(decimal.Zero) {
			status.Remaining = remaining
		}
		status.Tier = tierFor(expense, budget, s.config.WarningThreshold())
	}

	for category, limit := range s.config.CategoryBudgets() {
		status.Categories = append(status.Categories, models.NewCategoryBudget(category, limit, spent(category)))
	}

	return status
}

func (s *budgetService) categorySpend(start, end time.Time) func(category string) decimal.Decimal {
	summaries := s.analytics.ExpensesByCategory(start, end)
	return func(category string) decimal.Decimal {
		for _, summary := range summaries {
			if strings.EqualFold(summary.Category, category) {
				return summary.Total
			}
		}
		return decimal.Zero
	}
}

func (s *budgetService) emit(event models.BudgetEvent, scope string) {
	s.notifier.Notify(event)
	s.metrics.RecordBudgetAlert(event.Tier, scope)

	slog.Info("budget event emitted",
		"tier", event.Tier,
		"scope", scope,
		"category", event.Category,
		"percent_spent", event.PercentSpent)
}

// percentSpent rounds expense/budget to a whole percentage clamped to [0,100].
func percentSpent(expense, budget decimal.Decimal) int {
	percent := expense.Div(budget).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return int(percent)
}

func tierFor(expense, budget decimal.Decimal, warningThreshold int) string {
	if expense.GreaterThan(budget) {
		return models.BudgetTierExceeded
	}
	percent := percentSpent(expense, budget)
	if percent >= warningThreshold && percent < 100 {
		return models.BudgetTierWarning
	}
	return models.BudgetTierOnTrack
}
