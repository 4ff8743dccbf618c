package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"pocketledger/internal/ledger"
	"pocketledger/internal/models"

	"github.com/shopspring/decimal"
)

// analyticsService implements AnalyticsServiceInterface over a ledger
// snapshot. All methods are read-only and never fail: an empty ledger yields
// zero totals and empty series.
type analyticsService struct {
	ledger    ledger.Ledger
	weekStart time.Weekday
}

// NewAnalyticsService creates a new analytics service. weekStart is the
// locale's first day of week and anchors the weekly bucket boundaries.
func NewAnalyticsService(l ledger.Ledger, weekStart time.Weekday) AnalyticsServiceInterface {
	return &analyticsService{
		ledger:    l,
		weekStart: weekStart,
	}
}

// TotalIncome sums income amounts dated within [start, end].
func (s *analyticsService) TotalIncome(start, end time.Time) decimal.Decimal {
	return s.sumByKind(models.KindIncome, start, end)
}

// TotalExpense sums expense amounts dated within [start, end].
func (s *analyticsService) TotalExpense(start, end time.Time) decimal.Decimal {
	return s.sumByKind(models.KindExpense, start, end)
}

func (s *analyticsService) sumByKind(kind string, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range ledger.ByDateRange(s.ledger.All(), start, end) {
		if t.Kind == kind {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// ExpensesByCategory sums expense amounts per category within [start, end].
// Categories merge case-insensitively; the first casing seen becomes the
// display name. The result is ordered by total descending for stable output.
func (s *analyticsService) ExpensesByCategory(start, end time.Time) []models.CategorySummary {
	totals := map[string]decimal.Decimal{}
	display := map[string]string{}

	for _, t := range ledger.ByDateRange(s.ledger.All(), start, end) {
		if !t.IsExpense() {
			continue
		}
		key := strings.ToLower(t.Category)
		if _, seen := totals[key]; !seen {
			display[key] = t.Category
		}
		totals[key] = totals[key].Add(t.Amount)
	}

	summaries := make([]models.CategorySummary, 0, len(totals))
	for key, total := range totals {
		summaries = append(summaries, models.CategorySummary{
			Category: display[key],
			Total:    total,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Total.Equal(summaries[j].Total) {
			return summaries[i].Total.GreaterThan(summaries[j].Total)
		}
		return summaries[i].Category < summaries[j].Category
	})

	return summaries
}

// MonthSummary aggregates the calendar month containing now, anchored to the
// caller's local month boundaries.
func (s *analyticsService) MonthSummary(now time.Time) models.MonthSummary {
	start, end := MonthRange(now)

	income := s.TotalIncome(start, end)
	expense := s.TotalExpense(start, end)

	return models.MonthSummary{
		Start:        start,
		End:          end,
		TotalIncome:  income,
		TotalExpense: expense,
		NetBalance:   income.Sub(expense),
		ByCategory:   s.ExpensesByCategory(start, end),
	}
}

// WeeklySeries returns n calendar-week buckets ending at the current week,
// chronological ascending. Buckets are computed walking backward from now and
// reversed; empty buckets carry zero totals, never get skipped.
func (s *analyticsService) WeeklySeries(n int, now time.Time) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, n)
	currentWeek := startOfWeek(now, s.weekStart)

	for i := 0; i < n; i++ {
		start := currentWeek.AddDate(0, 0, -7*i)
		end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
		points = append(points, s.bucket(weekLabel(start), start, end))
	}

	reverse(points)
	return points
}

// MonthlySeries returns n calendar-month buckets ending at the current month,
// chronological ascending, built the same backward-walk-then-reverse way.
func (s *analyticsService) MonthlySeries(n int, now time.Time) []models.SeriesPoint {
	points := make([]models.SeriesPoint, 0, n)
	currentMonth := startOfMonth(now)

	for i := 0; i < n; i++ {
		start := currentMonth.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
		points = append(points, s.bucket(start.Format("Jan 2006"), start, end))
	}

	reverse(points)
	return points
}

func (s *analyticsService) bucket(label string, start, end time.Time) models.SeriesPoint {
	return models.SeriesPoint{
		Label:   label,
		Start:   start,
		End:     end,
		Income:  s.TotalIncome(start, end),
		Expense: s.TotalExpense(start, end),
	}
}

// MonthRange returns the local calendar month boundaries containing t: the
// first instant of the month through the last millisecond before the next.
func MonthRange(t time.Time) (time.Time, time.Time) {
	start := startOfMonth(t)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(midnight.Weekday()) - int(weekStart) + 7) % 7
	return midnight.AddDate(0, 0, -offset)
}

// weekLabel renders a short human label like "W2-Mar": the week-of-month of
// the bucket start plus the month abbreviation.
func weekLabel(start time.Time) string {
	weekOfMonth := (start.Day()-1)/7 + 1
	return fmt.Sprintf("W%d-%s", weekOfMonth, start.Format("Jan"))
}

func reverse(points []models.SeriesPoint) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
