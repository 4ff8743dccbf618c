package ledger

import (
	"testing"
	"time"

	"pocketledger/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type QueryTestSuite struct {
	suite.Suite
	transactions []models.Transaction
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(QueryTestSuite))
}

func (s *QueryTestSuite) SetupTest() {
	// Date descending, as an All() snapshot would be.
	s.transactions = []models.Transaction{
		s.entry("Salary", models.KindIncome, "Work", time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)),
		s.entry("Dinner", models.KindExpense, "Dining", time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)),
		s.entry("Groceries", models.KindExpense, "Groceries", time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC)),
		s.entry("Refund", models.KindIncome, "groceries", time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)),
	}
}

func (s *QueryTestSuite) entry(title, kind, category string, date time.Time) models.Transaction {
	return models.NewTransaction(title, decimal.NewFromInt(10), category, date, kind, "")
}

func (s *QueryTestSuite) titles(transactions []models.Transaction) []string {
	titles := make([]string, len(transactions))
	for i, t := range transactions {
		titles[i] = t.Title
	}
	return titles
}

func (s *QueryTestSuite) TestByKind() {
	s.Equal([]string{"Salary", "Refund"}, s.titles(ByKind(s.transactions, models.KindIncome)))
	s.Equal([]string{"Dinner", "Groceries"}, s.titles(ByKind(s.transactions, models.KindExpense)))
}

func (s *QueryTestSuite) TestByCategory_CaseInsensitive() {
	s.Equal([]string{"Groceries", "Refund"}, s.titles(ByCategory(s.transactions, "GROCERIES")))
	s.Empty(ByCategory(s.transactions, "Travel"))
}

func (s *QueryTestSuite) TestByDateRange_InclusiveBothEnds() {
	start := time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 19, 0, 0, 0, time.UTC)

	s.Equal([]string{"Dinner", "Groceries"}, s.titles(ByDateRange(s.transactions, start, end)))
}

func (s *QueryTestSuite) TestBeforeAndAfter_InclusiveBoundary() {
	boundary := time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC)

	s.Equal([]string{"Groceries", "Refund"}, s.titles(Before(s.transactions, boundary)))
	s.Equal([]string{"Salary", "Dinner", "Groceries"}, s.titles(After(s.transactions, boundary)))
}

func (s *QueryTestSuite) TestRecent() {
	s.Equal([]string{"Salary", "Dinner"}, s.titles(Recent(s.transactions, 2)))
	s.Len(Recent(s.transactions, 10), 4)
	s.Empty(Recent(s.transactions, 0))
}

func (s *QueryTestSuite) TestFiltersPreserveOrder() {
	filtered := ByKind(s.transactions, models.KindExpense)
	s.Require().Len(filtered, 2)
	s.True(filtered[0].Date.After(filtered[1].Date))
}
