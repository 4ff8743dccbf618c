package models

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionTestSuite struct {
	suite.Suite
}

func TestTransactionSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) validTransaction() Transaction {
	return NewTransaction(
		gofakeit.ProductName(),
		decimal.NewFromFloat(42.50),
		"Groceries",
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		KindExpense,
		"",
	)
}

func (s *TransactionTestSuite) TestNewTransaction_AssignsFreshID() {
	first := s.validTransaction()
	second := s.validTransaction()

	s.NotEqual(uuid.Nil, first.ID)
	s.NotEqual(first.ID, second.ID)
}

func (s *TransactionTestSuite) TestValidate_Valid() {
	transaction := s.validTransaction()
	s.NoError(transaction.Validate())
}

func (s *TransactionTestSuite) TestValidate_Invalid() {
	testCases := []struct {
		name     string
		mutate   func(*Transaction)
		expected error
	}{
		{"missing id", func(t *Transaction) { t.ID = uuid.Nil }, ErrMissingID},
		{"empty title", func(t *Transaction) { t.Title = "  " }, ErrEmptyTitle},
		{"zero amount", func(t *Transaction) { t.Amount = decimal.Zero }, ErrInvalidAmount},
		{"negative amount", func(t *Transaction) { t.Amount = decimal.NewFromInt(-5) }, ErrInvalidAmount},
		{"empty category", func(t *Transaction) { t.Category = "" }, ErrEmptyCategory},
		{"zero date", func(t *Transaction) { t.Date = time.Time{} }, ErrMissingDate},
		{"bad kind", func(t *Transaction) { t.Kind = "transfer" }, ErrInvalidKind},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			transaction := s.validTransaction()
			tc.mutate(&transaction)
			s.ErrorIs(transaction.Validate(), tc.expected)
		})
	}
}

func (s *TransactionTestSuite) TestKindHelpers() {
	transaction := s.validTransaction()
	s.True(transaction.IsExpense())
	s.False(transaction.IsIncome())

	transaction.Kind = KindIncome
	s.True(transaction.IsIncome())
	s.False(transaction.IsExpense())
}

func (s *TransactionTestSuite) TestMatchesCategory_CaseInsensitive() {
	transaction := s.validTransaction()

	s.True(transaction.MatchesCategory("groceries"))
	s.True(transaction.MatchesCategory("GROCERIES"))
	s.False(transaction.MatchesCategory("dining"))
}

func (s *TransactionTestSuite) TestIsValidKind() {
	s.True(IsValidKind(KindIncome))
	s.True(IsValidKind(KindExpense))
	s.False(IsValidKind(""))
	s.False(IsValidKind("Income"))
}
