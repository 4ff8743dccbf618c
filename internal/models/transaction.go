package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	KindIncome  = "income"
	KindExpense = "expense"
)

var (
	ErrInvalidKind   = errors.New("invalid transaction kind")
	ErrInvalidAmount = errors.New("transaction amount must be positive")
	ErrEmptyTitle    = errors.New("transaction title is required")
	ErrEmptyCategory = errors.New("transaction category is required")
	ErrMissingID     = errors.New("transaction ID is required")
	ErrMissingDate   = errors.New("transaction date is required")
)

// Transaction is a single ledger entry. Records are immutable once saved;
// edits go through the store as a whole-record replacement keyed by ID.
type Transaction struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Kind     string          `json:"kind"`
	Note     string          `json:"note,omitempty"`
}

// NewTransaction builds a transaction with a fresh ID.
func NewTransaction(title string, amount decimal.Decimal, category string, date time.Time, kind, note string) Transaction {
	return Transaction{
		ID:       uuid.New(),
		Title:    title,
		Amount:   amount,
		Category: category,
		Date:     date,
		Kind:     kind,
		Note:     note,
	}
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.ID == uuid.Nil {
		return ErrMissingID
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if !IsValidKind(t.Kind) {
		return ErrInvalidKind
	}

	return nil
}

// IsIncome returns true for income entries.
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// IsExpense returns true for expense entries.
func (t *Transaction) IsExpense() bool {
	return t.Kind == KindExpense
}

// MatchesCategory reports whether the transaction belongs to the given
// category. Category names match case-insensitively everywhere.
func (t *Transaction) MatchesCategory(category string) bool {
	return strings.EqualFold(t.Category, category)
}

// IsValidKind checks if the transaction kind is valid
func IsValidKind(kind string) bool {
	switch kind {
	case KindIncome, KindExpense:
		return true
	default:
		return false
	}
}
