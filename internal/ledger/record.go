package ledger

import (
	"fmt"
	"time"

	"pocketledger/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// record is the persisted wire form of a transaction: a JSON object inside a
// single JSON array file. Dates travel as epoch milliseconds. The isIncome
// flag is derived from the kind on every write and only consulted on read when
// older files carry no type field; it is never stored independently.
type record struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     int64           `json:"date"`
	Type     string          `json:"type"`
	IsIncome bool            `json:"isIncome"`
	Note     string          `json:"note,omitempty"`
}

func encodeRecord(t models.Transaction) record {
	return record{
		ID:       t.ID.String(),
		Title:    t.Title,
		Amount:   t.Amount,
		Category: t.Category,
		Date:     t.Date.UnixMilli(),
		Type:     t.Kind,
		IsIncome: t.Kind == models.KindIncome,
		Note:     t.Note,
	}
}

func decodeRecord(r record) (models.Transaction, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid transaction id %q: %w", r.ID, err)
	}

	kind := r.Type
	if kind == "" {
		kind = models.KindExpense
		if r.IsIncome {
			kind = models.KindIncome
		}
	}
	if !models.IsValidKind(kind) {
		return models.Transaction{}, fmt.Errorf("invalid transaction kind %q", kind)
	}

	return models.Transaction{
		ID:       id,
		Title:    r.Title,
		Amount:   r.Amount,
		Category: r.Category,
		Date:     time.UnixMilli(r.Date),
		Kind:     kind,
		Note:     r.Note,
	}, nil
}
