package ledger

import (
	"errors"

	"pocketledger/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrCorruptLedger is returned when the persisted ledger file cannot be
	// parsed. The file is left untouched so the data can be recovered; loading
	// is never silently degraded to an empty collection.
	ErrCorruptLedger = errors.New("ledger file is corrupt")
)

// Ledger defines the contract for the transaction store. All read methods
// return snapshots ordered by date descending, ties broken by insertion order.
type Ledger interface {
	// Upsert inserts the transaction, or replaces the stored record when the
	// ID already exists. The full collection is rewritten to disk atomically.
	Upsert(transaction models.Transaction) error

	// DeleteByID removes the matching record. Deleting an unknown ID is a
	// no-op, not an error.
	DeleteByID(id uuid.UUID) error

	// GetByID returns the matching record, or false when the ID is unknown.
	GetByID(id uuid.UUID) (models.Transaction, bool)

	// All returns a full snapshot of the ledger.
	All() []models.Transaction

	// Len returns the number of stored transactions.
	Len() int
}
