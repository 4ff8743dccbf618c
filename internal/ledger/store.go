package ledger

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"pocketledger/internal/models"

	"github.com/google/uuid"
)

// Store is a file-backed Ledger. The whole collection lives in one JSON array
// file; every mutation rewrites the file through a temp-file-then-rename swap
// so a crash mid-write leaves the previous file intact. Mutations are
// serialized behind the write lock, reads take snapshots under the read lock
// and never observe a partially applied mutation.
type Store struct {
	mu           sync.RWMutex
	path         string
	transactions []models.Transaction
}

// Open loads the ledger file at path, creating the parent directory if
// needed. A missing or empty file yields an empty ledger; an unparsable one
// yields ErrCorruptLedger.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}

	transactions, err := load(path)
	if err != nil {
		return nil, err
	}

	sortByDateDesc(transactions)

	slog.Info("ledger opened", "path", path, "transactions", len(transactions))

	return &Store{
		path:         path,
		transactions: transactions,
	}, nil
}

func load(path string) ([]models.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read ledger file: %w", err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
	}

	transactions := make([]models.Transaction, 0, len(records))
	for _, r := range records {
		t, err := decodeRecord(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptLedger, err)
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}

// Upsert inserts or replaces the record keyed by transaction ID.
func (s *Store) Upsert(transaction models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.Transaction, len(s.transactions))
	copy(next, s.transactions)

	replaced := false
	for i := range next {
		if next[i].ID == transaction.ID {
			next[i] = transaction
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, transaction)
	}

	sortByDateDesc(next)

	if err := s.persist(next); err != nil {
		return err
	}

	s.transactions = next

	slog.Info("transaction saved",
		"id", transaction.ID,
		"kind", transaction.Kind,
		"category", transaction.Category,
		"replaced", replaced)

	return nil
}

// DeleteByID removes the matching record. Unknown IDs are a no-op.
func (s *Store) DeleteByID(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	next := make([]models.Transaction, 0, len(s.transactions)-1)
	next = append(next, s.transactions[:index]...)
	next = append(next, s.transactions[index+1:]...)

	if err := s.persist(next); err != nil {
		return err
	}

	s.transactions = next

	slog.Info("transaction deleted", "id", id)

	return nil
}

// GetByID returns the matching record, or false when absent.
func (s *Store) GetByID(id uuid.UUID) (models.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.transactions {
		if s.transactions[i].ID == id {
			return s.transactions[i], true
		}
	}
	return models.Transaction{}, false
}

// All returns a snapshot of the full ledger, date descending.
func (s *Store) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Transaction, len(s.transactions))
	copy(snapshot, s.transactions)
	return snapshot
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.transactions)
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// persist rewrites the whole collection. The temp file lands in the target
// directory so the final rename never crosses filesystems.
func (s *Store) persist(transactions []models.Transaction) error {
	records := make([]record, len(transactions))
	for i, t := range transactions {
		records[i] = encodeRecord(t)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp ledger file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("sync temp ledger file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp ledger file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace ledger file: %w", err)
	}

	return nil
}

// sortByDateDesc orders newest first. The stable sort keeps insertion order
// for equal timestamps.
func sortByDateDesc(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
}
