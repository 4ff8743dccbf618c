package ledger

import (
	"time"

	"pocketledger/internal/models"
)

// Query helpers are pure functions over a ledger snapshot. Input order is
// preserved, so filtering an All() snapshot stays date descending.

// ByKind keeps only income or only expense entries.
func ByKind(transactions []models.Transaction, kind string) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Kind == kind {
			matched = append(matched, t)
		}
	}
	return matched
}

// ByCategory keeps entries in the given category, matched case-insensitively.
func ByCategory(transactions []models.Transaction, category string) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.MatchesCategory(category) {
			matched = append(matched, t)
		}
	}
	return matched
}

// ByDateRange keeps entries with start <= date <= end, both ends inclusive.
func ByDateRange(transactions []models.Transaction, start, end time.Time) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		matched = append(matched, t)
	}
	return matched
}

// Before keeps entries dated at or before d.
func Before(transactions []models.Transaction, d time.Time) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.Date.After(d) {
			matched = append(matched, t)
		}
	}
	return matched
}

// After keeps entries dated at or after d.
func After(transactions []models.Transaction, d time.Time) []models.Transaction {
	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !t.Date.Before(d) {
			matched = append(matched, t)
		}
	}
	return matched
}

// Recent returns the first n entries of the snapshot, i.e. the n newest when
// the snapshot is date descending.
func Recent(transactions []models.Transaction, n int) []models.Transaction {
	if n <= 0 {
		return []models.Transaction{}
	}
	if n > len(transactions) {
		n = len(transactions)
	}
	recent := make([]models.Transaction, n)
	copy(recent, transactions[:n])
	return recent
}
