// Package prefs owns the budget configuration: the monthly limit, the sparse
// per-category limits and the warning threshold. Limits of zero mean unset.
package prefs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	DefaultWarningThreshold = 80
	MinWarningThreshold     = 50
	MaxWarningThreshold     = 90
)

// BudgetConfig is the read side consumed by the budget evaluator.
type BudgetConfig interface {
	MonthlyBudget() decimal.Decimal
	CategoryBudget(category string) decimal.Decimal
	CategoryBudgets() map[string]decimal.Decimal
	WarningThreshold() int
}

type settings struct {
	MonthlyBudget    decimal.Decimal            `json:"monthlyBudget"`
	CategoryBudgets  map[string]decimal.Decimal `json:"categoryBudgets"`
	WarningThreshold int                        `json:"warningThreshold"`
}

// Store is a file-backed BudgetConfig with setters. Writes follow the same
// temp-file-then-rename discipline as the ledger.
type Store struct {
	mu       sync.RWMutex
	path     string
	settings settings
}

// Open loads the preferences file at path; a missing file yields defaults.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create prefs directory: %w", err)
	}

	s := settings{
		MonthlyBudget:    decimal.Zero,
		CategoryBudgets:  map[string]decimal.Decimal{},
		WarningThreshold: DefaultWarningThreshold,
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read prefs file: %w", err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse prefs file: %w", err)
		}
		if s.CategoryBudgets == nil {
			s.CategoryBudgets = map[string]decimal.Decimal{}
		}
	}

	s.WarningThreshold = clampThreshold(s.WarningThreshold)

	return &Store{path: path, settings: s}, nil
}

// MonthlyBudget returns the configured monthly limit, zero when unset.
func (s *Store) MonthlyBudget() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.MonthlyBudget
}

// SetMonthlyBudget stores the monthly limit. Zero or negative unsets it.
func (s *Store) SetMonthlyBudget(limit decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit.LessThan(decimal.Zero) {
		limit = decimal.Zero
	}

	next := s.snapshotLocked()
	next.MonthlyBudget = limit
	if err := s.persist(next); err != nil {
		return err
	}
	s.settings = next

	slog.Info("monthly budget updated", "limit", limit)
	return nil
}

// CategoryBudget returns the limit for a category, zero when unset. Category
// names match case-insensitively.
func (s *Store) CategoryBudget(category string) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for name, limit := range s.settings.CategoryBudgets {
		if strings.EqualFold(name, category) {
			return limit
		}
	}
	return decimal.Zero
}

// CategoryBudgets returns a copy of all configured category limits.
func (s *Store) CategoryBudgets() map[string]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	budgets := make(map[string]decimal.Decimal, len(s.settings.CategoryBudgets))
	for name, limit := range s.settings.CategoryBudgets {
		budgets[name] = limit
	}
	return budgets
}

// SetCategoryBudget stores a per-category limit. Zero or negative removes the
// entry, keeping the map sparse.
func (s *Store) SetCategoryBudget(category string, limit decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshotLocked()
	for name := range next.CategoryBudgets {
		if strings.EqualFold(name, category) {
			delete(next.CategoryBudgets, name)
		}
	}
	if limit.GreaterThan(decimal.Zero) {
		next.CategoryBudgets[category] = limit
	}

	if err := s.persist(next); err != nil {
		return err
	}
	s.settings = next

	slog.Info("category budget updated", "category", category, "limit", limit)
	return nil
}

// WarningThreshold returns the warning percentage, always within [50,90].
func (s *Store) WarningThreshold() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.settings.WarningThreshold
}

// SetWarningThreshold stores the warning percentage, clamped to [50,90].
func (s *Store) SetWarningThreshold(threshold int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.snapshotLocked()
	next.WarningThreshold = clampThreshold(threshold)
	if err := s.persist(next); err != nil {
		return err
	}
	s.settings = next

	slog.Info("warning threshold updated", "threshold", next.WarningThreshold)
	return nil
}

func (s *Store) snapshotLocked() settings {
	next := s.settings
	next.CategoryBudgets = make(map[string]decimal.Decimal, len(s.settings.CategoryBudgets))
	for name, limit := range s.settings.CategoryBudgets {
		next.CategoryBudgets[name] = limit
	}
	return next
}

func (s *Store) persist(next settings) error {
	data, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".prefs-*.json")
	if err != nil {
		return fmt.Errorf("create temp prefs file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp prefs file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp prefs file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace prefs file: %w", err)
	}

	return nil
}

func clampThreshold(threshold int) int {
	if threshold == 0 {
		return DefaultWarningThreshold
	}
	if threshold < MinWarningThreshold {
		return MinWarningThreshold
	}
	if threshold > MaxWarningThreshold {
		return MaxWarningThreshold
	}
	return threshold
}
