package services

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pocketledger/internal/models"
)

const csvHeader = "ID,Date,Title,Amount,Category,Type,Note"

// exportService serializes transactions to CSV. A field is quoted, with
// internal quotes doubled, if and only if it contains a comma, a double quote
// or a newline; everything else is emitted unescaped. Amounts keep full
// decimal precision with no currency symbol.
type exportService struct{}

// NewExportService creates a new export service.
func NewExportService() ExportServiceInterface {
	return &exportService{}
}

// ToCSV renders the header line plus one line per transaction in input order.
// An empty list still yields the header.
func (s *exportService) ToCSV(transactions []models.Transaction) string {
	var b strings.Builder
	b.WriteString(csvHeader)
	b.WriteByte('\n')

	for _, t := range transactions {
		fields := []string{
			t.ID.String(),
			t.Date.Format(time.RFC3339),
			t.Title,
			t.Amount.String(),
			t.Category,
			kindLabel(t.Kind),
			t.Note,
		}
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(field))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// FileName builds the export sink naming convention <prefix>_<timestamp>.csv.
func (s *exportService) FileName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("20060102_150405"))
}

// WriteFile renders the transactions and writes them to dir under the
// convention name, returning the full path.
func (s *exportService) WriteFile(dir, prefix string, transactions []models.Transaction, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	path := filepath.Join(dir, s.FileName(prefix, now))
	if err := os.WriteFile(path, []byte(s.ToCSV(transactions)), 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}

	slog.Info("ledger exported", "path", path, "transactions", len(transactions))

	return path, nil
}

func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func kindLabel(kind string) string {
	if kind == models.KindIncome {
		return "Income"
	}
	return "Expense"
}
