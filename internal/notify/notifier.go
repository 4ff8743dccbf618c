// Package notify carries budget events to the presentation layer. The core
// only decides whether and what to emit; delivery, scheduling and
// deduplication belong to the receiving side.
package notify

import (
	"log/slog"

	"pocketledger/internal/models"
)

// Notifier receives budget warning and exceeded events.
type Notifier interface {
	Notify(event models.BudgetEvent)
}

// LogNotifier writes events to the structured log.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify logs the event.
func (n *LogNotifier) Notify(event models.BudgetEvent) {
	switch event.Tier {
	case models.BudgetTierExceeded:
		slog.Warn("budget exceeded",
			"category", event.Category,
			"exceeded_amount", event.ExceededAmount)
	case models.BudgetTierWarning:
		slog.Warn("budget warning",
			"category", event.Category,
			"percent_spent", event.PercentSpent)
	default:
		slog.Info("budget event",
			"tier", event.Tier,
			"category", event.Category)
	}
}
