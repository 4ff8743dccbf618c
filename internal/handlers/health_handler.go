package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pocketledger/internal/errors"
	"pocketledger/internal/ledger"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	store *ledger.Store
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(store *ledger.Store) *HealthCheckHandler {
	return &HealthCheckHandler{store: store}
}

// HealthCheck reports whether the ledger's backing directory is reachable.
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if _, err := os.Stat(filepath.Dir(h.store.Path())); err != nil {
		return c.JSON(http.StatusServiceUnavailable, errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			getTraceID(c),
			errors.WithDetails("Ledger storage is unreachable"),
		))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
