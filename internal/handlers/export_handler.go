package handlers

import (
	"fmt"
	"net/http"
	"time"

	"pocketledger/internal/errors"
	"pocketledger/internal/ledger"
	"pocketledger/internal/services"

	"github.com/labstack/echo/v4"
)

const exportPrefix = "transactions"

// ExportHandler streams the ledger as a CSV attachment or writes it to the
// configured export directory.
type ExportHandler struct {
	store    ledger.Ledger
	exporter services.ExportServiceInterface
	metrics  services.MetricsRecorderInterface
	dir      string
}

// NewExportHandler creates a new export handler
func NewExportHandler(store ledger.Ledger, exporter services.ExportServiceInterface, metrics services.MetricsRecorderInterface, dir string) *ExportHandler {
	return &ExportHandler{
		store:    store,
		exporter: exporter,
		metrics:  metrics,
		dir:      dir,
	}
}

// CSV renders the full ledger, date descending, as a CSV download named
// <prefix>_<timestamp>.csv. An empty ledger still downloads the header line.
func (h *ExportHandler) CSV(c echo.Context) error {
	transactions := h.store.All()
	document := h.exporter.ToCSV(transactions)

	if document == "" {
		return sendError(c, http.StatusInternalServerError, errors.ExportFailed)
	}

	h.metrics.RecordExport()

	filename := h.exporter.FileName(exportPrefix, time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.Blob(http.StatusOK, "text/csv", []byte(document))
}

// File writes the full ledger to the export directory and returns the path.
func (h *ExportHandler) File(c echo.Context) error {
	transactions := h.store.All()

	path, err := h.exporter.WriteFile(h.dir, exportPrefix, transactions, time.Now())
	if err != nil {
		return sendError(c, http.StatusInternalServerError, errors.ExportFailed,
			errors.WithDetails(err.Error()))
	}

	h.metrics.RecordExport()

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"path":         path,
		"transactions": len(transactions),
	})
}
