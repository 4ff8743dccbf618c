package handlers

import (
	"net/http"
	"time"

	"pocketledger/internal/dto"
	"pocketledger/internal/errors"
	"pocketledger/internal/ledger"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
	"pocketledger/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const defaultListLimit = 0 // zero means no limit

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	store     ledger.Ledger
	validator *validation.Validator
	metrics   services.MetricsRecorderInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(store ledger.Ledger, metrics services.MetricsRecorderInterface) *TransactionHandler {
	return &TransactionHandler{
		store:     store,
		validator: validation.GetValidator(),
		metrics:   metrics,
	}
}

// Create adds a new transaction to the ledger.
func (h *TransactionHandler) Create(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return sendError(c, http.StatusBadRequest, errors.ValidationInvalidFormat)
	}

	if details := h.validator.Validate(&req); details != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationErrorFromList(details, getTraceID(c)))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return sendError(c, http.StatusBadRequest, errors.TransactionInvalidAmount)
	}

	transaction := models.NewTransaction(
		req.Title,
		amount,
		req.Category,
		time.UnixMilli(req.Date),
		req.Kind,
		req.Note,
	)

	if err := transaction.Validate(); err != nil {
		return sendError(c, http.StatusBadRequest, errors.TransactionValidationFailed,
			errors.WithDetails(err.Error()))
	}

	start := time.Now()
	if err := h.store.Upsert(transaction); err != nil {
		return sendError(c, http.StatusInternalServerError, errors.LedgerWriteFailed)
	}
	h.metrics.RecordLedgerWrite("upsert", time.Since(start))

	return c.JSON(http.StatusCreated, toTransactionResponse(transaction))
}

// Update replaces the stored transaction with the path ID (upsert semantics:
// an unknown ID inserts).
func (h *TransactionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendError(c, http.StatusBadRequest, errors.TransactionInvalidID)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return sendError(c, http.StatusBadRequest, errors.ValidationInvalidFormat)
	}

	if details := h.validator.Validate(&req); details != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationErrorFromList(details, getTraceID(c)))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return sendError(c, http.StatusBadRequest, errors.TransactionInvalidAmount)
	}

	transaction := models.Transaction{
		ID:       id,
		Title:    req.Title,
		Amount:   amount,
		Category: req.Category,
		Date:     time.UnixMilli(req.Date),
		Kind:     req.Kind,
		Note:     req.Note,
	}

	if err := transaction.Validate(); err != nil {
		return sendError(c, http.StatusBadRequest, errors.TransactionValidationFailed,
			errors.WithDetails(err.Error()))
	}

	start := time.Now()
	if err := h.store.Upsert(transaction); err != nil {
		return sendError(c, http.StatusInternalServerError, errors.LedgerWriteFailed)
	}
	h.metrics.RecordLedgerWrite("upsert", time.Since(start))

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// Get returns a single transaction by ID.
func (h *TransactionHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendError(c, http.StatusBadRequest, errors.TransactionInvalidID)
	}

	transaction, ok := h.store.GetByID(id)
	if !ok {
		return sendError(c, http.StatusNotFound, errors.TransactionNotFound)
	}

	return c.JSON(http.StatusOK, toTransactionResponse(transaction))
}

// Delete removes a transaction. Deleting an unknown ID still succeeds.
func (h *TransactionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return sendError(c, http.StatusBadRequest, errors.TransactionInvalidID)
	}

	start := time.Now()
	if err := h.store.DeleteByID(id); err != nil {
		return sendError(c, http.StatusInternalServerError, errors.LedgerWriteFailed)
	}
	h.metrics.RecordLedgerWrite("delete", time.Since(start))

	return c.NoContent(http.StatusNoContent)
}

// List returns the ledger snapshot, date descending, optionally filtered by
// kind, category and inclusive date range.
func (h *TransactionHandler) List(c echo.Context) error {
	var filters dto.TransactionFilters
	if err := c.Bind(&filters); err != nil {
		return sendError(c, http.StatusBadRequest, errors.ValidationInvalidFormat)
	}

	if filters.Kind != "" && !models.IsValidKind(filters.Kind) {
		return sendError(c, http.StatusBadRequest, errors.TransactionInvalidKind)
	}

	transactions := h.store.All()

	if filters.Kind != "" {
		transactions = ledger.ByKind(transactions, filters.Kind)
	}
	if filters.Category != "" {
		transactions = ledger.ByCategory(transactions, filters.Category)
	}

	switch {
	case filters.StartDate != nil && filters.EndDate != nil:
		transactions = ledger.ByDateRange(transactions,
			time.UnixMilli(*filters.StartDate), time.UnixMilli(*filters.EndDate))
	case filters.StartDate != nil:
		transactions = ledger.After(transactions, time.UnixMilli(*filters.StartDate))
	case filters.EndDate != nil:
		transactions = ledger.Before(transactions, time.UnixMilli(*filters.EndDate))
	}

	if filters.Limit > defaultListLimit {
		transactions = ledger.Recent(transactions, filters.Limit)
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: toTransactionResponses(transactions),
		Total:        len(transactions),
	})
}
