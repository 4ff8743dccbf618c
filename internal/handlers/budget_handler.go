package handlers

import (
	"net/http"
	"time"

	"pocketledger/internal/dto"
	"pocketledger/internal/errors"
	"pocketledger/internal/prefs"
	"pocketledger/internal/services"
	"pocketledger/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler exposes the budget configuration and the evaluated status.
type BudgetHandler struct {
	prefs     *prefs.Store
	budget    services.BudgetServiceInterface
	validator *validation.Validator
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(prefsStore *prefs.Store, budget services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		prefs:     prefsStore,
		budget:    budget,
		validator: validation.GetValidator(),
	}
}

// GetConfig returns the persisted budget configuration.
func (h *BudgetHandler) GetConfig(c echo.Context) error {
	limits := map[string]string{}
	for category, limit := range h.prefs.CategoryBudgets() {
		limits[category] = limit.String()
	}

	return c.JSON(http.StatusOK, dto.BudgetConfigResponse{
		MonthlyLimit:     h.prefs.MonthlyBudget().String(),
		CategoryLimits:   limits,
		WarningThreshold: h.prefs.WarningThreshold(),
	})
}

// SetMonthly configures the whole-month limit; "0" unsets it.
func (h *BudgetHandler) SetMonthly(c echo.Context) error {
	var req dto.SetMonthlyBudgetRequest
	if err := c.Bind(&req); err != nil {
		return sendError(c, http.StatusBadRequest, errors.ValidationInvalidFormat)
	}

	if details := h.validator.Validate(&req); details != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationErrorFromList(details, getTraceID(c)))
	}

	limit, err := decimal.NewFromString(req.Limit)
	if err != nil || limit.LessThan(decimal.Zero) {
		return sendError(c, http.StatusBadRequest, errors.BudgetInvalidLimit)
	}

	if err := h.prefs.SetMonthlyBudget(limit); err != nil {
		return sendError(c, http.StatusInternalServerError, errors.BudgetWriteFailed)
	}

	return h.GetConfig(c)
}

// SetCategory configures a per-category limit; "0" removes it.
func (h *BudgetHandler) SetCategory(c echo.Context) error {
	category := c.Param("category")
	if category == "" {
		return sendError(c, http.StatusBadRequest, errors.ValidationRequiredField)
	}

	var req dto.SetCategoryBudgetRequest
	if err := c.Bind(&req); err != nil {
		return sendError(c, http.StatusBadRequest, errors.ValidationInvalidFormat)
	}

	if details := h.validator.Validate(&req); details != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationErrorFromList(details, getTraceID(c)))
	}

	limit, err := decimal.NewFromString(req.Limit)
	if err != nil || limit.LessThan(decimal.Zero) {
		return sendError(c, http.StatusBadRequest, errors.BudgetInvalidLimit)
	}

	if err := h.prefs.SetCategoryBudget(category, limit); err != nil {
		return sendError(c, http.StatusInternalServerError, errors.BudgetWriteFailed)
	}

	return h.GetConfig(c)
}

// SetThreshold configures the warning percentage within [50,90].
func (h *BudgetHandler) SetThreshold(c echo.Context) error {
	var req dto.SetWarningThresholdRequest
	if err := c.Bind(&req); err != nil {
		return sendError(c, http.StatusBadRequest, errors.ValidationInvalidFormat)
	}

	if details := h.validator.Validate(&req); details != nil {
		return c.JSON(http.StatusBadRequest, errors.NewValidationErrorFromList(details, getTraceID(c)))
	}

	if err := h.prefs.SetWarningThreshold(req.Threshold); err != nil {
		return sendError(c, http.StatusInternalServerError, errors.BudgetWriteFailed)
	}

	return h.GetConfig(c)
}

// Status evaluates the current month against every configured limit, pushes
// any threshold events to the notifier, and returns the derived view.
func (h *BudgetHandler) Status(c echo.Context) error {
	now := time.Now()

	h.budget.CheckMonthlyBudget(now)
	h.budget.CheckCategoryBudgets(now)

	return c.JSON(http.StatusOK, h.budget.MonthlyStatus(now))
}
