package dto

// SetMonthlyBudgetRequest configures the whole-month limit. A limit of "0"
// unsets the budget.
type SetMonthlyBudgetRequest struct {
	Limit string `json:"limit" validate:"required"`
}

// SetCategoryBudgetRequest configures one category limit; "0" removes it.
type SetCategoryBudgetRequest struct {
	Limit string `json:"limit" validate:"required"`
}

// SetWarningThresholdRequest configures the warning percentage.
type SetWarningThresholdRequest struct {
	Threshold int `json:"threshold" validate:"required,min=50,max=90"`
}

// BudgetConfigResponse mirrors the persisted budget configuration.
type BudgetConfigResponse struct {
	MonthlyLimit     string            `json:"monthly_limit"`
	CategoryLimits   map[string]string `json:"category_limits"`
	WarningThreshold int               `json:"warning_threshold"`
}
