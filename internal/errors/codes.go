package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionInvalidKind      ErrorCode = "TRANSACTION_003"
	TransactionInvalidID        ErrorCode = "TRANSACTION_004"
	TransactionValidationFailed ErrorCode = "TRANSACTION_005"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerCorrupt     ErrorCode = "LEDGER_001"
	LedgerWriteFailed ErrorCode = "LEDGER_002"
	LedgerUnavailable ErrorCode = "LEDGER_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetInvalidLimit     ErrorCode = "BUDGET_001"
	BudgetInvalidThreshold ErrorCode = "BUDGET_002"
	BudgetWriteFailed      ErrorCode = "BUDGET_003"
)

// Export error codes (EXPORT_*)
const (
	ExportFailed ErrorCode = "EXPORT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Transaction amount must be positive",
	TransactionInvalidKind:      "Transaction kind must be income or expense",
	TransactionInvalidID:        "Invalid transaction ID format",
	TransactionValidationFailed: "Transaction validation failed",

	// Ledger errors
	LedgerCorrupt:     "Ledger data is corrupt and requires recovery",
	LedgerWriteFailed: "Failed to persist the ledger",
	LedgerUnavailable: "Ledger storage is unavailable",

	// Budget errors
	BudgetInvalidLimit:     "Budget limit must be zero or positive",
	BudgetInvalidThreshold: "Warning threshold must be between 50 and 90",
	BudgetWriteFailed:      "Failed to persist budget configuration",

	// Export errors
	ExportFailed: "Failed to generate CSV export",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
