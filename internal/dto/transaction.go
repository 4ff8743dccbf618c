package dto

// CreateTransactionRequest is the payload for adding a ledger entry. Amounts
// travel as decimal strings to avoid float rounding; dates as epoch millis.
type CreateTransactionRequest struct {
	Title    string `json:"title" validate:"required"`
	Amount   string `json:"amount" validate:"required,positive_amount"`
	Category string `json:"category" validate:"required"`
	Date     int64  `json:"date" validate:"required"`
	Kind     string `json:"kind" validate:"required,transaction_kind"`
	Note     string `json:"note"`
}

// UpdateTransactionRequest replaces a stored entry via upsert, keyed by the
// path ID.
type UpdateTransactionRequest struct {
	Title    string `json:"title" validate:"required"`
	Amount   string `json:"amount" validate:"required,positive_amount"`
	Category string `json:"category" validate:"required"`
	Date     int64  `json:"date" validate:"required"`
	Kind     string `json:"kind" validate:"required,transaction_kind"`
	Note     string `json:"note"`
}

// TransactionFilters contains filtering options for transaction queries.
// StartDate and EndDate are epoch milliseconds, both ends inclusive.
type TransactionFilters struct {
	Kind      string `query:"kind"`
	Category  string `query:"category"`
	StartDate *int64 `query:"startDate"`
	EndDate   *int64 `query:"endDate"`
	Limit     int    `query:"limit"`
}

// TransactionResponse is the wire form of a single ledger entry.
type TransactionResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Date     int64  `json:"date"`
	Kind     string `json:"kind"`
	Note     string `json:"note,omitempty"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}
