package handlers

import (
	"pocketledger/internal/dto"
	"pocketledger/internal/errors"
	"pocketledger/internal/models"

	"github.com/labstack/echo/v4"
)

// getTraceID reads the trace ID the request-ID middleware stamped on the
// response header.
func getTraceID(c echo.Context) string {
	return c.Response().Header().Get("X-Trace-ID")
}

func sendError(c echo.Context, status int, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	return c.JSON(status, errors.NewErrorResponse(code, getTraceID(c), opts...))
}

func toTransactionResponse(t models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:       t.ID.String(),
		Title:    t.Title,
		Amount:   t.Amount.String(),
		Category: t.Category,
		Date:     t.Date.UnixMilli(),
		Kind:     t.Kind,
		Note:     t.Note,
	}
}

func toTransactionResponses(transactions []models.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = toTransactionResponse(t)
	}
	return responses
}
