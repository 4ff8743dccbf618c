package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pocketledger/internal/dto"
	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/ledger"
	"pocketledger/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// noopMetrics satisfies services.MetricsRecorderInterface without touching
// the prometheus default registry.
type noopMetrics struct{}

func (noopMetrics) RecordLedgerWrite(operation string, duration time.Duration) {}
func (noopMetrics) RecordBudgetAlert(tier, scope string)                       {}
func (noopMetrics) RecordExport()                                              {}

type TransactionHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	store   *ledger.Store
	handler *TransactionHandler
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (s *TransactionHandlerTestSuite) SetupTest() {
	s.echo = echo.New()

	store, err := ledger.Open(filepath.Join(s.T().TempDir(), "ledger.json"))
	s.Require().NoError(err)
	s.store = store

	s.handler = NewTransactionHandler(s.store, noopMetrics{})
}

func (s *TransactionHandlerTestSuite) jsonRequest(method, target string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var reader *strings.Reader
	if body != nil {
		data, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = strings.NewReader(string(data))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return rec, s.echo.NewContext(req, rec)
}

func (s *TransactionHandlerTestSuite) createRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Title:    gofakeit.ProductName(),
		Amount:   fmt.Sprintf("%.2f", gofakeit.Price(1, 500)),
		Category: gofakeit.RandomString([]string{"Groceries", "Dining", "Travel"}),
		Date:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC).UnixMilli(),
		Kind:     models.KindExpense,
	}
}

func (s *TransactionHandlerTestSuite) seed(kind, category string, date time.Time) models.Transaction {
	transaction := models.NewTransaction(
		gofakeit.ProductName(),
		decimal.NewFromFloat(gofakeit.Price(1, 500)),
		category,
		date,
		kind,
		"",
	)
	s.Require().NoError(s.store.Upsert(transaction))
	return transaction
}

func (s *TransactionHandlerTestSuite) TestCreate_Success() {
	req := s.createRequest()
	rec, c := s.jsonRequest(http.MethodPost, "/api/v1/transactions", req)

	s.Require().NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(req.Title, resp.Title)
	s.Equal(req.Kind, resp.Kind)
	s.Equal(req.Date, resp.Date)
	s.NotEmpty(resp.ID)

	s.Equal(1, s.store.Len())
}

func (s *TransactionHandlerTestSuite) TestCreate_MissingTitleFailsValidation() {
	req := s.createRequest()
	req.Title = ""
	rec, c := s.jsonRequest(http.MethodPost, "/api/v1/transactions", req)

	s.Require().NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(0, s.store.Len())
}

func (s *TransactionHandlerTestSuite) TestCreate_InvalidKindFailsValidation() {
	req := s.createRequest()
	req.Kind = "transfer"
	rec, c := s.jsonRequest(http.MethodPost, "/api/v1/transactions", req)

	s.Require().NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestCreate_NonPositiveAmountFailsValidation() {
	req := s.createRequest()
	req.Amount = "-10"
	rec, c := s.jsonRequest(http.MethodPost, "/api/v1/transactions", req)

	s.Require().NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestUpdate_UnknownIDInserts() {
	id := uuid.New()
	req := s.createRequest()
	rec, c := s.jsonRequest(http.MethodPut, "/api/v1/transactions/"+id.String(), req)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.Require().NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)

	got, ok := s.store.GetByID(id)
	s.Require().True(ok)
	s.Equal(req.Title, got.Title)
}

func (s *TransactionHandlerTestSuite) TestUpdate_MalformedIDReturnsBadRequest() {
	rec, c := s.jsonRequest(http.MethodPut, "/api/v1/transactions/nope", s.createRequest())
	c.SetParamNames("id")
	c.SetParamValues("nope")

	s.Require().NoError(s.handler.Update(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apperrors.TransactionInvalidID), resp.Error.Code)
}

func (s *TransactionHandlerTestSuite) TestGet_Success() {
	seeded := s.seed(models.KindExpense, "Groceries", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	rec, c := s.jsonRequest(http.MethodGet, "/api/v1/transactions/"+seeded.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID.String())

	s.Require().NoError(s.handler.Get(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TransactionResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(seeded.ID.String(), resp.ID)
}

func (s *TransactionHandlerTestSuite) TestGet_UnknownIDReturnsNotFound() {
	id := uuid.New()
	rec, c := s.jsonRequest(http.MethodGet, "/api/v1/transactions/"+id.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	s.Require().NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var resp apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(apperrors.TransactionNotFound), resp.Error.Code)
}

func (s *TransactionHandlerTestSuite) TestDelete_Success() {
	seeded := s.seed(models.KindExpense, "Groceries", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	rec, c := s.jsonRequest(http.MethodDelete, "/api/v1/transactions/"+seeded.ID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID.String())

	s.Require().NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(0, s.store.Len())
}

func (s *TransactionHandlerTestSuite) TestDelete_UnknownIDStillSucceeds() {
	rec, c := s.jsonRequest(http.MethodDelete, "/api/v1/transactions/"+uuid.NewString(), nil)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	s.Require().NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestList_ReturnsAllDateDescending() {
	s.seed(models.KindExpense, "Groceries", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	newest := s.seed(models.KindIncome, "Work", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))

	rec, c := s.jsonRequest(http.MethodGet, "/api/v1/transactions", nil)

	s.Require().NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Total)
	s.Equal(newest.ID.String(), resp.Transactions[0].ID)
}

func (s *TransactionHandlerTestSuite) TestList_FilterByKindAndCategory() {
	s.seed(models.KindExpense, "Groceries", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	s.seed(models.KindExpense, "Dining", time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))
	s.seed(models.KindIncome, "Work", time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC))

	rec, c := s.jsonRequest(http.MethodGet, "/api/v1/transactions?kind=expense&category=groceries", nil)

	s.Require().NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Total)
	s.Equal("Groceries", resp.Transactions[0].Category)
}

func (s *TransactionHandlerTestSuite) TestList_InvalidKindReturnsBadRequest() {
	rec, c := s.jsonRequest(http.MethodGet, "/api/v1/transactions?kind=transfer", nil)

	s.Require().NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransactionHandlerTestSuite) TestList_DateRangeInclusive() {
	inside := s.seed(models.KindExpense, "Groceries", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	s.seed(models.KindExpense, "Groceries", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))

	start := inside.Date.UnixMilli()
	end := inside.Date.UnixMilli()
	target := fmt.Sprintf("/api/v1/transactions?startDate=%d&endDate=%d", start, end)
	rec, c := s.jsonRequest(http.MethodGet, target, nil)

	s.Require().NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Total)
	s.Equal(inside.ID.String(), resp.Transactions[0].ID)
}

func (s *TransactionHandlerTestSuite) TestList_LimitKeepsMostRecent() {
	s.seed(models.KindExpense, "Groceries", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))
	s.seed(models.KindExpense, "Dining", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	newest := s.seed(models.KindIncome, "Work", time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))

	rec, c := s.jsonRequest(http.MethodGet, "/api/v1/transactions?limit=1", nil)

	s.Require().NoError(s.handler.List(c))

	var resp dto.ListTransactionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Total)
	s.Equal(newest.ID.String(), resp.Transactions[0].ID)
}
