package loan_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Astemirdum/library-desk/desk/config"
	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/loan"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/rest"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, e *echo.Echo) *loan.Service {
	t.Helper()
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	rc := rest.New(zap.NewNop(), config.API{BaseURL: srv.URL + "/api", Timeout: time.Second}, circuit_breaker.New(10, time.Minute, 1.1, 1))
	return loan.NewService(zap.NewNop(), rc)
}

const loansBody = `[{"id":3,"clientId":1,"client":{"id":1,"name":"Ana","email":"ana@example.com","createdAt":"2025-01-02T10:00:00Z"},
"loan_date":"2025-03-01T09:30:00Z","due_date":"2025-03-15T09:30:00Z","loanStatus":0,"created_at":"2025-03-01T09:30:01Z",
"loanDetails":[{"id":7,"loanId":3,"bookId":10,"book":{"id":10,"title":"Dune","author":"Frank Herbert","description":null,"isAvailable":false}}]}]`

func TestService_List(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.GET("/api/loan", func(c echo.Context) error {
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(loansBody))
	})
	svc := newService(t, e)

	loans, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, loans, 1)
	require.Equal(t, "Ana", loans[0].Client.Name)
	require.Equal(t, model.StatusPending, loans[0].Status)
	require.Equal(t, 10, loans[0].Details[0].BookID)
}

func TestService_ListByClient(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.GET("/api/loan/client/:clientId", func(c echo.Context) error {
		if c.Param("clientId") != "1" {
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(`[]`))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(loansBody))
	})
	svc := newService(t, e)

	loans, err := svc.ListByClient(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, loans, 1)

	loans, err = svc.ListByClient(context.Background(), 2)
	require.NoError(t, err)
	require.Empty(t, loans)
	require.NotNil(t, loans)
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	loanDate := time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC)
	e := echo.New()
	e.POST("/api/loan", func(c echo.Context) error {
		var req model.CreateLoanRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if len(req.BookIDs) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "no books")
		}
		return c.JSON(http.StatusCreated, model.Loan{
			ID:       4,
			ClientID: req.ClientID,
			LoanDate: req.LoanDate,
			DueDate:  req.LoanDate.AddDate(0, 0, 14),
			Details:  []model.LoanDetail{{ID: 1, LoanID: 4, BookID: req.BookIDs[0]}},
		})
	})
	svc := newService(t, e)

	got, err := svc.Create(context.Background(), model.CreateLoanRequest{ClientID: 1, LoanDate: loanDate, BookIDs: []int{10}})
	require.NoError(t, err)
	require.Equal(t, 4, got.ID)
	require.True(t, got.LoanDate.Equal(loanDate))
	require.Equal(t, 10, got.Details[0].BookID)

	_, err = svc.Create(context.Background(), model.CreateLoanRequest{ClientID: 1, LoanDate: loanDate})
	require.ErrorIs(t, err, errs.ErrStatus)
}
