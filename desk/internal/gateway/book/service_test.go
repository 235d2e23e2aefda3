package book_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/Astemirdum/library-desk/desk/config"
	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/book"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/rest"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/pkg/circuit_breaker"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T, e *echo.Echo) *book.Service {
	t.Helper()
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	log := zap.NewExample().Named("test")
	rc := rest.New(log, config.API{BaseURL: srv.URL + "/api", Timeout: time.Second}, circuit_breaker.New(10, time.Minute, 1.1, 1))
	return book.NewService(log, rc)
}

func TestService_List(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		body    string
		status  int
		want    []model.Book
		wantErr error
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `[{"id":10,"title":"Dune","author":"Frank Herbert","description":"Arrakis","isAvailable":true},{"id":11,"title":"Foundation","author":"Isaac Asimov","description":null,"isAvailable":false}]`,
			want: []model.Book{
				{ID: 10, Title: "Dune", Author: "Frank Herbert", Description: ptr("Arrakis"), IsAvailable: true},
				{ID: 11, Title: "Foundation", Author: "Isaac Asimov"},
			},
		},
		{
			name:   "empty",
			status: http.StatusOK,
			body:   `[]`,
			want:   []model.Book{},
		},
		{
			name:   "null body",
			status: http.StatusOK,
			body:   `null`,
			want:   []model.Book{},
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"message":"db down"}`,
			wantErr: errs.ErrStatus,
		},
		{
			name:    "malformed",
			status:  http.StatusOK,
			body:    `{"id":`,
			wantErr: errs.ErrDecode,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/api/book", func(c echo.Context) error {
				return c.Blob(tt.status, echo.MIMEApplicationJSON, []byte(tt.body))
			})
			svc := newService(t, e)

			books, err := svc.List(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, books)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, books)
		})
	}
}

func TestService_Create(t *testing.T) {
	t.Parallel()
	e := echo.New()
	e.POST("/api/book", func(c echo.Context) error {
		var req model.CreateBookRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return c.JSON(http.StatusCreated, model.Book{ID: 12, Title: req.Title, Author: req.Author, Description: req.Description, IsAvailable: true})
	})
	svc := newService(t, e)

	got, err := svc.Create(context.Background(), model.CreateBookRequest{Title: "Hyperion", Author: "Dan Simmons"})
	require.NoError(t, err)
	require.Equal(t, model.Book{ID: 12, Title: "Hyperion", Author: "Dan Simmons", IsAvailable: true}, got)
}

func TestService_Delete(t *testing.T) {
	t.Parallel()
	deleted := make(chan int, 1)
	e := echo.New()
	e.DELETE("/api/book/:id", func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if id == 404 {
			return echo.NewHTTPError(http.StatusNotFound, "book not found")
		}
		deleted <- id
		return c.NoContent(http.StatusNoContent)
	})
	svc := newService(t, e)

	require.NoError(t, svc.Delete(context.Background(), 10))
	require.Equal(t, 10, <-deleted)

	err := svc.Delete(context.Background(), 404)
	require.ErrorIs(t, err, errs.ErrStatus)
	require.Equal(t, http.StatusNotFound, errs.StatusCode(err))
}

func ptr(s string) *string {
	return &s
}
