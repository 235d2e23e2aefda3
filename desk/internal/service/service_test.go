package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/events"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/service"
	"github.com/Astemirdum/library-desk/pkg/query"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/library-desk/desk/internal/service/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type deps struct {
	books   *service_mocks.MockBookAPI
	clients *service_mocks.MockClientAPI
	loans   *service_mocks.MockLoanAPI
	pub     *recorder
	cache   *query.Cache
}

type recorder struct {
	events []events.Event
	err    error
}

func (r *recorder) Publish(_ context.Context, e events.Event) error {
	r.events = append(r.events, e)
	return r.err
}

func newService(t *testing.T) (*service.Service, deps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := deps{
		books:   service_mocks.NewMockBookAPI(ctrl),
		clients: service_mocks.NewMockClientAPI(ctrl),
		loans:   service_mocks.NewMockLoanAPI(ctrl),
		pub:     &recorder{},
		cache:   query.New(),
	}
	t.Cleanup(d.cache.Close)
	return service.New(zap.NewNop(), d.cache, d.books, d.clients, d.loans, d.pub), d
}

var (
	dune       = model.Book{ID: 10, Title: "Dune", Author: "Frank Herbert", IsAvailable: true}
	foundation = model.Book{ID: 11, Title: "Foundation", Author: "Isaac Asimov", IsAvailable: true}
	ana        = model.Client{ID: 1, Name: "Ana", Email: "ana@example.com"}
)

func TestService_BooksCached(t *testing.T) {
	svc, d := newService(t)
	d.books.EXPECT().List(gomock.Any()).Return([]model.Book{dune}, nil).Times(1)

	for i := 0; i < 3; i++ {
		books, err := svc.Books(context.Background())
		require.NoError(t, err)
		require.Equal(t, []model.Book{dune}, books)
	}
}

func TestService_ClientLoans(t *testing.T) {
	svc, d := newService(t)
	loan := model.Loan{ID: 3, ClientID: ana.ID, Client: ana}
	d.loans.EXPECT().ListByClient(gomock.Any(), ana.ID).Return([]model.Loan{loan}, nil)
	d.loans.EXPECT().ListByClient(gomock.Any(), 2).Return([]model.Loan{}, nil)

	got, err := svc.ClientLoans(context.Background(), ana.ID)
	require.NoError(t, err)
	require.Equal(t, []model.Loan{loan}, got)

	got, err = svc.ClientLoans(context.Background(), 2)
	require.NoError(t, err)
	require.Empty(t, got)
	require.Equal(t, query.Key("loans:client:2"), service.ClientLoansKey(2))
}

func TestService_LoanOptions(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc, d := newService(t)
		d.clients.EXPECT().List(gomock.Any()).Return([]model.Client{ana}, nil)
		d.books.EXPECT().List(gomock.Any()).Return([]model.Book{dune, foundation}, nil)

		opts, err := svc.LoanOptions(context.Background())
		require.NoError(t, err)
		require.Equal(t, []model.Client{ana}, opts.Clients)
		require.Equal(t, []model.Book{dune, foundation}, opts.Books)
	})
	t.Run("one side fails", func(t *testing.T) {
		svc, d := newService(t)
		d.clients.EXPECT().List(gomock.Any()).Return(nil, errs.ErrTransport)
		d.books.EXPECT().List(gomock.Any()).Return([]model.Book{dune}, nil).AnyTimes()

		_, err := svc.LoanOptions(context.Background())
		require.ErrorIs(t, err, errs.ErrTransport)
	})
}

func TestService_CreateBook(t *testing.T) {
	type mockBehavior func(d deps)
	desc := "  "
	tests := []struct {
		name         string
		req          model.CreateBookRequest
		mockBehavior mockBehavior
		wantErr      error
		wantFields   []string
		wantGen      uint64
	}{
		{
			name: "ok",
			req:  model.CreateBookRequest{Title: " Hyperion ", Author: "Dan Simmons", Description: &desc},
			mockBehavior: func(d deps) {
				d.books.EXPECT().
					Create(gomock.Any(), model.CreateBookRequest{Title: "Hyperion", Author: "Dan Simmons"}).
					Return(model.Book{ID: 12, Title: "Hyperion", Author: "Dan Simmons", IsAvailable: true}, nil)
			},
			wantGen: 1,
		},
		{
			name:         "err. title and author required",
			req:          model.CreateBookRequest{Title: "   "},
			mockBehavior: func(d deps) {},
			wantErr:      errs.ErrInvalid,
			wantFields:   []string{"title", "author"},
		},
		{
			name: "err. server rejects",
			req:  model.CreateBookRequest{Title: "Dune", Author: "Frank Herbert"},
			mockBehavior: func(d deps) {
				d.books.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(model.Book{}, &errs.StatusError{Method: http.MethodPost, Path: "/book", Code: http.StatusConflict})
			},
			wantErr: errs.ErrStatus,
			wantGen: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.mockBehavior(d)

			got, err := svc.CreateBook(context.Background(), tt.req)
			require.Equal(t, tt.wantGen, d.cache.Generation(service.KeyBooks))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var fields []string
				for _, f := range errs.Fields(err) {
					fields = append(fields, f.Field)
				}
				require.Equal(t, tt.wantFields, fields)
				require.Empty(t, d.pub.events)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 12, got.ID)
			require.Len(t, d.pub.events, 1)
			require.Equal(t, events.BookCreated, d.pub.events[0].Type)
		})
	}
}

func TestService_DeleteBookInvalidatesOnSettle(t *testing.T) {
	svc, d := newService(t)
	d.books.EXPECT().Delete(gomock.Any(), 10).Return(nil)
	d.books.EXPECT().Delete(gomock.Any(), 11).Return(errs.ErrTransport)

	require.NoError(t, svc.DeleteBook(context.Background(), 10))
	require.EqualValues(t, 1, d.cache.Generation(service.KeyBooks))

	require.ErrorIs(t, svc.DeleteBook(context.Background(), 11), errs.ErrTransport)
	require.EqualValues(t, 2, d.cache.Generation(service.KeyBooks))
	require.Len(t, d.pub.events, 1)
	require.Equal(t, events.BookDeleted, d.pub.events[0].Type)
}

func TestService_CreateClient(t *testing.T) {
	svc, d := newService(t)
	d.clients.EXPECT().
		Create(gomock.Any(), model.CreateClientRequest{Name: "Bruno", Email: "bruno@example.com"}).
		Return(model.Client{ID: 2, Name: "Bruno", Email: "bruno@example.com"}, nil)

	_, err := svc.CreateClient(context.Background(), model.CreateClientRequest{Name: "Bruno", Email: "bruno"})
	require.ErrorIs(t, err, errs.ErrInvalid)
	require.Zero(t, d.cache.Generation(service.KeyClients))

	got, err := svc.CreateClient(context.Background(), model.CreateClientRequest{Name: " Bruno", Email: "bruno@example.com "})
	require.NoError(t, err)
	require.Equal(t, 2, got.ID)
	require.EqualValues(t, 1, d.cache.Generation(service.KeyClients))
}

func TestService_CreateLoan(t *testing.T) {
	now := time.Date(2025, 5, 4, 12, 0, 0, 0, time.UTC)
	errDown := errors.New("connection refused")
	tests := []struct {
		name      string
		req       model.CreateLoanRequest
		createErr error
		calls     int
		wantErr   error
		wantGen   uint64
	}{
		{
			name:    "ok",
			req:     model.CreateLoanRequest{ClientID: ana.ID, LoanDate: now, BookIDs: []int{dune.ID, foundation.ID}},
			calls:   1,
			wantGen: 1,
		},
		{
			name:      "err. transport still invalidates",
			req:       model.CreateLoanRequest{ClientID: ana.ID, LoanDate: now, BookIDs: []int{dune.ID}},
			createErr: errDown,
			calls:     1,
			wantErr:   errDown,
			wantGen:   1,
		},
		{
			name:    "err. no books",
			req:     model.CreateLoanRequest{ClientID: ana.ID, LoanDate: now},
			wantErr: errs.ErrInvalid,
		},
		{
			name:    "err. no client",
			req:     model.CreateLoanRequest{LoanDate: now, BookIDs: []int{dune.ID}},
			wantErr: errs.ErrInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			d.loans.EXPECT().ListByClient(gomock.Any(), ana.ID).Return([]model.Loan{}, nil)
			d.loans.EXPECT().Create(gomock.Any(), tt.req).
				Return(model.Loan{ID: 4, ClientID: ana.ID}, tt.createErr).
				Times(tt.calls)

			_, err := svc.ClientLoans(context.Background(), ana.ID)
			require.NoError(t, err)

			_, err = svc.CreateLoan(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantGen, d.cache.Generation(service.KeyLoans))
			require.Equal(t, tt.wantGen, d.cache.Generation(service.KeyBooks))
			require.Equal(t, tt.wantGen, d.cache.Generation(service.ClientLoansKey(ana.ID)))
			require.Zero(t, d.cache.Generation(service.KeyClients))
		})
	}
}

func TestService_PublishFailureDoesNotFailAction(t *testing.T) {
	svc, d := newService(t)
	d.pub.err = errors.New("broker unavailable")
	d.books.EXPECT().Delete(gomock.Any(), dune.ID).Return(nil)

	require.NoError(t, svc.DeleteBook(context.Background(), dune.ID))
	require.Len(t, d.pub.events, 1)
}

func TestService_WatchRefreshesAfterMutation(t *testing.T) {
	refreshed := make(chan query.Event, 1)
	svc, d := newService(t)
	d.cache.SetListener(func(e query.Event) { refreshed <- e })
	gomock.InOrder(
		d.books.EXPECT().List(gomock.Any()).Return([]model.Book{dune}, nil),
		d.books.EXPECT().List(gomock.Any()).Return([]model.Book{}, nil),
	)
	d.books.EXPECT().Delete(gomock.Any(), dune.ID).Return(nil)

	unwatch := svc.Watch(service.KeyBooks)
	defer unwatch()
	_, err := svc.Books(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBook(context.Background(), dune.ID))
	select {
	case e := <-refreshed:
		require.Equal(t, service.KeyBooks, e.Key)
	case <-time.After(time.Second):
		t.Fatal("books were not refreshed")
	}
	books, err := svc.Books(context.Background())
	require.NoError(t, err)
	require.Empty(t, books)
}
