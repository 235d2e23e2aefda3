package service

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/events"
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/pkg/query"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	KeyBooks   query.Key = "books"
	KeyClients query.Key = "clients"
	KeyLoans   query.Key = "loans"
)

// ClientLoansKey is nested under KeyLoans, so invalidating loans refreshes it too.
func ClientLoansKey(clientID int) query.Key {
	return query.Key(fmt.Sprintf("%s:client:%d", KeyLoans, clientID))
}

type Service struct {
	log     *zap.Logger
	cache   *query.Cache
	books   BookAPI
	clients ClientAPI
	loans   LoanAPI
	pub     events.Publisher
}

func New(log *zap.Logger, cache *query.Cache, books BookAPI, clients ClientAPI, loans LoanAPI, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Service{
		log:     log.Named("service"),
		cache:   cache,
		books:   books,
		clients: clients,
		loans:   loans,
		pub:     pub,
	}
}

func (s *Service) Books(ctx context.Context) ([]model.Book, error) {
	return query.Fetch(ctx, s.cache, query.Query[[]model.Book]{Key: KeyBooks, Fn: s.books.List})
}

func (s *Service) Clients(ctx context.Context) ([]model.Client, error) {
	return query.Fetch(ctx, s.cache, query.Query[[]model.Client]{Key: KeyClients, Fn: s.clients.List})
}

func (s *Service) Loans(ctx context.Context) ([]model.Loan, error) {
	return query.Fetch(ctx, s.cache, query.Query[[]model.Loan]{Key: KeyLoans, Fn: s.loans.List})
}

func (s *Service) ClientLoans(ctx context.Context, clientID int) ([]model.Loan, error) {
	return query.Fetch(ctx, s.cache, query.Query[[]model.Loan]{
		Key: ClientLoansKey(clientID),
		Fn: func(ctx context.Context) ([]model.Loan, error) {
			return s.loans.ListByClient(ctx, clientID)
		},
	})
}

// LoanOptions is what the loan dialog needs to render its pickers.
type LoanOptions struct {
	Clients []model.Client
	Books   []model.Book
}

func (s *Service) LoanOptions(ctx context.Context) (LoanOptions, error) {
	var opts LoanOptions
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		clients, err := s.Clients(gCtx)
		opts.Clients = clients
		return err
	})
	g.Go(func() error {
		books, err := s.Books(gCtx)
		opts.Books = books
		return err
	})
	if err := g.Wait(); err != nil {
		return LoanOptions{}, err
	}
	return opts, nil
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	req = req.Normalize()
	if err := errs.Check(req); err != nil {
		return model.Book{}, err
	}
	var created model.Book
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.books.Create(ctx, req)
		return err
	}, KeyBooks)
	if err != nil {
		return model.Book{}, err
	}
	s.publish(ctx, events.BookCreated, created.ID)
	return created, nil
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		return s.books.Delete(ctx, id)
	}, KeyBooks)
	if err != nil {
		return err
	}
	s.publish(ctx, events.BookDeleted, id)
	return nil
}

func (s *Service) CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error) {
	req = req.Normalize()
	if err := errs.Check(req); err != nil {
		return model.Client{}, err
	}
	var created model.Client
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.clients.Create(ctx, req)
		return err
	}, KeyClients)
	if err != nil {
		return model.Client{}, err
	}
	s.publish(ctx, events.ClientCreated, created.ID)
	return created, nil
}

// CreateLoan invalidates books as well, since lending changes availability.
func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error) {
	if err := errs.Check(req); err != nil {
		return model.Loan{}, err
	}
	var created model.Loan
	err := s.cache.Mutate(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.loans.Create(ctx, req)
		return err
	}, KeyLoans, KeyBooks)
	if err != nil {
		return model.Loan{}, err
	}
	s.publish(ctx, events.LoanCreated, created.ID)
	return created, nil
}

// Watch keeps key refreshed in the background until the returned func is called.
func (s *Service) Watch(key query.Key) func() {
	return s.cache.Watch(key)
}

func (s *Service) publish(ctx context.Context, typ events.Type, id int) {
	if err := s.pub.Publish(context.WithoutCancel(ctx), events.New(typ, id)); err != nil {
		s.log.Warn("publish event", zap.String("type", string(typ)), zap.Int("id", id), zap.Error(err))
	}
}
