package service

import (
	"context"

	"github.com/Astemirdum/library-desk/desk/internal/gateway/book"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/client"
	"github.com/Astemirdum/library-desk/desk/internal/gateway/loan"
	"github.com/Astemirdum/library-desk/desk/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=api.go -destination=mocks/mock.go

var (
	_ BookAPI   = (*book.Service)(nil)
	_ ClientAPI = (*client.Service)(nil)
	_ LoanAPI   = (*loan.Service)(nil)
)

type BookAPI interface {
	List(ctx context.Context) ([]model.Book, error)
	Create(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	Delete(ctx context.Context, id int) error
}

type ClientAPI interface {
	List(ctx context.Context) ([]model.Client, error)
	Create(ctx context.Context, req model.CreateClientRequest) (model.Client, error)
}

type LoanAPI interface {
	List(ctx context.Context) ([]model.Loan, error)
	ListByClient(ctx context.Context, clientID int) ([]model.Loan, error)
	Create(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
}
