package tui

import (
	"context"

	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/service"
	"github.com/Astemirdum/library-desk/pkg/query"
	tea "github.com/charmbracelet/bubbletea"
)

// RefreshMsg is sent by the program when the cache finished a background
// refresh of Key.
type RefreshMsg query.Event

type booksLoadedMsg struct {
	books []model.Book
	err   error
}

type clientsLoadedMsg struct {
	clients []model.Client
	err     error
}

type loansLoadedMsg struct {
	loans []model.Loan
	err   error
}

type clientLoansLoadedMsg struct {
	clientID int
	loans    []model.Loan
	err      error
}

type loanOptionsMsg struct {
	opts service.LoanOptions
	err  error
}

type bookCreatedMsg struct {
	book model.Book
	err  error
}

type bookDeletedMsg struct {
	book model.Book
	err  error
}

type clientCreatedMsg struct {
	client model.Client
	err    error
}

type loanCreatedMsg struct {
	loan model.Loan
	err  error
}

func loadBooksCmd(ctx context.Context, b Backend) tea.Cmd {
	return func() tea.Msg {
		books, err := b.Books(ctx)
		return booksLoadedMsg{books: books, err: err}
	}
}

func loadClientsCmd(ctx context.Context, b Backend) tea.Cmd {
	return func() tea.Msg {
		clients, err := b.Clients(ctx)
		return clientsLoadedMsg{clients: clients, err: err}
	}
}

func loadLoansCmd(ctx context.Context, b Backend) tea.Cmd {
	return func() tea.Msg {
		loans, err := b.Loans(ctx)
		return loansLoadedMsg{loans: loans, err: err}
	}
}

func loadClientLoansCmd(ctx context.Context, b Backend, clientID int) tea.Cmd {
	return func() tea.Msg {
		loans, err := b.ClientLoans(ctx, clientID)
		return clientLoansLoadedMsg{clientID: clientID, loans: loans, err: err}
	}
}

func loadLoanOptionsCmd(ctx context.Context, b Backend) tea.Cmd {
	return func() tea.Msg {
		opts, err := b.LoanOptions(ctx)
		return loanOptionsMsg{opts: opts, err: err}
	}
}

func createBookCmd(ctx context.Context, b Backend, req model.CreateBookRequest) tea.Cmd {
	return func() tea.Msg {
		book, err := b.CreateBook(ctx, req)
		return bookCreatedMsg{book: book, err: err}
	}
}

func deleteBookCmd(ctx context.Context, b Backend, book model.Book) tea.Cmd {
	return func() tea.Msg {
		return bookDeletedMsg{book: book, err: b.DeleteBook(ctx, book.ID)}
	}
}

func createClientCmd(ctx context.Context, b Backend, req model.CreateClientRequest) tea.Cmd {
	return func() tea.Msg {
		client, err := b.CreateClient(ctx, req)
		return clientCreatedMsg{client: client, err: err}
	}
}

func createLoanCmd(ctx context.Context, b Backend, req model.CreateLoanRequest) tea.Cmd {
	return func() tea.Msg {
		loan, err := b.CreateLoan(ctx, req)
		return loanCreatedMsg{loan: loan, err: err}
	}
}
