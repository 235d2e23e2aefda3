package workflow

import (
	"context"
	"time"

	"github.com/Astemirdum/library-desk/desk/internal/model"
)

const (
	HintNoBooks     = "No books available"
	HintAllSelected = "All available books have been selected"
)

type LoanCreator interface {
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
}

// Loan is the state of the new-loan dialog: a client, a loan date and the
// chosen books. Selections only change while editing.
type Loan struct {
	Form
	clientID int
	loanDate time.Time
	books    BookSet
}

// Open starts a fresh form dated now.
func (l *Loan) Open(now time.Time) {
	if l.IsOpen() {
		return
	}
	l.reset()
	l.loanDate = now
	l.Form.Open()
}

func (l *Loan) reset() {
	l.clientID = 0
	l.loanDate = time.Time{}
	l.books.Clear()
}

func (l *Loan) SelectClient(id int) {
	if l.phase == Editing {
		l.clientID = id
	}
}

func (l *Loan) SetLoanDate(t time.Time) {
	if l.phase == Editing {
		l.loanDate = t
	}
}

func (l *Loan) AddBook(id int) bool {
	if l.phase != Editing {
		return false
	}
	return l.books.Add(id)
}

func (l *Loan) RemoveBook(id int) bool {
	if l.phase != Editing {
		return false
	}
	return l.books.Remove(id)
}

func (l *Loan) ClientID() int { return l.clientID }

func (l *Loan) LoanDate() time.Time { return l.loanDate }

func (l *Loan) BookIDs() []int { return l.books.IDs() }

func (l *Loan) Request() model.CreateLoanRequest {
	return model.CreateLoanRequest{
		ClientID: l.clientID,
		LoanDate: l.loanDate,
		BookIDs:  l.books.IDs(),
	}
}

// Selectable lists the available books not yet chosen, in the given order.
func (l *Loan) Selectable(books []model.Book) []model.Book {
	out := make([]model.Book, 0, len(books))
	for _, b := range books {
		if b.IsAvailable && !l.books.Has(b.ID) {
			out = append(out, b)
		}
	}
	return out
}

// EmptyHint explains an empty picker; it is empty while something is selectable.
func (l *Loan) EmptyHint(books []model.Book) string {
	if len(l.Selectable(books)) > 0 {
		return ""
	}
	for _, b := range books {
		if b.IsAvailable {
			return HintAllSelected
		}
	}
	return HintNoBooks
}

// Begin returns the payload to send and moves to Submitting, or reports the
// invalid fields and stays in Editing.
func (l *Loan) Begin() (model.CreateLoanRequest, error) {
	req := l.Request()
	if err := l.Form.Begin(req); err != nil {
		return model.CreateLoanRequest{}, err
	}
	return req, nil
}

// Settle closes and clears the form on success. On failure the selections are
// kept so the user can retry.
func (l *Loan) Settle(err error) bool {
	if !l.Form.Settle(err) {
		return false
	}
	if err == nil {
		l.reset()
	}
	return true
}

func (l *Loan) Cancel() error {
	if err := l.Form.Cancel(); err != nil {
		return err
	}
	l.reset()
	return nil
}

// Submit runs Begin, the create call and Settle in one go.
func (l *Loan) Submit(ctx context.Context, c LoanCreator) (model.Loan, error) {
	req, err := l.Begin()
	if err != nil {
		return model.Loan{}, err
	}
	loan, err := c.CreateLoan(ctx, req)
	l.Settle(err)
	if err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}
