package model

import (
	"strings"
	"time"
)

type Book struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description *string `json:"description"`
	IsAvailable bool    `json:"isAvailable"`
}

func (b Book) DescriptionOrEmpty() string {
	if b.Description == nil {
		return ""
	}
	return *b.Description
}

type Client struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoanStatus int

const (
	StatusPending LoanStatus = iota
	StatusCompleted
	StatusLate
)

func (s LoanStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	case StatusLate:
		return "Late"
	default:
		return "Unknown"
	}
}

type Loan struct {
	ID        int          `json:"id"`
	ClientID  int          `json:"clientId"`
	Client    Client       `json:"client"`
	LoanDate  time.Time    `json:"loan_date"`
	DueDate   time.Time    `json:"due_date"`
	Status    LoanStatus   `json:"loanStatus"`
	CreatedAt time.Time    `json:"created_at"`
	Details   []LoanDetail `json:"loanDetails"`
}

type LoanDetail struct {
	ID     int  `json:"id"`
	LoanID int  `json:"loanId"`
	BookID int  `json:"bookId"`
	Book   Book `json:"book"`
}

type CreateBookRequest struct {
	Title       string  `json:"title" validate:"required,max=50"`
	Author      string  `json:"author" validate:"required,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// Normalize trims input and turns a blank description into null.
func (r CreateBookRequest) Normalize() CreateBookRequest {
	r.Title = strings.TrimSpace(r.Title)
	r.Author = strings.TrimSpace(r.Author)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			r.Description = nil
		} else {
			r.Description = &d
		}
	}
	return r
}

type CreateClientRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
}

func (r CreateClientRequest) Normalize() CreateClientRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	return r
}

type CreateLoanRequest struct {
	ClientID int       `json:"clientId" validate:"min=1"`
	LoanDate time.Time `json:"loan_date" validate:"required"`
	BookIDs  []int     `json:"bookIds" validate:"min=1,dive,min=1"`
}

// DisplayDate formats timestamps the way the tables show them.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateOnly)
}
