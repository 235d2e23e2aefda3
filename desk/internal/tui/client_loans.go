package tui

import (
	"fmt"
	"strings"

	"github.com/Astemirdum/library-desk/desk/internal/model"
)

const emptyClientLoans = "This client has no registered loans."

// clientLoansDialog shows one client's loan history. Its query is only
// observed while the dialog is open.
type clientLoansDialog struct {
	client  model.Client
	loans   []model.Loan
	loaded  bool
	err     error
	unwatch func()
}

func (d *clientLoansDialog) open(c model.Client, unwatch func()) {
	d.close()
	d.client = c
	d.loans, d.loaded, d.err = nil, false, nil
	d.unwatch = unwatch
}

func (d *clientLoansDialog) close() {
	if d.unwatch != nil {
		d.unwatch()
		d.unwatch = nil
	}
}

func (d *clientLoansDialog) set(loans []model.Loan, err error) {
	if err != nil {
		d.err = err
		return
	}
	d.loans, d.loaded, d.err = loans, true, nil
}

func (d clientLoansDialog) view(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Loans of " + d.client.Name))
	b.WriteString("\n")
	b.WriteString(listBody("loans", emptyClientLoans, d.loaded, len(d.loans), d.err, spin, d.lines))
	b.WriteString("\n")
	b.WriteString(help("esc", "close"))
	return activeBoxStyle.Render(b.String())
}

func (d clientLoansDialog) lines() string {
	var b strings.Builder
	for _, l := range d.loans {
		titles := make([]string, 0, len(l.Details))
		for _, det := range l.Details {
			titles = append(titles, det.Book.Title)
		}
		fmt.Fprintf(&b, "#%-4d %s → %s  %s  %s\n",
			l.ID,
			model.DisplayDate(l.LoanDate),
			model.DisplayDate(l.DueDate),
			FormatStatus(l.Status),
			strings.Join(titles, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
