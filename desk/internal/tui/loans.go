package tui

import (
	"fmt"

	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

const emptyLoans = "No loans registered"

// loansView lists loans with expandable book rows. Expansion is local to the
// view and survives reloads; every loan starts collapsed.
type loansView struct {
	table    table.Model
	loans    []model.Loan
	expanded map[int]bool
	// rowLoan maps each table row to its loan index.
	rowLoan []int
	loaded  bool
	err     error
}

func newLoansView() loansView {
	return loansView{
		expanded: make(map[int]bool),
		table: table.New(
			table.WithColumns([]table.Column{
				{Title: "Client", Width: 22},
				{Title: "Loan date", Width: 11},
				{Title: "Due date", Width: 11},
				{Title: "Status", Width: 10},
				{Title: "Books", Width: 40},
			}),
			table.WithFocused(true),
			table.WithHeight(12),
			table.WithStyles(tableStyles()),
		),
	}
}

func (v *loansView) set(loans []model.Loan, err error) {
	if err != nil {
		v.err = err
		return
	}
	v.loans, v.loaded, v.err = loans, true, nil
	v.rebuild(v.table.Cursor())
}

func (v *loansView) rebuild(cursor int) {
	rows := make([]table.Row, 0, len(v.loans))
	v.rowLoan = v.rowLoan[:0]
	for i, l := range v.loans {
		marker := "▸ "
		if v.expanded[l.ID] {
			marker = "▾ "
		}
		rows = append(rows, table.Row{
			marker + l.Client.Name,
			model.DisplayDate(l.LoanDate),
			model.DisplayDate(l.DueDate),
			l.Status.String(),
			fmt.Sprintf("%d book(s)", len(l.Details)),
		})
		v.rowLoan = append(v.rowLoan, i)
		if !v.expanded[l.ID] {
			continue
		}
		for _, d := range l.Details {
			rows = append(rows, table.Row{"", "", "", "", d.Book.Title + " - " + d.Book.Author})
			v.rowLoan = append(v.rowLoan, i)
		}
	}
	v.table.SetRows(rows)
	v.table.SetCursor(min(max(cursor, 0), max(len(rows)-1, 0)))
}

// toggle expands or collapses the loan under the cursor and keeps the cursor
// on that loan's row.
func (v *loansView) toggle() {
	i := v.table.Cursor()
	if i < 0 || i >= len(v.rowLoan) {
		return
	}
	idx := v.rowLoan[i]
	id := v.loans[idx].ID
	v.expanded[id] = !v.expanded[id]

	row := 0
	for r, li := range v.rowLoan {
		if li == idx {
			row = r
			break
		}
	}
	v.rebuild(row)
}

func (v *loansView) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

func (v *loansView) setHeight(h int) {
	v.table.SetHeight(h)
}

func (v loansView) view(spin string) string {
	return listBody("loans", emptyLoans, v.loaded, len(v.loans), v.err, spin, v.table.View)
}
