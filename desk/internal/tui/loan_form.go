package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/service"
	"github.com/Astemirdum/library-desk/desk/internal/workflow"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loanSection int

const (
	sectionClient loanSection = iota
	sectionAvailable
	sectionSelected
	sectionDate
	sectionCount
)

// loanForm drives workflow.Loan from the keyboard: pick a client, move books
// between the available and selected lists and adjust the loan date.
type loanForm struct {
	loan    workflow.Loan
	opts    service.LoanOptions
	loaded  bool
	err     error
	section loanSection
	cursor  [sectionDate]int
	date    textinput.Model
	opened  time.Time
}

func newLoanForm() loanForm {
	ti := textinput.New()
	ti.Placeholder = time.DateOnly
	ti.CharLimit = len(time.DateOnly)
	ti.Width = 12
	ti.Cursor.SetMode(cursor.CursorStatic)
	return loanForm{date: ti}
}

func (f *loanForm) open(now time.Time) {
	f.loan.Open(now)
	f.opened = now
	f.loaded, f.err = false, nil
	f.section = sectionClient
	f.cursor = [sectionDate]int{}
	f.date.SetValue(now.Format(time.DateOnly))
	f.date.Blur()
}

func (f *loanForm) setOptions(opts service.LoanOptions, err error) {
	if err != nil {
		f.err = err
		return
	}
	f.opts, f.loaded, f.err = opts, true, nil
	f.clampCursors()
}

func (f loanForm) available() []model.Book {
	return f.loan.Selectable(f.opts.Books)
}

// selected resolves the chosen ids against the loaded catalog, in pick order.
func (f loanForm) selected() []model.Book {
	byID := make(map[int]model.Book, len(f.opts.Books))
	for _, b := range f.opts.Books {
		byID[b.ID] = b
	}
	ids := f.loan.BookIDs()
	out := make([]model.Book, 0, len(ids))
	for _, id := range ids {
		b, ok := byID[id]
		if !ok {
			b = model.Book{ID: id, Title: fmt.Sprintf("#%d", id)}
		}
		out = append(out, b)
	}
	return out
}

func (f loanForm) sectionLen(s loanSection) int {
	switch s {
	case sectionClient:
		return len(f.opts.Clients)
	case sectionAvailable:
		return len(f.available())
	case sectionSelected:
		return len(f.loan.BookIDs())
	}
	return 0
}

func (f *loanForm) clampCursors() {
	for s := sectionClient; s < sectionDate; s++ {
		f.cursor[s] = min(f.cursor[s], max(f.sectionLen(s)-1, 0))
	}
}

func (f *loanForm) switchSection(delta int) {
	f.section = (f.section + loanSection(delta) + sectionCount) % sectionCount
	if f.section == sectionDate {
		f.date.Focus()
	} else {
		f.date.Blur()
	}
}

// applyDate copies the date field into the loan. An unreadable date leaves
// the loan without one so validation reports it.
func (f *loanForm) applyDate() {
	v := strings.TrimSpace(f.date.Value())
	if v == f.opened.Format(time.DateOnly) {
		f.loan.SetLoanDate(f.opened)
		return
	}
	t, err := time.ParseInLocation(time.DateOnly, v, time.Local)
	if err != nil {
		f.loan.SetLoanDate(time.Time{})
		return
	}
	f.loan.SetLoanDate(t)
}

func (f *loanForm) update(msg tea.KeyMsg) tea.Cmd {
	if f.loan.Phase() != workflow.Editing {
		return nil
	}
	switch msg.String() {
	case "tab":
		f.switchSection(1)
		return nil
	case "shift+tab":
		f.switchSection(-1)
		return nil
	}
	if f.section == sectionDate {
		var cmd tea.Cmd
		f.date, cmd = f.date.Update(msg)
		return cmd
	}

	n := f.sectionLen(f.section)
	switch msg.String() {
	case "up", "k":
		if f.cursor[f.section] > 0 {
			f.cursor[f.section]--
		}
	case "down", "j":
		if f.cursor[f.section] < n-1 {
			f.cursor[f.section]++
		}
	case "enter", " ":
		if n == 0 {
			return nil
		}
		i := f.cursor[f.section]
		switch f.section {
		case sectionClient:
			f.loan.SelectClient(f.opts.Clients[i].ID)
		case sectionAvailable:
			f.loan.AddBook(f.available()[i].ID)
		case sectionSelected:
			f.loan.RemoveBook(f.loan.BookIDs()[i])
		}
		f.clampCursors()
	}
	return nil
}

func (f loanForm) view(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New loan"))
	b.WriteString("\n")

	switch {
	case !f.loaded && f.err != nil:
		b.WriteString(errorStyle.Render("Could not load clients and books: "+f.err.Error()) + "\n")
		b.WriteString(help("esc", "close"))
		return activeBoxStyle.Render(b.String())
	case !f.loaded:
		b.WriteString(spin + " Loading clients and books...\n")
		b.WriteString(help("esc", "close"))
		return activeBoxStyle.Render(b.String())
	}

	f.writeSection(&b, sectionClient, "Client", "clientId", func() []string {
		items := make([]string, 0, len(f.opts.Clients))
		for _, c := range f.opts.Clients {
			mark := "○ "
			if c.ID == f.loan.ClientID() {
				mark = "● "
			}
			items = append(items, mark+c.Name+" <"+c.Email+">")
		}
		return items
	}(), "No clients registered")

	f.writeSection(&b, sectionAvailable, "Available books", "", bookLines(f.available()), f.loan.EmptyHint(f.opts.Books))
	f.writeSection(&b, sectionSelected, "Selected books", "bookIds", bookLines(f.selected()), "None")

	label := mutedStyle.Render("Loan date")
	if f.section == sectionDate {
		label = infoStyle.Render("Loan date")
	}
	b.WriteString(label + "\n" + f.date.View() + "\n")
	if msg := f.loan.FieldError("loan_date"); msg != "" {
		b.WriteString(fieldErrorStyle.Render(msg) + "\n")
	}
	b.WriteString("\n")

	writeSubmitState(&b, f.loan.Dialog, spin)
	b.WriteString(help("tab", "next section", "↑/↓", "move", "enter", "pick", "ctrl+s", "save", "esc", "cancel"))
	return activeBoxStyle.Render(b.String())
}

func (f loanForm) writeSection(b *strings.Builder, s loanSection, title, errField string, items []string, empty string) {
	if f.section == s {
		b.WriteString(infoStyle.Render(title) + "\n")
	} else {
		b.WriteString(mutedStyle.Render(title) + "\n")
	}
	if len(items) == 0 {
		b.WriteString(unselectedItemStyle.Render(mutedStyle.Render(empty)) + "\n")
	}
	for i, it := range items {
		if f.section == s && i == f.cursor[s] {
			b.WriteString(selectedItemStyle.Render("▸ "+it) + "\n")
		} else {
			b.WriteString(unselectedItemStyle.Render(it) + "\n")
		}
	}
	if errField != "" {
		if msg := f.loan.FieldError(errField); msg != "" {
			b.WriteString(fieldErrorStyle.Render(msg) + "\n")
		}
	}
	b.WriteString("\n")
}

func bookLines(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, bk := range books {
		out = append(out, bk.Title+" - "+bk.Author)
	}
	return out
}
