// Package tui is the terminal front-end: a tabbed shell over the books, clients
// and loans views plus the create dialogs.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/Astemirdum/library-desk/desk/internal/service"
	"github.com/Astemirdum/library-desk/pkg/query"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ Backend = (*service.Service)(nil)

type Backend interface {
	Books(ctx context.Context) ([]model.Book, error)
	Clients(ctx context.Context) ([]model.Client, error)
	Loans(ctx context.Context) ([]model.Loan, error)
	ClientLoans(ctx context.Context, clientID int) ([]model.Loan, error)
	LoanOptions(ctx context.Context) (service.LoanOptions, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error
	CreateClient(ctx context.Context, req model.CreateClientRequest) (model.Client, error)
	CreateLoan(ctx context.Context, req model.CreateLoanRequest) (model.Loan, error)
	Watch(key query.Key) func()
}

type tab int

const (
	tabBooks tab = iota
	tabClients
	tabLoans
	tabPayments
	tabCount
)

var tabNames = [tabCount]string{"Books", "Clients", "Loans", "Payments"}

// Mode is what currently receives keyboard input.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeBookForm
	ModeClientForm
	ModeLoanForm
	ModeClientLoans
	ModeConfirmDelete
)

type Shell struct {
	ctx  context.Context
	svc  Backend
	now  func() time.Time
	mode Mode

	active  tab
	unwatch func()

	books   listView[model.Book]
	clients listView[model.Client]
	loans   loansView

	bookForm    inputForm
	clientForm  inputForm
	loanForm    loanForm
	loanUnwatch func()
	clientLoans clientLoansDialog
	confirm     ConfirmationDialog
	deleting    model.Book

	spinner spinner.Model
	notice  string
	width   int
	height  int
}

type Option func(*Shell)

// WithClock replaces time.Now for the loan date default.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) {
		s.now = now
	}
}

// New builds the shell on the Books tab and starts observing it.
func New(ctx context.Context, svc Backend, opts ...Option) Shell {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	m := Shell{
		ctx:        ctx,
		svc:        svc,
		now:        time.Now,
		books:      newBooksView(),
		clients:    newClientsView(),
		loans:      newLoansView(),
		bookForm:   newBookForm(),
		clientForm: newClientForm(),
		loanForm:   newLoanForm(),
		spinner:    sp,
	}
	for _, op := range opts {
		op(&m)
	}
	m.unwatch = m.watchTab(m.active)
	return m
}

func (m Shell) Mode() Mode { return m.mode }

func (m Shell) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTab(m.active))
}

func (m Shell) watchTab(t tab) func() {
	switch t {
	case tabBooks:
		return m.svc.Watch(service.KeyBooks)
	case tabClients:
		return m.svc.Watch(service.KeyClients)
	case tabLoans:
		return m.svc.Watch(service.KeyLoans)
	}
	return func() {}
}

func (m Shell) loadTab(t tab) tea.Cmd {
	switch t {
	case tabBooks:
		return loadBooksCmd(m.ctx, m.svc)
	case tabClients:
		return loadClientsCmd(m.ctx, m.svc)
	case tabLoans:
		return loadLoansCmd(m.ctx, m.svc)
	}
	return nil
}

func (m *Shell) switchTab(delta int) tea.Cmd {
	m.unwatch()
	m.active = (m.active + tab(delta) + tabCount) % tabCount
	m.unwatch = m.watchTab(m.active)
	m.notice = ""
	return m.loadTab(m.active)
}

// reload re-reads whatever is on screen and backed by key.
func (m Shell) reload(key query.Key) tea.Cmd {
	var cmds []tea.Cmd
	switch key {
	case service.KeyBooks:
		if m.active == tabBooks {
			cmds = append(cmds, loadBooksCmd(m.ctx, m.svc))
		}
	case service.KeyClients:
		if m.active == tabClients {
			cmds = append(cmds, loadClientsCmd(m.ctx, m.svc))
		}
	case service.KeyLoans:
		if m.active == tabLoans {
			cmds = append(cmds, loadLoansCmd(m.ctx, m.svc))
		}
	}
	if m.mode == ModeLoanForm && (key == service.KeyBooks || key == service.KeyClients) {
		cmds = append(cmds, loadLoanOptionsCmd(m.ctx, m.svc))
	}
	if m.mode == ModeClientLoans && key == service.ClientLoansKey(m.clientLoans.client.ID) {
		cmds = append(cmds, loadClientLoansCmd(m.ctx, m.svc, m.clientLoans.client.ID))
	}
	return tea.Batch(cmds...)
}

func (m Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := max(msg.Height-10, 3)
		m.books.setHeight(h)
		m.clients.setHeight(h)
		m.loans.setHeight(h)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RefreshMsg:
		if msg.Err != nil {
			m.notice = "Refresh of " + string(msg.Key) + " failed: " + msg.Err.Error()
			return m, nil
		}
		return m, m.reload(msg.Key)

	case booksLoadedMsg:
		m.books.set(msg.books, msg.err)
		return m, nil

	case clientsLoadedMsg:
		m.clients.set(msg.clients, msg.err)
		return m, nil

	case loansLoadedMsg:
		m.loans.set(msg.loans, msg.err)
		return m, nil

	case clientLoansLoadedMsg:
		if m.mode == ModeClientLoans && msg.clientID == m.clientLoans.client.ID {
			m.clientLoans.set(msg.loans, msg.err)
		}
		return m, nil

	case loanOptionsMsg:
		if m.mode == ModeLoanForm {
			m.loanForm.setOptions(msg.opts, msg.err)
		}
		return m, nil

	case bookCreatedMsg:
		m.bookForm.form.Settle(msg.err)
		if msg.err == nil {
			m.mode = ModeBrowse
			m.notice = "Book \"" + msg.book.Title + "\" created"
		}
		return m, nil

	case clientCreatedMsg:
		m.clientForm.form.Settle(msg.err)
		if msg.err == nil {
			m.mode = ModeBrowse
			m.notice = "Client " + msg.client.Name + " registered"
		}
		return m, nil

	case loanCreatedMsg:
		m.loanForm.loan.Settle(msg.err)
		if msg.err == nil {
			m.closeLoanForm()
			m.notice = "Loan created"
		}
		return m, nil

	case bookDeletedMsg:
		if msg.err != nil {
			m.notice = "Could not delete \"" + msg.book.Title + "\": " + msg.err.Error()
		} else {
			m.notice = "Book \"" + msg.book.Title + "\" deleted"
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case ModeBookForm:
			cmd := m.updateInputForm(&m.bookForm, msg, func() tea.Cmd {
				req := bookRequest(m.bookForm)
				if err := m.bookForm.form.Begin(req); err != nil {
					return nil
				}
				return createBookCmd(m.ctx, m.svc, req)
			})
			return m, cmd
		case ModeClientForm:
			cmd := m.updateInputForm(&m.clientForm, msg, func() tea.Cmd {
				req := clientRequest(m.clientForm)
				if err := m.clientForm.form.Begin(req); err != nil {
					return nil
				}
				return createClientCmd(m.ctx, m.svc, req)
			})
			return m, cmd
		case ModeLoanForm:
			cmd := m.updateLoanForm(msg)
			return m, cmd
		case ModeClientLoans:
			if msg.String() == "esc" || msg.String() == "q" {
				m.clientLoans.close()
				m.mode = ModeBrowse
			}
			return m, nil
		case ModeConfirmDelete:
			done, yes := m.confirm.Update(msg)
			if !done {
				return m, nil
			}
			m.mode = ModeBrowse
			if yes {
				return m, deleteBookCmd(m.ctx, m.svc, m.deleting)
			}
			return m, nil
		}
		cmd := m.updateBrowse(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Shell) updateInputForm(f *inputForm, msg tea.KeyMsg, submit func() tea.Cmd) tea.Cmd {
	switch msg.String() {
	case "esc":
		if err := f.form.Cancel(); err == nil {
			m.mode = ModeBrowse
		}
		return nil
	case "ctrl+s":
		return submit()
	}
	return f.update(msg)
}

func (m *Shell) updateLoanForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if err := m.loanForm.loan.Cancel(); err == nil {
			m.closeLoanForm()
		}
		return nil
	case "ctrl+s":
		if !m.loanForm.loaded {
			return nil
		}
		m.loanForm.applyDate()
		req, err := m.loanForm.loan.Begin()
		if err != nil {
			return nil
		}
		return createLoanCmd(m.ctx, m.svc, req)
	}
	return m.loanForm.update(msg)
}

func (m *Shell) openLoanForm() tea.Cmd {
	m.loanForm.open(m.now())
	books, clients := m.svc.Watch(service.KeyBooks), m.svc.Watch(service.KeyClients)
	m.loanUnwatch = func() {
		books()
		clients()
	}
	m.mode = ModeLoanForm
	return loadLoanOptionsCmd(m.ctx, m.svc)
}

func (m *Shell) closeLoanForm() {
	if m.loanUnwatch != nil {
		m.loanUnwatch()
		m.loanUnwatch = nil
	}
	m.mode = ModeBrowse
}

func (m *Shell) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "tab":
		return m.switchTab(1)
	case "shift+tab":
		return m.switchTab(-1)
	case "n":
		m.bookForm.open()
		m.mode = ModeBookForm
		return nil
	case "c":
		m.clientForm.open()
		m.mode = ModeClientForm
		return nil
	case "l":
		return m.openLoanForm()
	}

	switch m.active {
	case tabBooks:
		if msg.String() == "d" {
			b, ok := m.books.selected()
			if !ok {
				return nil
			}
			m.deleting = b
			m.confirm = NewConfirmationDialog("Delete book", "Delete \""+b.Title+"\" by "+b.Author+"?")
			m.mode = ModeConfirmDelete
			return nil
		}
		return m.books.update(msg)
	case tabClients:
		if msg.String() == "enter" {
			c, ok := m.clients.selected()
			if !ok {
				return nil
			}
			m.clientLoans.open(c, m.svc.Watch(service.ClientLoansKey(c.ID)))
			m.mode = ModeClientLoans
			return loadClientLoansCmd(m.ctx, m.svc, c.ID)
		}
		return m.clients.update(msg)
	case tabLoans:
		if msg.String() == "enter" {
			m.loans.toggle()
			return nil
		}
		return m.loans.update(msg)
	}
	return nil
}

func (m Shell) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Library desk"))
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	spin := m.spinner.View()
	var dialog string
	switch m.mode {
	case ModeBookForm:
		dialog = m.bookForm.view(spin)
	case ModeClientForm:
		dialog = m.clientForm.view(spin)
	case ModeLoanForm:
		dialog = m.loanForm.view(spin)
	case ModeClientLoans:
		dialog = m.clientLoans.view(spin)
	case ModeConfirmDelete:
		dialog = m.confirm.View()
	}
	if dialog != "" {
		if m.width > 0 && m.height > 0 {
			dialog = lipgloss.Place(m.width, max(m.height-4, 0), lipgloss.Center, lipgloss.Center, dialog)
		}
		b.WriteString(dialog)
		return b.String()
	}

	switch m.active {
	case tabBooks:
		b.WriteString(m.books.view(spin))
	case tabClients:
		b.WriteString(m.clients.view(spin))
	case tabLoans:
		b.WriteString(m.loans.view(spin))
	case tabPayments:
		b.WriteString(mutedStyle.Render("Coming soon..."))
	}
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(infoStyle.Render(m.notice) + "\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m Shell) tabsView() string {
	tabs := make([]string, 0, tabCount)
	for t := tabBooks; t < tabCount; t++ {
		if t == m.active {
			tabs = append(tabs, activeTabStyle.Render(tabNames[t]))
		} else {
			tabs = append(tabs, tabStyle.Render(tabNames[t]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Shell) helpView() string {
	pairs := []string{"tab", "switch", "n", "new book", "c", "new client", "l", "new loan"}
	switch m.active {
	case tabBooks:
		pairs = append(pairs, "d", "delete")
	case tabClients:
		pairs = append(pairs, "enter", "loans")
	case tabLoans:
		pairs = append(pairs, "enter", "expand")
	}
	return help(append(pairs, "q", "quit")...)
}
