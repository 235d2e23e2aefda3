package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// listView is a table over one remote collection. It keeps showing the last
// loaded rows while a reload is running or after one failed.
type listView[T any] struct {
	noun   string
	empty  string
	table  table.Model
	items  []T
	row    func(T) table.Row
	loaded bool
	err    error
}

func newListView[T any](noun, empty string, cols []table.Column, row func(T) table.Row) listView[T] {
	return listView[T]{
		noun:  noun,
		empty: empty,
		row:   row,
		table: table.New(
			table.WithColumns(cols),
			table.WithFocused(true),
			table.WithHeight(12),
			table.WithStyles(tableStyles()),
		),
	}
}

func (v *listView[T]) set(items []T, err error) {
	if err != nil {
		v.err = err
		return
	}
	v.items, v.loaded, v.err = items, true, nil
	rows := make([]table.Row, 0, len(items))
	for _, it := range items {
		rows = append(rows, v.row(it))
	}
	v.table.SetRows(rows)
	if v.table.Cursor() >= len(rows) {
		v.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (v listView[T]) selected() (T, bool) {
	i := v.table.Cursor()
	if !v.loaded || i < 0 || i >= len(v.items) {
		var zero T
		return zero, false
	}
	return v.items[i], true
}

func (v *listView[T]) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

func (v *listView[T]) setHeight(h int) {
	v.table.SetHeight(h)
}

func (v listView[T]) view(spin string) string {
	return listBody(v.noun, v.empty, v.loaded, len(v.items), v.err, spin, v.table.View)
}

func listBody(noun, empty string, loaded bool, n int, err error, spin string, table func() string) string {
	switch {
	case !loaded && err != nil:
		return errorStyle.Render("Could not load " + noun + ": " + err.Error())
	case !loaded:
		return spin + " Loading " + noun + "..."
	case n == 0:
		return mutedStyle.Render(empty)
	}
	out := table()
	if err != nil {
		out += "\n" + warningStyle.Render("Showing previous "+noun+": "+err.Error())
	}
	return out
}
