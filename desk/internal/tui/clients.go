package tui

import (
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/charmbracelet/bubbles/table"
)

const emptyClients = "No clients registered"

func newClientsView() listView[model.Client] {
	return newListView("clients", emptyClients,
		[]table.Column{
			{Title: "Name", Width: 28},
			{Title: "Email", Width: 34},
			{Title: "Registered", Width: 12},
		},
		func(c model.Client) table.Row {
			return table.Row{c.Name, c.Email, model.DisplayDate(c.CreatedAt)}
		},
	)
}
