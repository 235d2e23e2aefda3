package tui

import (
	"github.com/Astemirdum/library-desk/desk/internal/model"
	"github.com/charmbracelet/bubbles/table"
)

const emptyBooks = "No books registered"

func newBooksView() listView[model.Book] {
	return newListView("books", emptyBooks,
		[]table.Column{
			{Title: "Title", Width: 24},
			{Title: "Author", Width: 20},
			{Title: "Description", Width: 40},
			{Title: "Status", Width: 10},
		},
		func(b model.Book) table.Row {
			return table.Row{b.Title, b.Author, b.DescriptionOrEmpty(), availability(b.IsAvailable)}
		},
	)
}
