package tui

import (
	"github.com/Astemirdum/library-desk/desk/internal/model"
)

func newBookForm() inputForm {
	return newInputForm("New book",
		newField("title", "Title", "Dune", 50),
		newField("author", "Author", "Frank Herbert", 50),
		newField("description", "Description (optional)", "", 255),
	)
}

func bookRequest(f inputForm) model.CreateBookRequest {
	desc := f.value("description")
	return model.CreateBookRequest{
		Title:       f.value("title"),
		Author:      f.value("author"),
		Description: &desc,
	}.Normalize()
}
