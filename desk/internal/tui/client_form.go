package tui

import (
	"github.com/Astemirdum/library-desk/desk/internal/model"
)

func newClientForm() inputForm {
	return newInputForm("New client",
		newField("name", "Name", "Ana Pérez", 100),
		newField("email", "Email", "ana@example.com", 254),
	)
}

func clientRequest(f inputForm) model.CreateClientRequest {
	return model.CreateClientRequest{
		Name:  f.value("name"),
		Email: f.value("email"),
	}.Normalize()
}
