package tui

import (
	"strings"

	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/desk/internal/workflow"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type field struct {
	name  string
	label string
	input textinput.Model
}

func newField(name, label, placeholder string, limit int) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	return field{name: name, label: label, input: ti}
}

// inputForm is a create dialog made of text fields.
type inputForm struct {
	title  string
	form   workflow.Form
	fields []field
	focus  int
}

func newInputForm(title string, fields ...field) inputForm {
	return inputForm{title: title, fields: fields}
}

func (f *inputForm) open() {
	f.form.Open()
	for i := range f.fields {
		f.fields[i].input.Reset()
		f.fields[i].input.Blur()
	}
	f.focus = 0
	f.fields[0].input.Focus()
}

func (f inputForm) value(name string) string {
	for _, fd := range f.fields {
		if fd.name == name {
			return fd.input.Value()
		}
	}
	return ""
}

func (f *inputForm) setValue(name, v string) {
	for i := range f.fields {
		if f.fields[i].name == name {
			f.fields[i].input.SetValue(v)
		}
	}
}

func (f *inputForm) move(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
}

// update handles editing keys; submit and cancel are handled by the shell.
func (f *inputForm) update(msg tea.KeyMsg) tea.Cmd {
	if f.form.Phase() != workflow.Editing {
		return nil
	}
	switch msg.String() {
	case "tab", "down":
		f.move(1)
		return nil
	case "shift+tab", "up":
		f.move(-1)
		return nil
	}
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f inputForm) view(spin string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title))
	b.WriteString("\n")
	for i, fd := range f.fields {
		label := mutedStyle.Render(fd.label)
		if i == f.focus {
			label = infoStyle.Render(fd.label)
		}
		b.WriteString(label + "\n" + fd.input.View() + "\n")
		if msg := f.form.FieldError(fd.name); msg != "" {
			b.WriteString(fieldErrorStyle.Render(msg) + "\n")
		}
		b.WriteString("\n")
	}
	writeSubmitState(&b, f.form.Dialog, spin)
	b.WriteString(help("tab", "next field", "ctrl+s", "save", "esc", "cancel"))
	return activeBoxStyle.Render(b.String())
}

func writeSubmitState(b *strings.Builder, d workflow.Dialog, spin string) {
	switch {
	case d.Phase() == workflow.Submitting:
		b.WriteString(spin + " Saving...\n")
	case d.Err() != nil && len(errs.Fields(d.Err())) == 0:
		b.WriteString(dangerStyle.Render("Could not save: "+d.Err().Error()) + "\n")
	}
}
