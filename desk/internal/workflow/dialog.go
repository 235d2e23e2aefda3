// Package workflow holds the state machines behind the create dialogs.
// Nothing here does I/O; callers run the request between Begin and Settle.
package workflow

import (
	"github.com/Astemirdum/library-desk/desk/internal/errs"
	"github.com/Astemirdum/library-desk/pkg/validate"
)

type Phase int

const (
	Closed Phase = iota
	Editing
	Submitting
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Editing:
		return "editing"
	case Submitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// Dialog moves Closed -> Editing -> Submitting and back to Closed on success
// or to Editing on failure.
type Dialog struct {
	phase Phase
	err   error
}

func (d *Dialog) Phase() Phase { return d.phase }

func (d *Dialog) IsOpen() bool { return d.phase != Closed }

// Err is the failure of the last submission, kept until the next Begin.
func (d *Dialog) Err() error { return d.err }

// Open is a no-op unless the dialog is closed.
func (d *Dialog) Open() {
	if d.phase == Closed {
		d.phase = Editing
		d.err = nil
	}
}

// Cancel closes an editing dialog. A submission in flight cannot be cancelled.
func (d *Dialog) Cancel() error {
	switch d.phase {
	case Submitting:
		return errs.ErrBusy
	case Editing:
		d.phase = Closed
		d.err = nil
	}
	return nil
}

func (d *Dialog) Begin() error {
	switch d.phase {
	case Closed:
		return errs.ErrNotOpen
	case Submitting:
		return errs.ErrBusy
	}
	d.phase = Submitting
	d.err = nil
	return nil
}

// Settle ends a submission. It reports false when none was in flight.
func (d *Dialog) Settle(err error) bool {
	if d.phase != Submitting {
		return false
	}
	if err != nil {
		d.phase = Editing
		d.err = err
		return true
	}
	d.phase = Closed
	return true
}

// Form is a Dialog whose values are checked before Begin lets them through.
type Form struct {
	Dialog
	fields []validate.FieldError
}

// Begin validates v. On failure the form stays in Editing with one message per
// invalid field and the *errs.ValidationError is returned.
func (f *Form) Begin(v any) error {
	if f.phase != Editing {
		return f.Dialog.Begin()
	}
	if err := errs.Check(v); err != nil {
		f.fields = errs.Fields(err)
		return err
	}
	f.fields = nil
	return f.Dialog.Begin()
}

// Settle records field errors the server path reported, if any.
func (f *Form) Settle(err error) bool {
	if !f.Dialog.Settle(err) {
		return false
	}
	f.fields = errs.Fields(err)
	return true
}

func (f *Form) Open() {
	if f.phase == Closed {
		f.fields = nil
	}
	f.Dialog.Open()
}

func (f *Form) Cancel() error {
	if err := f.Dialog.Cancel(); err != nil {
		return err
	}
	f.fields = nil
	return nil
}

func (f *Form) FieldErrors() []validate.FieldError { return f.fields }

// FieldError returns the message for field, empty when it is valid.
func (f *Form) FieldError(field string) string {
	msg, _ := validate.Lookup(f.fields, field)
	return msg
}
