package errs

import (
	"fmt"
	"strings"

	"github.com/Astemirdum/library-desk/pkg/validate"
	"github.com/pkg/errors"
)

var (
	ErrTransport = errors.New("transport failure")
	ErrStatus    = errors.New("unexpected status")
	ErrDecode    = errors.New("malformed response body")
	ErrInvalid   = errors.New("invalid input")
	ErrNotOpen   = errors.New("dialog is not open")
	ErrBusy      = errors.New("submission already in flight")
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// StatusCode extracts the HTTP status of err, 0 when err carries none.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}

// ValidationError carries the per-field messages of rejected input. It matches
// ErrInvalid and is returned before any request is made.
type ValidationError struct {
	Fields []validate.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return ErrInvalid.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Check validates v and returns a *ValidationError when any field fails.
func Check(v any) error {
	if fields := validate.Struct(v); len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Fields extracts the field errors of err, nil when err is not a validation error.
func Fields(err error) []validate.FieldError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
