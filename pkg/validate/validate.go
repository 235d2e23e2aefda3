package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FieldError is a single failed constraint, keyed by the JSON field name.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

func (e FieldError) Error() string {
	return e.Message
}

// Fields validates i and reports one error per failed field in declaration order.
func (cv *CustomValidator) Fields(i interface{}) []FieldError {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Tag: "invalid", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	seen := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		field := baseField(fe.Field())
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, FieldError{
			Field:   field,
			Tag:     fe.Tag(),
			Message: message(field, fe.Field() != field, fe),
		})
	}
	return out
}

var std = NewCustomValidator()

// Struct runs the shared validator; nil means valid.
func Struct(i interface{}) []FieldError {
	return std.Fields(i)
}

// Lookup returns the message reported for field, if any.
func Lookup(errs []FieldError, field string) (string, bool) {
	for _, e := range errs {
		if e.Field == field {
			return e.Message, true
		}
	}
	return "", false
}

var indexRe = regexp.MustCompile(`\[\d+\]$`)

func baseField(f string) string {
	return indexRe.ReplaceAllString(f, "")
}

var overrides = map[string]string{
	"clientId.min": "a client must be selected",
	"bookIds.min":  "at least one book must be selected",
}

// message builds the text for fe; elem marks a failure on a slice item.
func message(field string, elem bool, fe validator.FieldError) string {
	if elem {
		return fmt.Sprintf("%s items are invalid (%s=%s)", field, fe.Tag(), fe.Param())
	}
	if msg, ok := overrides[field+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}
