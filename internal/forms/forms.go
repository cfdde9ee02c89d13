// Package forms is the server half of the dashboard's add/edit dialogs: a
// schema of typed field descriptors validated against the raw JSON payload,
// producing the per-field messages the dialog renders inline. Field kinds
// are a closed set of variants dispatched by type switch, not strings
// interpreted at render time.
package forms

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/setu-platform/setu-admin/internal/apperrors"
)

// validate backs the format checks (email, url). One instance is enough,
// the validator is safe for concurrent use.
var validate = validator.New()

// Format constrains a text field's content beyond length.
type Format string

const (
	FormatNone  Format = ""
	FormatEmail Format = "email"
	FormatURL   Format = "url"
)

// Field is one input in a dialog form.
type Field interface {
	FieldName() string
}

// TextField is a single-line input.
type TextField struct {
	Name     string
	Label    string
	Required bool
	MinLen   int
	MaxLen   int
	Format   Format
}

func (f TextField) FieldName() string { return f.Name }

// TextAreaField is a multi-line input.
type TextAreaField struct {
	Name     string
	Label    string
	Required bool
	MaxLen   int
}

func (f TextAreaField) FieldName() string { return f.Name }

// SelectField is a single choice from a fixed option list. A nil Options
// slice accepts any value (the options come from another table at runtime).
type SelectField struct {
	Name     string
	Label    string
	Required bool
	Options  []string
}

func (f SelectField) FieldName() string { return f.Name }

// MultiSelectField is zero or more choices from an option list.
type MultiSelectField struct {
	Name     string
	Label    string
	Required bool
	Options  []string
	MaxItems int
}

func (f MultiSelectField) FieldName() string { return f.Name }

// Schema is the field set of one dialog.
type Schema struct {
	Fields []Field
}

// Validate checks values (a decoded JSON object) against the schema and
// returns a *apperrors.ValidationError carrying every failing field, or nil
// when the payload is acceptable. Unknown keys in values are ignored.
func (s Schema) Validate(values map[string]any) error {
	errs := apperrors.NewValidationError()
	for _, field := range s.Fields {
		switch f := field.(type) {
		case TextField:
			checkText(errs, values, f.Name, f.Label, f.Required, f.MinLen, f.MaxLen, f.Format)
		case TextAreaField:
			checkText(errs, values, f.Name, f.Label, f.Required, 0, f.MaxLen, FormatNone)
		case SelectField:
			checkSelect(errs, values, f)
		case MultiSelectField:
			checkMultiSelect(errs, values, f)
		default:
			errs.Add(field.FieldName(), "unsupported field type")
		}
	}
	if errs.Empty() {
		return nil
	}
	return errs
}

func checkText(errs *apperrors.ValidationError, values map[string]any, name, label string, required bool, minLen, maxLen int, format Format) {
	v, ok := stringValue(values, name)
	if !ok || v == "" {
		if required {
			errs.Add(name, label+" is required")
		}
		return
	}
	// Length limits count characters, not bytes.
	n := utf8.RuneCountInString(v)
	if minLen > 0 && n < minLen {
		errs.Add(name, fmt.Sprintf("%s must be at least %d characters", label, minLen))
		return
	}
	if maxLen > 0 && n > maxLen {
		errs.Add(name, fmt.Sprintf("%s must be at most %d characters", label, maxLen))
		return
	}
	if format != FormatNone {
		if err := validate.Var(v, string(format)); err != nil {
			errs.Add(name, fmt.Sprintf("Invalid %s", label))
		}
	}
}

func checkSelect(errs *apperrors.ValidationError, values map[string]any, f SelectField) {
	v, ok := stringValue(values, f.Name)
	if !ok || v == "" {
		if f.Required {
			errs.Add(f.Name, f.Label+" is required")
		}
		return
	}
	if f.Options != nil && !contains(f.Options, v) {
		errs.Add(f.Name, "Invalid "+f.Label)
	}
}

func checkMultiSelect(errs *apperrors.ValidationError, values map[string]any, f MultiSelectField) {
	items, ok := listValue(values, f.Name)
	if !ok {
		if f.Required {
			errs.Add(f.Name, "At least one "+f.Label+" is required")
		}
		return
	}
	if f.Required && len(items) == 0 {
		errs.Add(f.Name, "At least one "+f.Label+" is required")
		return
	}
	if f.MaxItems > 0 && len(items) > f.MaxItems {
		errs.Add(f.Name, fmt.Sprintf("Maximum of %d %s entries allowed", f.MaxItems, f.Label))
		return
	}
	if f.Options != nil {
		for _, item := range items {
			if !contains(f.Options, item) {
				errs.Add(f.Name, "Invalid "+f.Label)
				return
			}
		}
	}
}

func stringValue(values map[string]any, name string) (string, bool) {
	raw, ok := values[name]
	if !ok || raw == nil {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

func listValue(values map[string]any, name string) ([]string, bool) {
	raw, ok := values[name]
	if !ok || raw == nil {
		return nil, false
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

// String pulls a string value out of a decoded payload, empty when absent
// or not a string. Used by handlers after Validate has passed.
func String(values map[string]any, name string) string {
	v, _ := stringValue(values, name)
	return v
}

// Strings pulls a string list out of a decoded payload.
func Strings(values map[string]any, name string) []string {
	v, _ := listValue(values, name)
	return v
}
