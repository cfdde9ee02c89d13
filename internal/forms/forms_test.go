package forms

import (
	"errors"
	"testing"

	"github.com/setu-platform/setu-admin/internal/apperrors"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *apperrors.ValidationError, got %T (%v)", err, err)
	}
	return ve.Fields
}

func TestTextFieldRequired(t *testing.T) {
	schema := Schema{Fields: []Field{
		TextField{Name: "name", Label: "Name", Required: true},
	}}

	fields := fieldErrors(t, schema.Validate(map[string]any{}))
	if fields["name"] != "Name is required" {
		t.Errorf("missing name message = %q", fields["name"])
	}

	fields = fieldErrors(t, schema.Validate(map[string]any{"name": ""}))
	if fields["name"] != "Name is required" {
		t.Errorf("empty name message = %q", fields["name"])
	}

	if err := schema.Validate(map[string]any{"name": "AWS Certified"}); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestTextFieldLengths(t *testing.T) {
	schema := Schema{Fields: []Field{
		TextField{Name: "city", Label: "City", Required: true, MinLen: 2, MaxLen: 5},
	}}

	fields := fieldErrors(t, schema.Validate(map[string]any{"city": "x"}))
	if fields["city"] != "City must be at least 2 characters" {
		t.Errorf("minlen message = %q", fields["city"])
	}

	fields = fieldErrors(t, schema.Validate(map[string]any{"city": "toolong"}))
	if fields["city"] != "City must be at most 5 characters" {
		t.Errorf("maxlen message = %q", fields["city"])
	}

	// Limits are in characters: five Devanagari letters are 15 bytes but
	// still within MaxLen 5.
	if err := schema.Validate(map[string]any{"city": "नगरनग"}); err != nil {
		t.Errorf("multibyte name within limit rejected: %v", err)
	}
	fields = fieldErrors(t, schema.Validate(map[string]any{"city": "नगरनगर"}))
	if fields["city"] != "City must be at most 5 characters" {
		t.Errorf("six-character multibyte name = %q, want maxlen error", fields["city"])
	}
}

func TestTextFieldFormats(t *testing.T) {
	schema := Schema{Fields: []Field{
		TextField{Name: "website", Label: "Website", Format: FormatURL},
		TextField{Name: "email", Label: "Email", Format: FormatEmail},
	}}

	fields := fieldErrors(t, schema.Validate(map[string]any{
		"website": "not a url",
		"email":   "not-an-email",
	}))
	if fields["website"] != "Invalid Website" {
		t.Errorf("website message = %q", fields["website"])
	}
	if fields["email"] != "Invalid Email" {
		t.Errorf("email message = %q", fields["email"])
	}

	err := schema.Validate(map[string]any{
		"website": "https://example.org",
		"email":   "vet@example.org",
	})
	if err != nil {
		t.Errorf("valid formats rejected: %v", err)
	}

	// Optional fields are skipped entirely when absent.
	if err := schema.Validate(map[string]any{}); err != nil {
		t.Errorf("absent optional fields rejected: %v", err)
	}
}

func TestSelectField(t *testing.T) {
	schema := Schema{Fields: []Field{
		SelectField{Name: "status", Label: "Status", Required: true, Options: []string{"PENDING", "RESOLVED"}},
	}}

	fields := fieldErrors(t, schema.Validate(map[string]any{}))
	if fields["status"] != "Status is required" {
		t.Errorf("missing select message = %q", fields["status"])
	}

	fields = fieldErrors(t, schema.Validate(map[string]any{"status": "MAYBE"}))
	if fields["status"] != "Invalid Status" {
		t.Errorf("bad option message = %q", fields["status"])
	}

	if err := schema.Validate(map[string]any{"status": "RESOLVED"}); err != nil {
		t.Errorf("valid option rejected: %v", err)
	}
}

func TestSelectFieldOpenOptions(t *testing.T) {
	// Nil options accept anything, the values live in another table.
	schema := Schema{Fields: []Field{
		SelectField{Name: "title_id", Label: "Job Title", Required: true},
	}}
	if err := schema.Validate(map[string]any{"title_id": "b0b9f2a0"}); err != nil {
		t.Errorf("open select rejected: %v", err)
	}
}

func TestMultiSelectField(t *testing.T) {
	schema := Schema{Fields: []Field{
		MultiSelectField{Name: "skills", Label: "Skill", Required: true, Options: []string{"go", "sql"}, MaxItems: 2},
	}}

	fields := fieldErrors(t, schema.Validate(map[string]any{}))
	if fields["skills"] != "At least one Skill is required" {
		t.Errorf("missing multiselect message = %q", fields["skills"])
	}

	fields = fieldErrors(t, schema.Validate(map[string]any{"skills": []any{}}))
	if fields["skills"] != "At least one Skill is required" {
		t.Errorf("empty multiselect message = %q", fields["skills"])
	}

	fields = fieldErrors(t, schema.Validate(map[string]any{"skills": []any{"go", "rust"}}))
	if fields["skills"] != "Invalid Skill" {
		t.Errorf("bad element message = %q", fields["skills"])
	}

	fields = fieldErrors(t, schema.Validate(map[string]any{"skills": []any{"go", "sql", "go"}}))
	if fields["skills"] != "Maximum of 2 Skill entries allowed" {
		t.Errorf("max items message = %q", fields["skills"])
	}

	if err := schema.Validate(map[string]any{"skills": []any{"go", "sql"}}); err != nil {
		t.Errorf("valid multiselect rejected: %v", err)
	}
}

func TestMultipleFieldsCollectAllErrors(t *testing.T) {
	schema := Schema{Fields: []Field{
		TextField{Name: "name", Label: "Name", Required: true},
		TextField{Name: "website", Label: "Website", Format: FormatURL},
	}}
	fields := fieldErrors(t, schema.Validate(map[string]any{"website": "nope"}))
	if len(fields) != 2 {
		t.Errorf("got %d field errors, want 2: %v", len(fields), fields)
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	schema := Schema{Fields: []Field{
		TextField{Name: "name", Label: "Name", Required: true},
	}}
	if err := schema.Validate(map[string]any{"name": "ok", "extra": 42}); err != nil {
		t.Errorf("unknown key caused failure: %v", err)
	}
}

func TestValueHelpers(t *testing.T) {
	payload := map[string]any{
		"name":   "University of X",
		"skills": []any{"go", "sql"},
		"count":  3,
	}
	if got := String(payload, "name"); got != "University of X" {
		t.Errorf("String = %q", got)
	}
	if got := String(payload, "count"); got != "" {
		t.Errorf("String on non-string = %q, want empty", got)
	}
	if got := Strings(payload, "skills"); len(got) != 2 || got[0] != "go" {
		t.Errorf("Strings = %v", got)
	}
	if got := Strings(payload, "missing"); got != nil {
		t.Errorf("Strings on missing key = %v, want nil", got)
	}
}
