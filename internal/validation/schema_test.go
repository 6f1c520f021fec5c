package validation

import (
	"errors"
	"strings"
	"testing"
)

const descriptorSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "order": {"type": "number"}
  },
  "required": ["name"]
}`

func TestCompileRejectsMalformedDocument(t *testing.T) {
	_, err := Compile("broken.json", []byte(`{"type": `))
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestSchemaValidateAcceptsPayload(t *testing.T) {
	schema := MustCompile("descriptor.json", []byte(descriptorSchema))

	if err := schema.Validate(map[string]any{"name": "Nuwa", "order": float64(1)}); err != nil {
		t.Fatalf("expected payload to validate, got %v", err)
	}
	if schema.Name() != "descriptor.json" {
		t.Fatalf("unexpected name %q", schema.Name())
	}
}

func TestSchemaValidateReportsIssues(t *testing.T) {
	schema := MustCompile("descriptor.json", []byte(descriptorSchema))

	err := schema.Validate(map[string]any{"order": "first"})
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	issues := Issues(err)
	if len(issues) < 2 {
		t.Fatalf("expected issues for missing name and bad order, got %#v", issues)
	}
	var sawOrder bool
	for _, issue := range issues {
		if strings.Contains(issue.Location, "order") {
			sawOrder = true
		}
	}
	if !sawOrder {
		t.Fatalf("expected an issue located at /order, got %#v", issues)
	}
}

func TestNilSchemaAcceptsEverything(t *testing.T) {
	var schema *Schema
	if err := schema.Validate("anything"); err != nil {
		t.Fatalf("expected nil schema to accept payload, got %v", err)
	}
}

func TestIssuesFallsBackToMessage(t *testing.T) {
	issues := Issues(errors.New("boom"))
	if len(issues) != 1 || issues[0].Message != "boom" {
		t.Fatalf("unexpected issues %#v", issues)
	}
	if Issues(nil) != nil {
		t.Fatal("expected nil issues for nil error")
	}
}

func TestPayloadValidationErrorFormatsLocations(t *testing.T) {
	err := &PayloadValidationError{Issues: []ValidationIssue{
		{Location: "/tag", Message: "value must be one of"},
		{Location: "", Message: "missing name"},
	}}
	got := err.Error()
	if got != "#/tag: value must be one of; #: missing name" {
		t.Fatalf("unexpected error string %q", got)
	}
}
