package formdef_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-remoteforms/pkg/fields"
	"github.com/goliatone/go-remoteforms/pkg/formdef"
	"github.com/goliatone/go-remoteforms/pkg/widgets"
)

const sampleYAML = `
title: Article
initial:
  status: draft
fields:
  - name: headline
    kind: CharField
    required: true
    label: Headline
    max_length: 120
    widget: Textarea
    widget_attrs:
      rows: "2"
  - name: status
    kind: ChoiceField
    choices:
      - {value: draft, display: Draft}
      - {value: live, display: Live}
  - name: tags
    kind: CommaSeparatedField
    validate_choices: false
    choices:
      - {value: go, display: Go}
  - name: published
    kind: SplitDateTimeField
    input_date_formats: ["2006-01-02"]
    input_time_formats: ["15:04"]
    fields:
      - name: date
        kind: DateField
      - name: time
        kind: TimeField
`

func TestParseYAMLDocument(t *testing.T) {
	form, err := formdef.Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if form.Title != "Article" {
		t.Fatalf("expected title Article, got %q", form.Title)
	}
	if diff := cmp.Diff([]string{"headline", "status", "tags", "published"}, form.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if form.Initial["status"] != "draft" {
		t.Fatalf("expected dynamic initial, got %v", form.Initial)
	}

	field, ok := form.Lookup("headline")
	if !ok {
		t.Fatalf("expected headline field")
	}
	char, ok := field.(*fields.CharField)
	if !ok {
		t.Fatalf("expected CharField, got %T", field)
	}
	if char.MaxLength == nil || *char.MaxLength != 120 {
		t.Fatalf("expected max_length 120, got %v", char.MaxLength)
	}
	if char.Widget.Kind != widgets.KindTextarea || char.Widget.Attrs["rows"] != "2" {
		t.Fatalf("expected textarea widget override, got %+v", char.Widget)
	}

	field, _ = form.Lookup("tags")
	comma, ok := field.(*fields.CommaSeparatedField)
	if !ok {
		t.Fatalf("expected CommaSeparatedField, got %T", field)
	}
	if comma.ValidateChoices {
		t.Fatalf("expected choice validation disabled")
	}

	field, _ = form.Lookup("published")
	split, ok := field.(*fields.SplitDateTimeField)
	if !ok {
		t.Fatalf("expected SplitDateTimeField, got %T", field)
	}
	if len(split.Fields) != 2 {
		t.Fatalf("expected two nested fields, got %d", len(split.Fields))
	}
}

func TestParseJSONDocument(t *testing.T) {
	doc := `{"title":"Login","fields":[{"name":"email","kind":"EmailField","required":true}]}`

	form, err := formdef.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	field, ok := form.Lookup("email")
	if !ok {
		t.Fatalf("expected email field")
	}
	if _, ok := field.(*fields.EmailField); !ok {
		t.Fatalf("expected EmailField, got %T", field)
	}
	if !field.Attrs().Required {
		t.Fatalf("expected required field")
	}
}

func TestParseCommaSeparatedDefaultsToValidating(t *testing.T) {
	doc := `{"fields":[{"name":"tags","kind":"CommaSeparatedField"}]}`

	form, err := formdef.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	field, _ := form.Lookup("tags")
	if !field.(*fields.CommaSeparatedField).ValidateChoices {
		t.Fatalf("expected choice validation on by default")
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"empty document", "   "},
		{"garbage", "{nope"},
		{"no fields", `{"title":"x"}`},
		{"unnamed field", `{"fields":[{"kind":"CharField"}]}`},
		{"unknown kind", `{"fields":[{"name":"x","kind":"TelepathyField"}]}`},
		{"duplicate name", `{"fields":[{"name":"x","kind":"CharField"},{"name":"x","kind":"CharField"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := formdef.Parse([]byte(tc.doc)); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}
