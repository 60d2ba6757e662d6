package fields_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-remoteforms/pkg/fields"
)

func declaredChoices() []fields.Choice {
	return []fields.Choice{
		{Value: "a", Display: "Alpha"},
		{Value: "b", Display: "Beta"},
		{Value: "c", Display: "Gamma"},
	}
}

func TestCommaSeparatedRoundTrip(t *testing.T) {
	field := fields.NewCommaSeparated(declaredChoices())
	field.Required = true

	prepared := field.PrepareValue("a,b,c")
	cleaned, err := field.Clean(prepared)
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if cleaned != "a,b,c" {
		t.Fatalf("expected round trip to preserve value, got %q", cleaned)
	}
}

func TestPrepareValueRegistersUnseenTokensWithoutValidation(t *testing.T) {
	field := fields.NewCommaSeparated(declaredChoices(), fields.WithoutChoiceValidation())

	prepared := field.PrepareValue("x,y")
	list, ok := prepared.([]string)
	if !ok {
		t.Fatalf("expected token list, got %T", prepared)
	}
	if diff := cmp.Diff([]string{"x", "y"}, list); diff != "" {
		t.Fatalf("token list mismatch (-want +got):\n%s", diff)
	}

	want := append(declaredChoices(),
		fields.Choice{Value: "x", Display: "x"},
		fields.Choice{Value: "y", Display: "y"},
	)
	if diff := cmp.Diff(want, field.Choices); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}

	for _, v := range []string{"x", "y"} {
		if !field.ValidValue(v) {
			t.Fatalf("expected %q to be valid with validation disabled", v)
		}
	}
}

func TestPrepareValueMarksTokensWhenValidating(t *testing.T) {
	field := fields.NewCommaSeparated(declaredChoices())

	field.PrepareValue("x,y")

	want := append(declaredChoices(),
		fields.Choice{Value: "x", Display: "x (Not valid)"},
		fields.Choice{Value: "y", Display: "y (Not valid)"},
	)
	if diff := cmp.Diff(want, field.Choices); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestPrepareValueSkipsDuplicatesAndEmptyTokens(t *testing.T) {
	field := fields.NewCommaSeparated(declaredChoices())

	field.PrepareValue("a,,x")
	field.PrepareValue("x")

	want := append(declaredChoices(), fields.Choice{Value: "x", Display: "x (Not valid)"})
	if diff := cmp.Diff(want, field.Choices); diff != "" {
		t.Fatalf("choices mismatch (-want +got):\n%s", diff)
	}
}

func TestPrepareValuePassesNonStringsThrough(t *testing.T) {
	field := fields.NewCommaSeparated(declaredChoices())

	value := []string{"a", "b"}
	prepared := field.PrepareValue(value)
	if diff := cmp.Diff(value, prepared); diff != "" {
		t.Fatalf("expected non-string value untouched (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(declaredChoices(), field.Choices); diff != "" {
		t.Fatalf("expected choices untouched (-want +got):\n%s", diff)
	}
}

func TestCleanRejectsUnknownValueWhenValidating(t *testing.T) {
	field := fields.NewCommaSeparated(declaredChoices())

	_, err := field.Clean([]string{"a", "z"})
	var verr *fields.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Code != fields.CodeInvalidChoice {
		t.Fatalf("expected invalid_choice, got %q", verr.Code)
	}
	if verr.Message != "Select a valid choice. z is not one of the available choices." {
		t.Fatalf("unexpected message %q", verr.Message)
	}
}

func TestCleanAcceptsAnythingWithoutValidation(t *testing.T) {
	field := fields.NewCommaSeparated(declaredChoices(), fields.WithoutChoiceValidation())

	cleaned, err := field.Clean([]string{"x", "y"})
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if cleaned != "x,y" {
		t.Fatalf("expected joined string, got %q", cleaned)
	}
}

func TestCleanRequired(t *testing.T) {
	field := fields.NewCommaSeparated(declaredChoices())
	field.Required = true

	_, err := field.Clean(nil)
	var verr *fields.ValidationError
	if !errors.As(err, &verr) || verr.Code != fields.CodeRequired {
		t.Fatalf("expected required error, got %v", err)
	}

	field.Required = false
	cleaned, err := field.Clean(nil)
	if err != nil {
		t.Fatalf("clean optional empty: %v", err)
	}
	if cleaned != "" {
		t.Fatalf("expected empty string for optional empty submission, got %q", cleaned)
	}
}
