package forms_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-remoteforms/pkg/fields"
	"github.com/goliatone/go-remoteforms/pkg/forms"
	"github.com/goliatone/go-remoteforms/pkg/ordered"
	"github.com/goliatone/go-remoteforms/pkg/serialize"
)

func TestFormSerializePreservesDeclarationOrder(t *testing.T) {
	form := forms.New("Profile")
	form.MustAdd("name", &fields.CharField{})
	form.MustAdd("age", &fields.IntegerField{})
	form.MustAdd("email", &fields.EmailField{})

	dict := form.Serialize(serialize.New())

	names, _ := dict.Get("ordered_fields")
	if diff := cmp.Diff([]string{"name", "age", "email"}, names); diff != "" {
		t.Fatalf("ordered_fields mismatch (-want +got):\n%s", diff)
	}

	value, _ := dict.Get("fields")
	fieldDicts := value.(*ordered.Map)
	if diff := cmp.Diff([]string{"name", "age", "email"}, fieldDicts.Keys()); diff != "" {
		t.Fatalf("field dict order mismatch (-want +got):\n%s", diff)
	}
	if title, _ := dict.Get("title"); title != "Profile" {
		t.Fatalf("expected form title, got %v", title)
	}
}

func TestFormSerializeAppliesDynamicInitial(t *testing.T) {
	name := &fields.CharField{}
	name.Initial = "declared"

	form := forms.New("Profile")
	form.MustAdd("name", name)
	form.Initial = map[string]any{"name": "dynamic"}

	dict := form.Serialize(serialize.New())
	value, _ := dict.Get("fields")
	fieldDict, _ := value.(*ordered.Map).Get("name")
	if initial, _ := fieldDict.(*ordered.Map).Get("initial"); initial != "dynamic" {
		t.Fatalf("expected dynamic initial to win, got %v", initial)
	}
}

func TestFormAddRejectsDuplicatesAndEmptyNames(t *testing.T) {
	form := forms.New("Profile")
	if err := form.Add("", &fields.CharField{}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := form.Add("name", nil); err == nil {
		t.Fatalf("expected nil field error")
	}
	if err := form.Add("name", &fields.CharField{}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := form.Add("name", &fields.CharField{}); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestFormAddBackfillsFieldName(t *testing.T) {
	field := &fields.CharField{}
	form := forms.New("Profile")
	form.MustAdd("nickname", field)

	if field.Name != "nickname" {
		t.Fatalf("expected name backfill, got %q", field.Name)
	}

	named := &fields.CharField{}
	named.Name = "custom"
	form.MustAdd("other", named)
	if named.Name != "custom" {
		t.Fatalf("expected declared name to survive, got %q", named.Name)
	}
}
