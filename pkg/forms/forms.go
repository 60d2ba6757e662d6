// Package forms groups named fields into a form and serializes the whole
// unit: field dictionaries keyed by name plus the declaration order, so a
// remote client can rebuild the form faithfully.
package forms

import (
	"fmt"

	"github.com/goliatone/go-remoteforms/pkg/fields"
	"github.com/goliatone/go-remoteforms/pkg/ordered"
	"github.com/goliatone/go-remoteforms/pkg/serialize"
)

// Form is an ordered collection of named fields. Initial supplies dynamic
// per-field initial data that overrides each field's own declared initial.
type Form struct {
	Title   string
	Initial map[string]any

	names  []string
	byName map[string]fields.Field
}

// New constructs an empty form.
func New(title string) *Form {
	return &Form{
		Title:  title,
		byName: make(map[string]fields.Field),
	}
}

// Add appends a field under name, preserving declaration order. The name is
// written back onto the field when it declares none.
func (f *Form) Add(name string, field fields.Field) error {
	if name == "" {
		return fmt.Errorf("forms: field name is required")
	}
	if field == nil {
		return fmt.Errorf("forms: field %q is nil", name)
	}
	if _, exists := f.byName[name]; exists {
		return fmt.Errorf("forms: field %q already declared", name)
	}

	if field.Attrs().Name == "" {
		field.Attrs().Name = name
	}
	f.names = append(f.names, name)
	f.byName[name] = field
	return nil
}

// MustAdd panics on registration failure. Useful for declaration-time wiring.
func (f *Form) MustAdd(name string, field fields.Field) {
	if err := f.Add(name, field); err != nil {
		panic(err)
	}
}

// Names returns the field names in declaration order.
func (f *Form) Names() []string {
	return append([]string(nil), f.names...)
}

// Lookup returns the field declared under name.
func (f *Form) Lookup(name string) (fields.Field, bool) {
	field, ok := f.byName[name]
	return field, ok
}

// Serialize produces the form dictionary: title, the declaration order and
// one dictionary per field. Fields pick up their dynamic initial from
// f.Initial.
func (f *Form) Serialize(s *serialize.Serializer) *ordered.Map {
	fieldDicts := ordered.NewMap()
	for _, name := range f.names {
		field := f.byName[name]
		fieldDicts.Set(name, s.Field(field, f.Initial[name], name))
	}

	dict := ordered.NewMap()
	dict.Set("title", f.Title)
	dict.Set("ordered_fields", f.Names())
	dict.Set("fields", fieldDicts)
	return dict
}
