// Package remoteforms serializes form fields and widgets into plain,
// insertion-ordered dictionaries a remote frontend can consume: common
// attributes plus per-category extensions (length/value bounds, choice lists,
// date formats), with record-like initial values reduced to their primary
// keys. The root package re-exports the common entry points; the pkg tree
// holds the implementations.
package remoteforms

import (
	"github.com/goliatone/go-remoteforms/pkg/fields"
	"github.com/goliatone/go-remoteforms/pkg/forms"
	"github.com/goliatone/go-remoteforms/pkg/ordered"
	"github.com/goliatone/go-remoteforms/pkg/serialize"
)

// Serializer converts fields into dictionaries.
type Serializer = serialize.Serializer

// Option customises serializer construction.
type Option = serialize.Option

// Convenience re-exports of the serializer options.
var (
	WithFormats        = serialize.WithFormats
	WithWidgetRegistry = serialize.WithWidgetRegistry
	WithLogger         = serialize.WithLogger
	WithHelpTextPolicy = serialize.WithHelpTextPolicy
)

// NewSerializer exposes the serializer constructor from the top-level module.
func NewSerializer(options ...Option) *Serializer {
	return serialize.New(options...)
}

// SerializeField produces the dictionary for a single field. overrideInitial,
// when non-nil, wins over the field's own initial value.
func SerializeField(field fields.Field, overrideInitial any, fieldName string, options ...Option) *ordered.Map {
	return serialize.New(options...).Field(field, overrideInitial, fieldName)
}

// SerializeForm produces the dictionary for a whole form: title, field order
// and one dictionary per field.
func SerializeForm(form *forms.Form, options ...Option) *ordered.Map {
	return form.Serialize(serialize.New(options...))
}
