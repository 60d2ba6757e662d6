// Package widgets models the input-control half of a form field and turns
// widget values into plain dictionaries. Resolution is an explicit mapping
// from widget kind to serializer with a designated default entry: an unknown
// kind logs a warning and degrades to the default shape, it never fails.
package widgets

// Kind identifies a widget category. Custom kinds are permitted; kinds
// without a registered serializer fall back to the default entry.
type Kind string

// Built-in widget kinds.
const (
	KindTextInput              Kind = "TextInput"
	KindNumberInput            Kind = "NumberInput"
	KindEmailInput             Kind = "EmailInput"
	KindURLInput               Kind = "URLInput"
	KindPasswordInput          Kind = "PasswordInput"
	KindHiddenInput            Kind = "HiddenInput"
	KindTextarea               Kind = "Textarea"
	KindDateInput              Kind = "DateInput"
	KindTimeInput              Kind = "TimeInput"
	KindDateTimeInput          Kind = "DateTimeInput"
	KindCheckboxInput          Kind = "CheckboxInput"
	KindSelect                 Kind = "Select"
	KindNullBooleanSelect      Kind = "NullBooleanSelect"
	KindSelectMultiple         Kind = "SelectMultiple"
	KindRadioSelect            Kind = "RadioSelect"
	KindCheckboxSelectMultiple Kind = "CheckboxSelectMultiple"
	KindFileInput              Kind = "FileInput"
	KindClearableFileInput     Kind = "ClearableFileInput"
	KindSplitDateTime          Kind = "SplitDateTimeWidget"
)

// Widget describes an input control paired with a field. The zero value has
// no kind and serializes through the default entry.
type Widget struct {
	Kind       Kind
	Attrs      map[string]string
	IsHidden   bool
	IsRequired bool
}

// New returns a widget of the given kind with optional HTML attributes.
func New(kind Kind, attrs map[string]string) Widget {
	return Widget{Kind: kind, Attrs: attrs}
}

// IsZero reports whether the widget carries no kind.
func (w Widget) IsZero() bool {
	return w.Kind == ""
}
