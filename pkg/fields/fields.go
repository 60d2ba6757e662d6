// Package fields models the form-field capability set consumed by the
// serializer: common attributes shared by every field, one concrete type per
// field category, and the comma-separated multi-choice field with its custom
// validation and cleaning behaviour. Categories extend one another through
// embedding chains (float extends integer, date/datetime extend time, the
// char family fans out to email/url/slug/regex/ip) mirroring how their
// serialized dictionaries layer on top of each other.
package fields

import (
	"github.com/goliatone/go-remoteforms/pkg/widgets"
)

// Kind identifies a field category. The kind doubles as the "title" entry of
// the serialized dictionary.
type Kind string

// Built-in field kinds.
const (
	KindChar                Kind = "CharField"
	KindInteger             Kind = "IntegerField"
	KindFloat               Kind = "FloatField"
	KindDecimal             Kind = "DecimalField"
	KindTime                Kind = "TimeField"
	KindDate                Kind = "DateField"
	KindDateTime            Kind = "DateTimeField"
	KindRegex               Kind = "RegexField"
	KindEmail               Kind = "EmailField"
	KindFile                Kind = "FileField"
	KindImage               Kind = "ImageField"
	KindURL                 Kind = "URLField"
	KindBoolean             Kind = "BooleanField"
	KindNullBoolean         Kind = "NullBooleanField"
	KindChoice              Kind = "ChoiceField"
	KindModelChoice         Kind = "ModelChoiceField"
	KindTypedChoice         Kind = "TypedChoiceField"
	KindMultipleChoice      Kind = "MultipleChoiceField"
	KindCommaSeparated      Kind = "CommaSeparatedField"
	KindModelMultipleChoice Kind = "ModelMultipleChoiceField"
	KindTypedMultipleChoice Kind = "TypedMultipleChoiceField"
	KindCombo               Kind = "ComboField"
	KindMultiValue          Kind = "MultiValueField"
	KindFilePath            Kind = "FilePathField"
	KindSplitDateTime       Kind = "SplitDateTimeField"
	KindIPAddress           Kind = "IPAddressField"
	KindGenericIPAddress    Kind = "GenericIPAddressField"
	KindSlug                Kind = "SlugField"
)

// Attributes holds the state every field carries regardless of category.
type Attributes struct {
	Name     string
	Required bool
	Label    string

	// Initial is the field's own default. A func() any value is invoked
	// during serialization to obtain the concrete value.
	Initial any

	HelpText string
	Disabled bool

	// ErrorMessages maps error codes (required, invalid_choice, ...) to
	// message templates. Missing entries fall back to the category defaults.
	ErrorMessages map[string]string

	// Widget pairs the field with an input control. The zero widget resolves
	// to the category default at serialization time.
	Widget widgets.Widget
}

// Attrs returns the common attribute block. It makes every embedding field
// type satisfy the Field interface.
func (a *Attributes) Attrs() *Attributes {
	return a
}

// Field is the capability every concrete field type provides.
type Field interface {
	Kind() Kind
	Attrs() *Attributes
}

// PrimaryKeyer marks record-like values whose serialized form is their
// primary key rather than the record itself. Model-backed choice fields
// reduce such initial values before output.
type PrimaryKeyer interface {
	PrimaryKey() any
}

// Capability interfaces the serializer's builders dispatch on. Embedding
// chains inherit them, so an EmailField is LengthBounded through CharField.
type (
	// LengthBounded exposes max/min length constraints.
	LengthBounded interface {
		LengthBounds() (max, min *int)
	}

	// ValueBounded exposes numeric max/min constraints.
	ValueBounded interface {
		ValueBounds() (max, min any)
	}

	// DecimalSized exposes decimal precision constraints.
	DecimalSized interface {
		DecimalSize() (maxDigits, decimalPlaces *int)
	}

	// TimeFormatted exposes explicit input format lists.
	TimeFormatted interface {
		InputFormatList() []string
	}

	// ChoiceBearer exposes the declared choice list.
	ChoiceBearer interface {
		ChoiceList() []Choice
	}

	// Coercing exposes typed-choice coercion configuration.
	Coercing interface {
		CoerceInfo() (coerce string, empty any)
	}

	// Composite exposes nested sub-fields.
	Composite interface {
		Subfields() []Field
	}

	// PathBacked exposes filesystem path choice configuration.
	PathBacked interface {
		PathInfo() (path, match string, recursive bool)
	}

	// SplitFormatted exposes the split date/time format pair.
	SplitFormatted interface {
		SplitFormats() (dateFormats, timeFormats []string)
	}
)

// DefaultWidget returns the input control a category uses when the field does
// not declare one.
func DefaultWidget(kind Kind) widgets.Widget {
	switch kind {
	case KindInteger, KindFloat, KindDecimal:
		return widgets.New(widgets.KindNumberInput, nil)
	case KindEmail:
		return widgets.New(widgets.KindEmailInput, nil)
	case KindURL:
		return widgets.New(widgets.KindURLInput, nil)
	case KindTime:
		return widgets.New(widgets.KindTimeInput, nil)
	case KindDate:
		return widgets.New(widgets.KindDateInput, nil)
	case KindDateTime:
		return widgets.New(widgets.KindDateTimeInput, nil)
	case KindBoolean:
		return widgets.New(widgets.KindCheckboxInput, nil)
	case KindNullBoolean:
		return widgets.New(widgets.KindNullBooleanSelect, nil)
	case KindChoice, KindModelChoice, KindTypedChoice, KindFilePath:
		return widgets.New(widgets.KindSelect, nil)
	case KindMultipleChoice, KindCommaSeparated, KindModelMultipleChoice, KindTypedMultipleChoice:
		return widgets.New(widgets.KindSelectMultiple, nil)
	case KindFile, KindImage:
		return widgets.New(widgets.KindClearableFileInput, nil)
	case KindSplitDateTime:
		return widgets.New(widgets.KindSplitDateTime, nil)
	default:
		return widgets.New(widgets.KindTextInput, nil)
	}
}
