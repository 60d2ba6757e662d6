package fields

// Choice is one selectable (value, display label) pair. Value is stringified
// on serialization.
type Choice struct {
	Value   any
	Display string
}

// CharField accepts free text bounded by optional length constraints. It is
// the parent of the regex/email/url/slug/ip family.
type CharField struct {
	Attributes
	MaxLength *int
	MinLength *int
}

func (f *CharField) Kind() Kind { return KindChar }

// LengthBounds returns the optional max/min length constraints.
func (f *CharField) LengthBounds() (max, min *int) {
	return f.MaxLength, f.MinLength
}

// RegexField validates input against a pattern. The pattern itself stays
// server-side and is not serialized.
type RegexField struct {
	CharField
	Pattern string
}

func (f *RegexField) Kind() Kind { return KindRegex }

// EmailField accepts a single email address.
type EmailField struct {
	CharField
}

func (f *EmailField) Kind() Kind { return KindEmail }

// URLField accepts an absolute URL.
type URLField struct {
	CharField
}

func (f *URLField) Kind() Kind { return KindURL }

// SlugField accepts letters, numbers, underscores and hyphens.
type SlugField struct {
	CharField
}

func (f *SlugField) Kind() Kind { return KindSlug }

// IPAddressField accepts an IPv4 address.
type IPAddressField struct {
	CharField
}

func (f *IPAddressField) Kind() Kind { return KindIPAddress }

// GenericIPAddressField accepts an IPv4 or IPv6 address.
type GenericIPAddressField struct {
	CharField
}

func (f *GenericIPAddressField) Kind() Kind { return KindGenericIPAddress }

// IntegerField accepts a whole number bounded by optional value constraints.
// Bounds are any so integral and floating bounds serialize as the caller
// declared them.
type IntegerField struct {
	Attributes
	MaxValue any
	MinValue any
}

func (f *IntegerField) Kind() Kind { return KindInteger }

// ValueBounds returns the optional max/min value constraints.
func (f *IntegerField) ValueBounds() (max, min any) {
	return f.MaxValue, f.MinValue
}

// FloatField accepts a floating point number.
type FloatField struct {
	IntegerField
}

func (f *FloatField) Kind() Kind { return KindFloat }

// DecimalField accepts a fixed-precision decimal number.
type DecimalField struct {
	IntegerField
	MaxDigits     *int
	DecimalPlaces *int
}

func (f *DecimalField) Kind() Kind { return KindDecimal }

// DecimalSize returns the optional precision constraints.
func (f *DecimalField) DecimalSize() (maxDigits, decimalPlaces *int) {
	return f.MaxDigits, f.DecimalPlaces
}

// TimeField accepts a wall-clock time. InputFormats lists the accepted Go
// layouts; when empty the serializer substitutes the configured defaults.
type TimeField struct {
	Attributes
	InputFormats []string
}

func (f *TimeField) Kind() Kind { return KindTime }

// InputFormatList returns the explicit format list, possibly empty.
func (f *TimeField) InputFormatList() []string {
	return f.InputFormats
}

// DateField accepts a calendar date.
type DateField struct {
	TimeField
}

func (f *DateField) Kind() Kind { return KindDate }

// DateTimeField accepts a combined date and time.
type DateTimeField struct {
	TimeField
}

func (f *DateTimeField) Kind() Kind { return KindDateTime }

// FileField accepts an uploaded file.
type FileField struct {
	Attributes
	MaxLength *int
}

func (f *FileField) Kind() Kind { return KindFile }

// LengthBounds returns the optional filename length bound. Files carry no
// minimum.
func (f *FileField) LengthBounds() (max, min *int) {
	return f.MaxLength, nil
}

// ImageField accepts an uploaded image.
type ImageField struct {
	FileField
}

func (f *ImageField) Kind() Kind { return KindImage }

// BooleanField accepts a true/false value.
type BooleanField struct {
	Attributes
}

func (f *BooleanField) Kind() Kind { return KindBoolean }

// NullBooleanField accepts true, false or unknown.
type NullBooleanField struct {
	BooleanField
}

func (f *NullBooleanField) Kind() Kind { return KindNullBoolean }

// ChoiceField accepts one value from a declared choice list.
type ChoiceField struct {
	Attributes
	Choices []Choice
}

func (f *ChoiceField) Kind() Kind { return KindChoice }

// ChoiceList returns the declared choices.
func (f *ChoiceField) ChoiceList() []Choice {
	return f.Choices
}

// ModelChoiceField selects a backing record; record-like initial values
// serialize as their primary key.
type ModelChoiceField struct {
	ChoiceField
}

func (f *ModelChoiceField) Kind() Kind { return KindModelChoice }

// TypedChoiceField coerces the chosen value into a declared type.
type TypedChoiceField struct {
	ChoiceField
	// Coerce names the target type ("int", "float", "str", ...).
	Coerce     string
	EmptyValue any
}

func (f *TypedChoiceField) Kind() Kind { return KindTypedChoice }

// CoerceInfo returns the coercion target and the empty sentinel.
func (f *TypedChoiceField) CoerceInfo() (string, any) {
	return f.Coerce, f.EmptyValue
}

// MultipleChoiceField accepts any number of values from a declared choice
// list.
type MultipleChoiceField struct {
	ChoiceField
}

func (f *MultipleChoiceField) Kind() Kind { return KindMultipleChoice }

// ModelMultipleChoiceField selects multiple backing records; record-like
// initial values serialize as primary keys element-wise.
type ModelMultipleChoiceField struct {
	MultipleChoiceField
}

func (f *ModelMultipleChoiceField) Kind() Kind { return KindModelMultipleChoice }

// TypedMultipleChoiceField coerces every chosen value into a declared type.
type TypedMultipleChoiceField struct {
	MultipleChoiceField
	Coerce     string
	EmptyValue any
}

func (f *TypedMultipleChoiceField) Kind() Kind { return KindTypedMultipleChoice }

// CoerceInfo returns the coercion target and the empty sentinel.
func (f *TypedMultipleChoiceField) CoerceInfo() (string, any) {
	return f.Coerce, f.EmptyValue
}

// ComboField chains several sub-fields over a single value.
type ComboField struct {
	Attributes
	Fields []Field
}

func (f *ComboField) Kind() Kind { return KindCombo }

// Subfields returns the chained sub-fields.
func (f *ComboField) Subfields() []Field {
	return f.Fields
}

// MultiValueField aggregates several sub-fields into one composite value.
type MultiValueField struct {
	Attributes
	Fields []Field
}

func (f *MultiValueField) Kind() Kind { return KindMultiValue }

// Subfields returns the aggregated sub-fields.
func (f *MultiValueField) Subfields() []Field {
	return f.Fields
}

// SplitDateTimeField edits a combined timestamp through separate date and
// time inputs.
type SplitDateTimeField struct {
	MultiValueField
	InputDateFormats []string
	InputTimeFormats []string
}

func (f *SplitDateTimeField) Kind() Kind { return KindSplitDateTime }

// SplitFormats returns the date and time format lists.
func (f *SplitDateTimeField) SplitFormats() (dateFormats, timeFormats []string) {
	return f.InputDateFormats, f.InputTimeFormats
}

// FilePathField selects a file beneath a directory.
type FilePathField struct {
	ChoiceField
	Path      string
	Match     string
	Recursive bool
}

func (f *FilePathField) Kind() Kind { return KindFilePath }

// PathInfo returns the directory, the filename pattern and whether the walk
// descends into subdirectories.
func (f *FilePathField) PathInfo() (path, match string, recursive bool) {
	return f.Path, f.Match, f.Recursive
}
