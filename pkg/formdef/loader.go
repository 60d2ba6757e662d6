// Package formdef loads form definition documents (JSON or YAML) and builds
// the corresponding form: one entry per field with its kind, constraints,
// choices and widget override. It lets callers describe forms in
// configuration instead of constructing field values by hand.
package formdef

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-remoteforms/pkg/fields"
	"github.com/goliatone/go-remoteforms/pkg/forms"
	"github.com/goliatone/go-remoteforms/pkg/widgets"
)

type documentFile struct {
	Title   string         `json:"title" yaml:"title"`
	Initial map[string]any `json:"initial" yaml:"initial"`
	Fields  []fieldDef     `json:"fields" yaml:"fields"`
}

type fieldDef struct {
	Name          string            `json:"name" yaml:"name"`
	Kind          string            `json:"kind" yaml:"kind"`
	Required      bool              `json:"required" yaml:"required"`
	Label         string            `json:"label" yaml:"label"`
	Initial       any               `json:"initial" yaml:"initial"`
	HelpText      string            `json:"help_text" yaml:"help_text"`
	Disabled      bool              `json:"disabled" yaml:"disabled"`
	ErrorMessages map[string]string `json:"error_messages" yaml:"error_messages"`

	Widget      string            `json:"widget" yaml:"widget"`
	WidgetAttrs map[string]string `json:"widget_attrs" yaml:"widget_attrs"`

	MaxLength     *int `json:"max_length" yaml:"max_length"`
	MinLength     *int `json:"min_length" yaml:"min_length"`
	MaxValue      any  `json:"max_value" yaml:"max_value"`
	MinValue      any  `json:"min_value" yaml:"min_value"`
	MaxDigits     *int `json:"max_digits" yaml:"max_digits"`
	DecimalPlaces *int `json:"decimal_places" yaml:"decimal_places"`

	InputFormats     []string `json:"input_formats" yaml:"input_formats"`
	InputDateFormats []string `json:"input_date_formats" yaml:"input_date_formats"`
	InputTimeFormats []string `json:"input_time_formats" yaml:"input_time_formats"`

	Choices         []choiceDef `json:"choices" yaml:"choices"`
	Coerce          string      `json:"coerce" yaml:"coerce"`
	EmptyValue      any         `json:"empty_value" yaml:"empty_value"`
	ValidateChoices *bool       `json:"validate_choices" yaml:"validate_choices"`

	Pattern   string `json:"pattern" yaml:"pattern"`
	Path      string `json:"path" yaml:"path"`
	Match     string `json:"match" yaml:"match"`
	Recursive bool   `json:"recursive" yaml:"recursive"`

	Fields []fieldDef `json:"fields" yaml:"fields"`
}

type choiceDef struct {
	Value   any    `json:"value" yaml:"value"`
	Display string `json:"display" yaml:"display"`
}

// Parse decodes a JSON or YAML definition document and builds the form.
func Parse(data []byte) (*forms.Form, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("formdef: document is empty")
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("formdef: parse document: invalid JSON or YAML")
		}
	}

	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("formdef: document declares no fields")
	}

	form := forms.New(doc.Title)
	form.Initial = doc.Initial
	for _, def := range doc.Fields {
		if def.Name == "" {
			return nil, fmt.Errorf("formdef: field without a name")
		}
		field, err := buildField(def)
		if err != nil {
			return nil, err
		}
		if err := form.Add(def.Name, field); err != nil {
			return nil, err
		}
	}
	return form, nil
}

// ParseFile reads and parses a definition file from disk.
func ParseFile(path string) (*forms.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formdef: read %s: %w", path, err)
	}
	form, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("formdef: file %s: %w", path, err)
	}
	return form, nil
}

func buildField(def fieldDef) (fields.Field, error) {
	var field fields.Field

	switch fields.Kind(def.Kind) {
	case fields.KindChar:
		field = &fields.CharField{MaxLength: def.MaxLength, MinLength: def.MinLength}
	case fields.KindRegex:
		f := &fields.RegexField{}
		f.MaxLength, f.MinLength = def.MaxLength, def.MinLength
		f.Pattern = def.Pattern
		field = f
	case fields.KindEmail:
		f := &fields.EmailField{}
		f.MaxLength, f.MinLength = def.MaxLength, def.MinLength
		field = f
	case fields.KindURL:
		f := &fields.URLField{}
		f.MaxLength, f.MinLength = def.MaxLength, def.MinLength
		field = f
	case fields.KindSlug:
		f := &fields.SlugField{}
		f.MaxLength, f.MinLength = def.MaxLength, def.MinLength
		field = f
	case fields.KindIPAddress:
		f := &fields.IPAddressField{}
		f.MaxLength, f.MinLength = def.MaxLength, def.MinLength
		field = f
	case fields.KindGenericIPAddress:
		f := &fields.GenericIPAddressField{}
		f.MaxLength, f.MinLength = def.MaxLength, def.MinLength
		field = f
	case fields.KindInteger:
		field = &fields.IntegerField{MaxValue: def.MaxValue, MinValue: def.MinValue}
	case fields.KindFloat:
		f := &fields.FloatField{}
		f.MaxValue, f.MinValue = def.MaxValue, def.MinValue
		field = f
	case fields.KindDecimal:
		f := &fields.DecimalField{MaxDigits: def.MaxDigits, DecimalPlaces: def.DecimalPlaces}
		f.MaxValue, f.MinValue = def.MaxValue, def.MinValue
		field = f
	case fields.KindTime:
		field = &fields.TimeField{InputFormats: def.InputFormats}
	case fields.KindDate:
		f := &fields.DateField{}
		f.InputFormats = def.InputFormats
		field = f
	case fields.KindDateTime:
		f := &fields.DateTimeField{}
		f.InputFormats = def.InputFormats
		field = f
	case fields.KindFile:
		field = &fields.FileField{MaxLength: def.MaxLength}
	case fields.KindImage:
		f := &fields.ImageField{}
		f.MaxLength = def.MaxLength
		field = f
	case fields.KindBoolean:
		field = &fields.BooleanField{}
	case fields.KindNullBoolean:
		field = &fields.NullBooleanField{}
	case fields.KindChoice:
		field = &fields.ChoiceField{Choices: buildChoices(def.Choices)}
	case fields.KindModelChoice:
		f := &fields.ModelChoiceField{}
		f.Choices = buildChoices(def.Choices)
		field = f
	case fields.KindTypedChoice:
		f := &fields.TypedChoiceField{Coerce: def.Coerce, EmptyValue: def.EmptyValue}
		f.Choices = buildChoices(def.Choices)
		field = f
	case fields.KindMultipleChoice:
		f := &fields.MultipleChoiceField{}
		f.Choices = buildChoices(def.Choices)
		field = f
	case fields.KindModelMultipleChoice:
		f := &fields.ModelMultipleChoiceField{}
		f.Choices = buildChoices(def.Choices)
		field = f
	case fields.KindTypedMultipleChoice:
		f := &fields.TypedMultipleChoiceField{Coerce: def.Coerce, EmptyValue: def.EmptyValue}
		f.Choices = buildChoices(def.Choices)
		field = f
	case fields.KindCommaSeparated:
		var options []fields.CommaSeparatedOption
		if def.ValidateChoices != nil && !*def.ValidateChoices {
			options = append(options, fields.WithoutChoiceValidation())
		}
		field = fields.NewCommaSeparated(buildChoices(def.Choices), options...)
	case fields.KindFilePath:
		f := &fields.FilePathField{Path: def.Path, Match: def.Match, Recursive: def.Recursive}
		f.Choices = buildChoices(def.Choices)
		field = f
	case fields.KindCombo:
		nested, err := buildNested(def)
		if err != nil {
			return nil, err
		}
		field = &fields.ComboField{Fields: nested}
	case fields.KindMultiValue:
		nested, err := buildNested(def)
		if err != nil {
			return nil, err
		}
		field = &fields.MultiValueField{Fields: nested}
	case fields.KindSplitDateTime:
		nested, err := buildNested(def)
		if err != nil {
			return nil, err
		}
		f := &fields.SplitDateTimeField{
			InputDateFormats: def.InputDateFormats,
			InputTimeFormats: def.InputTimeFormats,
		}
		f.Fields = nested
		field = f
	default:
		return nil, fmt.Errorf("formdef: field %q has unknown kind %q", def.Name, def.Kind)
	}

	applyCommon(field.Attrs(), def)
	return field, nil
}

func buildNested(def fieldDef) ([]fields.Field, error) {
	nested := make([]fields.Field, 0, len(def.Fields))
	for _, sub := range def.Fields {
		if sub.Name == "" {
			return nil, fmt.Errorf("formdef: field %q has a nested field without a name", def.Name)
		}
		field, err := buildField(sub)
		if err != nil {
			return nil, err
		}
		nested = append(nested, field)
	}
	return nested, nil
}

func buildChoices(defs []choiceDef) []fields.Choice {
	if len(defs) == 0 {
		return nil
	}
	choices := make([]fields.Choice, len(defs))
	for i, def := range defs {
		choices[i] = fields.Choice{Value: def.Value, Display: def.Display}
	}
	return choices
}

func applyCommon(attrs *fields.Attributes, def fieldDef) {
	attrs.Name = def.Name
	attrs.Required = def.Required
	attrs.Label = def.Label
	attrs.Initial = def.Initial
	attrs.HelpText = def.HelpText
	attrs.Disabled = def.Disabled
	attrs.ErrorMessages = def.ErrorMessages
	if def.Widget != "" {
		attrs.Widget = widgets.New(widgets.Kind(def.Widget), def.WidgetAttrs)
	}
}
