package serialize

import (
	"strings"

	"github.com/goliatone/go-remoteforms/pkg/fields"
	"github.com/goliatone/go-remoteforms/pkg/ordered"
)

// buildFunc layers one category's keys onto the dictionary. Implementations
// call their parent build first so the key set only ever grows along the
// chain.
type buildFunc func(s *Serializer, st *state, dict *ordered.Map)

var builders map[fields.Kind]buildFunc

func init() {
	builders = map[fields.Kind]buildFunc{
		fields.KindChar:                buildChar,
		fields.KindRegex:               buildChar,
		fields.KindEmail:               buildChar,
		fields.KindURL:                 buildChar,
		fields.KindSlug:                buildChar,
		fields.KindIPAddress:           buildChar,
		fields.KindGenericIPAddress:    buildChar,
		fields.KindInteger:             buildInteger,
		fields.KindFloat:               buildInteger,
		fields.KindDecimal:             buildDecimal,
		fields.KindTime:                buildTime,
		fields.KindDate:                buildTime,
		fields.KindDateTime:            buildTime,
		fields.KindFile:                buildFile,
		fields.KindImage:               buildFile,
		fields.KindBoolean:             buildBase,
		fields.KindNullBoolean:         buildBase,
		fields.KindChoice:              buildChoice,
		fields.KindModelChoice:         buildModelChoice,
		fields.KindTypedChoice:         buildTypedChoice,
		fields.KindMultipleChoice:      buildChoice,
		fields.KindCommaSeparated:      buildCommaSeparated,
		fields.KindModelMultipleChoice: buildModelMultipleChoice,
		fields.KindTypedMultipleChoice: buildTypedChoice,
		fields.KindCombo:               buildComposite,
		fields.KindMultiValue:          buildComposite,
		fields.KindSplitDateTime:       buildSplitDateTime,
		fields.KindFilePath:            buildFilePath,
	}
}

func buildBase(s *Serializer, st *state, dict *ordered.Map) {
	attrs := st.field.Attrs()

	dict.Set("title", string(st.field.Kind()))
	dict.Set("required", attrs.Required)
	dict.Set("label", attrs.Label)
	dict.Set("initial", st.initial)
	dict.Set("help_text", s.sanitizeHelp(attrs.HelpText))
	dict.Set("disabled", attrs.Disabled)
	dict.Set("error_messages", fields.ErrorMessagesFor(st.field))

	widget := attrs.Widget
	if widget.IsZero() {
		widget = fields.DefaultWidget(st.field.Kind())
	}
	widget.IsRequired = attrs.Required
	dict.Set("widget", s.registry.Serialize(widget, st.name))
}

func buildChar(s *Serializer, st *state, dict *ordered.Map) {
	buildBase(s, st, dict)

	if bounded, ok := st.field.(fields.LengthBounded); ok {
		max, min := bounded.LengthBounds()
		dict.Set("max_length", intOrNil(max))
		dict.Set("min_length", intOrNil(min))
	}
}

func buildInteger(s *Serializer, st *state, dict *ordered.Map) {
	buildBase(s, st, dict)

	if bounded, ok := st.field.(fields.ValueBounded); ok {
		max, min := bounded.ValueBounds()
		dict.Set("max_value", max)
		dict.Set("min_value", min)
	}
}

func buildDecimal(s *Serializer, st *state, dict *ordered.Map) {
	buildInteger(s, st, dict)

	if sized, ok := st.field.(fields.DecimalSized); ok {
		maxDigits, decimalPlaces := sized.DecimalSize()
		dict.Set("max_digits", intOrNil(maxDigits))
		dict.Set("decimal_places", intOrNil(decimalPlaces))
	}
}

// buildTime resolves a callable initial, then renders temporal initial values
// as text. A field with no explicit formats picks up the configured default
// list matching the value's kind (date-only, time-only or combined).
func buildTime(s *Serializer, st *state, dict *ordered.Map) {
	buildBase(s, st, dict)

	var explicit []string
	if formatted, ok := st.field.(fields.TimeFormatted); ok {
		explicit = formatted.InputFormatList()
	}
	dict.Set("input_formats", explicit)

	initial, _ := dict.Get("initial")
	if initial == nil {
		return
	}
	if fn, ok := initial.(func() any); ok {
		initial = fn()
		dict.Set("initial", initial)
	}

	if rendered, effective, ok := s.formats.Render(initial, explicit); ok {
		dict.Set("input_formats", effective)
		dict.Set("initial", rendered)
	}
}

func buildFile(s *Serializer, st *state, dict *ordered.Map) {
	buildBase(s, st, dict)

	if bounded, ok := st.field.(fields.LengthBounded); ok {
		max, _ := bounded.LengthBounds()
		dict.Set("max_length", intOrNil(max))
	}
}

func buildChoice(s *Serializer, st *state, dict *ordered.Map) {
	buildBase(s, st, dict)

	var declared []fields.Choice
	if bearer, ok := st.field.(fields.ChoiceBearer); ok {
		declared = bearer.ChoiceList()
	}

	choices := make([]*ordered.Map, 0, len(declared))
	for _, choice := range declared {
		choices = append(choices, choiceDict(fields.Stringify(choice.Value), choice.Display))
	}
	dict.Set("choices", choices)
}

func buildModelChoice(s *Serializer, st *state, dict *ordered.Map) {
	buildChoice(s, st, dict)

	initial, _ := dict.Get("initial")
	dict.Set("initial", reduceToPrimaryKey(initial))
}

func buildTypedChoice(s *Serializer, st *state, dict *ordered.Map) {
	buildChoice(s, st, dict)

	if coercing, ok := st.field.(fields.Coercing); ok {
		coerce, empty := coercing.CoerceInfo()
		dict.Set("coerce", coerce)
		dict.Set("empty_value", empty)
	}
}

// buildCommaSeparated splits a string initial on "," and appends any token
// missing from the serialized choice list, marking it "(Not valid)" while the
// field validates choice membership.
func buildCommaSeparated(s *Serializer, st *state, dict *ordered.Map) {
	buildChoice(s, st, dict)

	initial, _ := dict.Get("initial")
	raw, ok := initial.(string)
	if !ok || raw == "" {
		return
	}

	validates := true
	if field, isComma := st.field.(interface{ ValidatesChoices() bool }); isComma {
		validates = field.ValidatesChoices()
	}

	value, _ := dict.Get("choices")
	choices := value.([]*ordered.Map)

	for _, token := range strings.Split(raw, ",") {
		if token == "" || containsChoiceValue(choices, token) {
			continue
		}
		display := token
		if validates {
			display = token + " (Not valid)"
		}
		choices = append(choices, choiceDict(token, display))
	}
	dict.Set("choices", choices)
}

func buildModelMultipleChoice(s *Serializer, st *state, dict *ordered.Map) {
	buildChoice(s, st, dict)

	initial, _ := dict.Get("initial")
	switch values := initial.(type) {
	case []any:
		reduced := make([]any, len(values))
		for i, value := range values {
			reduced[i] = reduceToPrimaryKey(value)
		}
		dict.Set("initial", reduced)
	default:
		dict.Set("initial", reduceToPrimaryKey(initial))
	}
}

func buildComposite(s *Serializer, st *state, dict *ordered.Map) {
	buildBase(s, st, dict)

	var nested []fields.Field
	if composite, ok := st.field.(fields.Composite); ok {
		nested = composite.Subfields()
	}

	specs := make([]*ordered.Map, 0, len(nested))
	for _, sub := range nested {
		specs = append(specs, s.Field(sub, nil, sub.Attrs().Name))
	}
	dict.Set("fields", specs)
}

func buildSplitDateTime(s *Serializer, st *state, dict *ordered.Map) {
	buildComposite(s, st, dict)

	if formatted, ok := st.field.(fields.SplitFormatted); ok {
		dateFormats, timeFormats := formatted.SplitFormats()
		dict.Set("input_date_formats", dateFormats)
		dict.Set("input_time_formats", timeFormats)
	}
}

func buildFilePath(s *Serializer, st *state, dict *ordered.Map) {
	buildChoice(s, st, dict)

	if backed, ok := st.field.(fields.PathBacked); ok {
		path, match, recursive := backed.PathInfo()
		dict.Set("path", path)
		dict.Set("match", match)
		dict.Set("recursive", recursive)
	}
}

func choiceDict(value string, display string) *ordered.Map {
	dict := ordered.NewMap()
	dict.Set("value", value)
	dict.Set("display", display)
	return dict
}

func containsChoiceValue(choices []*ordered.Map, value string) bool {
	for _, choice := range choices {
		if existing, _ := choice.Get("value"); existing == value {
			return true
		}
	}
	return false
}

func reduceToPrimaryKey(value any) any {
	if record, ok := value.(fields.PrimaryKeyer); ok {
		return record.PrimaryKey()
	}
	return value
}

func intOrNil(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
