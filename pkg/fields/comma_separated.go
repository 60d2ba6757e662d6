package fields

import "strings"

// CommaSeparatedField is a multiple-choice field whose submitted and cleaned
// representation is a single comma-joined string. Free-text tokens outside
// the declared choices are registered on the field as they are seen, labelled
// with a "(Not valid)" marker while choice validation is on. Registered
// choices live for the lifetime of the field instance; build a fresh field
// per validation cycle to discard them.
type CommaSeparatedField struct {
	MultipleChoiceField

	// ValidateChoices gates membership validation. When false every
	// candidate value is accepted, which allows free-form input such as
	// patterns. NewCommaSeparated enables it by default.
	ValidateChoices bool
}

func (f *CommaSeparatedField) Kind() Kind { return KindCommaSeparated }

// CommaSeparatedOption customises a CommaSeparatedField.
type CommaSeparatedOption func(*CommaSeparatedField)

// WithoutChoiceValidation accepts any submitted value regardless of the
// declared choice set.
func WithoutChoiceValidation() CommaSeparatedOption {
	return func(f *CommaSeparatedField) {
		f.ValidateChoices = false
	}
}

// NewCommaSeparated constructs the field with choice validation enabled.
func NewCommaSeparated(choices []Choice, options ...CommaSeparatedOption) *CommaSeparatedField {
	f := &CommaSeparatedField{ValidateChoices: true}
	f.Choices = choices
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// ValidatesChoices reports whether membership validation is on. The
// serializer consults it to decide how synthesized choices are labelled.
func (f *CommaSeparatedField) ValidatesChoices() bool {
	return f.ValidateChoices
}

// PrepareValue splits a string submission on "," and returns the token list.
// Tokens absent from the declared choices are appended to the field's choice
// list so they remain displayable: labelled "<token> (Not valid)" when choice
// validation is on, the raw token otherwise. Non-string values pass through
// unchanged.
func (f *CommaSeparatedField) PrepareValue(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}

	tokens := strings.Split(s, ",")
	for _, token := range tokens {
		if token == "" || hasChoiceValue(f.Choices, token) {
			continue
		}
		display := token
		if f.ValidateChoices {
			display = token + " (Not valid)"
		}
		f.Choices = append(f.Choices, Choice{Value: token, Display: display})
	}
	return tokens
}

// ValidValue defers to the declared choice set unless validation is
// disabled, in which case every value is valid.
func (f *CommaSeparatedField) ValidValue(value string) bool {
	if !f.ValidateChoices {
		return true
	}
	return f.MultipleChoiceField.ValidValue(value)
}

// Clean runs the standard multi-choice clean over the submission and rejoins
// the accepted values with "," so the cleaned representation is always a
// single string.
func (f *CommaSeparatedField) Clean(value any) (string, error) {
	values, err := f.MultipleChoiceField.clean(value, f.ValidValue)
	if err != nil {
		return "", err
	}
	return strings.Join(values, ","), nil
}
