package fields

import "fmt"

// Stringify renders a choice or submitted value the way the wire format
// expects: booleans and numbers keep their literal form, everything else goes
// through fmt.
func Stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", value)
	}
}

// ValidValue reports whether value matches one of the declared choices,
// comparing against the stringified choice values.
func (f *MultipleChoiceField) ValidValue(value string) bool {
	return hasChoiceValue(f.Choices, value)
}

// Clean validates a submitted multi-choice value and returns the accepted
// values. A nil or empty submission fails with the required error when the
// field is required; a non-list submission fails with invalid_list; each
// element must satisfy ValidValue or the clean fails with invalid_choice.
func (f *MultipleChoiceField) Clean(value any) ([]string, error) {
	return f.clean(value, f.ValidValue)
}

// clean runs the shared multi-choice pipeline with an injected membership
// check so derived fields can relax it.
func (f *MultipleChoiceField) clean(value any, valid func(string) bool) ([]string, error) {
	values, ok := asStringList(value)
	if !ok {
		return nil, newValidationError(f, CodeInvalidList, nil)
	}

	if len(values) == 0 {
		if f.Required {
			return nil, newValidationError(f, CodeRequired, nil)
		}
		return []string{}, nil
	}

	for _, v := range values {
		if !valid(v) {
			return nil, newValidationError(f, CodeInvalidChoice, map[string]string{"value": v})
		}
	}
	return values, nil
}

func asStringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case []string:
		return v, true
	case []any:
		values := make([]string, len(v))
		for i, item := range v {
			values[i] = Stringify(item)
		}
		return values, true
	default:
		return nil, false
	}
}

func hasChoiceValue(choices []Choice, value string) bool {
	for _, choice := range choices {
		if Stringify(choice.Value) == value {
			return true
		}
	}
	return false
}
