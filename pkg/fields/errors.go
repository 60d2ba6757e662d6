package fields

import "strings"

// Error codes raised while cleaning field input.
const (
	CodeRequired      = "required"
	CodeInvalid       = "invalid"
	CodeInvalidChoice = "invalid_choice"
	CodeInvalidList   = "invalid_list"
)

// ValidationError reports a failed clean with a stable code and a rendered
// message.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var baseErrorMessages = map[string]string{
	CodeRequired: "This field is required.",
	CodeInvalid:  "Enter a valid value.",
}

var kindErrorMessages = map[Kind]map[string]string{
	KindChoice: {
		CodeInvalidChoice: "Select a valid choice. %(value)s is not one of the available choices.",
	},
	KindMultipleChoice: {
		CodeInvalidChoice: "Select a valid choice. %(value)s is not one of the available choices.",
		CodeInvalidList:   "Enter a list of values.",
	},
}

// ErrorMessagesFor resolves the effective error message templates for a
// field: category defaults overlaid with the field's own overrides. Templates
// carry %(value)s style placeholders so they remain meaningful to remote
// clients rendering them.
func ErrorMessagesFor(f Field) map[string]string {
	messages := make(map[string]string, len(baseErrorMessages)+2)
	for code, message := range baseErrorMessages {
		messages[code] = message
	}

	extra := kindErrorMessages[KindChoice]
	switch f.Kind() {
	case KindChoice, KindModelChoice, KindTypedChoice, KindFilePath:
	case KindMultipleChoice, KindCommaSeparated, KindModelMultipleChoice, KindTypedMultipleChoice:
		extra = kindErrorMessages[KindMultipleChoice]
	default:
		extra = nil
	}
	for code, message := range extra {
		messages[code] = message
	}

	for code, message := range f.Attrs().ErrorMessages {
		messages[code] = message
	}
	return messages
}

func newValidationError(f Field, code string, params map[string]string) *ValidationError {
	template := ErrorMessagesFor(f)[code]
	if template == "" {
		template = baseErrorMessages[CodeInvalid]
	}
	message := template
	for key, value := range params {
		message = strings.ReplaceAll(message, "%("+key+")s", value)
	}
	return &ValidationError{Code: code, Message: message}
}
