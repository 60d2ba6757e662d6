// Command remoteforms loads a form definition document (JSON or YAML),
// serializes it and prints the resulting JSON. With -interactive it also
// walks the form's fields as terminal prompts and prints the submitted
// values, running the comma-separated field's clean pipeline on its input.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-remoteforms/pkg/fields"
	"github.com/goliatone/go-remoteforms/pkg/formats"
	"github.com/goliatone/go-remoteforms/pkg/formdef"
	"github.com/goliatone/go-remoteforms/pkg/forms"
	"github.com/goliatone/go-remoteforms/pkg/serialize"
)

func main() {
	input := flag.String("input", "", "form definition file (JSON or YAML)")
	formatsPath := flag.String("formats", "", "date/time format configuration file (optional)")
	output := flag.String("output", "", "output file (stdout if empty)")
	interactive := flag.Bool("interactive", false, "prompt for field values after serializing")
	flag.Parse()

	if *input == "" {
		log.Fatal("an -input definition file is required")
	}

	form, err := formdef.ParseFile(*input)
	if err != nil {
		log.Fatalf("Failed to load form definition: %v", err)
	}

	cfg := formats.Default()
	if *formatsPath != "" {
		cfg, err = formats.ParseFile(*formatsPath)
		if err != nil {
			log.Fatalf("Failed to load format configuration: %v", err)
		}
	}

	serializer := serialize.New(serialize.WithFormats(cfg))
	payload, err := json.MarshalIndent(form.Serialize(serializer), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, append(payload, '\n'), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(string(payload))
	}

	if *interactive {
		if err := fillForm(form); err != nil {
			log.Fatalf("Failed to fill form: %v", err)
		}
	}
}

func fillForm(form *forms.Form) error {
	submission := make(map[string]any)

	for _, name := range form.Names() {
		field, _ := form.Lookup(name)
		value, err := promptField(name, field)
		if err != nil {
			return err
		}
		submission[name] = value
	}

	payload, err := json.MarshalIndent(submission, "", "  ")
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

func promptField(name string, field fields.Field) (any, error) {
	message := field.Attrs().Label
	if message == "" {
		message = name
	}

	switch f := field.(type) {
	case *fields.CommaSeparatedField:
		var raw string
		prompt := &survey.Input{
			Message: message,
			Help:    "comma separated values",
		}
		if err := survey.AskOne(prompt, &raw); err != nil {
			return nil, err
		}
		cleaned, err := f.Clean(f.PrepareValue(raw))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		return cleaned, nil
	case *fields.BooleanField:
		var answer bool
		if err := survey.AskOne(&survey.Confirm{Message: message}, &answer); err != nil {
			return nil, err
		}
		return answer, nil
	default:
		if bearer, ok := field.(fields.ChoiceBearer); ok {
			return promptChoices(message, field, bearer.ChoiceList())
		}

		var answer string
		if err := survey.AskOne(&survey.Input{Message: message, Help: field.Attrs().HelpText}, &answer); err != nil {
			return nil, err
		}
		return answer, nil
	}
}

func promptChoices(message string, field fields.Field, declared []fields.Choice) (any, error) {
	options := make([]string, len(declared))
	byDisplay := make(map[string]string, len(declared))
	for i, choice := range declared {
		options[i] = choice.Display
		byDisplay[choice.Display] = fields.Stringify(choice.Value)
	}

	switch field.Kind() {
	case fields.KindMultipleChoice, fields.KindModelMultipleChoice, fields.KindTypedMultipleChoice:
		var picked []string
		if err := survey.AskOne(&survey.MultiSelect{Message: message, Options: options}, &picked); err != nil {
			return nil, err
		}
		values := make([]string, len(picked))
		for i, display := range picked {
			values[i] = byDisplay[display]
		}
		return values, nil
	default:
		var picked string
		if err := survey.AskOne(&survey.Select{Message: message, Options: options}, &picked); err != nil {
			return nil, err
		}
		return byDisplay[picked], nil
	}
}
