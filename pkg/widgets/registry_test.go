package widgets_test

import (
	"fmt"
	"testing"

	"github.com/goliatone/go-remoteforms/pkg/ordered"
	"github.com/goliatone/go-remoteforms/pkg/widgets"
)

type capturingLogger struct {
	warnings []string
}

func (l *capturingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func TestSerializeKnownKind(t *testing.T) {
	logger := &capturingLogger{}
	reg := widgets.NewRegistry(widgets.WithLogger(logger))

	dict := reg.Serialize(widgets.New(widgets.KindEmailInput, map[string]string{"maxlength": "100"}), "email")

	if got, _ := dict.Get("title"); got != "EmailInput" {
		t.Fatalf("expected EmailInput title, got %v", got)
	}
	if got, _ := dict.Get("input_type"); got != "email" {
		t.Fatalf("expected email input_type, got %v", got)
	}
	attrs, _ := dict.Get("attrs")
	attrMap, ok := attrs.(map[string]string)
	if !ok {
		t.Fatalf("expected attrs map, got %T", attrs)
	}
	if attrMap["id"] != "id_email" {
		t.Fatalf("expected derived id, got %q", attrMap["id"])
	}
	if attrMap["maxlength"] != "100" {
		t.Fatalf("expected declared attrs to survive, got %v", attrMap)
	}
	if len(logger.warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", logger.warnings)
	}
}

func TestSerializeUnknownKindFallsBack(t *testing.T) {
	logger := &capturingLogger{}
	reg := widgets.NewRegistry(widgets.WithLogger(logger))

	dict := reg.Serialize(widgets.New(widgets.Kind("HologramInput"), nil), "avatar")

	for _, key := range []string{"title", "is_hidden", "is_required", "attrs"} {
		if !dict.Has(key) {
			t.Fatalf("expected default shape to contain %q", key)
		}
	}
	if got, _ := dict.Get("title"); got != "HologramInput" {
		t.Fatalf("expected unknown kind to keep its title, got %v", got)
	}
	if len(logger.warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d: %v", len(logger.warnings), logger.warnings)
	}
}

func TestSerializeHiddenInput(t *testing.T) {
	reg := widgets.NewRegistry(widgets.WithLogger(&capturingLogger{}))

	dict := reg.Serialize(widgets.New(widgets.KindHiddenInput, nil), "token")
	if hidden, _ := dict.Get("is_hidden"); hidden != true {
		t.Fatalf("expected hidden input to report is_hidden")
	}
	if inputType, _ := dict.Get("input_type"); inputType != "hidden" {
		t.Fatalf("expected hidden input_type, got %v", inputType)
	}
}

func TestRegisterCustomSerializer(t *testing.T) {
	logger := &capturingLogger{}
	reg := widgets.NewRegistry(widgets.WithLogger(logger))

	kind := widgets.Kind("MarkdownEditor")
	reg.Register(kind, func(w widgets.Widget, fieldName string) *ordered.Map {
		dict := ordered.NewMap()
		dict.Set("title", string(w.Kind))
		dict.Set("mode", "markdown")
		return dict
	})

	if !reg.Has(kind) {
		t.Fatalf("expected custom kind to be registered")
	}

	dict := reg.Serialize(widgets.New(kind, nil), "body")
	if mode, _ := dict.Get("mode"); mode != "markdown" {
		t.Fatalf("expected custom serializer output, got %v", mode)
	}
	if len(logger.warnings) != 0 {
		t.Fatalf("expected no warnings for registered kind, got %v", logger.warnings)
	}
}

func TestSerializeFileInputNeedsMultipart(t *testing.T) {
	reg := widgets.NewRegistry(widgets.WithLogger(&capturingLogger{}))

	dict := reg.Serialize(widgets.New(widgets.KindClearableFileInput, nil), "attachment")
	if multipart, _ := dict.Get("needs_multipart_form"); multipart != true {
		t.Fatalf("expected multipart flag for file input")
	}
}
