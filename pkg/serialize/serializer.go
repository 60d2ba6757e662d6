// Package serialize turns field values into insertion-ordered dictionaries a
// remote client can render and validate against. Dispatch is a table from
// field kind to a build function; every build function calls its parent build
// first, so each category's output is a strict superset of its parent's.
package serialize

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-remoteforms/pkg/fields"
	"github.com/goliatone/go-remoteforms/pkg/formats"
	"github.com/goliatone/go-remoteforms/pkg/ordered"
	"github.com/goliatone/go-remoteforms/pkg/widgets"
)

// Logger receives serializer warnings. logrus loggers satisfy it.
type Logger interface {
	Warnf(format string, args ...any)
}

// Option customises the serializer configuration.
type Option func(*Serializer)

// WithFormats supplies the fallback date/time format lists used when a
// time-family field declares none.
func WithFormats(cfg formats.Config) Option {
	return func(s *Serializer) {
		s.formats = cfg
		s.formatsSet = true
	}
}

// WithWidgetRegistry injects a custom widget serializer registry.
func WithWidgetRegistry(registry *widgets.Registry) Option {
	return func(s *Serializer) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithLogger overrides the warning logger.
func WithLogger(logger Logger) Option {
	return func(s *Serializer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Serializer converts fields into dictionaries. Construct with New; the zero
// value lacks a widget registry.
type Serializer struct {
	formats    formats.Config
	formatsSet bool
	registry   *widgets.Registry
	logger     Logger
	helpText   *bluemonday.Policy
}

// New constructs a Serializer applying any provided options. Missing
// collaborators fall back to the defaults: stock format lists, the built-in
// widget registry and the standard logrus logger.
func New(options ...Option) *Serializer {
	s := &Serializer{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if !s.formatsSet {
		s.formats = formats.Default()
	}
	if s.logger == nil {
		s.logger = logrus.StandardLogger()
	}
	if s.registry == nil {
		s.registry = widgets.NewRegistry(widgets.WithLogger(s.logger))
	}
	return s
}

// Field serializes one field. overrideInitial, when non-nil, takes precedence
// over the field's own initial value per the dynamic-initial rule; fieldName
// is the name the hosting form declared for the field. The call never fails:
// unknown field kinds degrade to the base dictionary and unknown widget kinds
// degrade to the default widget shape, each with a logged warning.
func (s *Serializer) Field(field fields.Field, overrideInitial any, fieldName string) *ordered.Map {
	st := &state{
		field:   field,
		name:    fieldName,
		initial: resolveInitial(field, overrideInitial),
	}

	dict := ordered.NewMap()
	s.builderFor(field.Kind())(s, st, dict)
	return dict
}

type state struct {
	field   fields.Field
	name    string
	initial any
}

func (s *Serializer) builderFor(kind fields.Kind) buildFunc {
	if build, ok := builders[kind]; ok {
		return build
	}
	if s.logger != nil {
		s.logger.Warnf("serialize: no builder for field kind %q, using base dictionary", string(kind))
	}
	return buildBase
}

func resolveInitial(field fields.Field, override any) any {
	if override != nil {
		return override
	}
	return field.Attrs().Initial
}
