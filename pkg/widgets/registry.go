package widgets

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-remoteforms/pkg/ordered"
)

// Logger receives the warning emitted when a widget kind has no registered
// serializer. logrus loggers satisfy it out of the box.
type Logger interface {
	Warnf(format string, args ...any)
}

// Serializer turns a widget into its dictionary form. fieldName is the name
// the hosting form declared for the field, used to derive the control id.
type Serializer func(w Widget, fieldName string) *ordered.Map

// Registry maps widget kinds to serializers with a designated default entry.
// Serialize never fails: a kind without a serializer logs one warning and
// falls back to the default.
type Registry struct {
	mu          sync.RWMutex
	serializers map[Kind]Serializer
	fallback    Serializer
	logger      Logger
}

// RegistryOption customises a registry at construction time.
type RegistryOption func(*Registry)

// WithLogger overrides the warning logger.
func WithLogger(logger Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry constructs a registry with the built-in serializers registered
// and the generic input serializer as the default entry.
func NewRegistry(options ...RegistryOption) *Registry {
	r := &Registry{
		serializers: make(map[Kind]Serializer),
		fallback:    defaultSerializer,
		logger:      logrus.StandardLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	r.registerBuiltins()
	return r
}

// Register adds or replaces the serializer for a kind.
func (r *Registry) Register(kind Kind, fn Serializer) {
	if r == nil || kind == "" || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.serializers[kind] = fn
}

// SetDefault replaces the fallback serializer used for unknown kinds.
func (r *Registry) SetDefault(fn Serializer) {
	if r == nil || fn == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = fn
}

// Has reports whether kind has a dedicated serializer.
func (r *Registry) Has(kind Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.serializers[kind]
	return ok
}

// Kinds returns the registered kinds sorted by name.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.serializers))
	for kind := range r.serializers {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Serialize produces the dictionary for a widget. Unknown kinds emit a single
// warning and use the default serializer.
func (r *Registry) Serialize(w Widget, fieldName string) *ordered.Map {
	r.mu.RLock()
	fn, ok := r.serializers[w.Kind]
	fallback := r.fallback
	logger := r.logger
	r.mu.RUnlock()

	if !ok {
		if logger != nil {
			logger.Warnf("widgets: no serializer for kind %q, using default", string(w.Kind))
		}
		fn = fallback
	}
	return fn(w, fieldName)
}

func (r *Registry) registerBuiltins() {
	inputs := map[Kind]string{
		KindTextInput:     "text",
		KindNumberInput:   "number",
		KindEmailInput:    "email",
		KindURLInput:      "url",
		KindPasswordInput: "password",
		KindHiddenInput:   "hidden",
		KindDateInput:     "text",
		KindTimeInput:     "text",
		KindDateTimeInput: "text",
		KindCheckboxInput: "checkbox",
	}
	for kind, inputType := range inputs {
		r.serializers[kind] = inputSerializer(inputType)
	}

	r.serializers[KindFileInput] = fileSerializer
	r.serializers[KindClearableFileInput] = fileSerializer

	plain := []Kind{
		KindTextarea,
		KindSelect,
		KindNullBooleanSelect,
		KindSelectMultiple,
		KindRadioSelect,
		KindCheckboxSelectMultiple,
		KindSplitDateTime,
	}
	for _, kind := range plain {
		r.serializers[kind] = defaultSerializer
	}
}

func defaultSerializer(w Widget, fieldName string) *ordered.Map {
	return baseDict(w, fieldName)
}

func inputSerializer(inputType string) Serializer {
	return func(w Widget, fieldName string) *ordered.Map {
		dict := baseDict(w, fieldName)
		dict.Set("input_type", inputType)
		return dict
	}
}

func fileSerializer(w Widget, fieldName string) *ordered.Map {
	dict := baseDict(w, fieldName)
	dict.Set("input_type", "file")
	dict.Set("needs_multipart_form", true)
	return dict
}

func baseDict(w Widget, fieldName string) *ordered.Map {
	title := string(w.Kind)
	if title == "" {
		title = string(KindTextInput)
	}

	attrs := make(map[string]string, len(w.Attrs)+1)
	for key, value := range w.Attrs {
		attrs[key] = value
	}
	if fieldName != "" {
		if _, ok := attrs["id"]; !ok {
			attrs["id"] = "id_" + fieldName
		}
	}

	dict := ordered.NewMap()
	dict.Set("title", title)
	dict.Set("is_hidden", w.IsHidden || w.Kind == KindHiddenInput)
	dict.Set("is_required", w.IsRequired)
	dict.Set("attrs", attrs)
	return dict
}
