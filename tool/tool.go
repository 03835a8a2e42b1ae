package tool

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// DefaultOutputLabel is the key under which a tool's return value is
// reported back to the model when no label is configured.
const DefaultOutputLabel = "output"

// Handler is the function signature a [Tool] binds. Arguments arrive as a
// name-keyed map, already coerced to the declared parameter types when the
// call comes through a dispatcher. The return value and error pass through
// to the caller unmodified.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Tool wraps a [Handler] together with the metadata the OCI Generative AI
// service needs: name, description, output label, and an insertion-ordered
// parameter registry. Construct with [New]; the value is read-only after
// construction.
type Tool struct {
	name        string
	description string
	outputLabel string
	handler     Handler

	// Insertion-ordered registry. index maps a parameter name to its
	// position in params; re-adding a name overwrites in place so the
	// original position is kept.
	params []Parameter
	index  map[string]int
}

// Option configures a [Tool] during [New].
type Option func(*Tool) error

// New wraps fn with the given description and applies the options in order.
// The tool name defaults to fn's identifier, resolved through the runtime
// symbol table; anonymous functions and method values have no usable
// identifier and must supply [WithName]. An empty description or an
// unresolvable name fails with a [ConfigurationError].
func New(fn Handler, description string, opts ...Option) (*Tool, error) {
	if fn == nil {
		return nil, &ConfigurationError{Reason: "handler function cannot be nil"}
	}
	if description == "" {
		return nil, &ConfigurationError{Reason: "tool description cannot be empty"}
	}

	t := &Tool{
		description: description,
		outputLabel: DefaultOutputLabel,
		handler:     fn,
		index:       make(map[string]int),
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	if t.name == "" {
		name, ok := functionName(fn)
		if !ok {
			return nil, &ConfigurationError{Reason: "cannot derive a tool name from an anonymous function; use WithName"}
		}
		t.name = name
	}

	return t, nil
}

// functionName resolves fn's bare identifier via the runtime symbol table.
// Symbols look like "path/to/pkg.addNumbers", "pkg.Type.Method-fm" for bound
// methods, or "pkg.caller.func1" for closures; the latter two carry no
// usable tool name.
func functionName(fn Handler) (string, bool) {
	pc := reflect.ValueOf(fn).Pointer()
	symbol := runtime.FuncForPC(pc)
	if symbol == nil {
		return "", false
	}

	name := symbol.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}

	if name == "" || strings.HasSuffix(name, "-fm") {
		return "", false
	}
	// Closures are numbered funcN by the compiler; nested closures end in a
	// bare number ("caller.func3.1").
	if allDigits(name) {
		return "", false
	}
	if strings.HasPrefix(name, "func") && allDigits(name[len("func"):]) {
		return "", false
	}
	return name, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// AddParameter validates p and appends it to the registry, or overwrites the
// existing declaration when the name was already registered (last write
// wins, keeping the original position). Violated invariants fail with a
// [ConfigurationError].
func (t *Tool) AddParameter(p Parameter) error {
	if cerr := p.validate(); cerr != nil {
		cerr.Tool = t.name
		return cerr
	}
	if idx, exists := t.index[p.Name]; exists {
		t.params[idx] = p
		return nil
	}
	t.index[p.Name] = len(t.params)
	t.params = append(t.params, p)
	return nil
}

// Invoke forwards directly to the bound handler. Nothing is decoded,
// coerced, or checked on this path; return value and error pass through
// unmodified.
func (t *Tool) Invoke(ctx context.Context, args map[string]any) (any, error) {
	return t.handler(ctx, args)
}

// Name returns the tool name advertised to the model.
func (t *Tool) Name() string { return t.name }

// Description returns the tool description advertised to the model.
func (t *Tool) Description() string { return t.description }

// OutputLabel returns the key under which the handler's return value is
// reported in a tool result.
func (t *Tool) OutputLabel() string { return t.outputLabel }

// Parameters returns the declared parameters in insertion order. The
// returned slice is a copy and can be modified freely.
func (t *Tool) Parameters() []Parameter {
	out := make([]Parameter, len(t.params))
	copy(out, t.params)
	return out
}

// Parameter returns the declaration registered under name.
func (t *Tool) Parameter(name string) (Parameter, bool) {
	idx, ok := t.index[name]
	if !ok {
		return Parameter{}, false
	}
	return t.params[idx], true
}

// --- Options ---

// WithName overrides the tool name derived from the handler's identifier.
// Required for anonymous functions and method values.
func WithName(name string) Option {
	return func(t *Tool) error {
		if name == "" {
			return &ConfigurationError{Reason: "tool name cannot be empty"}
		}
		t.name = name
		return nil
	}
}

// WithOutputLabel sets the key under which the tool's return value is
// reported back to the model. Defaults to [DefaultOutputLabel].
func WithOutputLabel(label string) Option {
	return func(t *Tool) error {
		if label == "" {
			return &ConfigurationError{Tool: t.name, Reason: "output label cannot be empty"}
		}
		t.outputLabel = label
		return nil
	}
}

// WithParameter declares a required parameter of the given kind.
func WithParameter(name string, kind Kind, description string) Option {
	return func(t *Tool) error {
		return t.AddParameter(Parameter{Name: name, Type: kind, Description: description, Required: true})
	}
}

// WithOptionalParameter declares a parameter the model may omit.
func WithOptionalParameter(name string, kind Kind, description string) Option {
	return func(t *Tool) error {
		return t.AddParameter(Parameter{Name: name, Type: kind, Description: description})
	}
}

// WithListParameter declares a required list parameter with the given
// element kind.
func WithListParameter(name string, itemKind Kind, description string) Option {
	return func(t *Tool) error {
		return t.AddParameter(Parameter{Name: name, Type: KindList, ItemType: itemKind, Description: description, Required: true})
	}
}

// WithOptionalListParameter declares a list parameter the model may omit.
func WithOptionalListParameter(name string, itemKind Kind, description string) Option {
	return func(t *Tool) error {
		return t.AddParameter(Parameter{Name: name, Type: KindList, ItemType: itemKind, Description: description})
	}
}

// WithParameters declares several parameters at once, in order.
func WithParameters(params ...Parameter) Option {
	return func(t *Tool) error {
		for _, p := range params {
			if err := t.AddParameter(p); err != nil {
				return err
			}
		}
		return nil
	}
}
