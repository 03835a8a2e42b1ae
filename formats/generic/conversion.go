package generic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/core/dispatch"
	"github.com/CallanHP/oci-gen-ai-tool-decorators/core/parse"
	"github.com/CallanHP/oci-gen-ai-tool-decorators/tool"
)

// typeTags maps the declared parameter kinds onto the JSON-Schema type
// vocabulary. List types are composed as "array" plus an items schema.
var typeTags = map[tool.Kind]string{
	tool.KindString:  "string",
	tool.KindInteger: "integer",
	tool.KindFloat:   "number",
	tool.KindBoolean: "boolean",
}

// propertySchema renders the JSON-Schema property for one declared parameter.
func propertySchema(p tool.Parameter) (PropertySchema, *tool.ConfigurationError) {
	if p.Type == tool.KindList {
		itemTag, ok := typeTags[p.ItemType]
		if !ok {
			return PropertySchema{}, &tool.ConfigurationError{
				Parameter: p.Name,
				Reason:    fmt.Sprintf("no JSON-Schema type for list item kind %q", p.ItemType),
			}
		}
		return PropertySchema{
			Type:        "array",
			Description: p.Description,
			Items:       &PropertySchema{Type: itemTag},
		}, nil
	}

	tag, ok := typeTags[p.Type]
	if !ok {
		return PropertySchema{}, &tool.ConfigurationError{
			Parameter: p.Name,
			Reason:    fmt.Sprintf("no JSON-Schema type for kind %q", p.Type),
		}
	}
	return PropertySchema{Type: tag, Description: p.Description}, nil
}

// Definition exports t's metadata as a generic function definition with a
// JSON-Schema parameters object. The mapping is pure and deterministic: the
// same metadata always yields the same document, with required names in
// declaration order. A declared kind with no JSON-Schema type fails with a
// tool.ConfigurationError naming the parameter.
func Definition(t *tool.Tool) (FunctionDefinition, error) {
	parameters := ParameterSchema{
		Schema:     SchemaDraft,
		Type:       "object",
		Properties: make(map[string]PropertySchema),
		Required:   []string{},
	}

	for _, p := range t.Parameters() {
		prop, cerr := propertySchema(p)
		if cerr != nil {
			cerr.Tool = t.Name()
			return FunctionDefinition{}, cerr
		}
		parameters.Properties[p.Name] = prop
		if p.Required {
			parameters.Required = append(parameters.Required, p.Name)
		}
	}

	return FunctionDefinition{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  parameters,
	}, nil
}

// NewFunctionCall constructs a generic function call the way the service
// would phrase one: arguments marshalled to a JSON string and a fresh
// "chatcmpl-tool-" call ID. Useful in tests and agent harnesses that
// synthesize calls.
func NewFunctionCall(name string, args any) (FunctionCall, error) {
	encoded, err := json.Marshal(args)
	if err != nil {
		return FunctionCall{}, fmt.Errorf("marshaling call arguments: %w", err)
	}
	return FunctionCall{
		Name:      name,
		ID:        "chatcmpl-tool-" + uuid.NewString(),
		Type:      "FUNCTION",
		Arguments: string(encoded),
	}, nil
}

// DispatchOption configures a single [Dispatch].
type DispatchOption func(*dispatchOptions)

type dispatchOptions struct {
	contextArgs map[string]any
	checkName   bool
	repair      bool
	validate    bool
}

// WithContextArguments injects trusted caller-supplied arguments
// (credentials, connections, identity) into the handler call. On a name
// collision with a model-supplied argument the context value wins.
func WithContextArguments(args map[string]any) DispatchOption {
	return func(o *dispatchOptions) { o.contextArgs = args }
}

// WithoutNameCheck disables the defensive check that call.Name matches the
// tool's name, restoring reliance on caller routing discipline.
func WithoutNameCheck() DispatchOption {
	return func(o *dispatchOptions) { o.checkName = false }
}

// WithArgumentRepair runs a jsonrepair pass over a malformed argument
// string before failing. Models regularly emit single-quoted keys or
// trailing commas that the repair recovers.
func WithArgumentRepair() DispatchOption {
	return func(o *dispatchOptions) { o.repair = true }
}

// WithArgumentValidation validates the decoded model arguments against the
// tool's exported JSON-Schema properties before any coercion. A violation
// fails with a tool.ArgumentTypeError naming the field, so validated fields
// get no coercion slack (a numeric string is rejected, not converted).
func WithArgumentValidation() DispatchOption {
	return func(o *dispatchOptions) { o.validate = true }
}

// Dispatch invokes t with the arguments carried by call and shapes the
// return value into a role-tagged tool message whose text content is the
// JSON encoding of {<output label>: <value>}, echoing the call's ID.
//
// The call's argument string is decoded first, failing with a
// tool.ArgumentDecodingError on malformed input before the handler can
// run. Decoded arguments are merged with any context arguments, coerced to
// the declared parameter types, and checked for required parameters.
// Handler errors propagate unmodified.
func Dispatch(ctx context.Context, t *tool.Tool, call FunctionCall, opts ...DispatchOption) (ToolMessage, error) {
	options := dispatchOptions{checkName: true}
	for _, opt := range opts {
		opt(&options)
	}

	args, err := parse.DecodeArguments(call.Arguments, options.repair)
	if err != nil {
		return ToolMessage{}, &tool.ArgumentDecodingError{Tool: t.Name(), Err: err}
	}

	if options.validate {
		if err := validateArguments(t, args); err != nil {
			return ToolMessage{}, err
		}
	}

	output, err := dispatch.Run(ctx, t, dispatch.Request{
		Format:    "generic",
		CallName:  call.Name,
		CallID:    call.ID,
		Arguments: args,
		Context:   options.contextArgs,
		CheckName: options.checkName,
	})
	if err != nil {
		return ToolMessage{}, err
	}

	labeled := map[string]any{t.OutputLabel(): output}
	text, err := json.Marshal(labeled)
	if err != nil {
		return ToolMessage{}, fmt.Errorf("marshaling tool output: %w", err)
	}

	return ToolMessage{
		Role:       "TOOL",
		Content:    []TextContent{{Type: "TEXT", Text: string(text)}},
		ToolCallID: call.ID,
	}, nil
}
