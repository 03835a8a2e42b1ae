package cohere

import (
	"context"
	"fmt"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/core/dispatch"
	"github.com/CallanHP/oci-gen-ai-tool-decorators/tool"
)

// typeTags maps the declared parameter kinds onto the Cohere type
// vocabulary. List types are composed as "List[<item tag>]" by typeTag.
var typeTags = map[tool.Kind]string{
	tool.KindString:  "str",
	tool.KindInteger: "int",
	tool.KindFloat:   "float",
	tool.KindBoolean: "bool",
}

// typeTag renders the Cohere type tag for one declared parameter.
func typeTag(p tool.Parameter) (string, *tool.ConfigurationError) {
	if p.Type == tool.KindList {
		itemTag, ok := typeTags[p.ItemType]
		if !ok {
			return "", &tool.ConfigurationError{
				Parameter: p.Name,
				Reason:    fmt.Sprintf("no Cohere type tag for list item kind %q", p.ItemType),
			}
		}
		return "List[" + itemTag + "]", nil
	}

	tag, ok := typeTags[p.Type]
	if !ok {
		return "", &tool.ConfigurationError{
			Parameter: p.Name,
			Reason:    fmt.Sprintf("no Cohere type tag for kind %q", p.Type),
		}
	}
	return tag, nil
}

// Definition exports t's metadata as a Cohere tool definition. The mapping
// is pure and deterministic: the same metadata always yields the same
// document. A declared kind with no Cohere type tag fails with a
// tool.ConfigurationError naming the parameter.
func Definition(t *tool.Tool) (Tool, error) {
	definitions := make(map[string]ParameterDefinition)
	for _, p := range t.Parameters() {
		tag, cerr := typeTag(p)
		if cerr != nil {
			cerr.Tool = t.Name()
			return Tool{}, cerr
		}
		definitions[p.Name] = ParameterDefinition{
			Description: p.Description,
			Type:        tag,
			IsRequired:  p.Required,
		}
	}

	out := Tool{
		Name:        t.Name(),
		Description: t.Description(),
	}
	if len(definitions) > 0 {
		out.ParameterDefinitions = definitions
	}
	return out, nil
}

// NewToolCall constructs a Cohere tool call, the way the service would
// phrase one. Useful in tests and agent harnesses that synthesize calls.
func NewToolCall(name string, parameters map[string]any) ToolCall {
	return ToolCall{Name: name, Parameters: parameters}
}

// DispatchOption configures a single [Dispatch].
type DispatchOption func(*dispatchOptions)

type dispatchOptions struct {
	contextArgs map[string]any
	checkName   bool
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

// Dispatch invokes t with the arguments carried by call and shapes the
// return value into a Cohere tool result: a single outputs entry keyed by
// the tool's output label, with the originating call echoed alongside.
//
// The call's parameter map is used as-is (this format carries typed values,
// not an encoded string), merged with any context arguments, coerced to the
// declared parameter types, and checked for required parameters before the
// handler runs. Handler errors propagate unmodified.
func Dispatch(ctx context.Context, t *tool.Tool, call ToolCall, opts ...DispatchOption) (ToolResult, error) {
	options := dispatchOptions{checkName: true}
	for _, opt := range opts {
		opt(&options)
	}

	output, err := dispatch.Run(ctx, t, dispatch.Request{
		Format:    "cohere",
		CallName:  call.Name,
		Arguments: call.Parameters,
		Context:   options.contextArgs,
		CheckName: options.checkName,
	})
	if err != nil {
		return ToolResult{}, err
	}

	return ToolResult{
		Call:    &call,
		Outputs: []map[string]any{{t.OutputLabel(): output}},
	}, nil
}
