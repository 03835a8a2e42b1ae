package dispatch

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/core/parse"
	"github.com/CallanHP/oci-gen-ai-tool-decorators/observability"
	"github.com/CallanHP/oci-gen-ai-tool-decorators/tool"
)

// Request carries one decoded tool call through the shared pipeline.
type Request struct {
	// Format names the wire format ("cohere" or "generic"), recorded on
	// span events.
	Format string

	// CallName is the tool name carried by the inbound call.
	CallName string

	// CallID is the call identifier, when the format carries one.
	CallID string

	// Arguments are the decoded, model-supplied arguments.
	Arguments map[string]any

	// Context holds trusted caller-supplied arguments (credentials,
	// connections, identity). On a name collision the context value wins;
	// the model must never control these.
	Context map[string]any

	// CheckName enables the defensive name check against misrouted
	// dispatch. The dispatchers turn it on by default.
	CheckName bool
}

// Run executes the pipeline stages shared by both dispatchers and returns
// the handler's raw return value. The caller shapes it into the
// format-specific result document.
//
// Stages, in order: name check, context merge, per-parameter coercion,
// required check, handler invocation. Declared parameters bound to JSON
// null are treated as absent; arguments the tool never declared pass
// through to the handler untouched. Handler errors propagate unmodified.
//
// When a span is present in ctx, start and end events are emitted and
// failures are recorded on it.
func Run(ctx context.Context, t *tool.Tool, req Request) (any, error) {
	span := observability.SpanFromContext(ctx)

	if req.CheckName && req.CallName != t.Name() {
		err := &tool.InvocationError{Tool: t.Name(), CallName: req.CallName}
		recordError(span, err)
		return nil, err
	}

	args := mergeArguments(req.Arguments, req.Context)

	for _, p := range t.Parameters() {
		value, present := args[p.Name]
		if !present {
			continue
		}
		if value == nil {
			// JSON null carries no value; the required check below decides
			// whether its absence is an error.
			delete(args, p.Name)
			continue
		}
		coerced, err := parse.Coerce(value, p.Type, p.ItemType)
		if err != nil {
			typeErr := &tool.ArgumentTypeError{
				Tool:      t.Name(),
				Parameter: p.Name,
				Want:      p.Type,
				Got:       parse.DescribeValue(value),
			}
			recordError(span, typeErr)
			return nil, typeErr
		}
		args[p.Name] = coerced
	}

	var missing []string
	for _, p := range t.Parameters() {
		if !p.Required {
			continue
		}
		if _, present := args[p.Name]; !present {
			missing = append(missing, p.Name)
		}
	}
	if len(missing) > 0 {
		err := &tool.MissingArgumentError{Tool: t.Name(), Parameters: missing}
		recordError(span, err)
		return nil, err
	}

	if span != nil {
		attrs := []observability.Attribute{
			observability.String(observability.AttrToolName, t.Name()),
			observability.String(observability.AttrToolFormat, req.Format),
			observability.String(observability.AttrToolArguments, renderArguments(args)),
		}
		if req.CallID != "" {
			attrs = append(attrs, observability.String(observability.AttrToolCallID, req.CallID))
		}
		span.AddEvent(observability.EventToolDispatchStart, attrs...)
	}

	start := time.Now()
	output, err := t.Invoke(ctx, args)
	duration := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.String(observability.AttrToolError, err.Error()),
				observability.Duration(observability.AttrToolDuration, duration),
			)
		}
		// Handler errors pass through unmodified.
		return nil, err
	}

	if span != nil {
		span.AddEvent(observability.EventToolDispatchEnd,
			observability.Duration(observability.AttrToolDuration, duration),
		)
	}

	return output, nil
}

// mergeArguments overlays context arguments on the model-supplied ones in a
// fresh map. Context values win on collision.
func mergeArguments(arguments, contextArgs map[string]any) map[string]any {
	merged := make(map[string]any, len(arguments)+len(contextArgs))
	for k, v := range arguments {
		merged[k] = v
	}
	for k, v := range contextArgs {
		merged[k] = v
	}
	return merged
}

// renderArguments serializes the merged arguments for span attributes,
// truncated so large payloads do not flood the trace.
func renderArguments(args map[string]any) string {
	encoded, err := json.Marshal(args)
	if err != nil {
		return "<unserializable>"
	}
	return observability.TruncateString(string(encoded), observability.DefaultMaxStringLength)
}

func recordError(span observability.Span, err error) {
	if span == nil {
		return
	}
	span.RecordError(err)
	span.SetAttributes(observability.String(observability.AttrToolError, err.Error()))
}
