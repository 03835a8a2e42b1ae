package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Tool Dispatch Attributes ---

const (
	// AttrToolName is the name of the tool being dispatched
	AttrToolName = "tool.name"

	// AttrToolFormat is the wire format of the dispatch ("cohere" or "generic")
	AttrToolFormat = "tool.format"

	// AttrToolCallName is the tool name carried by the inbound call
	AttrToolCallName = "tool.call.name"

	// AttrToolCallID is the call identifier echoed into the result, when present
	AttrToolCallID = "tool.call.id"

	// AttrToolArguments is the merged argument set (serialized)
	AttrToolArguments = "tool.arguments"

	// AttrToolOutput is the tool output (serialized)
	AttrToolOutput = "tool.output"

	// AttrToolDuration is the handler execution duration
	AttrToolDuration = "tool.duration"

	// AttrToolError is the error message if dispatch failed
	AttrToolError = "tool.error"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"
)

// --- Span Names ---

const (
	// SpanToolDispatch is the span name for tool-call dispatch
	SpanToolDispatch = "tool.dispatch"
)

// --- Event Names ---

const (
	// EventToolDispatchStart marks the start of a tool dispatch
	EventToolDispatchStart = "tool.dispatch.start"

	// EventToolDispatchEnd marks the end of a tool dispatch
	EventToolDispatchEnd = "tool.dispatch.end"
)
