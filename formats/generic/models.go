package generic

/*
	OCI GENERATIVE AI - GENERIC CHAT FORMAT - TOOL TYPES
*/

// SchemaDraft is the JSON-Schema dialect declared on every exported
// parameter schema.
const SchemaDraft = "https://json-schema.org/draft/2020-12/schema"

// FunctionDefinition describes a tool in the generic (function-calling)
// chat format, ready to embed in the tools array of a chat request.
type FunctionDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  ParameterSchema `json:"parameters"`
}

// ParameterSchema is the JSON-Schema object describing a tool's parameters.
type ParameterSchema struct {
	Schema     string                    `json:"$schema"`
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required"`
}

// PropertySchema describes a single parameter in JSON-Schema vocabulary
// ("string", "integer", "number", "boolean", "array" with Items).
type PropertySchema struct {
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Items       *PropertySchema `json:"items,omitempty"`
}

// FunctionCall is the model's request to invoke a tool. Arguments carries a
// JSON-object-encoded string that must be decoded before use.
type FunctionCall struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	Type      string `json:"type"` // "FUNCTION"
	Arguments string `json:"arguments"`
}

// ToolMessage reports a tool's output back to the model as a role-tagged
// message. Content holds a single text block whose text is the JSON
// encoding of {<output label>: <value>}; ToolCallID echoes the call's ID.
type ToolMessage struct {
	Role       string        `json:"role"` // "TOOL"
	Content    []TextContent `json:"content"`
	ToolCallID string        `json:"toolCallId,omitempty"`
}

// TextContent is a text block within a chat message.
type TextContent struct {
	Type string `json:"type"` // "TEXT"
	Text string `json:"text"`
}
