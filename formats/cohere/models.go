package cohere

/*
	OCI GENERATIVE AI - COHERE CHAT FORMAT - TOOL TYPES
*/

// Tool describes a tool in the Cohere chat format, ready to embed in the
// tools array of a chat request.
type Tool struct {
	Name                 string                         `json:"name"`
	Description          string                         `json:"description"`
	ParameterDefinitions map[string]ParameterDefinition `json:"parameterDefinitions,omitempty"`
}

// ParameterDefinition describes a single tool parameter. The Type field uses
// the Cohere type vocabulary ("str", "int", "float", "bool", "List[...]").
type ParameterDefinition struct {
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	IsRequired  bool   `json:"isRequired"`
}

// ToolCall is the model's request to invoke a tool. Parameters arrive as an
// already-typed JSON object; no string decoding is needed in this format.
type ToolCall struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
}

// ToolResult reports a tool's output back to the model. Outputs holds a
// single entry mapping the tool's output label to the returned value; Call
// echoes the originating tool call.
type ToolResult struct {
	Call    *ToolCall        `json:"call,omitempty"`
	Outputs []map[string]any `json:"outputs"`
}
