// Package cohere translates tool metadata to and from the Cohere chat
// format of the OCI Generative AI service.
//
// [Definition] exports a tool.Tool as a [Tool] document for the chat
// request's tools array; [Dispatch] runs an inbound [ToolCall] against the
// wrapped function and shapes the return value into a [ToolResult]. In this
// format the call's parameters arrive as an already-typed JSON object, and
// the result reports outputs as a single labeled entry.
package cohere
