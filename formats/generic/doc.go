// Package generic translates tool metadata to and from the generic
// (function-calling) chat format of the OCI Generative AI service.
//
// [Definition] exports a tool.Tool as a [FunctionDefinition] whose
// parameters form a JSON-Schema object; [Dispatch] decodes an inbound
// [FunctionCall]'s string-encoded arguments, runs them against the wrapped
// function, and shapes the return value into a [ToolMessage]. Optional
// dispatch behaviours cover argument repair for malformed JSON and strict
// schema validation before coercion.
package generic
