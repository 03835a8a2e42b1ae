// Package tool binds an ordinary Go function to the metadata the OCI
// Generative AI service needs to advertise it as a tool: a name, a
// description, an ordered parameter registry, and an output label.
//
// A [Tool] is built once with [New], composing metadata through options such
// as [WithParameter], [WithOutputLabel], or [WithStruct], and is read-only
// afterwards. Callers then hand the Tool to one of the format packages
// (formats/cohere, formats/generic) to export a tool-definition document or
// to dispatch an inbound tool call back onto the bound function.
//
// The wrapper never alters the bound function's behaviour: [Tool.Invoke]
// forwards arguments, return value, and errors verbatim. A [Catalog] holds a
// name-keyed collection of tools so that an inbound call can be routed to
// the wrapper it names.
package tool
