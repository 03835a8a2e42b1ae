// Package dispatch implements the pipeline shared by the two tool-call
// dispatchers: name checking, context-argument merging, per-parameter
// coercion, required-parameter checking, and invocation of the bound
// handler. The format packages (formats/cohere, formats/generic) decode the
// inbound payload, delegate to [Run], and shape the handler's return value
// into their result document.
package dispatch
