// Package parse converts tool-call argument payloads from their wire
// representation into the values a tool handler expects. Because language
// models frequently emit slightly malformed JSON and represent numbers and
// booleans as strings, the package offers an optional automatic repair pass
// for argument strings and a per-kind coercion step that tightens loose wire
// values to the declared parameter types before falling back to a clear
// error.
//
// The entry points are [DecodeArguments] for the string-encoded argument
// object of a generic tool call and [Coerce] for individual values.
package parse
