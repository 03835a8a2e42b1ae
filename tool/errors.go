package tool

import (
	"fmt"
	"strings"
)

// ConfigurationError reports invalid tool metadata: an empty description, an
// unusable derived name, a parameter with an unknown [Kind], a list parameter
// without an item type, or a struct field that cannot be mapped to the closed
// kind set.
type ConfigurationError struct {
	Tool      string // tool name, when known at the failure site
	Parameter string // offending parameter, when the failure is parameter-scoped
	Reason    string
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Tool != "" && e.Parameter != "":
		return fmt.Sprintf("tool %q: parameter %q: %s", e.Tool, e.Parameter, e.Reason)
	case e.Parameter != "":
		return fmt.Sprintf("parameter %q: %s", e.Parameter, e.Reason)
	case e.Tool != "":
		return fmt.Sprintf("tool %q: %s", e.Tool, e.Reason)
	default:
		return e.Reason
	}
}

// InvocationError reports a tool call dispatched onto a wrapper whose name
// does not match the call's name. It usually means the caller selected the
// wrong tool from a collection.
type InvocationError struct {
	Tool     string // the wrapper's name
	CallName string // the name carried by the inbound call
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("tool %q cannot handle call for %q", e.Tool, e.CallName)
}

// ArgumentDecodingError reports a tool-call argument payload that could not
// be decoded into a parameter map. It wraps the underlying decode error.
type ArgumentDecodingError struct {
	Tool string
	Err  error
}

func (e *ArgumentDecodingError) Error() string {
	return fmt.Sprintf("tool %q: decoding call arguments: %v", e.Tool, e.Err)
}

func (e *ArgumentDecodingError) Unwrap() error { return e.Err }

// ArgumentTypeError reports an argument value that could not be coerced to
// the declared parameter type.
type ArgumentTypeError struct {
	Tool      string
	Parameter string
	Want      Kind
	Got       string // description of the value received, e.g. "string \"abc\""
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("tool %q: parameter %q: cannot coerce %s to %s", e.Tool, e.Parameter, e.Got, e.Want)
}

// MissingArgumentError reports required parameters absent from a dispatched
// tool call after context arguments have been merged in.
type MissingArgumentError struct {
	Tool       string
	Parameters []string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("tool %q: missing required parameters: %s", e.Tool, strings.Join(e.Parameters, ", "))
}
