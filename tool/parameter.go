package tool

import "fmt"

// Kind identifies one of the closed set of declared parameter types. The
// zero value is invalid; every mapping site rejects unknown kinds with a
// [ConfigurationError] rather than guessing a coercion.
type Kind int

const (
	KindString Kind = iota + 1
	KindInteger
	KindFloat
	KindBoolean
	KindList
)

// String returns the lower-case name of the kind, or "invalid" for values
// outside the closed set.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindList:
		return "list"
	default:
		return "invalid"
	}
}

func (k Kind) valid() bool {
	return k >= KindString && k <= KindList
}

// Parameter describes one declared parameter of a tool.
type Parameter struct {
	Name        string
	Type        Kind
	Description string
	// Required defaults to true when parameters are declared through the
	// builder options; the "optional" variants flip it.
	Required bool
	// ItemType is the element kind of a list parameter. It must be set if
	// and only if Type is KindList, and must itself be a non-list kind.
	ItemType Kind
}

// validate checks the registry invariants for a single parameter.
func (p Parameter) validate() *ConfigurationError {
	if p.Name == "" {
		return &ConfigurationError{Reason: "parameter name cannot be empty"}
	}
	if !p.Type.valid() {
		return &ConfigurationError{Parameter: p.Name, Reason: fmt.Sprintf("unknown parameter type %d", p.Type)}
	}
	if p.Type == KindList {
		if p.ItemType == 0 {
			return &ConfigurationError{Parameter: p.Name, Reason: "list parameter requires an item type"}
		}
		if !p.ItemType.valid() || p.ItemType == KindList {
			return &ConfigurationError{Parameter: p.Name, Reason: fmt.Sprintf("invalid list item type %q", p.ItemType)}
		}
	} else if p.ItemType != 0 {
		return &ConfigurationError{Parameter: p.Name, Reason: "item type is only valid on list parameters"}
	}
	return nil
}
