package tool

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// jsonSchemaKinds maps the JSON-Schema type vocabulary produced by struct
// reflection onto the closed [Kind] set. Types with no entry (notably
// "object") are rejected rather than coerced.
var jsonSchemaKinds = map[string]Kind{
	"string":  KindString,
	"integer": KindInteger,
	"number":  KindFloat,
	"boolean": KindBoolean,
}

// ParametersFrom derives a parameter list from the fields of struct type T
// via JSON-Schema reflection. Field names follow the json tags, descriptions
// come from jsonschema description tags, and the required/optional split
// mirrors the reflected schema (omitempty fields become optional). Fields
// whose schema type falls outside the closed [Kind] set fail with a
// [ConfigurationError].
//
// Example:
//
//	type searchArgs struct {
//	    Query string `json:"query" jsonschema:"description=Search terms"`
//	    Limit int    `json:"limit,omitempty" jsonschema:"description=Maximum results"`
//	}
//
//	params, err := tool.ParametersFrom[searchArgs]()
func ParametersFrom[T any]() ([]Parameter, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(new(T))

	if schema.Type != "object" || schema.Properties == nil {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("type %T does not reflect to an object schema", *new(T))}
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var params []Parameter
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		name, prop := pair.Key, pair.Value

		p := Parameter{
			Name:        name,
			Description: prop.Description,
			Required:    required[name],
		}

		kind, ok := jsonSchemaKinds[prop.Type]
		switch {
		case ok:
			p.Type = kind
		case prop.Type == "array":
			if prop.Items == nil {
				return nil, &ConfigurationError{Parameter: name, Reason: "array field has no item schema"}
			}
			itemKind, ok := jsonSchemaKinds[prop.Items.Type]
			if !ok {
				return nil, &ConfigurationError{Parameter: name, Reason: fmt.Sprintf("unsupported array item type %q", prop.Items.Type)}
			}
			p.Type = KindList
			p.ItemType = itemKind
		default:
			return nil, &ConfigurationError{Parameter: name, Reason: fmt.Sprintf("unsupported field type %q", prop.Type)}
		}

		params = append(params, p)
	}

	return params, nil
}

// WithStruct declares the tool's parameters from the fields of struct type
// T, as reflected by [ParametersFrom].
func WithStruct[T any]() Option {
	return func(t *Tool) error {
		params, err := ParametersFrom[T]()
		if err != nil {
			if cerr, isConfig := err.(*ConfigurationError); isConfig {
				cerr.Tool = t.name
			}
			return err
		}
		for _, p := range params {
			if err := t.AddParameter(p); err != nil {
				return err
			}
		}
		return nil
	}
}
