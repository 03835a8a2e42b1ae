package generic

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/core/parse"
	"github.com/CallanHP/oci-gen-ai-tool-decorators/tool"
)

// validateArguments checks the decoded model arguments against the tool's
// exported JSON-Schema properties. Required names are deliberately left out
// of the schema here: missing-parameter detection belongs to the dispatch
// pipeline, which reports every absent name at once; this pass only rejects
// present values of the wrong type.
func validateArguments(t *tool.Tool, args map[string]any) error {
	def, err := Definition(t)
	if err != nil {
		return err
	}

	// The $schema dialect is stripped along with the required names: the
	// validator predates draft 2020-12, and the properties being checked
	// here use nothing beyond its core vocabulary.
	schema := map[string]any{
		"type":       "object",
		"properties": def.Parameters.Properties,
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(args),
	)
	if err != nil {
		return &tool.ArgumentDecodingError{Tool: t.Name(), Err: err}
	}
	if result.Valid() {
		return nil
	}

	violation := result.Errors()[0]
	name := parameterName(violation.Field())

	typeErr := &tool.ArgumentTypeError{
		Tool:      t.Name(),
		Parameter: name,
		Got:       violation.Description(),
	}
	if p, ok := t.Parameter(name); ok {
		typeErr.Want = p.Type
		typeErr.Got = parse.DescribeValue(args[name])
	}
	return typeErr
}

// parameterName reduces a gojsonschema field path ("tags.0", "(root).a") to
// the top-level parameter name.
func parameterName(field string) string {
	field = strings.TrimPrefix(field, "(root).")
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[:idx]
	}
	return field
}
