package parse

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/tool"
)

// DecodeArguments parses the string-encoded JSON object carried by a generic
// tool call into an argument map. When repair is true and the initial parse
// fails, the string is run through jsonrepair and parsed again before giving
// up; models regularly emit single-quoted keys, trailing commas, or fenced
// JSON that the repair pass recovers.
//
// The decoded value must be a JSON object; arrays and bare scalars are
// rejected even when syntactically valid.
func DecodeArguments(raw string, repair bool) (map[string]any, error) {
	args, err := decodeObject(raw)
	if err == nil {
		return args, nil
	}
	if !repair {
		return nil, err
	}

	repaired, repairErr := jsonrepair.JSONRepair(raw)
	if repairErr != nil {
		return nil, fmt.Errorf("%w (repair also failed: %v)", err, repairErr)
	}
	args, retryErr := decodeObject(repaired)
	if retryErr != nil {
		return nil, fmt.Errorf("%w (repaired form also invalid: %v)", err, retryErr)
	}
	return args, nil
}

func decodeObject(raw string) (map[string]any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	var args map[string]any
	decoder := json.NewDecoder(strings.NewReader(trimmed))
	decoder.UseNumber()
	if err := decoder.Decode(&args); err != nil {
		return nil, fmt.Errorf("arguments are not a JSON object: %w", err)
	}
	return args, nil
}

// Coerce tightens a wire value to the declared parameter kind. JSON's type
// system is looser than the declared set, so integral floats become
// integers, numeric strings become numbers, "true"/"false" become booleans,
// and list items are coerced element-wise against itemKind. Values that
// cannot be represented as the declared kind return an error describing
// what was received; the caller attaches the parameter name.
func Coerce(value any, kind tool.Kind, itemKind tool.Kind) (any, error) {
	switch kind {
	case tool.KindString:
		return coerceString(value)
	case tool.KindInteger:
		return coerceInteger(value)
	case tool.KindFloat:
		return coerceFloat(value)
	case tool.KindBoolean:
		return coerceBoolean(value)
	case tool.KindList:
		return coerceList(value, itemKind)
	default:
		return nil, fmt.Errorf("unknown declared kind %q", kind)
	}
}

func coerceString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return nil, describeFailure(value, tool.KindString)
	}
}

func coerceInteger(value any) (any, error) {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		// A float-form number is acceptable when it carries no fraction.
		f, err := v.Float64()
		if err == nil && f == math.Trunc(f) {
			return int64(f), nil
		}
		return nil, describeFailure(value, tool.KindInteger)
	case float64:
		if v == math.Trunc(v) {
			return int64(v), nil
		}
		return nil, describeFailure(value, tool.KindInteger)
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case string:
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil && f == math.Trunc(f) {
			return int64(f), nil
		}
		return nil, describeFailure(value, tool.KindInteger)
	default:
		return nil, describeFailure(value, tool.KindInteger)
	}
}

func coerceFloat(value any) (any, error) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, describeFailure(value, tool.KindFloat)
		}
		return f, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, describeFailure(value, tool.KindFloat)
		}
		return f, nil
	default:
		return nil, describeFailure(value, tool.KindFloat)
	}
}

func coerceBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, describeFailure(value, tool.KindBoolean)
		}
		return b, nil
	default:
		return nil, describeFailure(value, tool.KindBoolean)
	}
}

func coerceList(value any, itemKind tool.Kind) (any, error) {
	items, ok := value.([]any)
	if !ok {
		// Models sometimes double-encode lists as a JSON string.
		raw, isString := value.(string)
		if !isString {
			return nil, describeFailure(value, tool.KindList)
		}
		decoder := json.NewDecoder(strings.NewReader(raw))
		decoder.UseNumber()
		if err := decoder.Decode(&items); err != nil {
			return nil, describeFailure(value, tool.KindList)
		}
	}

	out := make([]any, len(items))
	for i, item := range items {
		coerced, err := Coerce(item, itemKind, 0)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = coerced
	}
	return out, nil
}

// describeFailure builds the "got" side of a coercion error in a form
// suitable for tool.ArgumentTypeError.
func describeFailure(value any, want tool.Kind) error {
	return fmt.Errorf("cannot coerce %s to %s", DescribeValue(value), want)
}

// DescribeValue renders a wire value for error messages, bounding the output
// so huge payloads do not flood logs.
func DescribeValue(value any) string {
	const maxLen = 80
	var rendered string
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		rendered = strconv.Quote(v)
	case json.Number:
		rendered = v.String()
	default:
		rendered = fmt.Sprintf("%v", v)
	}
	if len(rendered) > maxLen {
		rendered = rendered[:maxLen] + "..."
	}
	return fmt.Sprintf("%T %s", value, rendered)
}
