package calculator

import (
	"context"
	"fmt"

	"github.com/CallanHP/oci-gen-ai-tool-decorators/tool"
)

// New returns a tool performing basic arithmetic, declared with two float
// operands and an operation selector. The result is reported under the
// "result" output label.
//
// Example:
//
//	calc, _ := calculator.New()
//	definition, _ := cohere.Definition(calc)
func New() (*tool.Tool, error) {
	return tool.New(
		calculate,
		"A simple calculator to perform basic arithmetic operations like addition, subtraction, multiplication, and division.",
		tool.WithName("calculator"),
		tool.WithOutputLabel("result"),
		tool.WithParameter("a", tool.KindFloat, "First operand"),
		tool.WithParameter("b", tool.KindFloat, "Second operand"),
		tool.WithParameter("op", tool.KindString, "Operation to perform: add, sub, mul, or div"),
	)
}

// calculate applies the operation named by args["op"] to the operands
// args["a"] and args["b"]. Division by zero follows IEEE 754 semantics and
// returns an infinity rather than an error. An unrecognised operation is an
// error, since the model picked a value outside the advertised set.
func calculate(ctx context.Context, args map[string]any) (any, error) {
	a, err := operand(args, "a")
	if err != nil {
		return nil, err
	}
	b, err := operand(args, "b")
	if err != nil {
		return nil, err
	}
	op, _ := args["op"].(string)

	switch op {
	case "add", "+":
		return a + b, nil
	case "sub", "-":
		return a - b, nil
	case "mul", "*":
		return a * b, nil
	case "div", "/":
		return a / b, nil
	default:
		return nil, fmt.Errorf("unsupported operation %q", op)
	}
}

// operand reads a float argument, tolerating the integer types a direct
// Invoke caller may pass.
func operand(args map[string]any, name string) (float64, error) {
	switch v := args[name].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("operand %q must be a number, got %T", name, args[name])
	}
}
